package deck

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/aeropower/powermap/pkg/powertrain"
)

// Config is a TOML run configuration for deck generation:
//
//	description = "Serial hybrid demonstrator"
//	author = "propulsion group"
//	output = "serial_hybrid.csv"
//
//	[powertrain]
//	architecture = "serial"
//	installed-power-watts = 1.65e6
//
//	[powertrain.efficiency]
//	GT = 0.90
//	GB = 0.90
//	P1 = 0.90
//	EM1 = 0.90
//	PM = 0.90
//	EM2 = 0.90
//	P2 = 0.90
//
//	[grid]
//	mach = [0.0, 0.3, 0.6, 0.9]
//	altitude-ft = [0.0, 10000.0, 20000.0, 37000.0]
//	supplied-power-ratio = [0.0, 0.25, 0.5]
//	throttle = [0.2, 0.4, 0.6, 0.8, 1.0]
type Config struct {
	Description string           `toml:"description"`
	Author      string           `toml:"author"`
	Output      string           `toml:"output"`
	Powertrain  PowertrainConfig `toml:"powertrain"`
	Grid        GridConfig       `toml:"grid"`
}

// PowertrainConfig selects and sizes the solved powertrain.
type PowertrainConfig struct {
	Architecture    string           `toml:"architecture"`
	InstalledPowerW float64          `toml:"installed-power-watts"`
	ShaftPowerRatio *float64         `toml:"shaft-power-ratio"`
	RamDragLbf      float64          `toml:"ram-drag-lbf"`
	Efficiency      EfficiencyConfig `toml:"efficiency"`
}

// EfficiencyConfig carries the per-stage efficiencies, keyed by component
// abbreviation.
type EfficiencyConfig struct {
	GT  float64 `toml:"GT"`
	GB  float64 `toml:"GB"`
	P1  float64 `toml:"P1"`
	EM1 float64 `toml:"EM1"`
	PM  float64 `toml:"PM"`
	EM2 float64 `toml:"EM2"`
	P2  float64 `toml:"P2"`
}

// GridConfig carries the sweep axes.
type GridConfig struct {
	Mach               []float64 `toml:"mach"`
	AltitudeFt         []float64 `toml:"altitude-ft"`
	SuppliedPowerRatio []float64 `toml:"supplied-power-ratio"`
	Throttle           []float64 `toml:"throttle"`
}

// LoadConfig reads and validates a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("deck: load config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the configuration is complete enough to generate a deck.
// Physical ranges are left to the solver.
func (c *Config) Validate() error {
	if _, err := powertrain.ParseArchitecture(c.Powertrain.Architecture); err != nil {
		return err
	}
	if c.Powertrain.InstalledPowerW <= 0 {
		return fmt.Errorf("deck: installed-power-watts must be > 0, got %v", c.Powertrain.InstalledPowerW)
	}
	switch {
	case len(c.Grid.Mach) == 0:
		return fmt.Errorf("deck: grid.mach is empty")
	case len(c.Grid.AltitudeFt) == 0:
		return fmt.Errorf("deck: grid.altitude-ft is empty")
	case len(c.Grid.Throttle) == 0:
		return fmt.Errorf("deck: grid.throttle is empty")
	}
	return nil
}

// BuildGrid returns the sweep grid described by the configuration.
func (c *Config) BuildGrid() Grid {
	return NewGrid(c.Grid.Mach, c.Grid.AltitudeFt, c.Grid.Throttle, c.Grid.SuppliedPowerRatio)
}

// BuildModel returns the solver-backed performance model described by the
// configuration.
func (c *Config) BuildModel() (*Model, error) {
	arch, err := powertrain.ParseArchitecture(c.Powertrain.Architecture)
	if err != nil {
		return nil, err
	}
	e := c.Powertrain.Efficiency
	m := NewModel(arch, powertrain.Efficiencies{
		GT: e.GT, GB: e.GB, P1: e.P1, EM1: e.EM1, PM: e.PM, EM2: e.EM2, P2: e.P2,
	}, c.Powertrain.InstalledPowerW)
	m.ShaftPowerRatio = c.Powertrain.ShaftPowerRatio
	if c.Powertrain.RamDragLbf > 0 {
		m.RamDragLbf = c.Powertrain.RamDragLbf
	}
	return m, nil
}

// BuildMeta returns the deck header metadata described by the configuration.
func (c *Config) BuildMeta() Meta {
	return Meta{Description: c.Description, Author: c.Author}
}
