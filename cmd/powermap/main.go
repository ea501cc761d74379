package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aeropower/powermap/pkg/deck"
	"github.com/aeropower/powermap/pkg/numutil"
	"github.com/aeropower/powermap/pkg/powertrain"
	"github.com/aeropower/powermap/pkg/types"
)

type solveOpts struct {
	arch  string
	eta   float64
	pInst float64

	phi        float64
	shaftRatio float64
	throttle   float64
	power      float64

	etaGT, etaGB, etaP1, etaEM1, etaPM, etaEM2, etaP2 float64
}

type mapOpts struct {
	configPath string
	out        string

	arch       string
	eta        float64
	pInst      float64
	shaftRatio float64

	machs     []float64
	altsFt    []float64
	throttles []float64
	phis      []float64
	phiSteps  int

	description string
	author      string
}

func main() {
	root := &cobra.Command{
		Use:   "powermap",
		Short: "Hybrid-electric powertrain mapping tool",
		Long: `powermap resolves the power flow through hybrid-electric aircraft
propulsion architectures and generates engine-deck style performance maps
(thrust, drag, fuel flow, NOx, electric power) over a grid of flight
conditions.

Examples:
  powermap solve --arch serial --eta 0.9 --p-inst 1.65e6 --phi 0.5 --throttle 0.5
  powermap map --config serial_hybrid.toml
  powermap map --arch parallel --eta 0.92 --p-inst 2e6 \
      --mach 0,0.3,0.6 --alt-ft 0,10000,20000 --throttle 0.3,0.6,0.9 --phi-steps 5 \
      --out parallel.csv`,
		SilenceUsage: true,
	}

	root.AddCommand(newSolveCmd(), newMapCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newSolveCmd() *cobra.Command {
	var o solveOpts

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Resolve the power flow at a single operating point",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, o)
		},
	}

	cmd.Flags().StringVarP(&o.arch, "arch", "a", "serial",
		"architecture (conventional|turboelectric|serial|parallel|PTE|SPPH|e-1|e-2|dual-e)")
	cmd.Flags().Float64Var(&o.eta, "eta", 0.9, "uniform component efficiency (0,1]")
	cmd.Flags().Float64Var(&o.pInst, "p-inst", 1.0e6, "installed power of the throttle reference component (W)")

	cmd.Flags().Float64Var(&o.phi, "phi", 0, "supplied power ratio [0,1] (battery share)")
	cmd.Flags().Float64Var(&o.shaftRatio, "shaft-ratio", 0, "shaft power ratio [0,1] (secondary-shaft share)")
	cmd.Flags().Float64Var(&o.throttle, "throttle", 0, "throttle setting [0,1]")
	cmd.Flags().Float64Var(&o.power, "power", 0, "total propulsive power target (W)")

	cmd.Flags().Float64Var(&o.etaGT, "eta-gt", 0, "gas turbine efficiency (overrides --eta)")
	cmd.Flags().Float64Var(&o.etaGB, "eta-gb", 0, "gearbox efficiency (overrides --eta)")
	cmd.Flags().Float64Var(&o.etaP1, "eta-p1", 0, "primary propulsor efficiency (overrides --eta)")
	cmd.Flags().Float64Var(&o.etaEM1, "eta-em1", 0, "primary electric machine efficiency (overrides --eta)")
	cmd.Flags().Float64Var(&o.etaPM, "eta-pm", 0, "power management efficiency (overrides --eta)")
	cmd.Flags().Float64Var(&o.etaEM2, "eta-em2", 0, "secondary electric machine efficiency (overrides --eta)")
	cmd.Flags().Float64Var(&o.etaP2, "eta-p2", 0, "secondary propulsor efficiency (overrides --eta)")

	return cmd
}

func runSolve(cmd *cobra.Command, o solveOpts) error {
	arch, err := powertrain.ParseArchitecture(o.arch)
	if err != nil {
		return err
	}

	eff := powertrain.Uniform(o.eta)
	overrides := []struct {
		name string
		dst  *float64
		val  float64
	}{
		{"eta-gt", &eff.GT, o.etaGT}, {"eta-gb", &eff.GB, o.etaGB},
		{"eta-p1", &eff.P1, o.etaP1}, {"eta-em1", &eff.EM1, o.etaEM1},
		{"eta-pm", &eff.PM, o.etaPM}, {"eta-em2", &eff.EM2, o.etaEM2},
		{"eta-p2", &eff.P2, o.etaP2},
	}
	for _, ov := range overrides {
		if cmd.Flags().Changed(ov.name) {
			*ov.dst = ov.val
		}
	}

	// Only flags the caller actually set become operating inputs; the solver
	// counts them against the architecture's degrees of freedom.
	var point powertrain.OperatingPoint
	if cmd.Flags().Changed("phi") {
		point.SuppliedPowerRatio = powertrain.Float(o.phi)
	}
	if cmd.Flags().Changed("shaft-ratio") {
		point.ShaftPowerRatio = powertrain.Float(o.shaftRatio)
	}
	if cmd.Flags().Changed("throttle") {
		point.Throttle = powertrain.Float(o.throttle)
	}
	if cmd.Flags().Changed("power") {
		point.TotalPropulsive = powertrain.Float(o.power)
	}

	flow, err := powertrain.Solve(arch, eff, point, o.pInst)
	if err != nil {
		return err
	}

	printFlow(arch, flow)
	return nil
}

var nodeLabels = map[string]string{
	"f":   "fuel",
	"gt":  "gas turbine",
	"gb":  "gearbox branch",
	"s1":  "primary shaft",
	"e1":  "electric machine 1",
	"bat": "battery",
	"e2":  "electric machine 2",
	"s2":  "secondary shaft",
	"p1":  "primary propulsor",
	"p2":  "secondary propulsor",
	"p":   "propulsive (total)",
}

func printFlow(arch powertrain.Architecture, flow *powertrain.PowerFlow) {
	fmt.Printf("architecture: %s\n\n", arch)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\t\tPOWER")
	fmt.Fprintln(tw, "----\t\t-----")
	for _, n := range flow.Nodes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.Key, nodeLabels[n.Key], types.Watts(n.Power).Humanized())
	}
	tw.Flush()

	fmt.Println()
	fmt.Printf("throttle:             %s\n", fmtRatio(flow.Throttle))
	fmt.Printf("supplied power ratio: %s\n", fmtRatio(flow.SuppliedPowerRatio))
	fmt.Printf("shaft power ratio:    %s\n", fmtRatio(flow.ShaftPowerRatio))
	fmt.Printf("flow case:            %d\n", flow.FlowCase)
}

func fmtRatio(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func newMapCmd() *cobra.Command {
	var o mapOpts

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Generate a performance deck over a flight-condition grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, o)
		},
	}

	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "TOML run configuration (overrides grid/powertrain flags)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "powertrain.csv", "output CSV path")

	cmd.Flags().StringVarP(&o.arch, "arch", "a", "serial", "architecture")
	cmd.Flags().Float64Var(&o.eta, "eta", 0.9, "uniform component efficiency (0,1]")
	cmd.Flags().Float64Var(&o.pInst, "p-inst", 1.0e6, "installed power of the throttle reference component (W)")
	cmd.Flags().Float64Var(&o.shaftRatio, "shaft-ratio", 0.5, "shaft power ratio for PTE/SPPH/dual-e")

	cmd.Flags().Float64SliceVar(&o.machs, "mach", []float64{0.0, 0.3, 0.6, 0.9}, "Mach numbers")
	cmd.Flags().Float64SliceVar(&o.altsFt, "alt-ft", []float64{0, 10000, 20000, 37000}, "altitudes (ft)")
	cmd.Flags().Float64SliceVar(&o.throttles, "throttle", []float64{0.2, 0.4, 0.6, 0.8, 1.0}, "throttle settings [0,1]")
	cmd.Flags().Float64SliceVar(&o.phis, "phi", nil, "supplied power ratios [0,1]")
	cmd.Flags().IntVar(&o.phiSteps, "phi-steps", 0, "evenly spaced supplied power ratios over [0,1] (alternative to --phi)")

	cmd.Flags().StringVar(&o.description, "description", "powertrain performance map", "deck header description")
	cmd.Flags().StringVar(&o.author, "author", "powermap", "deck header author")

	return cmd
}

func runMap(cmd *cobra.Command, o mapOpts) error {
	var (
		grid  deck.Grid
		model *deck.Model
		meta  deck.Meta
		out   = o.out
	)

	if o.configPath != "" {
		cfg, err := deck.LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		grid = cfg.BuildGrid()
		if model, err = cfg.BuildModel(); err != nil {
			return err
		}
		meta = cfg.BuildMeta()
		if cfg.Output != "" && !cmd.Flags().Changed("out") {
			out = cfg.Output
		}
	} else {
		arch, err := powertrain.ParseArchitecture(o.arch)
		if err != nil {
			return err
		}
		phis := o.phis
		if o.phiSteps > 0 {
			phis = numutil.Linspace(0, 1, o.phiSteps)
		}
		grid = deck.NewGrid(o.machs, o.altsFt, o.throttles, phis)
		model = deck.NewModel(arch, powertrain.Uniform(o.eta), o.pInst)
		if arch.UsesShaftPowerRatio() {
			model.ShaftPowerRatio = powertrain.Float(o.shaftRatio)
		}
		meta = deck.Meta{Description: o.description, Author: o.author}
	}

	slog.Info("generating deck",
		"out", out,
		"points", grid.Len(),
		"mach", len(grid.Machs),
		"altitudes", len(grid.AltitudesFt),
		"supplied_power_ratios", len(grid.SuppliedPowerRatios),
		"throttles", len(grid.Throttles),
	)

	wr := deck.Writer{
		Meta: meta,
		Progress: func(done, total int) {
			if done%100 == 0 {
				slog.Info("progress", "rows", done, "total", total)
			}
		},
	}
	n, err := wr.WriteFile(out, grid, model)
	if err != nil {
		return err
	}

	slog.Info("deck complete", "out", out, "rows", n)
	return nil
}
