package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"
)

// Meta is the caller-supplied deck header metadata.
type Meta struct {
	Description string
	Author      string
	// Created stamps the header; zero means time.Now().
	Created time.Time
}

// header is the deck column line, fixed so generated files stay
// interchangeable with existing engine-deck readers.
const header = "Mach_Number, Altitude (ft), Supplied_Power_Ratio (-), Shaft_Power_Ratio (-),   Throttle, Gross_Thrust (lbf), Ram_Drag (lbf), Fuel_Flow (lb/h), NOx_Rate (lb/h), Electric_Power (kW)"

// Writer streams a performance deck: a commented metadata preamble, the
// column header, then one fixed-width row per grid point.
type Writer struct {
	Meta Meta

	// Progress, when non-nil, is called after each row with the number of
	// rows emitted so far and the grid total.
	Progress func(done, total int)
}

// Write evaluates every grid point through model and writes the deck to w.
// It returns the number of data rows written; generation stops at the first
// point that fails to evaluate.
func (wr *Writer) Write(w io.Writer, grid Grid, model Performance) (int, error) {
	bw := bufio.NewWriter(w)

	created := wr.Meta.Created
	if created.IsZero() {
		created = time.Now()
	}
	fmt.Fprintf(bw, "# created %s\n", created.Format("01/02/06"))
	if wr.Meta.Description != "" {
		fmt.Fprintf(bw, "# %s\n", wr.Meta.Description)
	}
	if wr.Meta.Author != "" {
		fmt.Fprintf(bw, "# generated by %s using powermap\n", wr.Meta.Author)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, header)

	total := grid.Len()
	done := 0
	for _, pt := range grid.Points() {
		row, err := model.Evaluate(pt)
		if err != nil {
			return done, err
		}
		fmt.Fprintf(bw, "%9.2f, %11.1f, %23.6f, %18.6f, %8.2f, %15.1f, %13.1f, %13.1f, %11.4f, %15.3f\n",
			pt.Mach, pt.AltitudeFt, pt.SuppliedPowerRatio, row.ShaftPowerRatio, pt.Throttle,
			row.ThrustLbf, row.RamDragLbf, row.FuelFlowLbHr, row.NOxRateLbHr, row.ElectricPowerKW)
		done++
		if wr.Progress != nil {
			wr.Progress(done, total)
		}
	}
	return done, bw.Flush()
}

// WriteFile generates the deck into a file at path.
func (wr *Writer) WriteFile(path string, grid Grid, model Performance) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, werr := wr.Write(f, grid, model)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return n, werr
}
