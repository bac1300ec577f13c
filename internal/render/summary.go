// Package render turns computed designs into presentation output. It
// consumes stage sequences and scalars only; the computational packages
// carry no dependency on it.
package render

import (
	"fmt"
	"io"
	"strings"
)

// DistillationSummary holds the scalars shown in the design table.
type DistillationSummary struct {
	Temperature   float64
	Xb, Xf, Xd    float64
	FeedQuality   float64
	Alpha         float64
	MinimumReflux float64
	RefluxRatio   float64
	Stages        int
	FeedStage     int
}

// AbsorptionSummary holds the scalars shown in the column sizing table.
type AbsorptionSummary struct {
	Temperature    float64
	Pressure       float64
	HenryConstant  float64
	GasInlet       float64
	GasOutlet      float64
	GasInflow      float64
	MinSolventFlow float64
}

const summaryRule = "---------------------------------------------------"

// WriteDistillationSummary renders the fixed-format design table.
func WriteDistillationSummary(w io.Writer, s DistillationSummary) error {
	var b strings.Builder
	b.WriteString(summaryRule + "\n")
	b.WriteString("Distillation design summary (McCabe-Thiele)\n")
	b.WriteString(summaryRule + "\n")
	fmt.Fprintf(&b, "%-32s %10.2f K\n", "Operating temperature", s.Temperature)
	fmt.Fprintf(&b, "%-32s %10.4f\n", "Bottoms composition xb", s.Xb)
	fmt.Fprintf(&b, "%-32s %10.4f\n", "Feed composition xf", s.Xf)
	fmt.Fprintf(&b, "%-32s %10.4f\n", "Distillate composition xd", s.Xd)
	fmt.Fprintf(&b, "%-32s %10.4f\n", "Feed quality q", s.FeedQuality)
	fmt.Fprintf(&b, "%-32s %10.4f\n", "Relative volatility", s.Alpha)
	fmt.Fprintf(&b, "%-32s %10.4f\n", "Minimum reflux ratio", s.MinimumReflux)
	fmt.Fprintf(&b, "%-32s %10.4f\n", "Applied reflux ratio", s.RefluxRatio)
	fmt.Fprintf(&b, "%-32s %10d\n", "Theoretical stages", s.Stages)
	fmt.Fprintf(&b, "%-32s %10d\n", "Feed stage", s.FeedStage)
	b.WriteString(summaryRule + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteAbsorptionSummary renders the fixed-format column sizing table.
func WriteAbsorptionSummary(w io.Writer, s AbsorptionSummary) error {
	var b strings.Builder
	b.WriteString(summaryRule + "\n")
	b.WriteString("Absorption column sizing summary (Henry's law)\n")
	b.WriteString(summaryRule + "\n")
	fmt.Fprintf(&b, "%-32s %10.2f K\n", "Operating temperature", s.Temperature)
	fmt.Fprintf(&b, "%-32s %10.2f bar\n", "Operating pressure", s.Pressure)
	fmt.Fprintf(&b, "%-32s %10.4f mol/(kg*bar)\n", "Henry constant", s.HenryConstant)
	fmt.Fprintf(&b, "%-32s %10.2f ppm\n", "Gas inlet concentration", s.GasInlet)
	fmt.Fprintf(&b, "%-32s %10.2f ppm\n", "Gas outlet threshold", s.GasOutlet)
	fmt.Fprintf(&b, "%-32s %10.2f m3/h\n", "Gas inflow", s.GasInflow)
	fmt.Fprintf(&b, "%-32s %10.4f m3/h\n", "Minimum solvent flow", s.MinSolventFlow)
	b.WriteString(summaryRule + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}
