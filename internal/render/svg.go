package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/chemctl/internal/distill"
	"github.com/danmuck/chemctl/internal/vle"
)

// Diagram describes one McCabe-Thiele plot: the equilibrium curve, both
// operating lines over their valid spans, and the staircase.
type Diagram struct {
	Curve      vle.Curve
	Rectifying distill.Line
	Stripping  distill.Line
	UpperBreak distill.Point
	Xb, Xd     float64
	Staircase  []distill.Point
}

const (
	svgSize      = 560
	svgMargin    = 40
	curveSamples = 100
)

// WriteDiagram renders the plot as a standalone SVG document.
func WriteDiagram(w io.Writer, d Diagram) error {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		svgSize, svgSize, svgSize, svgSize)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", svgSize, svgSize)

	// Diagonal y = x.
	writePolyline(&b, "black", 1, []distill.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})

	// Equilibrium curve.
	curve := make([]distill.Point, 0, curveSamples+1)
	for i := 0; i <= curveSamples; i++ {
		x := float64(i) / curveSamples
		curve = append(curve, distill.Point{X: x, Y: d.Curve.Y(x)})
	}
	writePolyline(&b, "black", 1, curve)

	// Operating lines, stripping below the breakpoint, rectifying above.
	writePolyline(&b, "steelblue", 1, []distill.Point{
		{X: d.Xb, Y: d.Xb},
		{X: d.UpperBreak.X, Y: d.UpperBreak.Y},
	})
	writePolyline(&b, "steelblue", 1, []distill.Point{
		{X: d.UpperBreak.X, Y: d.UpperBreak.Y},
		{X: d.Xd, Y: d.Xd},
	})

	writePolyline(&b, "firebrick", 2, d.Staircase)

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writePolyline(b *strings.Builder, stroke string, width int, points []distill.Point) {
	if len(points) == 0 {
		return
	}
	coords := make([]string, 0, len(points))
	for _, p := range points {
		px, py := project(p)
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", px, py))
	}
	fmt.Fprintf(b,
		`<polyline fill="none" stroke="%s" stroke-width="%d" points="%s"/>`+"\n",
		stroke, width, strings.Join(coords, " "))
}

// project maps diagram coordinates in [0,1]x[0,1] onto the SVG viewport,
// flipping y so the origin sits bottom-left.
func project(p distill.Point) (float64, float64) {
	span := float64(svgSize - 2*svgMargin)
	return svgMargin + p.X*span, svgMargin + (1-p.Y)*span
}
