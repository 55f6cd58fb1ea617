// Command roughdemo renders a sample sketchy scene with the rough library
// and writes it as SVG markup or a rasterized PNG. It doubles as a reference
// consumer of the OpSet contract.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/vector"

	"github.com/cxz/rough"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		output    string
		format    string
		seed      int64
		roughness float64
		width     int
		height    int
	)
	cmd := &cobra.Command{
		Use:   "roughdemo",
		Short: "Render a demo scene of sketchy shapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := rough.NewOptions(
				rough.WithSeed(seed),
				rough.WithRoughness(roughness),
			)
			scene := demoScene(o)
			switch format {
			case "svg":
				return os.WriteFile(output, []byte(sceneSVG(scene, width, height)), 0o644)
			case "png":
				return writePNG(output, scene, width, height)
			default:
				return fmt.Errorf("unknown format %q (want svg or png)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "demo.svg", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg or png")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed (0 for time-based)")
	cmd.Flags().Float64Var(&roughness, "roughness", 1, "jitter magnitude")
	cmd.Flags().IntVar(&width, "width", 640, "canvas width")
	cmd.Flags().IntVar(&height, "height", 480, "canvas height")
	return cmd
}

func demoScene(o *rough.Options) []rough.OpSet {
	return []rough.OpSet{
		rough.Rectangle(40, 40, 180, 120, o),
		rough.Ellipse(420, 100, 160, 100, o),
		rough.Line(40, 220, 600, 220, o),
		rough.Curve([]rough.Point{
			{X: 40, Y: 320}, {X: 150, Y: 260}, {X: 280, Y: 360},
			{X: 400, Y: 280}, {X: 600, Y: 340},
		}, o),
		rough.Arc(180, 420, 180, 120, 0, math.Pi*0.75, true, true, o),
		rough.SketchPath("M380 380 q 60 -80 120 0 t 120 0", o),
	}
}

// sceneSVG serializes OpSets into a standalone SVG document, converting
// each set into path data on the consumer side of the contract.
func sceneSVG(scene []rough.OpSet, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n", width, height)
	for _, set := range scene {
		fill := "none"
		if set.Kind == rough.KindFillPath {
			fill = "#000"
		}
		fmt.Fprintf(&sb, "  <path d=\"%s\" stroke=\"#000\" fill=\"%s\"/>\n", opsToPathData(set), fill)
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func opsToPathData(set rough.OpSet) string {
	var sb strings.Builder
	for _, op := range set.Ops {
		switch op.Op {
		case rough.OpMove:
			fmt.Fprintf(&sb, "M%.2f %.2f ", op.Data[0], op.Data[1])
		case rough.OpLineTo:
			fmt.Fprintf(&sb, "L%.2f %.2f ", op.Data[0], op.Data[1])
		case rough.OpCurveTo:
			// Skip the anchor pair; each following triple is one C command.
			for i := 2; i+5 < len(op.Data); i += 6 {
				fmt.Fprintf(&sb, "C%.2f %.2f, %.2f %.2f, %.2f %.2f ",
					op.Data[i], op.Data[i+1], op.Data[i+2], op.Data[i+3], op.Data[i+4], op.Data[i+5])
			}
		case rough.OpQCurveTo:
			fmt.Fprintf(&sb, "Q%.2f %.2f, %.2f %.2f ", op.Data[0], op.Data[1], op.Data[2], op.Data[3])
		}
	}
	return strings.TrimSpace(sb.String())
}

const (
	flattenSteps = 16
	strokeWidth  = 1.5
)

// writePNG rasterizes the scene with x/image/vector: every OpSet is
// flattened to polylines and each segment stroked as a thin quad.
func writePNG(path string, scene []rough.OpSet, width, height int) error {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Over
	for _, set := range scene {
		for _, line := range flattenOps(set) {
			for i := 0; i+1 < len(line); i++ {
				strokeSegment(r, line[i], line[i+1], strokeWidth)
			}
		}
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}

// flattenOps converts an OpSet into polylines, sampling curve ops.
func flattenOps(set rough.OpSet) [][]rough.Point {
	var lines [][]rough.Point
	var cur []rough.Point
	var pen rough.Point
	flush := func() {
		if len(cur) > 1 {
			lines = append(lines, cur)
		}
		cur = nil
	}
	for _, op := range set.Ops {
		switch op.Op {
		case rough.OpMove:
			flush()
			pen = rough.Point{X: op.Data[0], Y: op.Data[1]}
			cur = append(cur, pen)
		case rough.OpLineTo:
			pen = rough.Point{X: op.Data[0], Y: op.Data[1]}
			cur = append(cur, pen)
		case rough.OpCurveTo:
			for i := 2; i+5 < len(op.Data); i += 6 {
				c := rough.CubicBez{
					P0: pen,
					P1: rough.Point{X: op.Data[i], Y: op.Data[i+1]},
					P2: rough.Point{X: op.Data[i+2], Y: op.Data[i+3]},
					P3: rough.Point{X: op.Data[i+4], Y: op.Data[i+5]},
				}
				cur = c.Flatten(flattenSteps, cur)
				pen = c.P3
			}
		case rough.OpQCurveTo:
			q := rough.QuadBez{
				P0: pen,
				P1: rough.Point{X: op.Data[0], Y: op.Data[1]},
				P2: rough.Point{X: op.Data[2], Y: op.Data[3]},
			}
			cur = q.Raise().Flatten(flattenSteps, cur)
			pen = q.P2
		}
	}
	flush()
	return lines
}

// strokeSegment fills one line segment as an axis-independent quad of the
// given width.
func strokeSegment(r *vector.Rasterizer, a, b rough.Point, width float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	// Unit normal scaled to half width.
	n := rough.Point{X: -d.Y / l, Y: d.X / l}.Mul(width / 2)
	r.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	r.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
	r.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
	r.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	r.ClosePath()
}
