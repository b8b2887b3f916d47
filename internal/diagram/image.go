package diagram

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportPlanDiagram exports the diaphragm plan to an image file. The format
// follows the file extension (png, svg, pdf).
func ExportPlanDiagram(data PlanData, filename string) error {
	p := plot.New()
	p.Title.Text = "Rigid Diaphragm Plan"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"

	for _, w := range data.Walls {
		var seg plotter.XYs
		if w.EastWest {
			seg = plotter.XYs{
				{X: w.X - w.Length/2, Y: w.Y},
				{X: w.X + w.Length/2, Y: w.Y},
			}
		} else {
			seg = plotter.XYs{
				{X: w.X, Y: w.Y - w.Length/2},
				{X: w.X, Y: w.Y + w.Length/2},
			}
		}
		line, err := plotter.NewLine(seg)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(3)
		line.LineStyle.Color = color.Black
		p.Add(line)

		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: w.X, Y: w.Y}},
			Labels: []string{w.Label},
		})
		if err != nil {
			return err
		}
		p.Add(label)
	}

	if !math.IsNaN(data.CoRX) && !math.IsNaN(data.CoRY) {
		cor, err := plotter.NewScatter(plotter.XYs{{X: data.CoRX, Y: data.CoRY}})
		if err != nil {
			return err
		}
		cor.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		cor.GlyphStyle.Radius = vg.Points(5)
		cor.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(cor)
		p.Legend.Add("CoR", cor)
	}

	if !math.IsNaN(data.CoMX) && !math.IsNaN(data.CoMY) {
		com, err := plotter.NewScatter(plotter.XYs{{X: data.CoMX, Y: data.CoMY}})
		if err != nil {
			return err
		}
		com.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
		com.GlyphStyle.Radius = vg.Points(5)
		com.GlyphStyle.Shape = draw.PyramidGlyph{}
		p.Add(com)
		p.Legend.Add("CoM", com)
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}
