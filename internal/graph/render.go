package graph

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Kamar-Folarin/github-commit-graph/internal/errors"
)

const (
	// DefaultLowColor and DefaultHighColor are GitHub's lightest and darkest contribution greens.
	DefaultLowColor  = "#9be9a8"
	DefaultHighColor = "#216e39"
	// DefaultCellSize is the side of one grid cell in pixels.
	DefaultCellSize = 24
)

// Renderer maps counts onto a linear blend between two fixed colors.
type Renderer struct {
	low, high       colorful.Color
	lowHex, highHex string
	cellSize        int
}

// RendererOption allows configuring a Renderer
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	low, high string
	cellSize  int
}

// WithColors sets the gradient endpoints as hex strings.
func WithColors(low, high string) RendererOption {
	return func(o *rendererOptions) {
		o.low = low
		o.high = high
	}
}

// WithCellSize sets the side of one cell in pixels.
func WithCellSize(px int) RendererOption {
	return func(o *rendererOptions) {
		o.cellSize = px
	}
}

// NewRenderer creates a Renderer, failing on unparsable colors or a non-positive cell size.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	o := &rendererOptions{
		low:      DefaultLowColor,
		high:     DefaultHighColor,
		cellSize: DefaultCellSize,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.cellSize <= 0 {
		return nil, errors.NewConfigError("GRAPH_CELL_SIZE", fmt.Sprintf("must be positive, got %d", o.cellSize))
	}
	low, err := colorful.Hex(o.low)
	if err != nil {
		return nil, errors.NewConfigError("low color", err.Error())
	}
	high, err := colorful.Hex(o.high)
	if err != nil {
		return nil, errors.NewConfigError("high color", err.Error())
	}

	return &Renderer{
		low:      low,
		high:     high,
		lowHex:   low.Hex(),
		highHex:  high.Hex(),
		cellSize: o.cellSize,
	}, nil
}

// ColorFor blends the endpoints at count/peak. A non-positive peak yields the low color.
func (r *Renderer) ColorFor(count, peak int) color.RGBA {
	t := 0.0
	if peak > 0 {
		t = float64(count) / float64(peak)
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	red, green, blue := r.low.BlendRgb(r.high, t).Clamped().RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 0xff}
}

// RenderPNG draws one square per cell, without axes, labels or a color bar.
func (r *Renderer) RenderPNG(g *Grid) ([]byte, error) {
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return nil, errors.NewNoDataError("nothing to render")
	}
	peak, err := g.Max()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Cols()*r.cellSize, g.Rows()*r.cellSize))
	for i, row := range g.Counts {
		for j, count := range row {
			cell := image.Rect(j*r.cellSize, i*r.cellSize, (j+1)*r.cellSize, (i+1)*r.cellSize)
			draw.Draw(img, cell, &image.Uniform{C: r.ColorFor(count, peak)}, image.Point{}, draw.Src)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.NewInternalError("failed to encode PNG", err)
	}
	return buf.Bytes(), nil
}

// RenderHTML writes an interactive heatmap page for the same grid.
func (r *Renderer) RenderHTML(g *Grid, w io.Writer) error {
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return errors.NewNoDataError("nothing to render")
	}
	peak, err := g.Max()
	if err != nil {
		return err
	}

	data := make([]opts.HeatMapData, 0, g.Rows()*g.Cols())
	for i, row := range g.Counts {
		for j, count := range row {
			data = append(data, opts.HeatMapData{
				Name:  fmt.Sprintf("%s %s", g.Users[i], g.Dates[j]),
				Value: [3]interface{}{j, i, count},
			})
		}
	}

	labels := g.DateLabels()
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Commit graph"}),
		charts.WithTitleOpts(opts.Title{Title: "Commits per day"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      labels,
			SplitArea: &opts.SplitArea{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      g.Users,
			SplitArea: &opts.SplitArea{Show: true},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        0,
			Max:        float32(peak),
			InRange: &opts.VisualMapInRange{
				Color: []string{r.lowHex, r.highHex},
			},
		}),
	)
	hm.SetXAxis(labels).AddSeries("commits", data)

	if err := hm.Render(w); err != nil {
		return errors.NewInternalError("failed to render HTML heatmap", err)
	}
	return nil
}
