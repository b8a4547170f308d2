package layout

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/svg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PreviewRenderer draws the computed sampling regions over the screen
// rectangle so a layout can be sanity-checked before loading it into the
// controller. SVG output is vector (canvas), PNG output is a plain raster
// with LED index labels.
type PreviewRenderer struct {
	Layout  *Layout
	Regions []Region
	Scale   float64 // output units per normalized screen unit
	Padding float64 // margin around the screen rectangle, in output units
}

// NewPreviewRenderer creates a renderer with default sizing.
func NewPreviewRenderer(l *Layout, regions []Region) *PreviewRenderer {
	return &PreviewRenderer{
		Layout:  l,
		Regions: regions,
		Scale:   800,
		Padding: 40,
	}
}

var (
	previewScreenColor = color.RGBA{60, 60, 60, 255}
	// Premultiplied; canvas expects RGBA, not NRGBA.
	previewRegionFill = color.RGBAModel.Convert(color.NRGBA{100, 149, 237, 90}).(color.RGBA)
	previewRegionLine = color.RGBA{0, 0, 139, 255}
	previewLabelColor = color.RGBA{20, 20, 20, 255}
)

// RenderToSVG writes the preview as an SVG to the provided writer.
func (r *PreviewRenderer) RenderToSVG(w io.Writer) error {
	width := r.Scale + 2*r.Padding
	height := r.Scale + 2*r.Padding

	renderer := svg.New(w, width, height, nil)

	// Canvas space has a bottom-left origin; sampling space has vmin at the
	// top of the screen, so the vertical axis flips here.
	toCanvas := func(h, v float64) (float64, float64) {
		return r.Padding + h*r.Scale, height - (r.Padding + v*r.Scale)
	}

	rect := func(hmin, hmax, vmin, vmax float64) *canvas.Path {
		p := &canvas.Path{}
		x0, y0 := toCanvas(hmin, vmin)
		x1, y1 := toCanvas(hmax, vmax)
		p.MoveTo(x0, y0)
		p.LineTo(x1, y0)
		p.LineTo(x1, y1)
		p.LineTo(x0, y1)
		p.Close()
		return p
	}

	bgStyle := canvas.DefaultStyle
	bgStyle.Fill = canvas.Paint{Color: canvas.White}
	renderer.RenderPath(canvas.Rectangle(width, height), bgStyle, canvas.Identity)

	screenStyle := canvas.DefaultStyle
	screenStyle.Fill = canvas.Paint{Color: canvas.Transparent}
	screenStyle.Stroke = canvas.Paint{Color: previewScreenColor}
	screenStyle.StrokeWidth = 2
	renderer.RenderPath(rect(0, 1, 0, 1), screenStyle, canvas.Identity)

	regionStyle := canvas.DefaultStyle
	regionStyle.Fill = canvas.Paint{Color: previewRegionFill}
	regionStyle.Stroke = canvas.Paint{Color: previewRegionLine}
	regionStyle.StrokeWidth = 1
	for _, reg := range r.Regions {
		renderer.RenderPath(rect(reg.HMin, reg.HMax, reg.VMin, reg.VMax), regionStyle, canvas.Identity)
	}

	return renderer.Close()
}

// RenderPNG rasterizes the preview with LED index labels drawn at each
// region's center.
func (r *PreviewRenderer) RenderPNG() *image.RGBA {
	size := int(r.Scale + 2*r.Padding)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// White background.
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	toPixel := func(h, v float64) (int, int) {
		return int(r.Padding + h*r.Scale), int(r.Padding + v*r.Scale)
	}

	// Screen outline.
	x0, y0 := toPixel(0, 0)
	x1, y1 := toPixel(1, 1)
	drawRectOutline(img, x0, y0, x1, y1, previewScreenColor)

	indices := r.Layout.SortedIndices()
	for i, reg := range r.Regions {
		rx0, ry0 := toPixel(reg.HMin, reg.VMin)
		rx1, ry1 := toPixel(reg.HMax, reg.VMax)
		drawRectOutline(img, rx0, ry0, rx1, ry1, previewRegionLine)

		if i < len(indices) {
			label := strconv.Itoa(indices[i])
			cx := (rx0 + rx1) / 2
			cy := (ry0 + ry1) / 2
			drawLabel(img, cx-len(label)*3, cy+4, label, previewLabelColor)
		}
	}

	return img
}

// SavePNG writes the raster preview to path.
func (r *PreviewRenderer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating preview file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, r.RenderPNG())
}

// SaveSVG writes the vector preview to path.
func (r *PreviewRenderer) SaveSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating preview file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return r.RenderToSVG(f)
}

// RenderPreviewFile renders regions to path, picking the format from the
// file extension (.svg or .png).
func RenderPreviewFile(path string, l *Layout, regions []Region) error {
	r := NewPreviewRenderer(l, regions)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return r.SaveSVG(path)
	case ".png":
		return r.SavePNG(path)
	default:
		return fmt.Errorf("unsupported preview format %q (use .svg or .png)", filepath.Ext(path))
	}
}

// drawRectOutline draws a one-pixel rectangle outline.
func drawRectOutline(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for x := x0; x <= x1; x++ {
		setPixel(img, x, y0, c)
		setPixel(img, x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		setPixel(img, x0, y, c)
		setPixel(img, x1, y, c)
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

// drawLabel draws text at the given pixel position using the basic 7x13 font.
func drawLabel(img *image.RGBA, x, y int, text string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
