package layout

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func previewFixture() (*Layout, []Region) {
	l := gridLayout(map[int]Coordinate{
		0: {Row: 0, Col: 0},
		1: {Row: 0, Col: 1},
	})
	// Inset from the screen edge so outline pixels stay distinguishable.
	regions := []Region{
		{HMax: 0.4, HMin: 0.1, VMax: 0.9, VMin: 0.1},
		{HMax: 0.9, HMin: 0.6, VMax: 0.9, VMin: 0.1},
	}
	return l, regions
}

func TestRenderToSVG(t *testing.T) {
	l, regions := previewFixture()
	r := NewPreviewRenderer(l, regions)

	var buf bytes.Buffer
	if err := r.RenderToSVG(&buf); err != nil {
		t.Fatalf("RenderToSVG() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Error("output is missing the svg element")
	}
	if !strings.Contains(out, "</svg>") {
		t.Error("output is not closed")
	}
}

func TestRenderPNG(t *testing.T) {
	l, regions := previewFixture()
	r := NewPreviewRenderer(l, regions)

	img := r.RenderPNG()

	wantSize := int(r.Scale + 2*r.Padding)
	bounds := img.Bounds()
	if bounds.Dx() != wantSize || bounds.Dy() != wantSize {
		t.Errorf("image is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), wantSize, wantSize)
	}

	// The screen outline passes through the padding offset corner.
	corner := img.RGBAAt(int(r.Padding), int(r.Padding))
	if corner != previewScreenColor {
		t.Errorf("screen corner pixel = %v, want %v", corner, previewScreenColor)
	}
}

func TestRenderPreviewFile(t *testing.T) {
	l, regions := previewFixture()
	dir := t.TempDir()

	svgPath := filepath.Join(dir, "preview.svg")
	if err := RenderPreviewFile(svgPath, l, regions); err != nil {
		t.Fatalf("RenderPreviewFile(svg) error = %v", err)
	}
	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("svg file is missing markup")
	}

	pngPath := filepath.Join(dir, "preview.png")
	if err := RenderPreviewFile(pngPath, l, regions); err != nil {
		t.Fatalf("RenderPreviewFile(png) error = %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("png file does not decode: %v", err)
	}
}

func TestRenderPreviewFileBadExtension(t *testing.T) {
	l, regions := previewFixture()
	err := RenderPreviewFile(filepath.Join(t.TempDir(), "preview.bmp"), l, regions)
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !strings.Contains(err.Error(), "unsupported preview format") {
		t.Errorf("unexpected error: %v", err)
	}
}
