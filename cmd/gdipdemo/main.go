// Command gdipdemo draws every bridge primitive onto a software canvas and
// saves the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gdip"
	"github.com/gogpu/gdip/native/software"
)

func main() {
	var (
		width   = flag.Int("width", 400, "image width")
		height  = flag.Int("height", 300, "image height")
		output  = flag.String("output", "demo.png", "output file (.png or .bmp)")
		verbose = flag.Bool("v", false, "log bridge calls to stderr")
	)
	flag.Parse()

	if *verbose {
		gdip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*width, *height, *output); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// run renders the demo and saves it. Every handle is released before it
// returns, on success and on failure.
func run(width, height int, output string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d: width and height must be positive", width, height)
	}

	sw := software.New()
	b := gdip.New(sw)

	tok, err := b.Startup()
	if err != nil {
		return err
	}
	defer b.Shutdown(tok)

	ref, err := sw.NewCanvas(width, height)
	if err != nil {
		return err
	}
	defer func() { _ = sw.ReleaseCanvas(ref) }()

	s := b.BindSurface(ref)
	err = draw(b, &s, gdip.R(0, 0, uint32(width), uint32(height)))
	b.ReleaseSurface(&s)
	if err != nil {
		return err
	}
	return save(sw, ref, output)
}

func draw(b *gdip.Bridge, s *gdip.Surface, bounds gdip.Rect) error {
	bg, err := b.CreateBrush(gdip.White)
	if err != nil {
		return err
	}
	defer b.ReleaseBrush(&bg)
	if err := b.FillRectangle(s, &bg, bounds); err != nil {
		return err
	}

	red, err := b.CreateBrush(gdip.Red)
	if err != nil {
		return err
	}
	defer b.ReleaseBrush(&red)

	blue, err := b.CreateBrush(gdip.RGBA(40, 90, 220, 200))
	if err != nil {
		return err
	}
	defer b.ReleaseBrush(&blue)

	pen, err := b.CreatePen(gdip.Black, 3)
	if err != nil {
		return err
	}
	defer b.ReleasePen(&pen)

	if err := b.FillRectangle(s, &red, gdip.R(20, 20, 80, 60)); err != nil {
		return err
	}
	if err := b.FillEllipse(s, &blue, gdip.R(120, 20, 100, 60)); err != nil {
		return err
	}
	if err := b.FillArc(s, &red, gdip.R(240, 20, 80, 80), 30, 300); err != nil {
		return err
	}
	if err := b.DrawRectangles(s, &pen, []gdip.Rect{
		gdip.R(20, 120, 80, 60),
		gdip.R(30, 130, 60, 40),
	}); err != nil {
		return err
	}
	if err := b.DrawEllipse(s, &pen, gdip.R(120, 120, 100, 60)); err != nil {
		return err
	}
	if err := b.DrawArc(s, &pen, gdip.R(240, 120, 80, 80), 0, -270); err != nil {
		return err
	}
	return b.DrawLines(s, &pen, []gdip.Point{
		gdip.Pt(20, 220), gdip.Pt(380, 220),
		gdip.Pt(20, 280), gdip.Pt(380, 240),
	})
}

func save(sw *software.Backend, ref gdip.SurfaceRef, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return sw.WriteBMP(ref, f)
	}
	return sw.WritePNG(ref, f)
}
