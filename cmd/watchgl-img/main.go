// Command watchgl-img converts PNG and JPEG images into the compressed
// 1-bit container format that watchgl blits onto a panel.
//
// The converter reduces the source to one bit per pixel, by threshold or
// by Floyd-Steinberg dithering, optionally scaling it into a bounding
// box first:
//
//	watchgl-img -in logo.png -width 64 -dither
//
// Pass -preview to also render the converted plane the way a panel
// would show it and save that as a PNG.
package main

import (
	"flag"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/watchgl"
	"github.com/gogpu/watchgl/monoimg"
)

func main() {
	var (
		in        = flag.String("in", "", "input image (PNG or JPEG)")
		out       = flag.String("out", "", "output container (default: input with .wgli extension)")
		width     = flag.Int("width", 0, "fit width in pixels, 0 to keep")
		height    = flag.Int("height", 0, "fit height in pixels, 0 to keep")
		dither    = flag.Bool("dither", false, "Floyd-Steinberg dithering instead of thresholding")
		threshold = flag.Int("threshold", int(monoimg.DefaultThreshold), "gray cutoff 0-255 for the threshold path")
		preview   = flag.String("preview", "", "also render the result to this PNG")
		fg        = flag.String("fg", "#ffffff", "preview foreground color")
		bg        = flag.String("bg", "#000000", "preview background color")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *threshold < 0 || *threshold > 255 {
		log.Fatalf("Threshold %d out of range 0-255", *threshold)
	}
	if *out == "" {
		*out = strings.TrimSuffix(*in, filepath.Ext(*in)) + ".wgli"
	}

	src, err := loadImage(*in)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *in, err)
	}

	var opts []monoimg.Option
	if *width > 0 || *height > 0 {
		fw, fh := fitBox(src, *width, *height)
		opts = append(opts, monoimg.WithFit(fw, fh))
	}
	if *dither {
		opts = append(opts, monoimg.WithDither())
	} else {
		opts = append(opts, monoimg.WithThreshold(uint8(*threshold)))
	}

	m, err := monoimg.FromImage(src, opts...)
	if err != nil {
		log.Fatalf("Failed to convert: %v", err)
	}

	data, err := monoimg.Encode(m)
	if err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %s (%dx%d, %d bytes)\n", *out, m.Width(), m.Height(), len(data))

	if *preview != "" {
		if err := savePreview(m, *preview, watchgl.Hex(*fg), watchgl.Hex(*bg)); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		log.Printf("Preview saved to %s\n", *preview)
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	return img, err
}

// fitBox completes a bounding box where only one side was given, keeping
// the source aspect ratio.
func fitBox(src image.Image, w, h int) (int, int) {
	b := src.Bounds()
	if w == 0 {
		w = b.Dx() * h / b.Dy()
		if w < 1 {
			w = 1
		}
	}
	if h == 0 {
		h = b.Dy() * w / b.Dx()
		if h < 1 {
			h = 1
		}
	}
	return w, h
}

// savePreview blits the converted plane into a framebuffer and saves it
// as a PNG, showing the image as a panel would. The framebuffer rounds
// the dimensions up to whole tiles, so the preview may carry a margin
// of background on the right and bottom edges.
func savePreview(m *monoimg.Image, path string, fg, bg watchgl.Color) error {
	round := func(v int) int {
		return (v + watchgl.TileSize - 1) / watchgl.TileSize * watchgl.TileSize
	}
	spec, err := watchgl.NewDisplaySpec(round(m.Width()), round(m.Height()), watchgl.RGB565)
	if err != nil {
		return err
	}

	stream, err := m.Stream(watchgl.RGB565)
	if err != nil {
		return err
	}
	stream.SetColor(0, bg)
	stream.SetColor(1, fg)

	fb := watchgl.NewFramebuffer(spec)
	fb.Clear(bg)
	fb.BlitStream(stream, 0, 0)
	return fb.SavePNG(path)
}
