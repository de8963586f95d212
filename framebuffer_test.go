package watchgl

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Verify at compile time that Framebuffer is a Display and an image.
var (
	_ Display     = (*Framebuffer)(nil)
	_ image.Image = (*Framebuffer)(nil)
)

func TestFramebufferStartsBlack(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := fb.Pixel(x, y); got != Black {
				t.Fatalf("Pixel(%d, %d) = %#04x, want black", x, y, uint16(got))
			}
		}
	}
	if got := len(fb.Data()); got != 128 {
		t.Errorf("len(Data()) = %d, want 128", got)
	}
}

func TestFramebufferFillRect(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 8, 8))
	fb.FillRect(Red, 2, 3, 3, 2)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := Black
			if x >= 2 && x < 5 && y >= 3 && y < 5 {
				want = Red
			}
			if got := fb.Pixel(x, y); got != want {
				t.Fatalf("Pixel(%d, %d) = %#04x, want %#04x", x, y, uint16(got), uint16(want))
			}
		}
	}
}

func TestFramebufferFillRectClips(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 8, 8))
	fb.FillRect(Red, -2, -2, 4, 4)
	fb.FillRect(Blue, 6, 6, 10, 10)
	fb.FillRect(Green, 20, 20, 4, 4)

	if got := fb.Pixel(1, 1); got != Red {
		t.Errorf("Pixel(1, 1) = %#04x, want red", uint16(got))
	}
	if got := fb.Pixel(2, 2); got != Black {
		t.Errorf("Pixel(2, 2) = %#04x, want black", uint16(got))
	}
	if got := fb.Pixel(7, 7); got != Blue {
		t.Errorf("Pixel(7, 7) = %#04x, want blue", uint16(got))
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 8, 8))
	fb.Clear(Cyan)
	if got := fb.Pixel(0, 0); got != Cyan {
		t.Errorf("Pixel(0, 0) = %#04x, want cyan", uint16(got))
	}
	if got := fb.Pixel(7, 7); got != Cyan {
		t.Errorf("Pixel(7, 7) = %#04x, want cyan", uint16(got))
	}
}

func TestFramebufferFillRectSeq(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 32, 32))
	fb.FillRectSeq(Red, 10, 10, []RectDelta{
		{W: 2, H: 2},
		{DX: 3, W: 2, H: 2},
		{DX: -1, DY: 4, W: 1, H: 1},
	})

	for _, p := range [][2]int{{10, 10}, {11, 11}, {13, 10}, {14, 11}, {12, 14}} {
		if got := fb.Pixel(p[0], p[1]); got != Red {
			t.Errorf("Pixel(%d, %d) = %#04x, want red", p[0], p[1], uint16(got))
		}
	}
	for _, p := range [][2]int{{12, 10}, {15, 10}, {13, 14}, {12, 15}} {
		if got := fb.Pixel(p[0], p[1]); got != Black {
			t.Errorf("Pixel(%d, %d) = %#04x, want black", p[0], p[1], uint16(got))
		}
	}
}

func TestFramebufferBlitStream(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 8, 8))
	src := newIndexStream(4, 3)
	fb.BlitStream(src, 2, 1)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := Color(y*4 + x)
			if got := fb.Pixel(2+x, 1+y); got != want {
				t.Fatalf("Pixel(%d, %d) = %#04x, want %#04x", 2+x, 1+y, uint16(got), uint16(want))
			}
		}
	}
	if got := src.Remaining(); got != 0 {
		t.Errorf("source Remaining() = %d, want 0 (fully consumed)", got)
	}
}

func TestFramebufferBlitStreamClipsLeft(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 8, 8))
	src := newIndexStream(4, 2)
	fb.BlitStream(src, -2, 0)

	if got := fb.Pixel(0, 0); got != Color(2) {
		t.Errorf("Pixel(0, 0) = %#04x, want %#04x", uint16(got), 2)
	}
	if got := fb.Pixel(1, 0); got != Color(3) {
		t.Errorf("Pixel(1, 0) = %#04x, want %#04x", uint16(got), 3)
	}
	if got := fb.Pixel(1, 1); got != Color(7) {
		t.Errorf("Pixel(1, 1) = %#04x, want %#04x", uint16(got), 7)
	}
	if got := src.Remaining(); got != 0 {
		t.Errorf("source Remaining() = %d, want 0", got)
	}
}

func TestFramebufferBlitStreamClipsRight(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 8, 8))
	src := newIndexStream(4, 2)
	fb.BlitStream(src, 6, 0)

	if got := fb.Pixel(6, 0); got != Color(0) {
		t.Errorf("Pixel(6, 0) = %#04x, want 0", uint16(got))
	}
	if got := fb.Pixel(7, 0); got != Color(1) {
		t.Errorf("Pixel(7, 0) = %#04x, want 1", uint16(got))
	}
	if got := fb.Pixel(0, 1); got != Black {
		t.Errorf("Pixel(0, 1) = %#04x, want black (no row wrap)", uint16(got))
	}
	if got := fb.Pixel(6, 1); got != Color(4) {
		t.Errorf("Pixel(6, 1) = %#04x, want 4", uint16(got))
	}
}

func TestFramebufferBlitStreamClipsVertically(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 8, 8))
	src := newIndexStream(4, 3)
	fb.BlitStream(src, 0, -1)

	if got := fb.Pixel(0, 0); got != Color(4) {
		t.Errorf("Pixel(0, 0) = %#04x, want 4 (second source row)", uint16(got))
	}
	if got := fb.Pixel(0, 1); got != Color(8) {
		t.Errorf("Pixel(0, 1) = %#04x, want 8", uint16(got))
	}
	if got := src.Remaining(); got != 0 {
		t.Errorf("source Remaining() = %d, want 0 (clipped rows still consumed)", got)
	}
}

// TestFramebufferBlitStreamShortSource hands the sink a stream with
// less supply than its view claims and checks it stops cleanly.
func TestFramebufferBlitStreamShortSource(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 8, 8))
	src := newIndexStream(4, 3)
	src.Skip(5)
	fb.BlitStream(src, 0, 0)

	if got := fb.Pixel(0, 0); got != Color(5) {
		t.Errorf("Pixel(0, 0) = %#04x, want 5", uint16(got))
	}
	if got := fb.Pixel(2, 1); got != Color(11) {
		t.Errorf("Pixel(2, 1) = %#04x, want 11", uint16(got))
	}
	if got := fb.Pixel(3, 1); got != Black {
		t.Errorf("Pixel(3, 1) = %#04x, want black (beyond supply)", uint16(got))
	}
	if got := fb.Pixel(0, 2); got != Black {
		t.Errorf("Pixel(0, 2) = %#04x, want black (beyond supply)", uint16(got))
	}
}

func fillRows(fb *Framebuffer) {
	for y := 0; y < fb.Spec().Height; y++ {
		fb.FillRect(Color(y+1), 0, y, fb.Spec().Width, 1)
	}
}

func TestFramebufferVScroll(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 4, 8))
	fillRows(fb)
	fb.VScroll(2)

	if got := fb.Pixel(0, 0); got != Color(3) {
		t.Errorf("row 0 = %#04x, want old row 2", uint16(got))
	}
	if got := fb.Pixel(0, 5); got != Color(8) {
		t.Errorf("row 5 = %#04x, want old row 7", uint16(got))
	}
	if got := fb.Pixel(0, 6); got != Color(1) {
		t.Errorf("row 6 = %#04x, want wrapped old row 0", uint16(got))
	}
	if got := fb.Pixel(0, 7); got != Color(2) {
		t.Errorf("row 7 = %#04x, want wrapped old row 1", uint16(got))
	}
}

func TestFramebufferVScrollNegative(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 4, 8))
	fillRows(fb)
	fb.VScroll(-2)

	if got := fb.Pixel(0, 0); got != Color(7) {
		t.Errorf("row 0 = %#04x, want wrapped old row 6", uint16(got))
	}
	if got := fb.Pixel(0, 2); got != Color(1) {
		t.Errorf("row 2 = %#04x, want old row 0", uint16(got))
	}
}

func TestFramebufferVScrollWholeHeights(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 4, 8))
	fillRows(fb)
	fb.VScroll(8)
	fb.VScroll(0)
	fb.VScroll(-16)

	for y := 0; y < 8; y++ {
		if got := fb.Pixel(0, y); got != Color(y+1) {
			t.Fatalf("row %d = %#04x, want unchanged %#04x", y, uint16(got), uint16(y+1))
		}
	}
}

func TestFramebufferPixelOutside(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 8, 8))
	fb.Clear(Red)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if got := fb.Pixel(p[0], p[1]); got != Black {
			t.Errorf("Pixel(%d, %d) = %#04x, want black", p[0], p[1], uint16(got))
		}
	}
}

func TestFramebufferWireFormat(t *testing.T) {
	plain := NewFramebuffer(mustSpec(t, 2, 1))
	plain.FillRect(Red, 0, 0, 1, 1)
	if d := plain.Data(); d[0] != 0x00 || d[1] != 0xF8 {
		t.Errorf("RGB565 wire bytes = [%#02x %#02x], want [0x00 0xf8]", d[0], d[1])
	}

	spec, err := NewDisplaySpec(2, 1, RGB565Swapped)
	if err != nil {
		t.Fatalf("NewDisplaySpec failed: %v", err)
	}
	swapped := NewFramebuffer(spec)
	swapped.FillRect(Red, 0, 0, 1, 1)
	if d := swapped.Data(); d[0] != 0xF8 || d[1] != 0x00 {
		t.Errorf("RGB565Swapped wire bytes = [%#02x %#02x], want [0xf8 0x00]", d[0], d[1])
	}
	if got := swapped.Pixel(0, 0); got != Red {
		t.Errorf("swapped Pixel(0, 0) = %#04x, want red (decode round-trip)", uint16(got))
	}
}

func TestFramebufferImage(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 4, 4))
	fb.FillRect(Red, 1, 1, 1, 1)

	if got := fb.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Errorf("Bounds() = %v, want (0,0)-(4,4)", got)
	}
	r, g, b, a := fb.At(1, 1).RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("At(1, 1) = (%d, %d, %d, %d), want opaque red", r, g, b, a)
	}

	img := fb.ToImage()
	if img.Bounds() != fb.Bounds() {
		t.Errorf("ToImage bounds = %v, want %v", img.Bounds(), fb.Bounds())
	}
	i := img.PixOffset(1, 1)
	if img.Pix[i] != 255 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 || img.Pix[i+3] != 255 {
		t.Error("ToImage pixel (1, 1) not opaque red")
	}
}

func TestFramebufferSavePNG(t *testing.T) {
	fb := NewFramebuffer(mustSpec(t, 4, 4))
	fb.Clear(Blue)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved file: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("saved image %dx%d, want 4x4", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
