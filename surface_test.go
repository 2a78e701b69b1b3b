package ggpaint

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// newFilled returns a w×h surface filled with c.
func newFilled(t *testing.T, w, h int, c color.Color) *Surface {
	t.Helper()
	s, err := NewSurface(w, h)
	if err != nil {
		t.Fatalf("NewSurface(%d, %d) error = %v", w, h, err)
	}
	s.Clear(c)
	return s
}

// pattern fills s with a position-dependent opaque color so that every
// pixel is distinguishable.
func pattern(s *Surface) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
}

func TestNewSurface_InvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := NewSurface(sz[0], sz[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewSurface(%d, %d) error = %v, want ErrInvalidSize", sz[0], sz[1], err)
		}
	}
}

func TestSurface_SnapshotRestore(t *testing.T) {
	s := newFilled(t, 8, 8, White)
	pattern(s)
	snap := s.Snapshot()

	s.Clear(Black)
	if err := s.Restore(snap); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !s.Snapshot().Equal(snap) {
		t.Error("Restore() did not reproduce the snapshot")
	}

	// The snapshot must not alias the surface.
	s.Clear(Black)
	if got := snap.Image().RGBAAt(3, 4); got != (color.RGBA{R: 3, G: 4, B: 7, A: 255}) {
		t.Errorf("snapshot pixel changed to %v after surface edit", got)
	}
}

func TestSurface_RestoreSizeMismatch(t *testing.T) {
	s := newFilled(t, 8, 8, White)
	other := newFilled(t, 4, 4, Black)
	before := append([]uint8(nil), s.Pix()...)

	if err := s.Restore(other.Snapshot()); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Restore() error = %v, want ErrSizeMismatch", err)
	}
	if !bytes.Equal(before, s.Pix()) {
		t.Error("failed Restore() modified the surface")
	}
}

func TestSurface_CopyAndErase(t *testing.T) {
	s := newFilled(t, 10, 10, White)
	pattern(s)

	img := s.Copy(image.Rect(2, 3, 6, 5))
	if img.Rect != image.Rect(0, 0, 4, 2) {
		t.Fatalf("Copy() rect = %v, want (0,0)-(4,2)", img.Rect)
	}
	if got, want := img.RGBAAt(1, 1), s.RGBAAt(3, 4); got != want {
		t.Errorf("Copy() pixel = %v, want %v", got, want)
	}

	if got := s.Copy(image.Rect(20, 20, 30, 30)); got != nil {
		t.Errorf("Copy() outside the surface = %v, want nil", got.Rect)
	}

	s.Erase(image.Rect(2, 3, 6, 5))
	if got := s.RGBAAt(3, 4); got != Transparent {
		t.Errorf("erased pixel = %v, want transparent", got)
	}
	if got := s.RGBAAt(6, 4); got.A != 255 {
		t.Errorf("pixel outside erase = %v, want opaque", got)
	}
}

func TestSurface_FloodFillNoOp(t *testing.T) {
	s := newFilled(t, 6, 6, White)
	before := s.Snapshot()

	if s.CanFill(2, 2, White) {
		t.Error("CanFill() with matching color = true")
	}
	if s.FloodFill(2, 2, White) {
		t.Error("FloodFill() with matching color = true")
	}
	if s.FloodFill(-1, 0, Black) || s.FloodFill(0, 6, Black) {
		t.Error("FloodFill() out of bounds = true")
	}
	if !s.Snapshot().Equal(before) {
		t.Error("no-op fills changed the surface")
	}
}

func TestSurface_FloodFillEnclosed(t *testing.T) {
	s := newFilled(t, 12, 12, White)
	for i := 2; i <= 9; i++ {
		s.img.SetRGBA(i, 2, Black)
		s.img.SetRGBA(i, 9, Black)
		s.img.SetRGBA(2, i, Black)
		s.img.SetRGBA(9, i, Black)
	}
	red := color.RGBA{R: 255, A: 255}

	if !s.FloodFill(5, 5, red) {
		t.Fatal("FloodFill() = false, want true")
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			inside := x > 2 && x < 9 && y > 2 && y < 9
			got := s.RGBAAt(x, y)
			if inside && got != red {
				t.Fatalf("inside pixel (%d,%d) = %v, want red", x, y, got)
			}
			if !inside && got == red {
				t.Fatalf("outside pixel (%d,%d) was filled", x, y)
			}
		}
	}
}

func TestSurface_EncodePNG(t *testing.T) {
	s := newFilled(t, 5, 4, White)
	pattern(s)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != s.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", img.Bounds(), s.Bounds())
	}
	r, g, _, _ := img.At(4, 3).RGBA()
	if r>>8 != 4 || g>>8 != 3 {
		t.Errorf("decoded pixel (4,3) = (%d, %d), want (4, 3)", r>>8, g>>8)
	}
}
