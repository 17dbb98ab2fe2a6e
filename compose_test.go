//go:build gtxt

package ecap

import "image"
import "image/color"
import "testing"

import "github.com/tinne26/ecap/font"
import "github.com/tinne26/ecap/fract"

// Reports whether every pixel in the given region matches the
// expected color. Max coordinates are exclusive.
func regionIs(rgba *image.RGBA, minX, minY, maxX, maxY int, expected color.RGBA) bool {
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			if rgba.RGBAAt(x, y) != expected { return false }
		}
	}
	return true
}

// Reports whether some pixel in the given region matches the
// expected color. Max coordinates are exclusive.
func regionHas(rgba *image.RGBA, minX, minY, maxX, maxY int, expected color.RGBA) bool {
	return regionMatch(rgba, minX, minY, maxX, maxY, func(pixel color.RGBA) bool {
		return pixel == expected
	})
}

// Reports whether some pixel in the given region satisfies the given
// predicate. Max coordinates are exclusive.
func regionMatch(rgba *image.RGBA, minX, minY, maxX, maxY int, fn func(color.RGBA) bool) bool {
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			if fn(rgba.RGBAAt(x, y)) { return true }
		}
	}
	return false
}

func TestComposeBackgroundOnly(t *testing.T) {
	display := NewDisplay(font.NewLibrary())
	message := testMessage()
	message.Text = ""
	display.ProcessMessage(message)
	display.Update()
	if display.dirty { t.Fatal("expected the update to clear the dirty flag") }

	overlay := display.Overlay().(*SoftOverlay)
	committed := overlay.Committed()
	if committed == nil { t.Fatal("expected a committed composition") }
	bounds := committed.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 100 {
		t.Fatalf("unexpected texture size %dx%d", bounds.Dx(), bounds.Dy())
	}
	if !regionIs(committed, 0, 0, 200, 100, color.RGBA{0, 0, 0, 127}) {
		t.Fatal("expected a uniform background fill")
	}

	// clean displays must not recompose
	display.Update()
	if overlay.Committed() != committed {
		t.Fatal("expected no recomposition without changes")
	}
}

func TestComposeWithoutUsableFont(t *testing.T) {
	display := NewDisplay(font.NewLibrary())
	display.ProcessMessage(testMessage()) // non-empty text, but no fonts installed
	display.Update()
	if display.dirty { t.Fatal("expected the update to clear the dirty flag") }

	committed := display.Overlay().(*SoftOverlay).Committed()
	if committed == nil { t.Fatal("expected a committed composition") }
	if !regionIs(committed, 0, 0, 200, 100, color.RGBA{0, 0, 0, 127}) {
		t.Fatal("expected a background-only composition without a usable font")
	}
}

func TestComposeTextureClamp(t *testing.T) {
	display := NewDisplay(font.NewLibrary())
	message := testMessage()
	message.Text = ""
	message.Width, message.Height = 0, 0
	display.ProcessMessage(message)
	display.Update()

	committed := display.Overlay().(*SoftOverlay).Committed()
	if committed == nil { t.Fatal("expected a committed composition") }
	bounds := committed.Bounds()
	if bounds.Dx() != 1 || bounds.Dy() != 1 {
		t.Fatalf("expected a 1x1 texture, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if committed.RGBAAt(0, 0) != (color.RGBA{0, 0, 0, 127}) {
		t.Fatalf("unexpected pixel %v", committed.RGBAAt(0, 0))
	}
}

func TestComposeScenario(t *testing.T) {
	if testFont == nil { t.SkipNow() }

	display := NewDisplay(testLibrary)
	display.ProcessMessage(testMessage())
	display.Update()

	overlay := display.Overlay().(*SoftOverlay)
	committed := overlay.Committed()
	if committed == nil { t.Fatal("expected a committed composition") }
	bounds := committed.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 100 {
		t.Fatalf("unexpected texture size %dx%d", bounds.Dx(), bounds.Dy())
	}

	background := color.RGBA{0, 0, 0, 127}
	blockHeight := display.renderer.MeasureWithWrap("hello\nworld", 200).IntHeight()
	if blockHeight <= 0 || blockHeight >= 98 { t.Fatalf("unusable block height %d", blockHeight) }

	// the text block anchors at the top by default; everything below
	// it (plus the shadow offset) must remain background
	if !regionHas(committed, 0, 0, 200, blockHeight+2, color.RGBA{255, 255, 255, 255}) {
		t.Fatal("expected white caption pixels in the text block")
	}
	if !regionIs(committed, 0, blockHeight+2, 200, 100, background) {
		t.Fatal("expected a clean background below the text block")
	}
}

func TestComposeAlignBottom(t *testing.T) {
	if testFont == nil { t.SkipNow() }

	display := NewDisplay(testLibrary)
	display.Properties().AlignBottom.Set(true)
	message := testMessage()
	message.Text = "base"
	display.ProcessMessage(message)
	display.Update()

	committed := display.Overlay().(*SoftOverlay).Committed()
	if committed == nil { t.Fatal("expected a committed composition") }

	background := color.RGBA{0, 0, 0, 127}
	blockHeight := display.renderer.MeasureWithWrap("base", 200).IntHeight()
	textTop := 100 - blockHeight
	if textTop <= 4 { t.Fatalf("unusable block height %d", blockHeight) }
	if !regionIs(committed, 0, 0, 200, textTop-2, background) {
		t.Fatal("expected a clean background above the bottom-aligned text")
	}
	if !regionHas(committed, 0, textTop-2, 200, 100, color.RGBA{255, 255, 255, 255}) {
		t.Fatal("expected caption pixels near the bottom edge")
	}
}

func TestComposeInvertShadow(t *testing.T) {
	if testFont == nil { t.SkipNow() }

	display := NewDisplay(testLibrary)
	message := testMessage()
	message.Text = "base"
	message.FgColor = ColorF{1, 0, 0, 1}
	display.ProcessMessage(message)
	display.Update()

	// with a red foreground, a black shadow and a black background,
	// every composed pixel has a zero green channel; green can only
	// ever come from an inverted, white shadow
	greenish := func(pixel color.RGBA) bool { return pixel.G >= 60 }
	overlay := display.Overlay().(*SoftOverlay)
	committed := overlay.Committed()
	if !regionHas(committed, 0, 0, 200, 100, color.RGBA{255, 0, 0, 255}) {
		t.Fatal("expected red caption pixels")
	}
	if regionMatch(committed, 0, 0, 200, 100, greenish) {
		t.Fatal("unexpected bright pixels with a regular shadow")
	}

	display.Properties().InvertShadow.Set(true)
	display.Update()
	committed = overlay.Committed() // the commit swapped buffers
	if !regionMatch(committed, 0, 0, 200, 100, greenish) {
		t.Fatal("expected white shadow pixels with an inverted shadow")
	}
}

func TestComposeFontSizeZero(t *testing.T) {
	if testFont == nil { t.SkipNow() }

	display := NewDisplay(testLibrary)
	message := testMessage()
	message.Text = "a"
	display.ProcessMessage(message)
	display.Update()
	if display.renderer.GetSize() != fract.FromInt(16) {
		t.Fatalf("unexpected renderer size %f", display.renderer.GetSize().ToFloat64())
	}

	// a zero font size must keep the previous font setup working
	message.Text = "b"
	message.TextSize = 0
	display.ProcessMessage(message)
	display.Update()
	if display.renderer.GetSize() != fract.FromInt(16) {
		t.Fatal("a zero font size must not alter the renderer size")
	}
	committed := display.Overlay().(*SoftOverlay).Committed()
	if regionIs(committed, 0, 0, 200, 100, color.RGBA{0, 0, 0, 127}) {
		t.Fatal("expected the caption to render with the retained font")
	}
}
