// ecap is a package for HUD-style caption overlays in Golang, designed
// to be used mainly with the Ebitengine game engine. Captions are driven
// by messages carrying text, colors, font, size and placement, plus a
// set of user-editable properties that can selectively overtake the
// message values per attribute group.
//
// Common usage depends only on a couple types and a few functions...
//
// First, you create a [font.Library] and parse the fonts:
//
//	fonts := font.NewLibrary()
//	_, _, err := fonts.ParseAllFromPath("path/to/fonts")
//	if err != nil { ... }
//
// Then, you create a [Display] and feed it messages, typically from
// another goroutine through its queue:
//
//	display := ecap.NewDisplay(fonts)
//	display.Queue().Push(ecap.Message{
//		Action: ecap.ActionAdd,
//		Text: "Hello world!",
//		Width: 200, Height: 80, TextSize: 16,
//		FgColor: ecap.ColorF{R: 1, G: 1, B: 1, A: 1},
//		BgColor: ecap.ColorF{A: 0.5},
//	})
//
// Finally, you tick and draw the display from your game loop:
//
//	func (game *Game) Update() error {
//		display.Update()
//		return nil
//	}
//	func (game *Game) Draw(screen *ebiten.Image) {
//		if overlay, ok := display.Overlay().(*ecap.TextureOverlay); ok {
//			overlay.Draw(screen)
//		}
//	}
//
// Caption text may embed inline color annotations like
// "[rgb(255 0 0)]{red words}", and a one pixel drop shadow is always
// drawn under the text; see [Display.Update]() and the Properties
// type for the configurable parts.
//
// The package can also be used headlessly (e.g. for server-side or
// test rendering) by compiling with '-tags gtxt', which swaps the
// Ebitengine texture overlay for a plain CPU image implementation.
package ecap
