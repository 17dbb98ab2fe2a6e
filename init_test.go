//go:build gtxt

package ecap

import "log"
import "io/fs"
import "errors"

import "github.com/tinne26/ecap/font"

// Tests that rasterize glyphs require a font file under test/fonts.
// Any .ttf or .otf works. The directory may be left empty, in which
// case those tests are skipped and only the logic-oriented parts of
// the suite run.
var testLibrary *font.Library
var testFont *font.Font
var testFamily string

func init() {
	testLibrary = font.NewLibrary()
	added, _, err := testLibrary.ParseAllFromPath("test/fonts")
	if err != nil && !errors.Is(err, fs.ErrNotExist) { log.Fatal(err) }
	if added > 0 {
		testFamily = testLibrary.Families()[0]
		testFont = testLibrary.GetFont(testFamily)
	}
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
