package font

import "os"
import "log"

import "golang.org/x/image/font/sfnt"

// Tests that exercise real glyph data need a font. Drop any .ttf or
// .otf into ../test/fonts/ and the tests will pick the first one up;
// without it, those tests are skipped.

var testFontsDir string = "../test/fonts"
var testFontPath string
var testFont *sfnt.Font

func init() {
	entries, err := os.ReadDir(testFontsDir)
	if err != nil { return } // no fonts available, tests will skip
	for _, entry := range entries {
		if entry.IsDir() { continue }
		if !hasValidFontExtension(entry.Name()) { continue }
		path := testFontsDir + "/" + entry.Name()
		font, _, err := ParseFromPath(path)
		if err != nil {
			log.Fatalf("failed to parse test font %s: %s", path, err.Error())
		}
		testFont = font
		testFontPath = path
		return
	}
}
