package ecap

import "unicode/utf8"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/ecap/fract"

// A single line resulting from wrapText. Start and end are byte
// offsets into the wrapped text, with end being exclusive. RuneStart
// is the rune index of the line's first character within the full
// text, required to resolve [Fragment] color spans while drawing.
// The width is advance-inclusive.
type wrappedLine struct {
	start int
	end int
	runeStart int
	width fract.Unit
}

// Splits the given text into lines fitting the given width limit.
// Line feeds always force a line break. Otherwise wrapping is greedy:
// lines break at the last space that fits, and words longer than a
// full line are cut right before the first glyph that doesn't fit.
// The first character of each line is always forced in, even if it
// exceeds the width limit on its own, so progress is guaranteed.
//
// Spaces at which lines break are dropped. A trailing line feed
// produces a trailing empty line, and empty text produces a single
// empty line.
//
// The returned slice is the renderer's scratch buffer; it's only
// valid until the next wrapText call.
func (self *Renderer) wrapText(text string, widthLimit fract.Unit) []wrappedLine {
	self.lines = self.lines[:0]

	lineStart, lineRuneStart := 0, 0
	var x fract.Unit
	var prevIndex sfnt.GlyphIndex
	hasPrev := false

	// last space of the current line where a break remains possible,
	// with the line width at that point (space excluded)
	safeByte, safeRune := -1, -1
	var safeX fract.Unit

	index, runeIndex := 0, 0
	for index < len(text) {
		codePoint, runeSize := utf8.DecodeRuneInString(text[index:])

		if codePoint == '\n' {
			self.lines = append(self.lines, wrappedLine{lineStart, index, lineRuneStart, x})
			index += runeSize
			runeIndex += 1
			lineStart, lineRuneStart = index, runeIndex
			x, hasPrev = 0, false
			safeByte, safeRune = -1, -1
			continue
		}

		glyphIndex := self.getGlyphIndex(codePoint)
		_, width := self.placeGlyph(x, prevIndex, glyphIndex, hasPrev)
		if width > widthLimit && index > lineStart {
			if codePoint == ' ' {
				// break at the current space and drop it
				self.lines = append(self.lines, wrappedLine{lineStart, index, lineRuneStart, x})
				index += runeSize
				runeIndex += 1
				lineStart, lineRuneStart = index, runeIndex
			} else if safeByte != -1 {
				// break at the last space that fit and reprocess
				// the cut word from the start of the next line
				self.lines = append(self.lines, wrappedLine{lineStart, safeByte, lineRuneStart, safeX})
				lineStart, lineRuneStart = safeByte + 1, safeRune + 1
				index, runeIndex = lineStart, lineRuneStart
			} else {
				// overlong word without spaces, cut before the
				// current character, which moves to the next line
				self.lines = append(self.lines, wrappedLine{lineStart, index, lineRuneStart, x})
				lineStart, lineRuneStart = index, runeIndex
			}
			x, hasPrev = 0, false
			safeByte, safeRune = -1, -1
			continue
		}

		if codePoint == ' ' { safeByte, safeRune, safeX = index, runeIndex, x }
		x = width
		prevIndex, hasPrev = glyphIndex, true
		index += runeSize
		runeIndex += 1
	}

	self.lines = append(self.lines, wrappedLine{lineStart, len(text), lineRuneStart, x})
	return self.lines
}
