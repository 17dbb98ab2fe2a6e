package ecap

import "image/color"
import "regexp"
import "strconv"
import "unicode/utf8"

// Matches inline color annotations like "[rgb(255 0 0)]{warning}".
// Annotations can't be nested, only simple color changes are possible.
var colorAnnotationRegex = regexp.MustCompile(`\[rgb\((\d{1,3}) (\d{1,3}) (\d{1,3})\)\]\{(.*?)\}`)

// A contiguous run of runes inside a [Fragment] drawn with its own
// color instead of the fragment's base color. Start and End are rune
// indexes into the fragment text, End being exclusive.
type Span struct {
	Start int
	End   int
	Color color.RGBA
}

// A text run annotated with color styling. Fragments are what the
// compositor hands to [Renderer.DrawFragment](): the caption's main
// fragment keeps the inline color annotations of the original text as
// [Span] values, while the shadow fragment uses a single uniform color.
//
// Spans only ever change colors, never metrics, so a fragment always
// measures and wraps exactly like its plain Text.
type Fragment struct {
	Text  string // annotation-free text, '\n' as the line break
	Color color.RGBA // base color for runes not covered by any span
	Spans []Span // ordered, non-overlapping
}

// Returns the drawing color for the rune at the given index.
func (self *Fragment) ColorAt(runeIndex int) color.RGBA {
	for _, span := range self.Spans {
		if runeIndex < span.Start { break }
		if runeIndex < span.End { return span.Color }
	}
	return self.Color
}

// Parses the inline color annotations of the given text and returns
// the resulting [Fragment]: the text with all annotations stripped,
// the given base color, and one [Span] per annotation. Span colors
// inherit the base color's alpha.
//
// Color channels above 255 are clamped. Malformed annotations are
// left in the text verbatim.
func ParseFragment(text string, base color.RGBA) Fragment {
	fragment := Fragment{ Text: text, Color: base }
	for {
		submatches := colorAnnotationRegex.FindStringSubmatchIndex(fragment.Text)
		if submatches == nil { return fragment }

		r := atoiByte(fragment.Text[submatches[2] : submatches[3]])
		g := atoiByte(fragment.Text[submatches[4] : submatches[5]])
		b := atoiByte(fragment.Text[submatches[6] : submatches[7]])

		pre   := fragment.Text[0 : submatches[0]]
		inner := fragment.Text[submatches[8] : submatches[9]]
		post  := fragment.Text[submatches[1] : ]
		fragment.Text = pre + inner + post

		start := utf8.RuneCountInString(pre)
		fragment.Spans = append(fragment.Spans, Span{
			Start: start,
			End:   start + utf8.RuneCountInString(inner),
			Color: color.RGBA{ r, g, b, base.A },
		})
	}
}

// Returns the given text with all inline color annotations replaced
// by their inner text. This is what the compositor measures for
// bottom alignment and what caption shadows are drawn from.
func StripAnnotations(text string) string {
	return colorAnnotationRegex.ReplaceAllString(text, "$4")
}

// Precondition: digits only, at most three (the annotation regex
// guarantees both).
func atoiByte(digits string) uint8 {
	value, err := strconv.Atoi(digits)
	if err != nil { panic(err) }
	if value > 255 { value = 255 }
	return uint8(value)
}
