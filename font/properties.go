package font

import "errors"

import "golang.org/x/image/font/sfnt"

// Returned by the property getters when the requested entry is
// missing from the font naming table.
var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested naming table property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
//
// Properties are only read at load time around here, so each call
// simply allocates its own temporary [sfnt.Buffer].
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	str, err := font.Name(&sfnt.Buffer{}, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font (e.g. "DejaVu Sans Mono").
// If the information is missing, [ErrNotFound] will be returned. Other
// errors are also possible (e.g., if the font naming table is invalid).
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. In most cases, the
// value will be one of: Regular, Italic, Bold, Bold Italic.
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the full name of the given font.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the runes in the given text that can't be represented by
// the font. If runes are repeated in the input text, the returned
// slice may contain them multiple times too.
//
// Captions come from live messages, so checking the fonts you load
// against the character set you expect can save you from blank boxes
// at runtime.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := &sfnt.Buffer{}
	missing := make([]rune, 0)
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
