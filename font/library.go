package font

import "io/fs"
import "sort"
import "errors"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// An alias for [sfnt.Font] so other packages don't need to import
// sfnt themselves.
//
// [sfnt.Font]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Font
type Font = sfnt.Font

// An error returned by [Library.AddFont]() and the Library parsing
// functions when a font is not added due to its family already being
// present in the [Library].
var ErrAlreadyPresent = errors.New("font family already present in the library")

// A special error that can be returned from [Library.EachFont]()
// callbacks to break early. When used, EachFont will stop and
// still return a nil error.
var ErrBreakEach = errors.New("EachFont() early break")

// A collection of fonts accessible by family name.
//
// The goal of a library is to make it easy to parse fonts in bulk
// and to expose the family list in a stable order, which is what a
// font-selection property needs to populate its options.
//
// A library doesn't know about system fonts; parse the directories
// you care about explicitly instead.
type Library struct {
	fonts map[string]*Font
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		fonts: make(map[string]*Font),
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Finds out whether a font with the given family name exists
// in the library.
func (self *Library) HasFamily(family string) bool {
	_, found := self.fonts[family]
	return found
}

// Returns the font with the given family name, or nil if not found.
func (self *Library) GetFont(family string) *Font {
	font, found := self.fonts[family]
	if found { return font }
	return nil
}

// Returns the sorted list of family names currently in the library.
// The result is a fresh slice that the caller may keep.
func (self *Library) Families() []string {
	families := make([]string, 0, len(self.fonts))
	for family := range self.fonts {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}

// Adds the given font into the library and returns its family name
// and any possible error. If the given font is nil, the method will
// panic. If another font with the same family was already present,
// [ErrAlreadyPresent] will be returned.
//
// This method is rarely necessary unless the font parsing is done
// by an external package. In general, using the built-in parsing
// functions (e.g. [Library.ParseFromBytes]()) would be preferable.
func (self *Library) AddFont(font *Font) (string, error) {
	family, err := GetFamily(font)
	if err != nil { return "", err }
	return family, self.addNewFont(font, family)
}

// Returns false if no font with the given family name is present.
func (self *Library) RemoveFont(family string) bool {
	_, found := self.fonts[family]
	if !found { return false }
	delete(self.fonts, family)
	return true
}

// Parses a font and adds it into the library, returning the family
// name of the added font and any possible error. If error == nil,
// the family name will be non-empty.
//
// If a font with the same family has already been parsed or added,
// [ErrAlreadyPresent] will be returned.
func (self *Library) ParseFromPath(path string) (string, error) {
	font, family, err := ParseFromPath(path)
	if err != nil { return family, err }
	return family, self.addNewFont(font, family)
}

// The equivalent of [Library.ParseFromPath]() for raw font bytes.
// The bytes must not be modified while the font is in use.
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	font, family, err := ParseFromBytes(fontBytes)
	if err != nil { return family, err }
	return family, self.addNewFont(font, family)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	font, family, err := ParseFromFS(filesys, path)
	if err != nil { return family, err }
	return family, self.addNewFont(font, family)
}

// Walks the given directory non-recursively and adds all the .ttf and
// .otf fonts in it. Returns the number of fonts added, the number of
// fonts skipped (because their family was already present) and any
// error that might happen during the process.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}

			if !hasValidFontExtension(path) { return nil }
			_, err = self.ParseFromPath(path)
			if err == ErrAlreadyPresent {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// The equivalent of [Library.ParseAllFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	if dirName == "." {
		dirName = ""
	} else if len(dirName) == 0 || dirName[len(dirName) - 1] != '/' {
		dirName += "/"
	}

	for _, entry := range entries {
		if entry.IsDir() { continue }
		if !hasValidFontExtension(entry.Name()) { continue }
		path := dirName + entry.Name()
		_, err = self.ParseFromFS(filesys, path)
		if err == ErrAlreadyPresent {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}

// Calls the given function for each font in the library, passing the
// family name and content as arguments, in pseudo-random order.
//
// If the given function returns a non-nil error, the method stops and
// returns that error, with the only exception of [ErrBreakEach].
func (self *Library) EachFont(fontFunc func(string, *Font) error) error {
	for family, font := range self.fonts {
		err := fontFunc(family, font)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

func (self *Library) addNewFont(font *Font, family string) error {
	if self.HasFamily(family) { return ErrAlreadyPresent }
	self.fonts[family] = font
	return nil
}
