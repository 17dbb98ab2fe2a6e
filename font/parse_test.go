package font

import "io"
import "io/fs"
import "errors"
import "strings"
import "testing"

type fakeFS struct {}
func (fakeFS) Open(string) (fs.File, error) {
	return nil, errors.New("fakeFS")
}

type fakeReadCloser struct{ errOnRead bool }
func (self fakeReadCloser) Read(p []byte) (n int, err error) {
	if self.errOnRead { return 0, errors.New("fakeRead") }
	return 0, io.EOF
}
func (self fakeReadCloser) Close() error {
	return errors.New("fakeClose")
}

// Testing the tricky error cases, fundamentally. The main code paths
// are already implicitly tested through the library tests.
func TestParse(t *testing.T) {
	var err error

	_, _, err = ParseFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	if err == nil { t.Fatal("expected error") }

	_, _, err = ParseFromPath("path/with/no/extension")
	if err == nil || !strings.Contains(err.Error(), "invalid font path") {
		t.Fatal("expected error with 'invalid font path' in its contents")
	}

	_, _, err = ParseFromPath("non/existing/path.ttf")
	if err == nil { t.Fatal("expected error") }

	_, _, err = ParseFromFS(fakeFS{}, "whatever.otf")
	if err == nil || err.Error() != "fakeFS" {
		t.Fatalf("expected fakeFS error, got %v", err)
	}

	_, _, err = ParseFromFS(fakeFS{}, "whatever.png")
	if err == nil || !strings.Contains(err.Error(), "invalid font path") {
		t.Fatal("expected error with 'invalid font path' in its contents")
	}

	_, _, err = parseFontFileAndClose(fakeReadCloser{ errOnRead: true })
	if err == nil || err.Error() != "fakeRead" {
		t.Fatalf("expected fakeRead error, got %v", err)
	}

	_, _, err = parseFontFileAndClose(fakeReadCloser{})
	if err == nil || err.Error() != "fakeClose" {
		t.Fatalf("expected fakeClose error, got %v", err)
	}
}

func TestValidFontExtension(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"font.ttf", true}, {"font.otf", true}, {"a.ttf", true},
		{".ttf", true}, {"font.TTF", false}, {"font.png", false},
		{"font.tt", false}, {"fontttf", false}, {"", false},
	}

	for i, test := range tests {
		if out := hasValidFontExtension(test.path); out != test.ok {
			t.Fatalf("test #%d: path '%s' expected %t, got %t", i, test.path, test.ok, out)
		}
	}
}

func TestProperties(t *testing.T) {
	if testFont == nil { t.SkipNow() }

	family, err := GetFamily(testFont)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if family == "" { t.Fatal("expected non-empty family") }

	name, err := GetName(testFont)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if !strings.Contains(name, family) && name != family {
		t.Logf("note: full name '%s' unrelated to family '%s'", name, family)
	}

	missing, err := GetMissingRunes(testFont, "hello world")
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if len(missing) > 0 {
		t.Fatalf("expected ascii coverage, missing %v", missing)
	}
}
