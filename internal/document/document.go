// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document loads the text of roster PDFs. Each page's text is
// followed by a newline and the result is NFC normalized with every Unicode
// space separator folded to a plain space, so accented letters and
// no-break spaces compare equal however the PDF stored them.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/escala-extractor/pkg/types"
)

// Loader returns the full linearized text of the document at path.
type Loader interface {
	Load(path string) (string, error)
}

// Kind classifies why a document could not be loaded.
type Kind int

const (
	KindInvalid Kind = iota
	KindNotFound
	KindUnreadable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindUnreadable:
		return "unreadable"
	default:
		return "invalid"
	}
}

// Sentinels for errors.Is against an *Error.
var (
	ErrNotFound   = errors.New("document not found")
	ErrUnreadable = errors.New("document unreadable")
	ErrInvalid    = errors.New("invalid document")
)

// Error reports a failure to open or read a document. Its message is the
// underlying cause's, so it can be shown to users unchanged.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrUnreadable:
		return e.Kind == KindUnreadable
	case ErrInvalid:
		return e.Kind == KindInvalid
	}
	return false
}

func openError(path string, err error) *Error {
	kind := KindInvalid
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission), errors.As(err, &pathErr):
		kind = KindUnreadable
	}
	return &Error{Kind: kind, Path: path, Err: err}
}

// PDFLoader reads PDFs with github.com/ledongthuc/pdf.
type PDFLoader struct {
	layout types.TextLayout
}

// NewPDFLoader returns a loader using the given layout. An empty layout
// means types.LayoutRows.
func NewPDFLoader(layout types.TextLayout) (*PDFLoader, error) {
	switch layout {
	case "":
		layout = types.LayoutRows
	case types.LayoutRows, types.LayoutPlain:
	default:
		return nil, fmt.Errorf("unknown layout %q (want %s or %s)", layout, types.LayoutRows, types.LayoutPlain)
	}
	return &PDFLoader{layout: layout}, nil
}

// Load opens the PDF at path and returns the text of every page. The file is
// closed before Load returns on every path.
func (l *PDFLoader) Load(path string) (text string, err error) {
	// The reader panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &Error{Kind: KindInvalid, Path: path, Err: fmt.Errorf("reading %s: %v", path, r)}
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", openError(path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", openError(path, err)
	}
	if st.IsDir() {
		return "", &Error{Kind: KindUnreadable, Path: path, Err: fmt.Errorf("%s is a directory", path)}
	}

	r, err := pdf.NewReader(f, st.Size())
	if err != nil {
		return "", openError(path, err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if !p.V.IsNull() {
			for _, line := range l.lines(p.Content().Text) {
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}

	return foldSpaces(norm.NFC.String(b.String())), nil
}

func (l *PDFLoader) lines(glyphs []pdf.Text) []string {
	if l.layout == types.LayoutPlain {
		return streamLines(glyphs)
	}
	return rowLines(glyphs)
}

// foldSpaces replaces every Unicode space separator, such as U+00A0, with
// an ASCII space.
func foldSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r != ' ' && unicode.Is(unicode.Zs, r) {
			return ' '
		}
		return r
	}, s)
}
