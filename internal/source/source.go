// Package source loads story text from files. Plain text and markdown
// are read directly; PDFs go through MuPDF text extraction, so a story
// exported from a word processor works as input too.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Source yields the raw story text of one input.
type Source interface {
	// Name is a human label for logs, usually the file stem.
	Name() string
	Text() (string, error)
	Close() error
}

// Open picks an implementation by extension.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return NewFitzSource(path)
	case ".txt", ".md", ".story":
		return NewFileSource(path), nil
	default:
		return nil, fmt.Errorf("unsupported story format: %s", path)
	}
}

// FitzSource extracts text from a PDF page by page.
type FitzSource struct {
	doc  *fitz.Document
	path string
}

func NewFitzSource(path string) (*FitzSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &FitzSource{doc: doc, path: path}, nil
}

func (f *FitzSource) Name() string {
	return stem(f.path)
}

func (f *FitzSource) Text() (string, error) {
	var b strings.Builder
	for i := 0; i < f.doc.NumPage(); i++ {
		page, err := f.doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("extract page %d of %s: %w", i, f.path, err)
		}
		if b.Len() > 0 && page != "" {
			b.WriteString("\n")
		}
		b.WriteString(page)
	}
	return strings.TrimSpace(b.String()), nil
}

func (f *FitzSource) Close() error {
	return f.doc.Close()
}

// FileSource reads a plain text story.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return stem(s.path)
}

func (s *FileSource) Text() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileSource) Close() error {
	return nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
