package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrNoText            = errors.New("no text extracted")
)

// Extractor turns a document on disk into plain text with one layout row per line.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// ForPath picks an extractor from the file extension, falling back to the
// file signature when the extension is not recognised.
func ForPath(path string) (Extractor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDFExtractor{}, nil
	case ".txt", ".text":
		return TextExtractor{}, nil
	}

	isPDF, err := hasPDFSignature(path)
	if err != nil {
		return nil, err
	}
	if isPDF {
		return PDFExtractor{}, nil
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

var pdfMagic = []byte("%PDF-")

func hasPDFSignature(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(head, pdfMagic), nil
}

// TextExtractor reads text that was already extracted from a document.
type TextExtractor struct{}

func (TextExtractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoText)
	}
	return string(data), nil
}
