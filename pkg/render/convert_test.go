package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/stackedcards/pkg/errors"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10" fill="#ff3b30"/></svg>`

func TestConvertWithoutTool(t *testing.T) {
	if Available() {
		t.Skip("rsvg-convert is installed")
	}
	for name, convert := range map[string]func() ([]byte, error){
		"pdf": func() ([]byte, error) { return ToPDF(context.Background(), []byte(testSVG)) },
		"png": func() ([]byte, error) { return ToPNG(context.Background(), []byte(testSVG), 2) },
	} {
		t.Run(name, func(t *testing.T) {
			_, err := convert()
			if !errors.Is(err, errors.ErrCodeFileNotFound) {
				t.Errorf("error = %v, want code %s", err, errors.ErrCodeFileNotFound)
			}
		})
	}
}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	png, err := ToPNG(context.Background(), []byte(testSVG), 1)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestToPDF(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := ToPDF(context.Background(), []byte(testSVG))
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}
