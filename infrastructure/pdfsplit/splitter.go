// Package pdfsplit turns multi-page PDFs into standalone single-page
// documents suitable for per-page analysis jobs.
package pdfsplit

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/choace0427/brightspeed-ai-backend/contract"
)

var _ contract.IPageSplitter = (*Splitter)(nil)

type Splitter struct {
	conf *model.Configuration
}

func NewSplitter() *Splitter {
	return &Splitter{conf: model.NewDefaultConfiguration()}
}

func (s *Splitter) PageCount(document []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		return 0, fmt.Errorf("reading pdf: %w", err)
	}
	return reader.NumPage(), nil
}

// ExtractPage writes page pageIndex (0-based) out as a new one-page PDF.
func (s *Splitter) ExtractPage(document []byte, pageIndex int) ([]byte, error) {
	count, err := s.PageCount(document)
	if err != nil {
		return nil, err
	}
	if pageIndex < 0 || pageIndex >= count {
		return nil, fmt.Errorf("page %d out of range, document has %d pages", pageIndex+1, count)
	}

	var out bytes.Buffer
	selected := []string{strconv.Itoa(pageIndex + 1)}
	if err := api.Trim(bytes.NewReader(document), &out, selected, s.conf); err != nil {
		return nil, fmt.Errorf("extracting page %d: %w", pageIndex+1, err)
	}
	return out.Bytes(), nil
}
