package service

import (
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"

	"github.com/garimatiwari2004/jobeefie-backend/internal/apperrors"
)

// PDFParserService reconstructs a resume's text from the parser's item
// stream: per-item fragments concatenated with a separating space, in
// document order.
type PDFParserService interface {
	ExtractText(filePath string) (string, error)
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", apperrors.Upstreamf("failed to open PDF: %v", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		for _, item := range page.Content().Text {
			textBuilder.WriteString(item.S)
			textBuilder.WriteString(" ")
		}
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		log.Warn().Str("filePath", filePath).Msg("No text content found in PDF")
		return "", apperrors.Upstreamf("no text content found in PDF")
	}

	return text, nil
}
