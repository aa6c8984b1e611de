package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"
	"log"
	"regexp"
	"strings"
)

const (
	extractionSystemPrompt = "Extract data and return only valid JSON, no other text."
	maxExtractedTextRunes  = 1500
)

const extractionPromptTemplate = `
Parse this invoice/PO text and return ONLY valid JSON:
{
    "vendor": "company name",
    "invoice_number": "number if found",
    "date": "date if found",
    "products": [
        {
            "name": "product name",
            "quantity": 1,
            "price": 0.0,
            "description": "description"
        }
    ],
    "total": 0.0,
    "currency": "USD"
}

Text: %s
`

var (
	errTextUnderstandingNotConfigured = errors.New("text understanding service not configured")
	errNoJSONObject                   = errors.New("no json object in completion")

	codeFencePattern = regexp.MustCompile("```json\\s*|\\s*```")
)

// IExtractionParser turns free-form extracted text into a draft record.
//
// Parse never fails: any problem yields entities.FallbackDraft().
type IExtractionParser interface {
	Parse(ctx context.Context, rawText string) entities.ExtractedDraft
}

type ExtractionParser struct {
	llm     interfaces.ITextUnderstanding
	metrics interfaces.IIntakeMetrics
}

var _ IExtractionParser = (*ExtractionParser)(nil)

func NewExtractionParser(llm interfaces.ITextUnderstanding, m interfaces.IIntakeMetrics) *ExtractionParser {
	return &ExtractionParser{llm: llm, metrics: metricsOrNoop(m)}
}

func (p *ExtractionParser) Parse(ctx context.Context, rawText string) entities.ExtractedDraft {
	draft, err := p.parse(ctx, rawText)
	if err != nil {
		log.Printf("[intake][parser] parse failed; using fallback draft err=%v", err)
		p.metrics.ObserveExtractionFallback()
		return entities.FallbackDraft()
	}
	log.Printf("[intake][parser] parsed vendor=%q lines=%d currency=%s", draft.Vendor, len(draft.LineItems), draft.Currency)
	return draft
}

func (p *ExtractionParser) parse(ctx context.Context, rawText string) (entities.ExtractedDraft, error) {
	if p.llm == nil {
		return entities.ExtractedDraft{}, errTextUnderstandingNotConfigured
	}

	prompt := fmt.Sprintf(extractionPromptTemplate, truncateRunes(rawText, maxExtractedTextRunes))
	completion, err := p.llm.CompleteJSON(ctx, extractionSystemPrompt, prompt)
	if err != nil {
		return entities.ExtractedDraft{}, err
	}
	return decodeDraftCompletion(completion)
}

// decodeDraftCompletion strips markdown fences and decodes the first
// balanced {...} region of a completion. Text after the object is ignored.
func decodeDraftCompletion(completion string) (entities.ExtractedDraft, error) {
	cleaned := codeFencePattern.ReplaceAllString(strings.TrimSpace(completion), "")
	start := strings.IndexByte(cleaned, '{')
	if start < 0 {
		return entities.ExtractedDraft{}, errNoJSONObject
	}

	var draft entities.ExtractedDraft
	if err := json.NewDecoder(strings.NewReader(cleaned[start:])).Decode(&draft); err != nil {
		return entities.ExtractedDraft{}, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
