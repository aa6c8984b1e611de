package usecase

import (
	"context"
	"errors"
	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"
	"log"
	"strings"
)

var (
	ErrEmptyImage                  = errors.New("empty image")
	ErrEmptyExtractedText          = errors.New("empty extracted text")
	ErrNoValidProducts             = errors.New("no valid products found in catalog")
	ErrTextExtractionNotConfigured = errors.New("text extraction service not configured")
)

const imageExtractionInstruction = "Extract all text from this image. Focus on: company names, invoice/PO numbers, dates, product names, quantities, prices, and totals. Provide clear, structured text."

// IIntakeUseCase drives the user-facing workflow:
//   - ExtractText: photographed document -> free-form text
//   - Confirm: text -> draft -> validated order
//   - Create: validated order -> purchase order / invoice (real or simulated)
type IIntakeUseCase interface {
	ExtractText(ctx context.Context, image []byte, contentType string) (string, error)
	Confirm(ctx context.Context, extractedText string) (entities.ValidatedOrder, error)
	Create(ctx context.Context, order entities.ValidatedOrder, kind entities.OrderKind) (entities.MaterializedOrder, error)
}

type IntakeUseCase struct {
	llm          interfaces.ITextUnderstanding
	parser       IExtractionParser
	reconciler   IReconciliationUseCase
	materializer IOrderMaterializer
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(llm interfaces.ITextUnderstanding, parser IExtractionParser, reconciler IReconciliationUseCase, materializer IOrderMaterializer) *IntakeUseCase {
	return &IntakeUseCase{llm: llm, parser: parser, reconciler: reconciler, materializer: materializer}
}

func (u *IntakeUseCase) ExtractText(ctx context.Context, image []byte, contentType string) (string, error) {
	if len(image) == 0 {
		return "", ErrEmptyImage
	}
	if u.llm == nil {
		return "", ErrTextExtractionNotConfigured
	}
	if strings.TrimSpace(contentType) == "" {
		contentType = "image/jpeg"
	}

	log.Printf("[intake][extract] sending image bytes=%d content_type=%s", len(image), contentType)
	text, err := u.llm.ExtractText(ctx, image, contentType, imageExtractionInstruction)
	if err != nil {
		log.Printf("[intake][extract] text extraction failed err=%v", err)
		return "", err
	}
	log.Printf("[intake][extract] text extracted chars=%d", len(text))
	return text, nil
}

func (u *IntakeUseCase) Confirm(ctx context.Context, extractedText string) (entities.ValidatedOrder, error) {
	if strings.TrimSpace(extractedText) == "" {
		return entities.ValidatedOrder{}, ErrEmptyExtractedText
	}

	draft := u.parser.Parse(ctx, extractedText)
	order, err := u.reconciler.Validate(ctx, draft)
	if err != nil {
		log.Printf("[intake][confirm] validation failed err=%v", err)
		return entities.ValidatedOrder{}, err
	}
	if len(order.LineItems) == 0 {
		log.Printf("[intake][confirm] no valid products vendor=%q", order.VendorName)
		return entities.ValidatedOrder{}, ErrNoValidProducts
	}
	return order, nil
}

func (u *IntakeUseCase) Create(ctx context.Context, order entities.ValidatedOrder, kind entities.OrderKind) (entities.MaterializedOrder, error) {
	return u.materializer.Materialize(ctx, order, kind)
}
