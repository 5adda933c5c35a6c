package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"tourxls/internal/config"
	"tourxls/internal/domain"
	"tourxls/internal/parser"
	"tourxls/internal/pdftext"
)

// ConvertOptions are per-request overrides of the configured extraction
// policy. Zero values mean "use the configured default".
type ConvertOptions struct {
	Mode           domain.ExtractStrategy
	MergeContact   *bool
	RemarkFallback domain.RemarkFallback
}

// ConvertInput is the DTO for conversion requests.
type ConvertInput struct {
	File    multipart.File
	Header  *multipart.FileHeader
	Options ConvertOptions
}

// ConversionService defines the tour-list conversion contract.
type ConversionService interface {
	Convert(ctx context.Context, input ConvertInput) (*domain.ConversionResult, error)
}

type conversionService struct {
	extractor  *pdftext.Extractor
	uploadCfg  *config.UploadConfig
	extractCfg *config.ExtractConfig
}

// NewConversionService creates a new ConversionService implementation.
func NewConversionService(
	extractor *pdftext.Extractor,
	uploadCfg *config.UploadConfig,
	extractCfg *config.ExtractConfig,
) ConversionService {
	return &conversionService{
		extractor:  extractor,
		uploadCfg:  uploadCfg,
		extractCfg: extractCfg,
	}
}

// Convert validates the upload, extracts the page text, reconstructs the
// records, and assembles the filtered result table. Each call starts
// from fresh state; nothing is retained between conversions.
func (s *conversionService) Convert(ctx context.Context, input ConvertInput) (*domain.ConversionResult, error) {
	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.uploadCfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	head := make([]byte, 512)
	n, err := input.File.Read(head)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrEmptyFile
	}
	if _, ok := domain.AllowedContentTypes[http.DetectContentType(head[:n])]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning and read the whole document
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}
	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	pages, err := s.extractor.Pages(data)
	if err != nil {
		log.Printf("conversionService.Convert: extraction failed for %s: %v", input.Header.Filename, err)
		return nil, domain.ErrExtractionFailed
	}

	policy := s.buildPolicy(input.Options)
	strategy := parser.Select(s.mode(input.Options), pages, policy)
	records := strategy.Parse(pages)
	assembled := parser.Assemble(records, policy)

	result := &domain.ConversionResult{
		ID:           uuid.New(),
		SourceName:   input.Header.Filename,
		Strategy:     strategy.Name(),
		Table:        assembled.Table,
		TotalRecords: assembled.Total,
		RowsKept:     assembled.Kept,
		RowsDropped:  assembled.Dropped,
	}

	log.Printf("conversionService.Convert: %s converted via %s strategy: %d pages, %d records, %d kept, %d dropped",
		input.Header.Filename, result.Strategy, len(pages), result.TotalRecords, result.RowsKept, result.RowsDropped)

	return result, nil
}

// buildPolicy layers the configured defaults and per-request overrides
// onto the default policy.
func (s *conversionService) buildPolicy(opts ConvertOptions) parser.Policy {
	p := parser.DefaultPolicy()
	p.MergeContactIntoCompany = s.extractCfg.MergeContactIntoCompany
	if fb := domain.RemarkFallback(s.extractCfg.RemarkFallback); domain.ValidRemarkFallbacks[fb] {
		p.RemarkFallback = fb
	}
	if opts.MergeContact != nil {
		p.MergeContactIntoCompany = *opts.MergeContact
	}
	if opts.RemarkFallback != "" {
		p.RemarkFallback = opts.RemarkFallback
	}
	return p
}

func (s *conversionService) mode(opts ConvertOptions) domain.ExtractStrategy {
	if opts.Mode != "" {
		return opts.Mode
	}
	if m := domain.ExtractStrategy(s.extractCfg.Mode); domain.ValidStrategies[m] {
		return m
	}
	return domain.StrategyAuto
}
