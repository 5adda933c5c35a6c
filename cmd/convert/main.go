// Command convert batch-converts tour-list PDFs to spreadsheets.
// It walks the input directory, converts every *.pdf it finds, and
// writes one <name>.xlsx per document into the output directory.
// Usage: go run ./cmd/convert -in ./in -out ./out
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"tourxls/internal/config"
	"tourxls/internal/domain"
	"tourxls/internal/parser"
	"tourxls/internal/pdftext"
	"tourxls/internal/xlsxexport"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	inDir := flag.String("in", "./in", "input directory to search for PDF files")
	outDir := flag.String("out", "./out", "output directory for the converted spreadsheets")
	mode := flag.String("mode", "auto", "extraction mode: auto, lines, or columns")
	mergeContact := flag.Bool("merge-contact", false, "fold the contact person into the company column")
	flag.Parse()

	strategy := domain.ExtractStrategy(*mode)
	if !domain.ValidStrategies[strategy] {
		return fmt.Errorf("invalid -mode %q: must be auto, lines, or columns", *mode)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	extractor := pdftext.NewExtractor(cfg.Extract.RowTolerance, cfg.Extract.WordGapFactor)
	policy := parser.DefaultPolicy()
	policy.MergeContactIntoCompany = *mergeContact
	if fb := domain.RemarkFallback(cfg.Extract.RemarkFallback); domain.ValidRemarkFallbacks[fb] {
		policy.RemarkFallback = fb
	}

	converted := 0
	failed := 0
	err = filepath.WalkDir(*inDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".pdf") {
			return nil
		}
		if cerr := convertFile(path, *outDir, strategy, policy, extractor); cerr != nil {
			// Keep going; one bad document must not stop the batch.
			log.Printf("convert: %s: %v", path, cerr)
			failed++
			return nil
		}
		converted++
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", *inDir, err)
	}

	log.Printf("convert: %d file(s) converted, %d failed", converted, failed)
	return nil
}

func convertFile(path, outDir string, mode domain.ExtractStrategy, policy parser.Policy, extractor *pdftext.Extractor) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	pages, err := extractor.Pages(data)
	if err != nil {
		return fmt.Errorf("extracting text: %w", err)
	}

	strategy := parser.Select(mode, pages, policy)
	assembled := parser.Assemble(strategy.Parse(pages), policy)
	if assembled.Kept == 0 {
		log.Printf("convert: %s: no records found (%s strategy), writing empty sheet", path, strategy.Name())
	}

	out, err := xlsxexport.Write(&assembled.Table)
	if err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	outPath := filepath.Join(outDir, xlsxexport.BuildFilename(filepath.Base(path)))
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	log.Printf("convert: %s -> %s (%d rows, %d dropped, %s strategy)",
		path, outPath, assembled.Kept, assembled.Dropped, strategy.Name())
	return nil
}
