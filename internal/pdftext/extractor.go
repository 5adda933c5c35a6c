// Package pdftext extracts positioned text lines from PDF documents.
// It is the only place that touches the PDF library; the parser core
// consumes plain Line and Word values.
package pdftext

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Word is a token with its horizontal and vertical page position.
type Word struct {
	Text string
	X    float64
	Y    float64
}

// Line is one visual row of a page, top-to-bottom ordered within the
// page, with its words in left-to-right order.
type Line struct {
	Page  int
	Y     float64
	Text  string
	Words []Word
}

const (
	defaultRowTolerance  = 3.0
	defaultWordGapFactor = 0.3
	defaultFontSize      = 10.0
)

// Extractor pulls per-page text lines out of PDF bytes.
type Extractor struct {
	// RowTolerance is the Y distance (points) within which two text
	// fragments belong to the same visual row.
	RowTolerance float64
	// WordGapFactor is the fraction of the font size an X gap must
	// exceed to start a new word.
	WordGapFactor float64
}

// NewExtractor creates an Extractor; non-positive parameters fall back
// to defaults.
func NewExtractor(rowTolerance, wordGapFactor float64) *Extractor {
	if rowTolerance <= 0 {
		rowTolerance = defaultRowTolerance
	}
	if wordGapFactor <= 0 {
		wordGapFactor = defaultWordGapFactor
	}
	return &Extractor{RowTolerance: rowTolerance, WordGapFactor: wordGapFactor}
}

// Pages extracts the text lines of every page, in page order.
// Pages without extractable text (scanned images, empty pages) yield an
// empty slice and are not an error; only an unreadable document fails.
func (e *Extractor) Pages(data []byte) ([][]Line, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	pages := make([][]Line, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, nil)
			continue
		}
		pages = append(pages, e.pageLines(page, i))
	}
	return pages, nil
}

// pageLines converts one page's content into ordered lines. The
// underlying parser panics on some malformed content streams; such
// pages are treated as yielding no text.
func (e *Extractor) pageLines(page pdf.Page, pageNum int) (lines []Line) {
	defer func() {
		if r := recover(); r != nil {
			lines = nil
		}
	}()

	texts := page.Content().Text
	if len(texts) == 0 {
		return nil
	}

	for _, row := range e.groupRows(texts) {
		words := e.assembleWords(row)
		if len(words) == 0 {
			continue
		}
		parts := make([]string, len(words))
		for j, w := range words {
			parts[j] = w.Text
		}
		text := strings.TrimSpace(strings.Join(parts, " "))
		if text == "" {
			continue
		}
		lines = append(lines, Line{
			Page:  pageNum,
			Y:     row[0].Y,
			Text:  text,
			Words: words,
		})
	}
	return lines
}

// groupRows buckets text fragments into visual rows by Y coordinate.
// Rows come back top-to-bottom (PDF Y grows upward), fragments within a
// row left-to-right.
func (e *Extractor) groupRows(texts []pdf.Text) [][]pdf.Text {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]pdf.Text
	var current []pdf.Text
	for _, t := range sorted {
		if t.S == "" {
			continue
		}
		if len(current) > 0 && current[0].Y-t.Y > e.RowTolerance {
			rows = append(rows, current)
			current = nil
		}
		current = append(current, t)
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	}
	return rows
}

// assembleWords merges adjacent fragments of a row into words. A new
// word starts when the X gap to the previous fragment exceeds
// WordGapFactor times the font size.
func (e *Extractor) assembleWords(row []pdf.Text) []Word {
	var words []Word
	var b strings.Builder
	var start pdf.Text
	var endX float64

	flush := func() {
		text := strings.TrimSpace(b.String())
		if text != "" {
			words = append(words, Word{Text: text, X: start.X, Y: start.Y})
		}
		b.Reset()
	}

	for _, t := range row {
		if strings.TrimSpace(t.S) == "" {
			// An explicit space glyph terminates the current word.
			if b.Len() > 0 {
				flush()
			}
			endX = t.X + t.W
			continue
		}
		fontSize := t.FontSize
		if fontSize == 0 {
			fontSize = defaultFontSize
		}
		if b.Len() > 0 && t.X-endX > e.WordGapFactor*fontSize {
			flush()
		}
		if b.Len() == 0 {
			start = t
		}
		b.WriteString(t.S)
		endX = t.X + t.W
	}
	flush()
	return words
}
