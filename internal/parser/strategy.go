package parser

import (
	"tourxls/internal/domain"
	"tourxls/internal/pdftext"
)

// Strategy reconstructs tour records from extracted pages. Both
// implementations share the same output contract; they differ only in
// how they segment and assign text to fields.
type Strategy interface {
	Name() domain.ExtractStrategy
	Parse(pages [][]pdftext.Line) []domain.TourRecord
}

// Select returns the strategy for the requested mode. Auto picks the
// column strategy when a header row is detected anywhere in the document
// and the line strategy otherwise.
func Select(mode domain.ExtractStrategy, pages [][]pdftext.Line, policy Policy) Strategy {
	switch mode {
	case domain.StrategyLines:
		return NewLineStrategy(policy)
	case domain.StrategyColumns:
		return NewColumnStrategy(policy)
	default:
		if hasHeaderRow(pages) {
			return NewColumnStrategy(policy)
		}
		return NewLineStrategy(policy)
	}
}

func hasHeaderRow(pages [][]pdftext.Line) bool {
	for _, lines := range pages {
		for _, ln := range lines {
			if detectAnchors(ln) != nil {
				return true
			}
		}
	}
	return false
}
