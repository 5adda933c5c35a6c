package parser

import (
	"sort"
	"strings"

	"tourxls/internal/domain"
	"tourxls/internal/pdftext"
)

// Field indices in the fixed output column order.
const (
	colCompany = iota
	colContact
	colPhone
	colStreet
	colPostal
	colArticle
	colRemark
	colPositionBox
	colAddressNumber
	colRhythm
	colCount
)

// headerLabels are the word prefixes that identify each column's anchor
// in the report's header row, in column order.
var headerLabels = [colCount]string{
	"Firma",
	"Ansprechperson",
	"Telefon",
	"Strasse",
	"PLZ",
	"Artikel",
	"Bemerkung",
	"Position",
	"Adr",
	"Rhythmus",
}

// minHeaderAnchors is how many anchors a line must carry to count as the
// header row.
const minHeaderAnchors = 3

// anchor is a detected column boundary: the column starts at x.
type anchor struct {
	field int
	x     float64
}

// ColumnStrategy reconstructs records from word positions instead of
// line heuristics: the x-coordinates of the header row's labels define
// column boundaries, every content word is bucketed into the rightmost
// column starting at or left of it, and a record closes when the
// position-box column ends in a valid position-box token.
type ColumnStrategy struct {
	policy Policy
}

// NewColumnStrategy creates the word-position strategy.
func NewColumnStrategy(policy Policy) *ColumnStrategy {
	return &ColumnStrategy{policy: policy}
}

// Name reports the strategy identifier.
func (s *ColumnStrategy) Name() domain.ExtractStrategy {
	return domain.StrategyColumns
}

// Parse walks all pages in order. Pages before the first detected header
// row are skipped; the first header's anchors are reused for the rest of
// the document. A document without any header yields zero records.
func (s *ColumnStrategy) Parse(pages [][]pdftext.Line) []domain.TourRecord {
	classifier := NewClassifier(s.policy)
	var anchors []anchor
	var bufs [colCount][]string
	var records []domain.TourRecord

	for _, lines := range pages {
		for _, ln := range lines {
			if a := detectAnchors(ln); a != nil {
				if anchors == nil {
					anchors = a
				}
				continue
			}
			if anchors == nil {
				continue
			}
			if classifier.Classify(ln.Text) == LineNoise {
				continue
			}
			for _, w := range ln.Words {
				f := assignColumn(anchors, w.X)
				bufs[f] = append(bufs[f], w.Text)
			}
			if pos, ok := closingPosition(bufs[colPositionBox], s.policy); ok {
				records = append(records, s.finalize(&bufs, pos))
				bufs = [colCount][]string{}
			}
		}
	}
	return records
}

// detectAnchors returns the column anchors when the line is a header
// row: the company label plus at least minHeaderAnchors labels in total.
func detectAnchors(ln pdftext.Line) []anchor {
	var found []anchor
	var seen [colCount]bool
	for _, w := range ln.Words {
		for f, label := range headerLabels {
			if seen[f] {
				continue
			}
			if strings.HasPrefix(w.Text, label) {
				found = append(found, anchor{field: f, x: w.X})
				seen[f] = true
				break
			}
		}
	}
	if !seen[colCompany] || len(found) < minHeaderAnchors {
		return nil
	}
	sort.Slice(found, func(i, j int) bool { return found[i].x < found[j].x })
	return found
}

// assignColumn picks the column whose anchor x is the largest not
// exceeding the word's x. Words left of the first anchor fall into the
// first column. The half-point slack absorbs rendering jitter.
func assignColumn(anchors []anchor, x float64) int {
	field := anchors[0].field
	for _, a := range anchors {
		if a.x <= x+0.5 {
			field = a.field
		} else {
			break
		}
	}
	return field
}

// closingPosition reports whether the position-box buffer, cleaned to
// its last whitespace-delimited token, holds a valid position-box code.
func closingPosition(buf []string, p Policy) (string, bool) {
	tokens := strings.Fields(strings.Join(buf, " "))
	if len(tokens) == 0 {
		return "", false
	}
	last := tokens[len(tokens)-1]
	if !p.PositionBoxExact.MatchString(last) {
		return "", false
	}
	return last, true
}

// finalize builds one record from the column buffers. Text columns take
// the full normalized buffer; the numeric columns take their last token.
func (s *ColumnStrategy) finalize(bufs *[colCount][]string, pos string) domain.TourRecord {
	joined := func(f int) string {
		return normalizeSpace(strings.Join(bufs[f], " "))
	}
	lastToken := func(f int) string {
		tokens := strings.Fields(strings.Join(bufs[f], " "))
		if len(tokens) == 0 {
			return ""
		}
		return tokens[len(tokens)-1]
	}

	rec := domain.TourRecord{
		Company:        joined(colCompany),
		ContactPerson:  joined(colContact),
		Phone:          joined(colPhone),
		Street:         joined(colStreet),
		PostalCityText: joined(colPostal),
		ArticleCode:    joined(colArticle),
		Remark:         joined(colRemark),
		PositionBox:    pos,
		AddressNumber:  lastToken(colAddressNumber),
		Rhythm:         lastToken(colRhythm),
	}
	if s.policy.MergeContactIntoCompany && rec.ContactPerson != "" {
		rec.Company = rec.Company + " - " + rec.ContactPerson
		rec.ContactPerson = ""
	}
	return rec
}
