// Package parser reconstructs delivery-stop records from the loosely
// ordered text of a tour-list report. It segments extracted lines into
// record blocks using the trailing end-marker, derives the ten output
// fields with regex heuristics or header-anchored column positions, and
// assembles the validated result table.
package parser

import (
	"regexp"
	"strings"

	"tourxls/internal/domain"
)

// Policy is the immutable rule set driving classification, segmentation,
// and field extraction. All report-specific wording lives here so the
// parser can be retargeted at a similarly structured report without code
// changes.
type Policy struct {
	// Noise matches boilerplate lines that never enter a record block:
	// report title, running header, page footer, tour summary lines, and
	// the repeated column-header row.
	Noise []*regexp.Regexp
	// StartExclusions matches lines that may carry content but must not
	// open a new record (column-header fragments and rhythm wording).
	StartExclusions []*regexp.Regexp

	// EndMarker is the record terminator anchored at line end. Captures:
	// position-box code, address number, rhythm code.
	EndMarker *regexp.Regexp
	// EndMarkerLoose is the same triple matched anywhere, used when
	// deciding whether an in-flight block at document end is complete.
	EndMarkerLoose *regexp.Regexp
	// PositionBox matches the digits/digits.digits code anywhere.
	PositionBox *regexp.Regexp
	// PositionBoxExact is the final-output validity gate.
	PositionBoxExact *regexp.Regexp

	// Phone matches candidate digit runs; candidates with fewer than
	// MinPhoneDigits digits are discarded.
	Phone          *regexp.Regexp
	MinPhoneDigits int
	// PostalCity matches a 4-digit postal code followed by one or more
	// alphabetic words.
	PostalCity *regexp.Regexp
	// StreetSuffix locates street keywords within a line.
	StreetSuffix *regexp.Regexp
	// StreetLine extracts "word house-number" starting at the word that
	// contains the street suffix.
	StreetLine *regexp.Regexp
	// TrailingAddress is the fallback "word number" pattern at the end
	// of the pre-postal-code text.
	TrailingAddress *regexp.Regexp

	// ArticleTokens are scanned in order; the first literal match wins,
	// so longer tokens must precede shorter overlapping ones.
	ArticleTokens []string

	// MergeContactIntoCompany folds the contact person into the company
	// column as "Company - Contact" and leaves the contact column empty.
	MergeContactIntoCompany bool
	// RemarkFallback selects the Remark source when no article code was
	// found in the block.
	RemarkFallback domain.RemarkFallback
}

// DefaultPolicy returns the rule set for the observed tour-list report.
func DefaultPolicy() Policy {
	return Policy{
		Noise: []*regexp.Regexp{
			regexp.MustCompile(`Tourenliste per:`),
			regexp.MustCompile(`^103_Tourenliste`),
			regexp.MustCompile(`Seite:\s*\d+`),
			regexp.MustCompile(`^Tour\s`),
			regexp.MustCompile(`^Firma\b.*\bTelefon\b`),
		},
		StartExclusions: []*regexp.Regexp{
			regexp.MustCompile(`\bFirma\b`),
			regexp.MustCompile(`\bWoche\b`),
		},
		EndMarker:        regexp.MustCompile(`(\d+/\d+\.\d+)\s+(\d+)\s+(\d+)\s*$`),
		EndMarkerLoose:   regexp.MustCompile(`(\d+/\d+\.\d+)\s+(\d+)\s+(\d+)`),
		PositionBox:      regexp.MustCompile(`\b\d+/\d+\.\d+\b`),
		PositionBoxExact: regexp.MustCompile(`^\d+/\d+\.\d+$`),
		Phone:            regexp.MustCompile(`(?:\+|00)?\d[\d ]*\d`),
		MinPhoneDigits:   9,
		PostalCity:       regexp.MustCompile(`\b\d{4}\s+\pL[\pL.'-]*(?:\s+\pL[\pL.'-]*)*`),
		StreetSuffix:     regexp.MustCompile(`(?i)strasse|straße|weg|platz|gasse|ring|allee`),
		StreetLine:       regexp.MustCompile(`^\S+\s+\d+\s*[a-zA-Z]?\b`),
		TrailingAddress:  regexp.MustCompile(`\pL[\pL.'-]*\s+\d+[a-zA-Z]?$`),
		ArticleTokens:    []string{"DGB 2023", "GB 2023", "KB"},
		RemarkFallback:   domain.RemarkFallbackPreMarker,
	}
}

// normalizeSpace collapses consecutive whitespace to single spaces and
// trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// digitCount returns the number of decimal digits in s.
func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
