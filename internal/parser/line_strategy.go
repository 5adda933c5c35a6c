package parser

import (
	"strings"

	"tourxls/internal/domain"
	"tourxls/internal/pdftext"
)

// LineStrategy reconstructs records from plain text lines: segment into
// blocks on the end-marker, then derive fields with ordered regex
// heuristics. Every heuristic is best-effort and yields an empty string
// on no match; malformed records are filtered later by the assembler.
type LineStrategy struct {
	policy Policy
}

// NewLineStrategy creates the line-heuristic strategy.
func NewLineStrategy(policy Policy) *LineStrategy {
	return &LineStrategy{policy: policy}
}

// Name reports the strategy identifier.
func (s *LineStrategy) Name() domain.ExtractStrategy {
	return domain.StrategyLines
}

// Parse feeds all pages through the segmenter and extracts one record
// per block.
func (s *LineStrategy) Parse(pages [][]pdftext.Line) []domain.TourRecord {
	seg := NewSegmenter(s.policy)
	for _, lines := range pages {
		for _, ln := range lines {
			seg.Feed(ln.Text)
		}
	}
	blocks := seg.Flush()

	records := make([]domain.TourRecord, 0, len(blocks))
	for _, b := range blocks {
		records = append(records, s.extract(b))
	}
	return records
}

// extract derives the ten fields of one record block.
func (s *LineStrategy) extract(b Block) domain.TourRecord {
	var company, rest string
	if len(b.Lines) > 0 {
		company = normalizeSpace(b.Lines[0])
		rest = normalizeSpace(strings.Join(b.Lines[1:], " "))
	}
	full := normalizeSpace(strings.Join(b.Lines, " "))

	phones := s.phoneMatches(full)
	phone := joinUnique(phones, " / ")
	contact := s.extractContact(rest)

	article, articleIdx := s.extractArticle(full)
	postal := s.extractPostalCity(b.Lines)
	street := s.extractStreet(b.Lines, rest, contact)
	remark := s.extractRemark(full, article, articleIdx)

	if s.policy.MergeContactIntoCompany && contact != "" {
		company = company + " - " + contact
		contact = ""
	}

	return domain.TourRecord{
		Company:        company,
		ContactPerson:  contact,
		Phone:          phone,
		Street:         street,
		PostalCityText: postal,
		ArticleCode:    article,
		Remark:         remark,
		PositionBox:    b.PositionBox,
		AddressNumber:  b.AddressNumber,
		Rhythm:         b.Rhythm,
	}
}

// phoneMatches returns all normalized phone candidates in text, in
// first-seen order: digit runs with at least MinPhoneDigits digits,
// optionally prefixed with + or 00, embedded spaces allowed.
func (s *LineStrategy) phoneMatches(text string) []string {
	var out []string
	for _, m := range s.policy.Phone.FindAllString(text, -1) {
		if digitCount(m) >= s.policy.MinPhoneDigits {
			out = append(out, normalizeSpace(m))
		}
	}
	return out
}

// extractContact returns the text preceding the first phone match in the
// post-company block text, trimmed of trailing slashes and spaces.
func (s *LineStrategy) extractContact(rest string) string {
	for _, loc := range s.policy.Phone.FindAllStringIndex(rest, -1) {
		if digitCount(rest[loc[0]:loc[1]]) < s.policy.MinPhoneDigits {
			continue
		}
		return normalizeSpace(strings.Trim(rest[:loc[0]], "/ "))
	}
	return ""
}

// extractArticle returns the first article token found in text, scanning
// the ordered priority list, plus the match position (-1 when absent).
func (s *LineStrategy) extractArticle(text string) (string, int) {
	for _, tok := range s.policy.ArticleTokens {
		if idx := strings.Index(text, tok); idx >= 0 {
			return tok, idx
		}
	}
	return "", -1
}

// extractPostalCity returns the first per-line match of a 4-digit postal
// code followed by alphabetic words.
func (s *LineStrategy) extractPostalCity(lines []string) string {
	for _, ln := range lines {
		if m := s.policy.PostalCity.FindString(ln); m != "" {
			return normalizeSpace(m)
		}
	}
	return ""
}

// extractStreet finds the street. First choice: a line containing a
// street-suffix keyword, taking the suffix-bearing word through its
// house number. Fallback: a trailing "word number" at the end of the
// pre-postal-code text; failing that, the pre-postal residue verbatim
// when it is at most four tokens.
func (s *LineStrategy) extractStreet(lines []string, rest, contact string) string {
	for _, ln := range lines {
		loc := s.policy.StreetSuffix.FindStringIndex(ln)
		if loc == nil {
			continue
		}
		start := strings.LastIndex(ln[:loc[0]], " ") + 1
		if m := s.policy.StreetLine.FindString(ln[start:]); m != "" {
			return normalizeSpace(m)
		}
	}

	residue := s.prePostalResidue(rest, contact)
	if m := s.policy.TrailingAddress.FindString(residue); m != "" {
		return normalizeSpace(m)
	}
	if fields := strings.Fields(residue); len(fields) > 0 && len(fields) <= 4 {
		return strings.Join(fields, " ")
	}
	return ""
}

// prePostalResidue is the post-company text up to the postal code, with
// phone numbers and the contact prefix removed.
func (s *LineStrategy) prePostalResidue(rest, contact string) string {
	pre := rest
	if loc := s.policy.PostalCity.FindStringIndex(pre); loc != nil {
		pre = pre[:loc[0]]
	}
	pre = s.policy.Phone.ReplaceAllStringFunc(pre, func(m string) string {
		if digitCount(m) >= s.policy.MinPhoneDigits {
			return " "
		}
		return m
	})
	pre = normalizeSpace(strings.Trim(pre, "/ "))
	if contact != "" {
		pre = strings.TrimSpace(strings.TrimPrefix(pre, contact))
	}
	return pre
}

// extractRemark is the residual text after the article code with the
// end-marker tokens stripped from the tail. Without an article code it
// falls back to the pre-marker text or the full block text, per policy.
func (s *LineStrategy) extractRemark(full, article string, articleIdx int) string {
	if articleIdx >= 0 {
		tail := full[articleIdx+len(article):]
		if loc := s.policy.EndMarkerLoose.FindStringIndex(tail); loc != nil {
			tail = tail[:loc[0]]
		}
		return normalizeSpace(tail)
	}
	if s.policy.RemarkFallback == domain.RemarkFallbackFullText {
		return full
	}
	if loc := s.policy.EndMarkerLoose.FindStringIndex(full); loc != nil {
		return normalizeSpace(full[:loc[0]])
	}
	return full
}

// joinUnique deduplicates preserving first-seen order and joins with sep.
func joinUnique(items []string, sep string) string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return strings.Join(out, sep)
}
