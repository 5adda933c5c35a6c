package parser

import "tourxls/internal/domain"

// AssembleResult carries the assembled table and the filter counts the
// presentation layer reports to the user.
type AssembleResult struct {
	Table   domain.ResultTable
	Total   int
	Kept    int
	Dropped int
}

// Assemble builds the final table: discovery order is preserved, no
// sorting, and only records whose PositionBox matches the validity
// pattern exactly survive. The gate is the sole filter; records with
// other empty fields pass through as best-effort rows.
func Assemble(records []domain.TourRecord, policy Policy) AssembleResult {
	kept := make([]domain.TourRecord, 0, len(records))
	for _, r := range records {
		if policy.PositionBoxExact.MatchString(r.PositionBox) {
			kept = append(kept, r)
		}
	}
	return AssembleResult{
		Table:   domain.ResultTable{Records: kept},
		Total:   len(records),
		Kept:    len(kept),
		Dropped: len(records) - len(kept),
	}
}
