package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourxls/internal/domain"
	"tourxls/internal/pdftext"
)

func textPages(lines ...string) [][]pdftext.Line {
	page := make([]pdftext.Line, 0, len(lines))
	for _, s := range lines {
		page = append(page, pdftext.Line{Text: s})
	}
	return [][]pdftext.Line{page}
}

func TestLineStrategy_FullRecord(t *testing.T) {
	s := NewLineStrategy(DefaultPolicy())

	records := s.Parse(textPages(
		"Tourenliste per: 01.03.2025",
		"Acme Logistics AG",
		"Hans Meier +41 71 123 45 67",
		"Kradolfstrasse 54 8583 Sulgen",
		"KB Werkstatt",
		"86/12.0 4711 2",
	))

	require.Len(t, records, 1)
	assert.Equal(t, domain.TourRecord{
		Company:        "Acme Logistics AG",
		ContactPerson:  "Hans Meier",
		Phone:          "+41 71 123 45 67",
		Street:         "Kradolfstrasse 54",
		PostalCityText: "8583 Sulgen",
		ArticleCode:    "KB",
		Remark:         "Werkstatt",
		PositionBox:    "86/12.0",
		AddressNumber:  "4711",
		Rhythm:         "2",
	}, records[0])
}

func TestLineStrategy_PhoneDeduplicated(t *testing.T) {
	s := NewLineStrategy(DefaultPolicy())

	records := s.Parse(textPages(
		"Muster AG",
		"Tel +41 71 123 45 67 / +41 71 123 45 67",
		"Bahnhofstrasse 1 9000 St. Gallen",
		"5/1.0 100 1",
	))

	require.Len(t, records, 1)
	assert.Equal(t, "+41 71 123 45 67", records[0].Phone)
}

func TestLineStrategy_MultiplePhonesJoined(t *testing.T) {
	s := NewLineStrategy(DefaultPolicy())

	records := s.Parse(textPages(
		"Muster AG",
		"Tel 071 123 45 67 / 079 555 12 34",
		"Bahnhofstrasse 1 9000 St. Gallen",
		"5/1.0 100 1",
	))

	require.Len(t, records, 1)
	assert.Equal(t, "071 123 45 67 / 079 555 12 34", records[0].Phone)
}

func TestLineStrategy_ArticlePriority(t *testing.T) {
	s := NewLineStrategy(DefaultPolicy())

	tests := []struct {
		name string
		line string
		want string
	}{
		{"longer token wins over embedded shorter", "DGB 2023 geliefert", "DGB 2023"},
		{"GB 2023 beats KB", "GB 2023 und KB vorhanden", "GB 2023"},
		{"KB alone", "KB hinterlegt", "KB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := s.Parse(textPages("Muster AG", tt.line, "5/1.0 100 1"))
			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0].ArticleCode)
		})
	}
}

func TestLineStrategy_RemarkFallbackPreMarker(t *testing.T) {
	s := NewLineStrategy(DefaultPolicy())

	records := s.Parse(textPages(
		"Muster AG",
		"Hintereingang benutzen",
		"5/1.0 100 1",
	))

	require.Len(t, records, 1)
	assert.Empty(t, records[0].ArticleCode)
	assert.Equal(t, "Muster AG Hintereingang benutzen", records[0].Remark)
}

func TestLineStrategy_RemarkFallbackFullText(t *testing.T) {
	policy := DefaultPolicy()
	policy.RemarkFallback = domain.RemarkFallbackFullText
	s := NewLineStrategy(policy)

	records := s.Parse(textPages(
		"Muster AG",
		"Hintereingang benutzen",
		"5/1.0 100 1",
	))

	require.Len(t, records, 1)
	assert.Equal(t, "Muster AG Hintereingang benutzen 5/1.0 100 1", records[0].Remark)
}

func TestLineStrategy_StreetTrailingAddressFallback(t *testing.T) {
	s := NewLineStrategy(DefaultPolicy())

	// No street-suffix keyword anywhere; the trailing "word number" before
	// the postal code is the next best candidate.
	records := s.Parse(textPages(
		"Muster AG",
		"Dorfzentrum 12 9000 St. Gallen",
		"5/1.0 100 1",
	))

	require.Len(t, records, 1)
	assert.Equal(t, "Dorfzentrum 12", records[0].Street)
	assert.Equal(t, "9000 St. Gallen", records[0].PostalCityText)
}

func TestLineStrategy_StreetShortResidueFallback(t *testing.T) {
	s := NewLineStrategy(DefaultPolicy())

	records := s.Parse(textPages(
		"Muster AG",
		"Postfach links 9000 St. Gallen",
		"5/1.0 100 1",
	))

	require.Len(t, records, 1)
	assert.Equal(t, "Postfach links", records[0].Street)
}

func TestLineStrategy_NoPhoneNoContact(t *testing.T) {
	s := NewLineStrategy(DefaultPolicy())

	records := s.Parse(textPages(
		"Muster AG",
		"Bahnhofstrasse 1 9000 St. Gallen",
		"5/1.0 100 1",
	))

	require.Len(t, records, 1)
	assert.Empty(t, records[0].ContactPerson)
	assert.Empty(t, records[0].Phone)
	assert.Equal(t, "Bahnhofstrasse 1", records[0].Street)
}

func TestLineStrategy_MergeContactIntoCompany(t *testing.T) {
	policy := DefaultPolicy()
	policy.MergeContactIntoCompany = true
	s := NewLineStrategy(policy)

	records := s.Parse(textPages(
		"Acme Logistics AG",
		"Hans Meier +41 71 123 45 67",
		"Kradolfstrasse 54 8583 Sulgen",
		"86/12.0 4711 2",
	))

	require.Len(t, records, 1)
	assert.Equal(t, "Acme Logistics AG - Hans Meier", records[0].Company)
	assert.Empty(t, records[0].ContactPerson)
}

func TestLineStrategy_RecordsSpanPages(t *testing.T) {
	s := NewLineStrategy(DefaultPolicy())

	pages := [][]pdftext.Line{
		{
			{Text: "Acme Logistics AG"},
			{Text: "Kradolfstrasse 54 8583 Sulgen"},
		},
		{
			{Text: "Seite: 2"},
			{Text: "86/12.0 4711 2"},
		},
	}

	records := s.Parse(pages)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme Logistics AG", records[0].Company)
	assert.Equal(t, "86/12.0", records[0].PositionBox)
}
