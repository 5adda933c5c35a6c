package pdftext

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtractor_Defaults(t *testing.T) {
	e := NewExtractor(0, -1)
	assert.Equal(t, defaultRowTolerance, e.RowTolerance)
	assert.Equal(t, defaultWordGapFactor, e.WordGapFactor)

	e = NewExtractor(5, 0.5)
	assert.Equal(t, 5.0, e.RowTolerance)
	assert.Equal(t, 0.5, e.WordGapFactor)
}

func TestGroupRows_BucketsByYWithinTolerance(t *testing.T) {
	e := NewExtractor(3, 0.3)

	rows := e.groupRows([]pdf.Text{
		{S: "C", X: 10, Y: 680},
		{S: "B", X: 50, Y: 699}, // jitter, still the top row
		{S: "A", X: 10, Y: 700},
	})

	require.Len(t, rows, 2)
	require.Len(t, rows[0], 2)
	// Top row first, fragments left-to-right.
	assert.Equal(t, "A", rows[0][0].S)
	assert.Equal(t, "B", rows[0][1].S)
	assert.Equal(t, "C", rows[1][0].S)
}

func TestGroupRows_SplitsBeyondTolerance(t *testing.T) {
	e := NewExtractor(3, 0.3)

	rows := e.groupRows([]pdf.Text{
		{S: "A", X: 10, Y: 700},
		{S: "B", X: 10, Y: 696},
	})

	require.Len(t, rows, 2)
}

func TestGroupRows_DropsEmptyFragments(t *testing.T) {
	e := NewExtractor(3, 0.3)

	rows := e.groupRows([]pdf.Text{
		{S: "", X: 10, Y: 700},
		{S: "A", X: 20, Y: 700},
	})

	require.Len(t, rows, 1)
	require.Len(t, rows[0], 1)
	assert.Equal(t, "A", rows[0][0].S)
}

func TestAssembleWords_MergesAdjacentFragments(t *testing.T) {
	e := NewExtractor(3, 0.3)

	words := e.assembleWords([]pdf.Text{
		{S: "Fir", X: 10, Y: 700, W: 15, FontSize: 10},
		{S: "ma", X: 25, Y: 700, W: 10, FontSize: 10},
		{S: "AG", X: 60, Y: 700, W: 12, FontSize: 10},
	})

	require.Len(t, words, 2)
	assert.Equal(t, Word{Text: "Firma", X: 10, Y: 700}, words[0])
	assert.Equal(t, Word{Text: "AG", X: 60, Y: 700}, words[1])
}

func TestAssembleWords_SpaceGlyphSplitsWords(t *testing.T) {
	e := NewExtractor(3, 0.3)

	// Without the space glyph the 1pt gap would merge the fragments.
	words := e.assembleWords([]pdf.Text{
		{S: "Foo", X: 10, Y: 700, W: 20, FontSize: 10},
		{S: " ", X: 30, Y: 700, W: 2, FontSize: 10},
		{S: "Bar", X: 33, Y: 700, W: 20, FontSize: 10},
	})

	require.Len(t, words, 2)
	assert.Equal(t, "Foo", words[0].Text)
	assert.Equal(t, "Bar", words[1].Text)
}

func TestAssembleWords_GapScalesWithFontSize(t *testing.T) {
	e := NewExtractor(3, 0.3)

	// A 5pt gap splits at font size 10 (threshold 3) but merges at font
	// size 20 (threshold 6).
	small := e.assembleWords([]pdf.Text{
		{S: "ab", X: 10, Y: 700, W: 10, FontSize: 10},
		{S: "cd", X: 25, Y: 700, W: 10, FontSize: 10},
	})
	require.Len(t, small, 2)

	large := e.assembleWords([]pdf.Text{
		{S: "ab", X: 10, Y: 700, W: 10, FontSize: 20},
		{S: "cd", X: 25, Y: 700, W: 10, FontSize: 20},
	})
	require.Len(t, large, 1)
	assert.Equal(t, "abcd", large[0].Text)
}

func TestPages_InvalidDocument(t *testing.T) {
	e := NewExtractor(0, 0)

	_, err := e.Pages([]byte("this is not a pdf document"))
	assert.Error(t, err)
}
