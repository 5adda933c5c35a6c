package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourxls/internal/domain"
)

func TestAssemble_FiltersOnPositionBox(t *testing.T) {
	records := []domain.TourRecord{
		{Company: "Acme Logistics AG", PositionBox: "86/12.0"},
		{Company: "No Marker GmbH", PositionBox: ""},
		{Company: "Bad Marker AG", PositionBox: "86-12"},
		{Company: "Beta Transport GmbH", PositionBox: "12/3.5"},
	}

	res := Assemble(records, DefaultPolicy())

	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 2, res.Kept)
	assert.Equal(t, 2, res.Dropped)
	require.Len(t, res.Table.Records, 2)
	// Input order is preserved.
	assert.Equal(t, "Acme Logistics AG", res.Table.Records[0].Company)
	assert.Equal(t, "Beta Transport GmbH", res.Table.Records[1].Company)
}

func TestAssemble_Empty(t *testing.T) {
	res := Assemble(nil, DefaultPolicy())

	assert.Zero(t, res.Total)
	assert.Zero(t, res.Kept)
	assert.Zero(t, res.Dropped)
	assert.Empty(t, res.Table.Records)
}
