package domain

import (
	"github.com/google/uuid"
)

// TourRecord is one delivery stop reconstructed from the report.
// All fields are free text except PositionBox, AddressNumber, and Rhythm,
// which carry the structured tokens of the record's end-marker.
type TourRecord struct {
	Company        string `json:"company"`
	ContactPerson  string `json:"contact_person"`
	Phone          string `json:"phone"`
	Street         string `json:"street"`
	PostalCityText string `json:"postal_city"`
	ArticleCode    string `json:"article_code"`
	Remark         string `json:"remark"`
	PositionBox    string `json:"position_box"`
	AddressNumber  string `json:"address_number"`
	Rhythm         string `json:"rhythm"`
}

// Columns is the fixed output column order of the tour sheet.
// The header labels match the upstream report.
var Columns = []string{
	"Firma",
	"Ansprechperson",
	"Telefon",
	"Strasse",
	"PLZ / Ort",
	"Artikel",
	"Bemerkung",
	"Position Box",
	"Adr.-Nr.",
	"Rhythmus",
}

// Row returns the record's values in the fixed column order.
func (r *TourRecord) Row() []string {
	return []string{
		r.Company,
		r.ContactPerson,
		r.Phone,
		r.Street,
		r.PostalCityText,
		r.ArticleCode,
		r.Remark,
		r.PositionBox,
		r.AddressNumber,
		r.Rhythm,
	}
}

// ResultTable is the ordered set of records produced by one conversion.
// Order preserves record discovery order; duplicates are possible when the
// source report repeats a stop.
type ResultTable struct {
	Records []TourRecord `json:"records"`
}

// Len returns the number of rows in the table.
func (t *ResultTable) Len() int {
	return len(t.Records)
}

// ConversionResult is the outcome of converting one uploaded document.
// Nothing is persisted; the result lives only for the duration of the
// request that produced it.
type ConversionResult struct {
	ID           uuid.UUID       `json:"id"`
	SourceName   string          `json:"source_name"`
	Strategy     ExtractStrategy `json:"strategy"`
	Table        ResultTable     `json:"table"`
	TotalRecords int             `json:"total_records"`
	RowsKept     int             `json:"rows_kept"`
	RowsDropped  int             `json:"rows_dropped"`
}
