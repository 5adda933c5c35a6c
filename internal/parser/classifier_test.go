package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Noise(t *testing.T) {
	c := NewClassifier(DefaultPolicy())

	noise := []string{
		"",
		"   ",
		"Tourenliste per: 01.03.2025",
		"103_Tourenliste_Export",
		"Seite: 3",
		"Tour 12 Oberthurgau",
		"Firma Ansprechperson Telefon Strasse PLZ",
	}
	for _, line := range noise {
		assert.Equal(t, LineNoise, c.Classify(line), "line %q", line)
	}
}

func TestClassifier_RecordStart(t *testing.T) {
	c := NewClassifier(DefaultPolicy())

	starts := []string{
		"Acme Logistics AG",
		"Bäckerei Müller",
		"Hans Meier +41 71 123 45 67",
	}
	for _, line := range starts {
		assert.Equal(t, LineRecordStart, c.Classify(line), "line %q", line)
	}
}

func TestClassifier_Content(t *testing.T) {
	c := NewClassifier(DefaultPolicy())

	content := []string{
		"86/12.0 4711 2",            // end-marker line
		"Lieferung 86/12.0 im Hof",  // position box anywhere
		"8583 Sulgen",               // starts with a digit
		"4711",                      // bare internal code
		"jede 2. Woche anliefern",   // start exclusion word
		"Firma / Ansprechperson",    // column header fragment
		"AG",                        // too short for a company line
	}
	for _, line := range content {
		assert.Equal(t, LineContent, c.Classify(line), "line %q", line)
	}
}

func TestClassifier_Idempotent(t *testing.T) {
	c := NewClassifier(DefaultPolicy())
	line := "Acme Logistics AG"
	first := c.Classify(line)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Classify(line))
	}
}
