package parser

import (
	"strings"
	"unicode"
)

// LineClass is the classification of a single extracted text line.
type LineClass int

const (
	// LineNoise is boilerplate; dropped, never enters a record block.
	LineNoise LineClass = iota
	// LineRecordStart looks like the opening (company) line of a stop.
	LineRecordStart
	// LineContent is folded into the current record block.
	LineContent
)

// Classifier tags raw lines. Classification is pure: the same line
// always yields the same class.
type Classifier struct {
	policy Policy
}

// NewClassifier creates a Classifier for the given policy.
func NewClassifier(policy Policy) *Classifier {
	return &Classifier{policy: policy}
}

// Classify tags one line as noise, record start, or content.
//
// A record start must not contain a position-box code, must not begin
// with a digit (pure numeric tokens are internal codes, not company
// names), must not carry a start-exclusion word, and needs non-trivial
// length. Everything else that survives the noise filter is content.
func (c *Classifier) Classify(raw string) LineClass {
	line := strings.TrimSpace(raw)
	if line == "" {
		return LineNoise
	}
	for _, re := range c.policy.Noise {
		if re.MatchString(line) {
			return LineNoise
		}
	}

	if c.policy.PositionBox.MatchString(line) {
		return LineContent
	}
	runes := []rune(line)
	if unicode.IsDigit(runes[0]) {
		return LineContent
	}
	for _, re := range c.policy.StartExclusions {
		if re.MatchString(line) {
			return LineContent
		}
	}
	if len(runes) <= 2 {
		return LineContent
	}
	return LineRecordStart
}
