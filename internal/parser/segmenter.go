package parser

import "strings"

// Block is one record's worth of raw lines plus the three tokens
// captured from its end-marker.
type Block struct {
	Lines         []string
	PositionBox   string
	AddressNumber string
	Rhythm        string
}

// Segmenter groups classified lines into record blocks. It is a
// two-state machine: idle (no partial block) and accumulating. The only
// reliable terminator is the end-marker; a record-start line arriving
// while a block is still open is absorbed into that block rather than
// closing it, which guards against false starts on short fragments.
type Segmenter struct {
	policy     Policy
	classifier *Classifier
	current    []string
	blocks     []Block
}

// NewSegmenter creates a Segmenter for the given policy.
func NewSegmenter(policy Policy) *Segmenter {
	return &Segmenter{
		policy:     policy,
		classifier: NewClassifier(policy),
	}
}

// Feed consumes the next line in document order.
func (s *Segmenter) Feed(raw string) {
	line := strings.TrimSpace(raw)
	if s.classifier.Classify(line) == LineNoise {
		return
	}
	s.current = append(s.current, line)

	if m := s.policy.EndMarker.FindStringSubmatch(line); m != nil {
		s.emit(m[1], m[2], m[3])
	}
}

// Flush finalizes the stream and returns all blocks in discovery order.
// An in-flight block is emitted only if its buffered text already
// contains a complete end-marker; otherwise it is dropped, since its
// termination is unknown.
func (s *Segmenter) Flush() []Block {
	if len(s.current) > 0 {
		joined := strings.Join(s.current, " ")
		if m := s.policy.EndMarkerLoose.FindStringSubmatch(joined); m != nil {
			s.emit(m[1], m[2], m[3])
		} else {
			s.current = nil
		}
	}
	return s.blocks
}

func (s *Segmenter) emit(positionBox, addressNumber, rhythm string) {
	s.blocks = append(s.blocks, Block{
		Lines:         s.current,
		PositionBox:   positionBox,
		AddressNumber: addressNumber,
		Rhythm:        rhythm,
	})
	s.current = nil
}
