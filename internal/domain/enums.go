package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf": FileTypePDF,
}

// ExtractStrategy selects how records are reconstructed from a page.
type ExtractStrategy string

const (
	// StrategyAuto picks StrategyColumns when a header row is detected
	// anywhere in the document and StrategyLines otherwise.
	StrategyAuto ExtractStrategy = "auto"
	// StrategyLines segments plain text lines and applies regex heuristics.
	StrategyLines ExtractStrategy = "lines"
	// StrategyColumns infers column boundaries from header word positions.
	StrategyColumns ExtractStrategy = "columns"
)

// ValidStrategies enumerates the accepted mode values.
var ValidStrategies = map[ExtractStrategy]bool{
	StrategyAuto:    true,
	StrategyLines:   true,
	StrategyColumns: true,
}

// RemarkFallback selects what the Remark field falls back to when no
// article code was found in a record block.
type RemarkFallback string

const (
	// RemarkFallbackPreMarker uses the block text before the end-marker.
	RemarkFallbackPreMarker RemarkFallback = "premarker"
	// RemarkFallbackFullText uses the full block text.
	RemarkFallbackFullText RemarkFallback = "fulltext"
)

// ValidRemarkFallbacks enumerates the accepted remark_fallback values.
var ValidRemarkFallbacks = map[RemarkFallback]bool{
	RemarkFallbackPreMarker: true,
	RemarkFallbackFullText:  true,
}
