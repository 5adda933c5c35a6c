package domain

import "errors"

var (
	ErrMissingFile         = errors.New("file field is required")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyFile           = errors.New("uploaded file is empty")
	ErrExtractionFailed    = errors.New("could not extract text from document")
	ErrInvalidStrategy     = errors.New("invalid extraction mode")
	ErrInvalidMergeOption  = errors.New("invalid merge contact option")
	ErrInvalidRemarkOption = errors.New("invalid remark fallback option")
)
