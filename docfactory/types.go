package docfactory

import (
	"errors"
	"strings"
)

// Sentinel errors for document creation and lifecycle.
var (
	// ErrEmptyName is returned when a document name is blank.
	ErrEmptyName = errors.New("docfactory: document name is empty")

	// ErrNegativeSize is returned when a document size is below zero.
	ErrNegativeSize = errors.New("docfactory: document size is negative")

	// ErrUnsupportedExtension is returned when no factory handles an extension.
	ErrUnsupportedExtension = errors.New("docfactory: unsupported extension")

	// ErrDuplicateFactory is returned when an extension already has a factory.
	ErrDuplicateFactory = errors.New("docfactory: factory already registered")

	// ErrNilFactory is returned when a nil Factory is supplied.
	ErrNilFactory = errors.New("docfactory: factory is nil")

	// ErrNilDocument is returned when a nil Document is processed.
	ErrNilDocument = errors.New("docfactory: document is nil")

	// ErrInvalidTransition is returned when a lifecycle step is not allowed
	// from the document's current state.
	ErrInvalidTransition = errors.New("docfactory: invalid state transition")
)

// Kind identifies a document family.
type Kind int

const (
	// Word is a word-processor document (.docx).
	Word Kind = iota
	// PDF is a portable document (.pdf).
	PDF
	// Excel is a spreadsheet (.xlsx).
	Excel
)

// String returns the human name of the kind.
func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case PDF:
		return "PDF"
	case Excel:
		return "Excel"
	default:
		return "Unknown"
	}
}

// Extension returns the canonical file extension, including the dot.
func (k Kind) Extension() string {
	switch k {
	case Word:
		return ".docx"
	case PDF:
		return ".pdf"
	case Excel:
		return ".xlsx"
	default:
		return ""
	}
}

// normalizeExt lower-cases ext and guarantees a leading dot.
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// State is a step of the document lifecycle.
type State int

const (
	// Created is the state right after a factory built the document.
	Created State = iota
	// Opened means the document is open for editing.
	Opened
	// Saved means the latest edits were persisted.
	Saved
	// Closed means the document was closed; it may be reopened.
	Closed
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Opened:
		return "opened"
	case Saved:
		return "saved"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
