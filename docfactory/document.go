package docfactory

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Document is the product created by a Factory.
//
// Open, Save and Close advance the lifecycle and return the line of narration
// describing what happened, or ErrInvalidTransition.
type Document interface {
	ID() string
	Name() string
	Extension() string
	FileName() string
	Size() int64
	Kind() Kind
	State() State

	Open() (string, error)
	Save() (string, error)
	Close() (string, error)
	Describe() string
}

// bytesPerPage approximates how much text fits on one Word page.
const bytesPerPage = 3000

// defaultSheets is used when an ExcelFactory does not set Sheets.
const defaultSheets = 3

// base holds the fields and lifecycle rules shared by every document.
type base struct {
	id    string
	name  string
	kind  Kind
	size  int64
	state State
}

func newBase(kind Kind, name string, size int64) base {
	return base{
		id:    uuid.NewString(),
		name:  name,
		kind:  kind,
		size:  size,
		state: Created,
	}
}

func (b *base) ID() string        { return b.id }
func (b *base) Name() string      { return b.name }
func (b *base) Extension() string { return b.kind.Extension() }
func (b *base) FileName() string  { return b.name + b.kind.Extension() }
func (b *base) Size() int64       { return b.size }
func (b *base) Kind() Kind        { return b.kind }
func (b *base) State() State      { return b.state }

// transition moves the document to next if the current state allows it.
//
//	Open:  Created | Closed  → Opened
//	Save:  Opened  | Saved   → Saved
//	Close: Opened  | Saved   → Closed
func (b *base) transition(next State) error {
	ok := false
	switch next {
	case Opened:
		ok = b.state == Created || b.state == Closed
	case Saved, Closed:
		ok = b.state == Opened || b.state == Saved
	}
	if !ok {
		return fmt.Errorf("%w: %s %q cannot go from %s to %s",
			ErrInvalidTransition, b.kind, b.FileName(), b.state, next)
	}
	b.state = next
	return nil
}

// humanSize renders the size in SI units ("48 kB").
func (b *base) humanSize() string {
	if b.size < 0 {
		return "0 B"
	}
	return humanize.Bytes(uint64(b.size))
}

// WordDocument is a word-processor document; Pages is derived from its size.
type WordDocument struct {
	base
	Pages int
}

// Open opens the Word document.
func (d *WordDocument) Open() (string, error) {
	if err := d.transition(Opened); err != nil {
		return "", err
	}
	return fmt.Sprintf("Opening Word document %q in the word processor (%d pages)", d.FileName(), d.Pages), nil
}

// Save saves the Word document.
func (d *WordDocument) Save() (string, error) {
	if err := d.transition(Saved); err != nil {
		return "", err
	}
	return fmt.Sprintf("Saving Word document %q with tracked changes", d.FileName()), nil
}

// Close closes the Word document.
func (d *WordDocument) Close() (string, error) {
	if err := d.transition(Closed); err != nil {
		return "", err
	}
	return fmt.Sprintf("Closing Word document %q", d.FileName()), nil
}

// Describe returns a one-line summary.
func (d *WordDocument) Describe() string {
	return fmt.Sprintf("Word document %q (%s, %d pages)", d.FileName(), d.humanSize(), d.Pages)
}

// PDFDocument is a portable document, optionally encrypted.
type PDFDocument struct {
	base
	Encrypted bool
}

// Open opens the PDF in a read-only viewer.
func (d *PDFDocument) Open() (string, error) {
	if err := d.transition(Opened); err != nil {
		return "", err
	}
	if d.Encrypted {
		return fmt.Sprintf("Opening encrypted PDF %q after password prompt", d.FileName()), nil
	}
	return fmt.Sprintf("Opening PDF %q in the viewer", d.FileName()), nil
}

// Save flattens annotations into the PDF.
func (d *PDFDocument) Save() (string, error) {
	if err := d.transition(Saved); err != nil {
		return "", err
	}
	return fmt.Sprintf("Saving PDF %q with flattened annotations", d.FileName()), nil
}

// Close closes the PDF viewer.
func (d *PDFDocument) Close() (string, error) {
	if err := d.transition(Closed); err != nil {
		return "", err
	}
	return fmt.Sprintf("Closing PDF %q", d.FileName()), nil
}

// Describe returns a one-line summary.
func (d *PDFDocument) Describe() string {
	enc := "unencrypted"
	if d.Encrypted {
		enc = "encrypted"
	}
	return fmt.Sprintf("PDF document %q (%s, %s)", d.FileName(), d.humanSize(), enc)
}

// ExcelDocument is a spreadsheet with a number of sheets.
type ExcelDocument struct {
	base
	Sheets int
}

// Open opens the workbook.
func (d *ExcelDocument) Open() (string, error) {
	if err := d.transition(Opened); err != nil {
		return "", err
	}
	return fmt.Sprintf("Opening Excel workbook %q with %d sheets", d.FileName(), d.Sheets), nil
}

// Save recalculates formulas and saves the workbook.
func (d *ExcelDocument) Save() (string, error) {
	if err := d.transition(Saved); err != nil {
		return "", err
	}
	return fmt.Sprintf("Recalculating formulas and saving workbook %q", d.FileName()), nil
}

// Close closes the workbook.
func (d *ExcelDocument) Close() (string, error) {
	if err := d.transition(Closed); err != nil {
		return "", err
	}
	return fmt.Sprintf("Closing Excel workbook %q", d.FileName()), nil
}

// Describe returns a one-line summary.
func (d *ExcelDocument) Describe() string {
	return fmt.Sprintf("Excel workbook %q (%s, %d sheets)", d.FileName(), d.humanSize(), d.Sheets)
}
