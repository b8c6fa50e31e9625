package docfactory

import (
	"fmt"
	"strings"
)

// Factory is the factory method of the pattern: it decides which concrete
// Document to build. Implementations must return a document whose Kind
// equals Factory.Kind.
type Factory interface {
	Kind() Kind
	CreateDocument(name string, size int64) (Document, error)
}

// WordFactory builds *WordDocument values.
type WordFactory struct{}

// Kind reports Word.
func (WordFactory) Kind() Kind { return Word }

// CreateDocument builds a Word document; pages are estimated from size.
func (WordFactory) CreateDocument(name string, size int64) (Document, error) {
	name, err := validate(Word, name, size)
	if err != nil {
		return nil, err
	}
	pages := int(size / bytesPerPage)
	if pages < 1 {
		pages = 1
	}
	return &WordDocument{base: newBase(Word, name, size), Pages: pages}, nil
}

// PDFFactory builds *PDFDocument values. Encrypted applies to every
// document it creates.
type PDFFactory struct {
	Encrypted bool
}

// Kind reports PDF.
func (PDFFactory) Kind() Kind { return PDF }

// CreateDocument builds a PDF document.
func (f PDFFactory) CreateDocument(name string, size int64) (Document, error) {
	name, err := validate(PDF, name, size)
	if err != nil {
		return nil, err
	}
	return &PDFDocument{base: newBase(PDF, name, size), Encrypted: f.Encrypted}, nil
}

// ExcelFactory builds *ExcelDocument values with Sheets sheets
// (3 when Sheets <= 0).
type ExcelFactory struct {
	Sheets int
}

// Kind reports Excel.
func (ExcelFactory) Kind() Kind { return Excel }

// CreateDocument builds an Excel workbook.
func (f ExcelFactory) CreateDocument(name string, size int64) (Document, error) {
	name, err := validate(Excel, name, size)
	if err != nil {
		return nil, err
	}
	sheets := f.Sheets
	if sheets <= 0 {
		sheets = defaultSheets
	}
	return &ExcelDocument{base: newBase(Excel, name, size), Sheets: sheets}, nil
}

// validate trims name, strips a trailing canonical extension of kind and
// checks the common preconditions.
func validate(kind Kind, name string, size int64) (string, error) {
	name = strings.TrimSpace(name)
	if ext := kind.Extension(); strings.HasSuffix(strings.ToLower(name), ext) {
		name = name[:len(name)-len(ext)]
	}
	if name == "" {
		return "", fmt.Errorf("%w: %s document", ErrEmptyName, kind)
	}
	if size < 0 {
		return "", fmt.Errorf("%w: %s %q has size %d", ErrNegativeSize, kind, name, size)
	}
	return name, nil
}
