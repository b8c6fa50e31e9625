package docfactory_test

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/docfactory"
)

// ExampleManager_Create lets the Manager pick the factory from the extension
// and narrates the document lifecycle.
func ExampleManager_Create() {
	m := docfactory.NewManager()

	doc, err := m.Create("Quarterly-Report.pdf", 48200)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(doc.Describe())

	lines, err := m.Process(doc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, l := range lines {
		fmt.Println(l)
	}
	// Output:
	// PDF document "Quarterly-Report.pdf" (48 kB, unencrypted)
	// Opening PDF "Quarterly-Report.pdf" in the viewer
	// Saving PDF "Quarterly-Report.pdf" with flattened annotations
	// Closing PDF "Quarterly-Report.pdf"
}

// ExampleFactory calls the factory method directly; the caller never names
// the concrete document type.
func ExampleFactory() {
	factories := []docfactory.Factory{
		docfactory.WordFactory{},
		docfactory.ExcelFactory{Sheets: 4},
	}
	for _, f := range factories {
		doc, err := f.CreateDocument("notes", 7500)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(doc.Describe())
	}
	// Output:
	// Word document "notes.docx" (7.5 kB, 2 pages)
	// Excel workbook "notes.xlsx" (7.5 kB, 4 sheets)
}
