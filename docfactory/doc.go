// Package docfactory demonstrates the Factory Method creational pattern on a
// tiny document-management scenario.
//
// What
//
//   - Document is the product interface: Word, PDF and Excel documents share
//     one lifecycle (Created → Opened → Saved → Closed) but narrate it in
//     their own way.
//   - Factory is the factory method: CreateDocument(name, size) returns a
//     Document whose concrete type is decided by the factory, never by the
//     caller.
//   - Manager is the creator. It only knows the Factory interface, resolves a
//     factory from a file extension and drives the lifecycle of whatever
//     document comes back.
//
// Why
//
//	Code that needs "a document for report.pdf" should not name *PDFDocument.
//	Adding a new format means writing one Factory and calling Register; the
//	Manager and every caller stay untouched.
//
// Usage
//
//	m := docfactory.NewManager()
//	doc, err := m.Create("report.pdf", 48_000)
//	if err != nil {
//		// ErrEmptyName, ErrNegativeSize or ErrUnsupportedExtension
//	}
//	lines, err := m.Process(doc) // open → save → close narration
//
// Errors
//
//   - ErrEmptyName            if the document name is blank.
//   - ErrNegativeSize         if size < 0.
//   - ErrUnsupportedExtension if no factory is registered for the extension.
//   - ErrDuplicateFactory     if a factory for the same extension is registered twice.
//   - ErrNilFactory           if a nil Factory is passed to the Manager.
//   - ErrInvalidTransition    if a lifecycle step is illegal (e.g. saving a closed document).
//
// Non-goal: this is not a document-management system. Documents hold no
// content; only the mechanics of the pattern are modelled.
package docfactory
