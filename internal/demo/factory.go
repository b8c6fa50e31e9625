package demo

import (
	"context"
	"errors"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlearn/docfactory"
)

// Factory walks through the Factory Method lesson.
func Factory(ctx context.Context, env Env) error {
	p := env.Out
	cfg := env.Config.Factory
	log := env.logger()

	p.Title("Factory Method: document management")

	// 1) Register concrete factories with the creator.
	p.Step("Registering factories with the document manager")
	m := docfactory.NewEmptyManager()
	factories := []docfactory.Factory{
		docfactory.WordFactory{},
		docfactory.PDFFactory{Encrypted: cfg.EncryptPDF},
		docfactory.ExcelFactory{Sheets: cfg.ExcelSheets},
	}
	for _, f := range factories {
		if err := m.Register(f); err != nil {
			return err
		}
		p.Line("%-6s factory handles %s", f.Kind(), f.Kind().Extension())
	}
	p.Note("the manager only knows the Factory interface, never a concrete document type")

	// 2) Ask the manager for documents by file name.
	p.Step("Creating documents from file names")
	var docs []docfactory.Document
	for _, spec := range cfg.Documents {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, err := m.Create(spec.File, spec.Size)
		switch {
		case errors.Is(err, docfactory.ErrUnsupportedExtension):
			p.Fail("%s: no factory registered for this extension", spec.File)
			continue
		case err != nil:
			p.Fail("%s: %v", spec.File, err)
			continue
		}
		log.Debug("document created", zap.String("file", doc.FileName()), zap.String("id", doc.ID()))
		p.Ok("%s", doc.Describe())
		docs = append(docs, doc)
	}

	// 3) Drive each document through the same lifecycle.
	p.Step("Running open → save → close on every document")
	for _, doc := range docs {
		lines, err := m.Process(doc)
		if err != nil {
			return err
		}
		for _, l := range lines {
			p.Line("%s", l)
		}
	}
	p.Note("one loop, three behaviours: each document narrates its own lifecycle")

	// 4) Lifecycle rules still apply.
	if len(docs) > 0 {
		p.Step("Breaking the lifecycle on purpose")
		doc := docs[0]
		if _, err := doc.Save(); errors.Is(err, docfactory.ErrInvalidTransition) {
			p.Fail("%v", err)
			p.Note("a closed document must be reopened before it can be saved again")
		}
	}

	// 5) Summary.
	p.Step("Documents created by the manager")
	rows := make([][]string, 0, len(docs))
	for _, d := range m.Documents() {
		rows = append(rows, []string{d.FileName(), d.Kind().String(), humanize.Bytes(uint64(d.Size())), d.State().String()})
	}
	p.Table([]string{"File", "Kind", "Size", "State"}, rows)
	return nil
}
