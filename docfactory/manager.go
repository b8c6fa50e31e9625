package docfactory

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Manager is the creator side of the pattern. It resolves a Factory from a
// file extension and drives documents through their lifecycle without ever
// naming a concrete document type.
//
// A Manager is safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	factories map[string]Factory // keyed by canonical extension
	kinds     []Kind             // registration order
	docs      []Document
}

// NewEmptyManager returns a Manager with no factories registered.
func NewEmptyManager() *Manager {
	return &Manager{factories: make(map[string]Factory)}
}

// NewManager returns a Manager with the Word, PDF and Excel factories
// registered, in that order.
func NewManager() *Manager {
	m := NewEmptyManager()
	for _, f := range []Factory{WordFactory{}, PDFFactory{}, ExcelFactory{}} {
		// built-in extensions are distinct, Register cannot fail here
		_ = m.Register(f)
	}
	return m
}

// Register adds f for its kind's extension.
// Returns ErrNilFactory or ErrDuplicateFactory.
func (m *Manager) Register(f Factory) error {
	if f == nil {
		return ErrNilFactory
	}
	ext := f.Kind().Extension()
	if ext == "" {
		return fmt.Errorf("%w: kind %d has no extension", ErrUnsupportedExtension, int(f.Kind()))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.factories[ext]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFactory, ext)
	}
	m.factories[ext] = f
	m.kinds = append(m.kinds, f.Kind())
	return nil
}

// Kinds lists the registered kinds in registration order.
func (m *Manager) Kinds() []Kind {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Kind, len(m.kinds))
	copy(out, m.kinds)
	return out
}

// FactoryFor returns the factory registered for ext (with or without the
// leading dot, any case).
func (m *Manager) FactoryFor(ext string) (Factory, error) {
	key := normalizeExt(ext)
	m.mu.RLock()
	f, ok := m.factories[key]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	return f, nil
}

// Create builds a document for fileName, choosing the factory from its
// extension. The extension is stripped to form the document name.
func (m *Manager) Create(fileName string, size int64) (Document, error) {
	fileName = strings.TrimSpace(fileName)
	ext := filepath.Ext(fileName)
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnsupportedExtension, fileName)
	}
	f, err := m.FactoryFor(ext)
	if err != nil {
		return nil, err
	}
	return m.CreateWith(f, strings.TrimSuffix(fileName, ext), size)
}

// CreateWith builds a document through an explicit factory, which need not
// be registered.
func (m *Manager) CreateWith(f Factory, name string, size int64) (Document, error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	doc, err := f.CreateDocument(name, size)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.docs = append(m.docs, doc)
	m.mu.Unlock()
	return doc, nil
}

// Process opens, saves and closes doc, returning the narration of each step.
// It stops at the first failing step and returns the lines produced so far.
func (m *Manager) Process(doc Document) ([]string, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	steps := []func() (string, error){doc.Open, doc.Save, doc.Close}
	lines := make([]string, 0, len(steps))
	for _, step := range steps {
		line, err := step()
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Documents returns the documents created through this Manager, oldest first.
func (m *Manager) Documents() []Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Document, len(m.docs))
	copy(out, m.docs)
	return out
}
