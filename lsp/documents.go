package lsp

import (
	"sync"

	"github.com/dhamidi/goparse/golang/lexer"
	"github.com/dhamidi/goparse/golang/parser"
)

// Document is the parsed state of one open file.
type Document struct {
	URI     string
	Path    string
	Version int
	Content []byte
	Tree    *parser.Node
	Errors  parser.ErrorList
}

// Documents holds the open documents of a session.
type Documents struct {
	mu   sync.RWMutex
	docs map[string]*Document
	opts []parser.Option
}

func NewDocuments(opts ...parser.Option) *Documents {
	return &Documents{docs: make(map[string]*Document), opts: opts}
}

// Update re-lexes and re-parses the document and replaces the stored one.
func (d *Documents) Update(uri string, version int, content []byte) *Document {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}
	tokens, _ := lexer.Tokenize(content, path)
	tree, errs := parser.ParseFile(tokens, d.opts...)

	doc := &Document{
		URI:     uri,
		Path:    path,
		Version: version,
		Content: content,
		Tree:    tree,
		Errors:  errs,
	}
	d.mu.Lock()
	d.docs[uri] = doc
	d.mu.Unlock()
	return doc
}

func (d *Documents) Get(uri string) *Document {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.docs[uri]
}

func (d *Documents) Close(uri string) {
	d.mu.Lock()
	delete(d.docs, uri)
	d.mu.Unlock()
}
