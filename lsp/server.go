// Package lsp serves parse diagnostics and document outlines over the
// Language Server Protocol.
package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/goparse/config"
	"github.com/dhamidi/goparse/golang/parser"

	_ "github.com/tliron/commonlog/simple"
)

type Server struct {
	cfg       config.LSP
	version   string
	documents *Documents
	handler   protocol.Handler
	server    *server.Server
	log       commonlog.Logger
}

func NewServer(version string, cfg config.LSP) *Server {
	if cfg.Name == "" {
		cfg.Name = config.Default().LSP.Name
	}
	log := commonlog.GetLogger(cfg.Name + ".lsp")
	s := &Server{
		cfg:       cfg,
		version:   version,
		documents: NewDocuments(parser.WithLogger(commonlog.GetLogger(cfg.Name + ".parser"))),
		log:       log,
	}

	s.handler = protocol.Handler{
		Initialize:                 s.initialize,
		Initialized:                s.initialized,
		Shutdown:                   s.shutdown,
		SetTrace:                   s.setTrace,
		TextDocumentDidOpen:        s.textDocumentDidOpen,
		TextDocumentDidChange:      s.textDocumentDidChange,
		TextDocumentDidClose:       s.textDocumentDidClose,
		TextDocumentDidSave:        s.textDocumentDidSave,
		TextDocumentDocumentSymbol: s.textDocumentDocumentSymbol,
	}

	s.server = server.NewServer(&s.handler, cfg.Name, false)

	return s
}

// Run serves on the transport named in the configuration.
func (s *Server) Run() error {
	s.log.Infof("starting %s %s on %s", s.cfg.Name, s.version, s.cfg.Transport)
	switch s.cfg.Transport {
	case "", config.TransportStdio:
		return s.server.RunStdio()
	case config.TransportTCP:
		return s.server.RunTCP(s.cfg.Address)
	case config.TransportWebSocket:
		return s.server.RunWebSocket(s.cfg.Address)
	}
	return fmt.Errorf("unknown transport %q", s.cfg.Transport)
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    s.cfg.Name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.log.Debugf("client initialized")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.documents.Update(params.TextDocument.URI, int(params.TextDocument.Version), []byte(params.TextDocument.Text))
	s.publish(ctx, doc)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	whole, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		s.log.Warningf("ignoring incremental change to %s", params.TextDocument.URI)
		return nil
	}
	doc := s.documents.Update(params.TextDocument.URI, int(params.TextDocument.Version), []byte(whole.Text))
	s.publish(ctx, doc)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.documents.Close(params.TextDocument.URI)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	var content []byte
	if params.Text != nil {
		content = []byte(*params.Text)
	} else {
		path, err := uriToPath(uri)
		if err != nil {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			s.log.Errorf("read %s: %s", path, err)
			return nil
		}
		content = data
	}
	version := 0
	if old := s.documents.Get(uri); old != nil {
		version = old.Version
	}
	s.publish(ctx, s.documents.Update(uri, version, content))
	return nil
}

func (s *Server) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	return Symbols(doc.Tree), nil
}

func (s *Server) publish(ctx *glsp.Context, doc *Document) {
	s.log.Debugf("%s: %d syntax errors", doc.Path, len(doc.Errors))
	version := protocol.UInteger(doc.Version)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     &version,
		Diagnostics: Diagnostics(doc.Errors, s.cfg.Name),
	})
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
