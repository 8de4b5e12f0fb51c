// Package lspserver is a thin glsp embedding that republishes a parser's
// line-by-line furthest-progress failures as Language Server Protocol
// diagnostics. It holds no cross-line state of its own: each
// didOpen/didChange re-parses the whole document one line at a time,
// matching the line-oriented driver it wraps.
package lspserver

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/parsegrove/parsegrove/internal/logging"
	"github.com/parsegrove/parsegrove/parser"
)

const lsName = "parsegrove"

// Server wraps a *parser.Parser with a glsp protocol.Handler.
type Server struct {
	parser  *parser.Parser
	handler protocol.Handler
	server  *server.Server
	version string
}

// New builds a Server that diagnoses text documents against p.
func New(p *parser.Parser, version string) *Server {
	ls := &Server{parser: p, version: version}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

// RunStdio serves the protocol over stdin/stdout until the client disconnects.
func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.diagnose(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}

	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.diagnose(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

// diagnose parses text one line at a time and publishes every
// furthest-progress failure as a Diagnostic; a line that parses
// successfully contributes none.
func (ls *Server) diagnose(ctx *glsp.Context, uri string, text string) {
	diags := ls.collectDiagnostics(text)
	logging.Get().Debugf("parsegrove: %s: %d diagnostic(s)", uri, len(diags))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

// collectDiagnostics is the ctx-independent half of diagnose, split out so
// it can be exercised without a live glsp session.
func (ls *Server) collectDiagnostics(text string) []protocol.Diagnostic {
	var diags []protocol.Diagnostic
	for i, line := range strings.Split(text, "\n") {
		lineNumber := uint(i + 1)

		results, err := ls.parser.Parse(line, lineNumber)
		if err != nil {
			diags = append(diags, protocol.Diagnostic{
				Range:    lineRange(lineNumber, 1),
				Severity: severityPtr(protocol.DiagnosticSeverityError),
				Message:  err.Error(),
			})
			continue
		}

		for _, r := range results {
			if r.Success {
				continue
			}
			diags = append(diags, failureDiagnostic(r))
		}
	}
	return diags
}

func failureDiagnostic(r parser.Result) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range:    lineRange(r.Err.Actual.Line, r.Err.Actual.Column),
		Severity: severityPtr(protocol.DiagnosticSeverityError),
		Message:  r.Err.Error(),
	}
}

func lineRange(line, col uint) protocol.Range {
	pos := protocol.Position{Line: uint32(line - 1), Character: uint32(col - 1)}
	return protocol.Range{Start: pos, End: pos}
}

func boolPtr(b bool) *bool { return &b }

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }
