// Package logging centralizes the structured logger the driver, CLI, and
// LSP server all log construction and parse diagnostics through, the way
// dhamidi-sai wires its LSP server to commonlog.
package logging

import (
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// Name is the commonlog logger name shared across the module.
const Name = "parsegrove"

// Get returns the shared logger, backed by commonlog's simple console
// backend registered by this package's import of commonlog/simple.
func Get() commonlog.Logger {
	return commonlog.GetLogger(Name)
}
