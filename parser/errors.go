package parser

import "strings"

// ConstructionError is returned by New when root references token ids
// absent from the supplied token table. It lists every unknown id found,
// not just the first, so an embedder can fix a grammar in one pass.
type ConstructionError struct {
	UnknownTokenIDs []string
}

func (e *ConstructionError) Error() string {
	return "parser: grammar references undeclared token id(s): " + strings.Join(e.UnknownTokenIDs, ", ")
}
