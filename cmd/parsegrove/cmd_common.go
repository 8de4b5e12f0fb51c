package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/parsegrove/parsegrove/config"
	"github.com/parsegrove/parsegrove/grammardef"
)

// readGrammarDoc loads the YAML envelope at path and parses its embedded
// grammar text into a grammardef.Document, without compiling it into a
// token table and expression tree yet.
func readGrammarDoc(path string) (*grammardef.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc config.Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return grammardef.Parse(doc.Grammar)
}
