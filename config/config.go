// Package config decodes the Public Configuration Surface: a YAML document
// carrying an embedded grammar description text block (§4.9) that is run
// through grammardef to produce a ready-to-use parser.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/parsegrove/parsegrove/grammardef"
	"github.com/parsegrove/parsegrove/parser"
)

// Document is the YAML-decodable shape of a grammar configuration file.
type Document struct {
	Grammar string `yaml:"grammar"`
}

// Load decodes a YAML document from r and compiles its embedded grammar into
// a ready-to-use Parser.
func Load(r io.Reader) (*parser.Parser, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "config: decode yaml")
	}

	tbl, filter, root, err := grammardef.Compile(doc.Grammar)
	if err != nil {
		return nil, err
	}

	p, err := parser.New(tbl, filter, root)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFile is the file-based convenience form of Load, mirroring ava12-llx's
// split between programmatic grammar construction and a text front end.
func LoadFile(path string) (*parser.Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: open %s", path)
	}
	defer f.Close()

	return Load(f)
}
