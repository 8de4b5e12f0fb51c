package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsegrove/parsegrove/config"
)

const yamlDoc = `
grammar: |
  tokens {
    A = /a/
    B = /b/
  }
  grammar {
    LINE = A, B ;
  }
  root: LINE
`

func TestLoad_DecodesAndCompiles(t *testing.T) {
	p, err := config.Load(strings.NewReader(yamlDoc))
	require.NoError(t, err)

	results, err := p.Parse("ab", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
}

func TestLoad_InvalidGrammarReturnsError(t *testing.T) {
	_, err := config.Load(strings.NewReader("grammar: |\n  tokens {\n  }\n  grammar {\n  }\n  root: NOPE\n"))
	require.Error(t, err)
}

func TestLoadFile_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grammar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	p, err := config.LoadFile(path)
	require.NoError(t, err)

	results, err := p.Parse("ab", 1)
	require.NoError(t, err)
	assert.True(t, results[0].Success)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
