// Package words supplies keyword classification tables for the matlex
// engine. Default tables for every dialect are embedded as YAML; callers may
// also load replacement tables from their own files in the same format.
package words

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomatlex/pkg/matlex"
)

//go:embed tables.yaml
var defaultData []byte

// tableSpec is the YAML shape of one dialect's tables. Each field is a flat
// whitespace-separated word list.
type tableSpec struct {
	Keywords   string `yaml:"keywords"`
	Attributes string `yaml:"attributes"`
	Commands   string `yaml:"commands"`
	Function1  string `yaml:"function1"`
	Function2  string `yaml:"function2"`
}

func (s tableSpec) build() *matlex.KeywordTables {
	return &matlex.KeywordTables{
		Keywords:   matlex.NewWordSet(s.Keywords),
		Attributes: matlex.NewWordSet(s.Attributes),
		Commands:   matlex.NewWordSet(s.Commands),
		Function1:  matlex.NewWordSet(s.Function1),
		Function2:  matlex.NewWordSet(s.Function2),
	}
}

var (
	defaultsOnce sync.Once
	defaults     map[string]*matlex.KeywordTables
)

// Tables returns the embedded default tables for a dialect. The returned
// tables are shared and read-only; they must not be mutated.
func Tables(d matlex.Dialect) *matlex.KeywordTables {
	defaultsOnce.Do(func() {
		parsed, err := Parse(defaultData)
		if err != nil {
			// The embedded data is authored with the package; a parse
			// failure is a build defect, not a runtime condition.
			panic(fmt.Sprintf("words: embedded tables: %v", err))
		}
		defaults = parsed
	})
	if t, ok := defaults[d.String()]; ok {
		return t
	}
	return matlex.NewKeywordTables()
}

// Parse reads a YAML table document mapping dialect names to word lists.
func Parse(data []byte) (map[string]*matlex.KeywordTables, error) {
	var raw map[string]tableSpec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse keyword tables: %w", err)
	}
	tables := make(map[string]*matlex.KeywordTables, len(raw))
	for name, spec := range raw {
		if _, err := matlex.ParseDialect(name); err != nil {
			return nil, fmt.Errorf("keyword tables: %w", err)
		}
		tables[name] = spec.build()
	}
	return tables, nil
}

// LoadFile parses a user-supplied table file.
func LoadFile(path string) (map[string]*matlex.KeywordTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyword tables: %w", err)
	}
	return Parse(data)
}
