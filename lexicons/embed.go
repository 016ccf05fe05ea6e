// Package lexicons embeds the versioned keyword lexicons shipped with
// sentilabel.
package lexicons

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed *.yaml
var files embed.FS

// Default is the lexicon used when no name or path is configured.
const Default = "optimized-v2"

// Read returns the raw YAML of the named builtin lexicon.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name + ".yaml")
}

// Names lists the builtin lexicons in lexical order.
func Names() []string {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}
