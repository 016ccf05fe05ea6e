package stemmer

import (
	_ "embed"
	"strings"
)

//go:embed data/roots_id.txt
var rootsData string

func parseRoots(data string) map[string]struct{} {
	roots := make(map[string]struct{}, 1024)
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, w := range strings.Fields(line) {
			roots[strings.ToLower(w)] = struct{}{}
		}
	}
	return roots
}
