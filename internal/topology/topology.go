// Package topology implements the grid shapes a puzzle can be played on.
//
// Both shapes number their directions clockwise starting from Left, which
// lets the engine rotate stubs and find facing directions without knowing
// the shape. Shapes register themselves with the registry on import.
package topology

import (
	"strings"

	"github.com/vovakirdan/wirelight/internal/core"
)

// dirNames is a fixed clockwise list of direction names.
type dirNames []string

func (n dirNames) name(d core.Dir) string {
	if int(d) < len(n) {
		return n[d]
	}
	return "unknown"
}

func (n dirNames) parse(s string) (core.Dir, bool) {
	for i, name := range n {
		if name == s {
			return core.Dir(i), true
		}
	}
	return 0, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
