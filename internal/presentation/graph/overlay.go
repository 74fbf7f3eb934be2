package graph

import (
	"strings"

	"github.com/aretw0/physrisk/pkg/schema"
)

// FailedObjects maps failing field paths, as reported by validation against
// root, to the names of the objects that own the failing fields.
func FailedObjects(root *schema.Object, paths []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range paths {
		name := owner(root, p).Name()
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func owner(root *schema.Object, path string) *schema.Object {
	current := root
	for _, segment := range strings.Split(path, ".") {
		if i := strings.IndexByte(segment, '['); i >= 0 {
			segment = segment[:i]
		}
		f, ok := current.Field(segment)
		if !ok {
			return current
		}
		child, _ := nestedObject(f.Type, f.Name)
		if child == nil {
			return current
		}
		current = child
	}
	return current
}
