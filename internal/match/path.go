package match

import "strings"

// Resolve extracts the value at a dot-separated path from a nested document.
// It walks one segment at a time; if the current node is not a mapping or the
// segment key is absent, resolution stops and returns (nil, false). Missing
// paths are never an error.
func Resolve(doc map[string]any, path string) (any, bool) {
	var current any = doc
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, ok := node[segment]
		if !ok {
			return nil, false
		}
		current = value
	}
	return current, true
}
