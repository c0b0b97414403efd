package schema

import (
	"strconv"
	"strings"
)

// Path builds JSON Pointer paths in a chain-safe way.
type Path struct {
	parts []string
}

// Root is the path of the whole document.
func Root() Path { return Path{} }

// Field returns the path of a member of the object at p.
func (p Path) Field(name string) Path {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return Path{parts: append(append([]string{}, p.parts...), esc)}
}

// Index returns the path of an element of the array at p.
func (p Path) Index(i int) Path {
	return Path{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Pointer renders the path as a JSON Pointer; the root renders as "/".
func (p Path) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p Path) String() string { return p.Pointer() }
