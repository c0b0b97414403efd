package source

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a duplicate key found in a mapping. Line and column
// are zero when the input format does not track positions.
type DuplicateKeyError struct {
	Key       string
	Path      string // JSON Pointer of the mapping holding the key
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("duplicate key %q in %s", e.Key, e.Path)
	}
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// Options controls how strictly documents are read.
type Options struct {
	// AllowDuplicates keeps the last value of a repeated key instead of failing.
	AllowDuplicates bool
	// OnDuplicate, when set, is called for every repeated key that is allowed through.
	OnDuplicate func(*DuplicateKeyError)
}

// ReadYAML decodes the first YAML document of r into JSON-compatible Go values
// (map[string]any, []any, string, bool, int64, float64, nil). An empty stream yields nil.
func ReadYAML(r io.Reader, opt Options) (any, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	w := &yamlWalker{opt: opt}
	return w.node(&root, nil)
}

type yamlWalker struct {
	opt   Options
	depth int
}

// maxAliasDepth bounds alias expansion so that self-referencing anchors terminate.
const maxAliasDepth = 64

func (w *yamlWalker) node(n *yaml.Node, path []string) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return w.node(n.Content[0], path)
	case yaml.AliasNode:
		if w.depth >= maxAliasDepth {
			return nil, fmt.Errorf("yaml: alias nesting deeper than %d at %d:%d", maxAliasDepth, n.Line, n.Column)
		}
		w.depth++
		defer func() { w.depth-- }()
		return w.node(n.Alias, path)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			key := k.Value
			if pos, dup := first[key]; dup {
				de := &DuplicateKeyError{Key: key, Path: pointer(path), FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
				if !w.opt.AllowDuplicates {
					return nil, de
				}
				if w.opt.OnDuplicate != nil {
					w.opt.OnDuplicate(de)
				}
			}
			first[key] = [2]int{k.Line, k.Column}
			val, err := w.node(n.Content[i+1], append(path, key))
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := w.node(c, append(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalar(n), nil
	}
	return nil, nil
}

func scalar(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case "!!int":
		// int64 avoids overflow surprises; callers coerce later
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return i
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f
		}
	}
	// strings, timestamps and anything unrecognised keep their source text
	return n.Value
}

func pointer(path []string) string {
	if len(path) == 0 {
		return "/"
	}
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strings.ReplaceAll(strings.ReplaceAll(p, "~", "~0"), "/", "~1")
	}
	return "/" + strings.Join(parts, "/")
}
