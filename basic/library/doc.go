// Package library documents the builtin procedures of the language
// runtime: their names, kinds and signatures. It contains no parsing
// logic; the per-builtin tests pin down how calls to each builtin come
// out of the parser.
package library

import (
	"sort"
	"strings"
)

// Kind distinguishes value-returning builtins from statement-form
// builtins invoked in command position.
type Kind int

const (
	KindFunction Kind = iota
	KindStatement
)

func (k Kind) String() string {
	if k == KindStatement {
		return "Statement"
	}
	return "Function"
}

// Builtin describes one builtin procedure.
type Builtin struct {
	// Name is the canonical spelling, including a trailing $ for the
	// string-returning variants.
	Name string
	// Kind is Function or Statement.
	Kind Kind
	// Returns names the result type of a function builtin.
	Returns string
	// Summary is a one-line description.
	Summary string
}

var registry = map[string]Builtin{}

func register(b Builtin) {
	registry[strings.ToLower(b.Name)] = b
}

// Lookup finds a builtin by name, ignoring case.
func Lookup(name string) (Builtin, bool) {
	b, ok := registry[strings.ToLower(name)]
	return b, ok
}

// Names returns all registered builtin names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, b := range registry {
		names = append(names, b.Name)
	}
	sort.Strings(names)
	return names
}
