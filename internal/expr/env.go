package expr

import (
	"fmt"
	"sort"
	"strings"
)

// Environment holds let bindings by name.
type Environment struct {
	bindings map[string]*Binding
}

func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]*Binding)}
}

func (e *Environment) Get(name string) (*Binding, bool) {
	b, ok := e.bindings[name]
	return b, ok
}

func (e *Environment) Set(b *Binding) error {
	if prev, ok := e.bindings[b.Name]; ok {
		return fmt.Errorf("%s: %q already bound at %s", b.Pos, b.Name, prev.Pos)
	}
	e.bindings[b.Name] = b
	return nil
}

func (e *Environment) String() string {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return "[" + strings.Join(names, " ") + "]"
}
