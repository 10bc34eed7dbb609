// Package commands is the terminal command registry and dispatcher.
//
// A Registry is built once from descriptors and is read-only afterwards, so
// it may be shared between the terminal UI, the line shell and the HTTP API.
package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/master-bogdan/termfolio/content"
)

// Executor renders the output of a command. It must not touch registry
// state and performs no I/O beyond static data.
type Executor func(args []string) content.Node

type Descriptor struct {
	Name        string
	Description string
	Hidden      bool
	Execute     Executor
}

type Registry struct {
	order []string
	table map[string]Descriptor
}

func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	registry := &Registry{
		order: make([]string, 0, len(descriptors)),
		table: make(map[string]Descriptor, len(descriptors)),
	}
	for _, descriptor := range descriptors {
		name := strings.ToLower(strings.TrimSpace(descriptor.Name))
		if len(name) == 0 || strings.ContainsAny(name, " \t\r\n") {
			return nil, fmt.Errorf("invalid command name %q", descriptor.Name)
		}
		if descriptor.Execute == nil {
			return nil, fmt.Errorf("command %q has no executor", name)
		}
		if _, duplicate := registry.table[name]; duplicate {
			return nil, fmt.Errorf("command %q registered twice", name)
		}
		descriptor.Name = name
		registry.order = append(registry.order, name)
		registry.table[name] = descriptor
	}
	return registry, nil
}

// Lookup is an exact, case-insensitive match.
func (it *Registry) Lookup(name string) (Descriptor, bool) {
	descriptor, ok := it.table[strings.ToLower(name)]
	return descriptor, ok
}

// Visible lists non-hidden command names in registration order.
func (it *Registry) Visible() []string {
	result := []string{}
	for _, descriptor := range it.Descriptors(false) {
		result = append(result, descriptor.Name)
	}
	return result
}

// Descriptors returns either the visible or the hidden descriptors in
// registration order.
func (it *Registry) Descriptors(hidden bool) []Descriptor {
	result := []Descriptor{}
	for _, name := range it.order {
		descriptor := it.table[name]
		if descriptor.Hidden == hidden {
			result = append(result, descriptor)
		}
	}
	return result
}

func (it *Registry) Names() []string {
	return append([]string{}, it.order...)
}

// Complete returns visible names starting with prefix, sorted.
func (it *Registry) Complete(prefix string) []string {
	prefix = strings.ToLower(prefix)
	result := []string{}
	for _, name := range it.Visible() {
		if strings.HasPrefix(name, prefix) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}
