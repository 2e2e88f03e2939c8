// Package fmtmap expands "{name}" placeholders from a registry of named value
// producers.
//
// A Resolver is created once per process and owns its cache: a cacheable
// producer is computed at most once for the Resolver's lifetime, any other
// producer at most once per Expand call. Literal braces are written as "{{"
// and "}}".
package fmtmap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrDuplicate          = errors.New("placeholder already registered")
	ErrInvalidName        = errors.New("invalid placeholder name")
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
)

// Producer is a named value source queried for its current string value.
type Producer interface {
	Value() (string, error)
}

// ProducerFunc adapts a plain function to Producer.
type ProducerFunc func() (string, error)

func (f ProducerFunc) Value() (string, error) { return f() }

// Static returns a producer that always yields s.
func Static(s string) Producer {
	return ProducerFunc(func() (string, error) { return s, nil })
}

// ResolveError reports a producer that failed while expanding a template.
type ResolveError struct {
	Name string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolving {%s}: %v", e.Name, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// SyntaxError reports a malformed template.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template syntax error at offset %d: %s", e.Offset, e.Msg)
}

type entry struct {
	producer  Producer
	cacheable bool
}

// Resolver holds registered producers and the values of cacheable ones.
type Resolver struct {
	entries map[string]entry
	cached  map[string]string
}

// New returns an empty Resolver.
func New() *Resolver {
	return &Resolver{
		entries: make(map[string]entry),
		cached:  make(map[string]string),
	}
}

// Register adds a producer under name. Registering a name twice fails with
// ErrDuplicate.
func (r *Resolver) Register(name string, p Producer, cacheable bool) error {
	if name == "" || strings.ContainsAny(name, "{}:") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if p == nil {
		return fmt.Errorf("%w: %q has no producer", ErrInvalidName, name)
	}
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.entries[name] = entry{producer: p, cacheable: cacheable}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Resolver) MustRegister(name string, p Producer, cacheable bool) {
	if err := r.Register(name, p, cacheable); err != nil {
		panic(err)
	}
}

// Names returns the registered placeholder names in sorted order.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expand replaces every placeholder in template with its producer's value.
func (r *Resolver) Expand(template string) (string, error) {
	var b strings.Builder
	b.Grow(len(template))
	local := make(map[string]string)

	err := scan(template, func(lit string) {
		b.WriteString(lit)
	}, func(name string) error {
		v, err := r.value(name, local)
		if err != nil {
			return err
		}
		b.WriteString(v)
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Check validates template syntax and placeholder names without calling any
// producer.
func (r *Resolver) Check(template string) error {
	return scan(template, func(string) {}, func(name string) error {
		if _, ok := r.entries[name]; !ok {
			return fmt.Errorf("%w: {%s}", ErrUnknownPlaceholder, name)
		}
		return nil
	})
}

func (r *Resolver) value(name string, local map[string]string) (string, error) {
	if v, ok := r.cached[name]; ok {
		return v, nil
	}
	if v, ok := local[name]; ok {
		return v, nil
	}
	e, ok := r.entries[name]
	if !ok {
		return "", fmt.Errorf("%w: {%s}", ErrUnknownPlaceholder, name)
	}
	v, err := e.producer.Value()
	if err != nil {
		return "", &ResolveError{Name: name, Err: err}
	}
	if e.cacheable {
		r.cached[name] = v
	} else {
		local[name] = v
	}
	return v, nil
}

// scan walks template, handing literal runs to lit and placeholder names to
// field. Scanning stops at the first error.
func scan(template string, lit func(string), field func(string) error) error {
	start := 0
	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				lit(template[start : i+1])
				i++
				start = i + 1
				continue
			}
			end := strings.IndexAny(template[i+1:], "{}")
			if end < 0 || template[i+1+end] != '}' {
				return &SyntaxError{Offset: i, Msg: "unterminated placeholder"}
			}
			name := template[i+1 : i+1+end]
			if name == "" {
				return &SyntaxError{Offset: i, Msg: "empty placeholder"}
			}
			lit(template[start:i])
			if err := field(name); err != nil {
				return err
			}
			i += end + 1
			start = i + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				lit(template[start : i+1])
				i++
				start = i + 1
				continue
			}
			return &SyntaxError{Offset: i, Msg: "unmatched '}'"}
		}
	}
	lit(template[start:])
	return nil
}
