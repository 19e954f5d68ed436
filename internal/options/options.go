// Package options holds named, typed settings that can be changed at run
// time from the command prompt.
package options

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownOption is returned when a name is not registered.
var ErrUnknownOption = errors.New("unknown option")

// ErrDuplicateOption is returned when a name is registered twice.
var ErrDuplicateOption = errors.New("option already registered")

// Option is a setting that can be parsed from text.
type Option interface {
	// Set parses text and stores the value, running the change callback.
	Set(text string) error
	// Reset restores the default value, running the change callback.
	Reset()
	String() string
}

// Value is an Option holding a T.
type Value[T any] struct {
	def      T
	cur      T
	parse    func(string) (T, error)
	format   func(T) string
	onChange func(T)
}

// New creates an option with a default value, a parser and an optional
// change callback.
func New[T any](def T, parse func(string) (T, error), onChange func(T)) *Value[T] {
	return &Value[T]{
		def:      def,
		cur:      def,
		parse:    parse,
		format:   func(v T) string { return fmt.Sprint(v) },
		onChange: onChange,
	}
}

// NewFloat creates a float64 option.
func NewFloat(def float64, onChange func(float64)) *Value[float64] {
	v := New(def, func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}, onChange)
	v.format = func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
	return v
}

// NewBool creates a bool option.
func NewBool(def bool, onChange func(bool)) *Value[bool] {
	return New(def, func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}, onChange)
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.cur
}

// Default returns the default value.
func (v *Value[T]) Default() T {
	return v.def
}

func (v *Value[T]) Set(text string) error {
	parsed, err := v.parse(text)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", text, err)
	}
	v.store(parsed)
	return nil
}

// SetValue stores a typed value directly.
func (v *Value[T]) SetValue(val T) {
	v.store(val)
}

func (v *Value[T]) Reset() {
	v.store(v.def)
}

func (v *Value[T]) String() string {
	return v.format(v.cur)
}

func (v *Value[T]) store(val T) {
	v.cur = val
	if v.onChange != nil {
		v.onChange(val)
	}
}

// Registry maps option names to options.
type Registry struct {
	opts map[string]Option
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{opts: make(map[string]Option)}
}

// Register adds opt under name.
func (r *Registry) Register(name string, opt Option) error {
	if _, ok := r.opts[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateOption, name)
	}
	r.opts[name] = opt
	return nil
}

// Get returns the option registered under name.
func (r *Registry) Get(name string) (Option, bool) {
	opt, ok := r.opts[name]
	return opt, ok
}

// Set parses text into the named option.
func (r *Registry) Set(name, text string) error {
	opt, ok := r.opts[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	if err := opt.Set(text); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Reset restores the named option to its default.
func (r *Registry) Reset(name string) error {
	opt, ok := r.opts[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	opt.Reset()
	return nil
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.opts))
	for name := range r.opts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
