package objprint

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"runtime"
)

// Sentinel errors for programmatic error handling.
var (
	ErrDuplicateRegistration     = errors.New("duplicate registration")
	ErrUnsupportedTypeForCulture = errors.New("type does not support culture formatting")
	ErrInvalidSelectorUsage      = errors.New("invalid selector usage")
	ErrInvalidPropertySelector   = errors.New("invalid property selector")
	ErrUnsupportedNumericFormat  = errors.New("value does not support numeric formatting")
	ErrInvalidProfile            = errors.New("invalid profile")
)

// LineTerminator returns the line terminator of the host platform.
func LineTerminator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Config holds the printing rules for values of the owner type T.
// A Config is built once and may then render any number of values.
// It must not be modified while a render is in progress.
type Config[T any] struct {
	reg *registry
}

// For returns an empty Config for owner type T.
func For[T any]() *Config[T] {
	return &Config[T]{reg: newRegistry(reflect.TypeFor[T]())}
}

// Err returns every configuration error recorded so far, joined.
// It returns nil when the Config is valid.
func (c *Config[T]) Err() error {
	return errors.Join(c.reg.errs...)
}

// WithNewLine overrides the line terminator used for rendering.
func (c *Config[T]) WithNewLine(s string) *Config[T] {
	c.reg.newline = s
	return c
}

// ExcludeProperty suppresses the field whose address sel returns.
//
//	cfg.ExcludeProperty(func(p *Person) any { return &p.ID })
func (c *Config[T]) ExcludeProperty(sel func(*T) any) *Config[T] {
	prop, err := resolveSelector(sel)
	if err != nil {
		c.reg.fail(err)
		return c
	}
	c.reg.excludeProperty(prop)
	return c
}

// ExcludeType suppresses every property whose declared type is U.
func ExcludeType[U, T any](c *Config[T]) *Config[T] {
	c.reg.excludeType(reflect.TypeFor[U]())
	return c
}

// Print renders v to a string.
func (c *Config[T]) Print(v T) (string, error) {
	if err := c.Err(); err != nil {
		return "", err
	}
	// Taking the address keeps every nested value addressable, which type
	// formatters registered for pointer types rely on.
	return newPrinter(c.reg).print(reflect.ValueOf(&v).Elem(), 0)
}

// Write renders v and writes the text to w.
func (c *Config[T]) Write(w io.Writer, v T) error {
	s, err := c.Print(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// ToString renders v with an empty Config.
func ToString(v any) (string, error) {
	return For[any]().Print(v)
}

// ToStringWith builds a Config with configure and renders v with it.
func ToStringWith[T any](v T, configure func(*Config[T])) (string, error) {
	c := For[T]()
	if configure != nil {
		configure(c)
	}
	s, err := c.Print(v)
	if err != nil {
		return "", fmt.Errorf("print %T: %w", v, err)
	}
	return s, nil
}
