package objprint

import (
	"fmt"
	"reflect"
)

// valueFunc renders a single value to text without a line terminator.
type valueFunc func(reflect.Value) string

// trimRule caps the rendered text of a string property.
type trimRule struct {
	max   int
	width bool // measure terminal columns instead of characters
}

// registry holds every customization of one Config. It is written during
// configuration and only read by the printer.
type registry struct {
	owner   reflect.Type
	newline string

	excludedTypes map[reflect.Type]struct{}
	excludedProps map[Property]struct{}
	typeFormats   map[reflect.Type]valueFunc
	propFormats   map[Property]valueFunc
	cultures      map[reflect.Type]Culture
	trims         map[Property]trimRule

	errs []error
}

func newRegistry(owner reflect.Type) *registry {
	return &registry{
		owner:         owner,
		newline:       LineTerminator(),
		excludedTypes: make(map[reflect.Type]struct{}),
		excludedProps: make(map[Property]struct{}),
		typeFormats:   make(map[reflect.Type]valueFunc),
		propFormats:   make(map[Property]valueFunc),
		cultures:      make(map[reflect.Type]Culture),
		trims:         make(map[Property]trimRule),
	}
}

func (r *registry) fail(err error) {
	r.errs = append(r.errs, err)
}

func (r *registry) excludeType(t reflect.Type) {
	r.excludedTypes[indirect(t)] = struct{}{}
}

func (r *registry) excludeProperty(p Property) {
	r.excludedProps[p] = struct{}{}
}

func (r *registry) excluded(f field) bool {
	if _, ok := r.excludedProps[f.prop]; ok {
		return true
	}
	_, ok := r.excludedTypes[indirect(f.typ)]
	return ok
}

func (r *registry) registerTypeFormat(t reflect.Type, fn valueFunc) error {
	t = indirect(t)
	if _, ok := r.typeFormats[t]; ok {
		return fmt.Errorf("%w: formatter for type %s", ErrDuplicateRegistration, t)
	}
	r.typeFormats[t] = fn
	return nil
}

func (r *registry) registerPropertyFormat(p Property, fn valueFunc) error {
	if _, ok := r.propFormats[p]; ok {
		return fmt.Errorf("%w: formatter for property %s", ErrDuplicateRegistration, p)
	}
	r.propFormats[p] = fn
	return nil
}

func (r *registry) registerCulture(t reflect.Type, c Culture) error {
	t = indirect(t)
	if !supportsCulture(t) {
		return fmt.Errorf("%w: %s", ErrUnsupportedTypeForCulture, t)
	}
	if _, ok := r.cultures[t]; ok {
		return fmt.Errorf("%w: culture for type %s", ErrDuplicateRegistration, t)
	}
	r.cultures[t] = c
	return nil
}

func (r *registry) registerTrim(p Property, rule trimRule) error {
	if rule.max < 0 {
		return fmt.Errorf("%w: negative trim length %d for %s", ErrInvalidSelectorUsage, rule.max, p)
	}
	if p.typ().Kind() != reflect.String {
		return fmt.Errorf("%w: trim on non-string property %s", ErrInvalidSelectorUsage, p)
	}
	if _, ok := r.trims[p]; ok {
		return fmt.Errorf("%w: trim for property %s", ErrDuplicateRegistration, p)
	}
	r.trims[p] = rule
	return nil
}
