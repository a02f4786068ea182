package objprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"

	"gopkg.in/yaml.v3"
)

// profile is the YAML form of a Config.
//
//	newline: "\n"
//	exclude:
//	  types: [uuid.UUID]
//	  properties: [ID]
//	types:
//	  int: {format: "%X"}
//	  float64: {culture: de-DE, grouping: true}
//	properties:
//	  Age: {format: "%d years old"}
//	  Name: {trim: 4}
type profile struct {
	NewLine    *string                 `yaml:"newline"`
	Exclude    profileExclude          `yaml:"exclude"`
	Types      map[string]typeRule     `yaml:"types"`
	Properties map[string]propertyRule `yaml:"properties"`
}

type profileExclude struct {
	Types      []string `yaml:"types"`
	Properties []string `yaml:"properties"`
}

type typeRule struct {
	Format   string `yaml:"format"`
	Culture  string `yaml:"culture"`
	Grouping bool   `yaml:"grouping"`
}

type propertyRule struct {
	Format string `yaml:"format"`
	Trim   *int   `yaml:"trim"`
	Width  *int   `yaml:"width"`
}

// ApplyProfile adds the rules of a YAML profile to c.
//
// Types are named as reflect prints them ("int", "time.Time", "uuid.UUID")
// and must be a built-in text type or reachable from the fields of T.
// Properties are the exported field names of T.
func (c *Config[T]) ApplyProfile(data []byte) *Config[T] {
	return c.LoadProfile(bytes.NewReader(data))
}

// LoadProfile reads a YAML profile from r and adds its rules to c.
func (c *Config[T]) LoadProfile(r io.Reader) *Config[T] {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p profile
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		c.reg.fail(fmt.Errorf("%w: %s", ErrInvalidProfile, err))
		return c
	}
	for _, err := range c.reg.apply(p) {
		c.reg.fail(err)
	}
	return c
}

func (r *registry) apply(p profile) []error {
	var errs []error
	if p.NewLine != nil {
		r.newline = *p.NewLine
	}
	known := knownTypes(r.owner)

	for _, name := range p.Exclude.Types {
		t, err := lookupType(known, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.excludeType(t)
	}
	for _, name := range p.Exclude.Properties {
		prop, err := propertyByName(r.owner, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.excludeProperty(prop)
	}

	for _, name := range sortedKeys(p.Types) {
		rule := p.Types[name]
		t, err := lookupType(known, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if rule.Culture != "" {
			culture, err := ParseCulture(rule.Culture)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: culture for %s: %s", ErrInvalidProfile, name, err))
			} else {
				if rule.Grouping {
					culture = culture.WithGrouping()
				}
				if err := r.registerCulture(t, culture); err != nil {
					errs = append(errs, err)
				}
			}
		}
		if rule.Format != "" {
			if err := r.registerTypeFormat(t, sprintf(rule.Format)); err != nil {
				errs = append(errs, err)
			}
		}
	}

	for _, name := range sortedKeys(p.Properties) {
		rule := p.Properties[name]
		prop, err := propertyByName(r.owner, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if rule.Format != "" {
			if err := r.registerPropertyFormat(prop, sprintf(rule.Format)); err != nil {
				errs = append(errs, err)
			}
		}
		switch {
		case rule.Trim != nil && rule.Width != nil:
			errs = append(errs, fmt.Errorf("%w: property %s sets both trim and width", ErrInvalidProfile, name))
		case rule.Trim != nil:
			if err := r.registerTrim(prop, trimRule{max: *rule.Trim}); err != nil {
				errs = append(errs, err)
			}
		case rule.Width != nil:
			if err := r.registerTrim(prop, trimRule{max: *rule.Width, width: true}); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}

func sprintf(format string) valueFunc {
	return func(v reflect.Value) string {
		return fmt.Sprintf(format, v.Interface())
	}
}

// knownTypes maps type names to the built-in text types and every type
// reachable through the fields of owner. Names printed the same by two
// distinct types map to nil.
func knownTypes(owner reflect.Type) map[string]reflect.Type {
	known := make(map[string]reflect.Type, len(terminalTypes))
	seen := make(map[reflect.Type]struct{})
	add := func(t reflect.Type) {
		seen[t] = struct{}{}
		if prev, ok := known[t.String()]; ok && prev != t {
			known[t.String()] = nil
			return
		}
		known[t.String()] = t
	}
	for t := range terminalTypes {
		add(t)
	}
	var walk func(t reflect.Type)
	walk = func(t reflect.Type) {
		t = indirect(t)
		if _, ok := seen[t]; ok {
			return
		}
		add(t)
		for _, f := range fieldsOf(t) {
			walk(f.typ)
		}
	}
	walk(owner)
	return known
}

func lookupType(known map[string]reflect.Type, name string) (reflect.Type, error) {
	t, ok := known[name]
	switch {
	case !ok:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidProfile, name)
	case t == nil:
		return nil, fmt.Errorf("%w: type name %q is ambiguous", ErrInvalidProfile, name)
	}
	return t, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
