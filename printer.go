package objprint

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// terminalTypes render with their default text form when no rule applies.
var terminalTypes = map[reflect.Type]struct{}{
	reflect.TypeFor[int]():           {},
	reflect.TypeFor[int8]():          {},
	reflect.TypeFor[int16]():         {},
	reflect.TypeFor[int32]():         {},
	reflect.TypeFor[int64]():         {},
	reflect.TypeFor[uint]():          {},
	reflect.TypeFor[uint8]():         {},
	reflect.TypeFor[uint16]():        {},
	reflect.TypeFor[uint32]():        {},
	reflect.TypeFor[uint64]():        {},
	reflect.TypeFor[float32]():       {},
	reflect.TypeFor[float64]():       {},
	reflect.TypeFor[string]():        {},
	reflect.TypeFor[bool]():          {},
	reflect.TypeFor[time.Time]():     {},
	reflect.TypeFor[time.Duration](): {},
}

// valueRule renders a non-nil value by its runtime type. A rule that does
// not apply returns ok == false and the next rule is tried.
type valueRule func(p *printer, v reflect.Value) (s string, ok bool, err error)

// valueRules are evaluated top to bottom; the order is significant. Values
// no rule claims are rendered as composites.
var valueRules = []valueRule{
	(*printer).byCulture,
	(*printer).byTypeFormat,
	(*printer).byTerminal,
}

type printer struct {
	reg *registry
	nl  string
	// path holds the pointers followed on the way from the root to the value
	// being rendered.
	path map[visit]struct{}
}

// visit is keyed by type as well as address: a struct and its first field
// share an address.
type visit struct {
	addr uintptr
	typ  reflect.Type
}

func newPrinter(reg *registry) *printer {
	return &printer{reg: reg, nl: reg.newline, path: make(map[visit]struct{})}
}

func (p *printer) print(v reflect.Value, depth int) (string, error) {
	v, ptr, ok := deref(v)
	if !ok {
		return "null" + p.nl, nil
	}
	for _, rule := range valueRules {
		s, ok, err := rule(p, v)
		if err != nil {
			return "", err
		}
		if ok {
			return s + p.nl, nil
		}
	}
	if ptr != 0 {
		key := visit{addr: ptr, typ: v.Type()}
		if _, seen := p.path[key]; seen {
			return "<cycle: " + displayName(v.Type()) + ">" + p.nl, nil
		}
		p.path[key] = struct{}{}
		defer delete(p.path, key)
	}
	return p.composite(v, depth)
}

func (p *printer) byCulture(v reflect.Value) (string, bool, error) {
	c, ok := p.reg.cultures[v.Type()]
	if !ok {
		return "", false, nil
	}
	s, err := c.format(v)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

func (p *printer) byTypeFormat(v reflect.Value) (string, bool, error) {
	fn, ok := p.reg.typeFormats[v.Type()]
	if !ok {
		return "", false, nil
	}
	return fn(v), true, nil
}

func (p *printer) byTerminal(v reflect.Value) (string, bool, error) {
	if _, ok := terminalTypes[v.Type()]; !ok {
		return "", false, nil
	}
	return fmt.Sprint(v.Interface()), true, nil
}

func (p *printer) composite(v reflect.Value, depth int) (string, error) {
	var sb strings.Builder
	sb.WriteString(displayName(v.Type()))
	sb.WriteString(p.nl)
	indent := strings.Repeat("\t", depth+1)
	for _, f := range fieldsOf(v.Type()) {
		if p.reg.excluded(f) {
			continue
		}
		fv := v.Field(f.index)
		var text string
		if fn, ok := p.reg.propFormats[f.prop]; ok {
			text = fn(fv) + p.nl
		} else {
			var err error
			if text, err = p.print(fv, depth+1); err != nil {
				return "", fmt.Errorf("%s: %w", f.prop, err)
			}
		}
		if rule, ok := p.reg.trims[f.prop]; ok {
			text = rule.apply(text, p.nl)
		}
		sb.WriteString(indent)
		sb.WriteString(f.name)
		sb.WriteString(" = ")
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// deref follows pointers and interfaces down to a concrete value. It
// reports false for nil, and the address of the last pointer followed.
func deref(v reflect.Value) (reflect.Value, uintptr, bool) {
	var ptr uintptr
	for {
		switch v.Kind() {
		case reflect.Invalid:
			return v, 0, false
		case reflect.Pointer:
			if v.IsNil() {
				return v, 0, false
			}
			ptr = v.Pointer()
			v = v.Elem()
		case reflect.Interface:
			if v.IsNil() {
				return v, 0, false
			}
			v = addressable(v.Elem())
		case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if v.IsNil() {
				return v, 0, false
			}
			return v, ptr, true
		default:
			return v, ptr, true
		}
	}
}

// addressable returns an addressable copy of v when v is not addressable.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() || v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

func displayName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
