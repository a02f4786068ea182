package objprint

import (
	"fmt"
	"reflect"
)

// Number is the set of types that accept a [Culture].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Selector is a short-lived handle on either a type (see [SelectType]) or a
// single property (see [SelectProperty]). Its methods register a rule and
// return the owning Config so the chain can continue.
type Selector[T, U any] struct {
	cfg     *Config[T]
	typ     reflect.Type
	prop    Property
	byProp  bool
	invalid bool
}

// SelectType begins a customization of every value of type U.
//
//	objprint.SelectType[int](cfg).Using(func(i int) string { return fmt.Sprintf("%X", i) })
func SelectType[U, T any](c *Config[T]) *Selector[T, U] {
	return &Selector[T, U]{cfg: c, typ: reflect.TypeFor[U]()}
}

// SelectProperty begins a customization of the field whose address sel
// returns. The selector must return the address of a direct field of T.
//
//	objprint.SelectProperty(cfg, func(p *Person) *string { return &p.Name })
func SelectProperty[T, U any](c *Config[T], sel func(*T) *U) *Selector[T, U] {
	s := &Selector[T, U]{cfg: c, typ: reflect.TypeFor[U](), byProp: true}
	var wrapped func(*T) any
	if sel != nil {
		wrapped = func(p *T) any { return sel(p) }
	}
	prop, err := resolveSelector(wrapped)
	if err != nil {
		c.reg.fail(err)
		s.invalid = true
		return s
	}
	s.prop = prop
	return s
}

// Using renders the selected type or property with fn. A property rule
// bypasses every type rule for that property's value.
func (s *Selector[T, U]) Using(fn func(U) string) *Config[T] {
	if s.invalid {
		return s.cfg
	}
	if fn == nil {
		s.cfg.reg.fail(fmt.Errorf("%w: nil formatter for %s", ErrInvalidSelectorUsage, s))
		return s.cfg
	}
	var err error
	if s.byProp {
		err = s.cfg.reg.registerPropertyFormat(s.prop, convert(fn))
	} else {
		err = s.cfg.reg.registerTypeFormat(s.typ, convert(fn))
	}
	if err != nil {
		s.cfg.reg.fail(err)
	}
	return s.cfg
}

// String describes the selection for error messages.
func (s *Selector[T, U]) String() string {
	if s.byProp {
		return "property " + s.prop.String()
	}
	return "type " + s.typ.String()
}

// UsingCulture renders every value of the selected numeric type with c.
// The rule is keyed by type even when s selects a property.
func UsingCulture[T any, N Number](s *Selector[T, N], c Culture) *Config[T] {
	if s.invalid {
		return s.cfg
	}
	if err := s.cfg.reg.registerCulture(s.typ, c); err != nil {
		s.cfg.reg.fail(err)
	}
	return s.cfg
}

// TrimmedToLength cuts the rendered text of the selected string property to
// at most n characters, line terminator included.
func TrimmedToLength[T any, S ~string](s *Selector[T, S], n int) *Config[T] {
	return trim(s, trimRule{max: n})
}

// TrimmedToWidth cuts the rendered text of the selected string property to
// at most n terminal columns. Wide runes count as two columns.
func TrimmedToWidth[T any, S ~string](s *Selector[T, S], n int) *Config[T] {
	return trim(s, trimRule{max: n, width: true})
}

func trim[T any, S ~string](s *Selector[T, S], rule trimRule) *Config[T] {
	if s.invalid {
		return s.cfg
	}
	if !s.byProp {
		s.cfg.reg.fail(fmt.Errorf("%w: trim requires a property selector, got %s", ErrInvalidSelectorUsage, s))
		return s.cfg
	}
	if err := s.cfg.reg.registerTrim(s.prop, rule); err != nil {
		s.cfg.reg.fail(err)
	}
	return s.cfg
}

// convert adapts fn to a reflect-level formatter. Values of a pointer type
// reach the printer dereferenced, so the address is tried when the value
// itself does not match U. A nil interface field is passed as the zero U.
func convert[U any](fn func(U) string) valueFunc {
	return func(v reflect.Value) string {
		var u U
		if v.Kind() == reflect.Interface && v.IsNil() {
			return fn(u)
		}
		u, ok := v.Interface().(U)
		if !ok && v.Kind() != reflect.Interface && v.CanAddr() {
			u, _ = v.Addr().Interface().(U)
		}
		return fn(u)
	}
}
