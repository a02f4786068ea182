package objprint

import (
	"fmt"
	"reflect"
	"sync"
)

// Property identifies one declared field of a struct type. Two fields with
// the same name on different types are different properties.
type Property struct {
	owner reflect.Type
	index int
}

// Name returns the field name.
func (p Property) Name() string {
	if p.owner == nil {
		return ""
	}
	return p.owner.Field(p.index).Name
}

// String returns "Owner.Field".
func (p Property) String() string {
	if p.owner == nil {
		return "<invalid property>"
	}
	return p.owner.String() + "." + p.Name()
}

func (p Property) typ() reflect.Type {
	return p.owner.Field(p.index).Type
}

// field is one entry of a type descriptor.
type field struct {
	name  string
	index int
	typ   reflect.Type
	prop  Property
}

// descriptors caches the exported fields of each type, in declaration order.
var descriptors sync.Map // key: reflect.Type, val: []field

func fieldsOf(t reflect.Type) []field {
	if v, ok := descriptors.Load(t); ok {
		return v.([]field)
	}
	var fields []field
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			fields = append(fields, field{
				name:  sf.Name,
				index: i,
				typ:   sf.Type,
				prop:  Property{owner: t, index: i},
			})
		}
	}
	v, _ := descriptors.LoadOrStore(t, fields)
	return v.([]field)
}

// indirect strips pointer indirections so *T and T share rules.
func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func propertyByName(owner reflect.Type, name string) (Property, error) {
	if owner.Kind() != reflect.Struct {
		return Property{}, fmt.Errorf("%w: owner %s is not a struct", ErrInvalidPropertySelector, owner)
	}
	for _, f := range fieldsOf(owner) {
		if f.name == name {
			return f.prop, nil
		}
	}
	return Property{}, fmt.Errorf("%w: %s has no exported field %q", ErrInvalidPropertySelector, owner, name)
}

// resolveSelector runs sel against a zero owner and matches the returned
// address against the owner's fields.
func resolveSelector[T any](sel func(*T) any) (prop Property, err error) {
	owner := reflect.TypeFor[T]()
	if owner.Kind() != reflect.Struct {
		return Property{}, fmt.Errorf("%w: owner %s is not a struct", ErrInvalidPropertySelector, owner)
	}
	if sel == nil {
		return Property{}, fmt.Errorf("%w: nil selector", ErrInvalidPropertySelector)
	}
	defer func() {
		if r := recover(); r != nil {
			prop = Property{}
			err = fmt.Errorf("%w: selector on %s panicked: %v", ErrInvalidPropertySelector, owner, r)
		}
	}()
	base := new(T)
	return locate(owner, reflect.ValueOf(base).Elem(), reflect.ValueOf(sel(base)))
}

func locate(owner reflect.Type, base, ptr reflect.Value) (Property, error) {
	if !ptr.IsValid() || ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		return Property{}, fmt.Errorf("%w: selector must return the address of a field of %s", ErrInvalidPropertySelector, owner)
	}
	addr := ptr.Pointer()
	var matches []Property
	for _, f := range fieldsOf(owner) {
		if f.typ == ptr.Type().Elem() && base.Field(f.index).Addr().Pointer() == addr {
			matches = append(matches, f.prop)
		}
	}
	switch len(matches) {
	case 0:
		return Property{}, fmt.Errorf("%w: %s does not point at an exported field of %s", ErrInvalidPropertySelector, ptr.Type(), owner)
	case 1:
		return matches[0], nil
	default:
		// Zero-size fields of one type share an address.
		return Property{}, fmt.Errorf("%w: ambiguous selector, %s matches %d fields of %s", ErrInvalidPropertySelector, ptr.Type(), len(matches), owner)
	}
}
