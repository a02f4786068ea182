// Package objprint renders arbitrary Go values as indented, human-readable
// text for diagnostics, debugging, and golden-output tests.
//
// A value is printed as its type name followed by one line per exported
// field, in declaration order, each indented by one tab per nesting level:
//
//	Person
//		Name = Alexander
//		Age = 19
//		Father = Person
//			Name = Danny
//			Age = 42
//			Father = null
//
// The output is not meant to be parsed back. Slices, maps, and other
// composite values get no special treatment: they are printed as a type
// name with their exported fields, which for most of them means none.
//
// # Configuration
//
// A [Config] collects the rules for one owner type. Type-parameterised rules
// are free functions because Go methods cannot take type parameters:
//
//	cfg := objprint.For[Person]()
//	objprint.ExcludeType[uuid.UUID](cfg)
//	objprint.SelectType[int](cfg).Using(func(i int) string { return fmt.Sprintf("%X", i) })
//	objprint.UsingCulture(objprint.SelectType[float64](cfg), objprint.NewCulture(language.German))
//	objprint.SelectProperty(cfg, func(p *Person) *int { return &p.Age }).
//		Using(func(age int) string { return fmt.Sprintf("%d years old", age) })
//	objprint.TrimmedToLength(objprint.SelectProperty(cfg, func(p *Person) *string { return &p.Name }), 4)
//	cfg.ExcludeProperty(func(p *Person) any { return &p.ID })
//
//	s, err := cfg.Print(person)
//
// Property selectors return the address of a field; the field, not its
// name, identifies the property. Rules may also be loaded from YAML with
// [Config.ApplyProfile].
//
// # Precedence
//
// For each field the first matching rule wins:
//
//  1. a property formatter registered with [SelectProperty]
//  2. a [Culture] registered for the value's type
//  3. a type formatter registered with [SelectType]
//  4. the default text of a built-in type (numbers, string, bool,
//     [time.Time], [time.Duration])
//  5. recursive rendering as a composite
//
// Built-in types match exactly. A named numeric type such as
// "type Score float64" is not built in and prints as the bare line "Score"
// by default, but it accepts a [Culture] like any number and then prints
// its digits.
//
// Trim rules apply last, to the rendered text of string fields.
//
// # Errors
//
// Configuration calls record their errors on the Config; [Config.Err]
// reports them and [Config.Print] refuses to render while any exist:
//
//   - [ErrDuplicateRegistration] — a type or property registered twice
//   - [ErrUnsupportedTypeForCulture] — culture for a non-numeric type
//   - [ErrInvalidSelectorUsage] — trim on a type selector or negative length
//   - [ErrInvalidPropertySelector] — selector not returning a field address
//   - [ErrUnsupportedNumericFormat] — culture applied to a non-number
//   - [ErrInvalidProfile] — malformed YAML profile
//
// # Cycles
//
// A pointer back to an ancestor is printed as "<cycle: TypeName>" instead of
// being followed.
package objprint
