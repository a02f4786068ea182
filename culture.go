package objprint

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Culture controls how numbers are written: which rune separates the
// fraction and, optionally, which separates groups of thousands. It never
// changes the digits themselves.
type Culture struct {
	tag      language.Tag
	decimal  string
	group    string
	grouping bool
}

// InvariantCulture writes numbers with a dot decimal separator.
var InvariantCulture = Culture{tag: language.Und, decimal: ".", group: ","}

// NewCulture returns the Culture of the given locale. Separators are taken
// from the CLDR data shipped with golang.org/x/text.
func NewCulture(tag language.Tag) Culture {
	if tag == language.Und {
		return InvariantCulture
	}
	decimal, group := separators(tag)
	return Culture{tag: tag, decimal: decimal, group: group}
}

// ParseCulture parses a BCP 47 tag such as "de-DE". The empty string and
// "invariant" yield [InvariantCulture].
func ParseCulture(s string) (Culture, error) {
	if s == "" || strings.EqualFold(s, "invariant") {
		return InvariantCulture, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Culture{}, err
	}
	return NewCulture(tag), nil
}

// WithGrouping returns a copy of c that also separates thousands.
func (c Culture) WithGrouping() Culture {
	c.grouping = true
	return c
}

// Tag returns the locale of c.
func (c Culture) Tag() language.Tag { return c.tag }

// String returns the locale name, or "invariant".
func (c Culture) String() string {
	if c.tag == language.Und {
		return "invariant"
	}
	return c.tag.String()
}

// separators formats a probe number with the locale's printer and reads the
// separators back out of it.
func separators(tag language.Tag) (decimal, group string) {
	probe := message.NewPrinter(tag).Sprintf("%.1f", 1234567.5)
	var runs []string
	var cur strings.Builder
	for _, r := range probe {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	decimal = InvariantCulture.decimal
	group = InvariantCulture.group
	switch len(runs) {
	case 0:
	case 1:
		decimal = runs[0]
		group = ""
	default:
		decimal = runs[len(runs)-1]
		group = runs[0]
	}
	return decimal, group
}

var durationType = reflect.TypeFor[time.Duration]()

func supportsCulture(t reflect.Type) bool {
	if t == durationType {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// format writes v using c. The digits are those of the default rendering;
// only the separators change.
func (c Culture) format(v reflect.Value) (string, error) {
	var s string
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s = strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s = strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		s = strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		s = strconv.FormatFloat(v.Float(), 'g', -1, 64)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedNumericFormat, v.Type())
	}
	return c.localize(s), nil
}

func (c Culture) localize(s string) string {
	decimal := c.decimal
	if decimal == "" {
		decimal = InvariantCulture.decimal
	}
	if strings.ContainsAny(s, "eENI") {
		// Exponent form, NaN and Inf keep their shape.
		return strings.Replace(s, ".", decimal, 1)
	}
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if c.grouping && c.group != "" {
		whole = groupDigits(whole, c.group)
	}
	if hasFrac {
		return sign + whole + decimal + frac
	}
	return sign + whole
}

func groupDigits(digits, sep string) string {
	n := utf8.RuneCountInString(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}
