package objprint_test

import (
	"strings"
	"testing"

	"github.com/bjaus/objprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyProfile(t *testing.T) {
	t.Parallel()
	p := alexander()
	p.Height = 120.5
	cfg := objprint.For[Person]().ApplyProfile([]byte(`
newline: "\n"
exclude:
  types: [uuid.UUID]
types:
  int: {format: "%X"}
  float64: {culture: de-DE}
properties:
  Name: {trim: 4}
`))
	require.NoError(t, cfg.Err())
	got, err := cfg.Print(p)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Person",
		"\tName = Alex",
		"\tHeight = 120,5",
		"\tWeight = 120.123",
		"\tAge = 13",
		"\tFather = null",
		"\tMother = null",
	}, "\n")+"\n", got)
}

func TestLoadProfileProperties(t *testing.T) {
	t.Parallel()
	cfg := objprint.For[Person]().LoadProfile(strings.NewReader(`
exclude:
  properties: [ID, Weight]
types:
  float64: {culture: invariant, grouping: true}
properties:
  Age: {format: "%d years old"}
  Name: {width: 3}
`))
	require.NoError(t, cfg.Err())
	p := alexander()
	p.Height = 1234.5
	got, err := cfg.Print(p)
	require.NoError(t, err)
	assert.Equal(t, lines(
		"Person",
		"\tName = Ale",
		"\tHeight = 1,234.5",
		"\tAge = 19 years old",
		"\tFather = null",
		"\tMother = null",
	), got)
}

func TestEmptyProfile(t *testing.T) {
	t.Parallel()
	cfg := objprint.For[Person]().ApplyProfile(nil)
	require.NoError(t, cfg.Err())
	got, err := cfg.Print(alexander())
	require.NoError(t, err)
	def, err := objprint.ToString(alexander())
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestProfileCombinesWithFluentRules(t *testing.T) {
	t.Parallel()
	cfg := objprint.For[Person]().ApplyProfile([]byte(`types: {int: {format: "%X"}}`))
	objprint.SelectType[int](cfg).Using(func(i int) string { return "dup" })
	require.ErrorIs(t, cfg.Err(), objprint.ErrDuplicateRegistration)
}

func TestProfileErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		profile string
		wantErr error
	}{
		"unknown field": {
			profile: `colour: red`,
			wantErr: objprint.ErrInvalidProfile,
		},
		"malformed": {
			profile: `types: [`,
			wantErr: objprint.ErrInvalidProfile,
		},
		"unknown excluded type": {
			profile: `exclude: {types: [Spaceship]}`,
			wantErr: objprint.ErrInvalidProfile,
		},
		"unknown type rule": {
			profile: `types: {Spaceship: {format: "%v"}}`,
			wantErr: objprint.ErrInvalidProfile,
		},
		"unknown property": {
			profile: `properties: {Nickname: {trim: 3}}`,
			wantErr: objprint.ErrInvalidPropertySelector,
		},
		"unknown excluded property": {
			profile: `exclude: {properties: [Nickname]}`,
			wantErr: objprint.ErrInvalidPropertySelector,
		},
		"culture on string": {
			profile: `types: {string: {culture: de-DE}}`,
			wantErr: objprint.ErrUnsupportedTypeForCulture,
		},
		"culture on duration": {
			profile: `types: {time.Duration: {culture: de-DE}}`,
			wantErr: objprint.ErrUnsupportedTypeForCulture,
		},
		"bad culture": {
			profile: `types: {float64: {culture: "!!"}}`,
			wantErr: objprint.ErrInvalidProfile,
		},
		"trim on int": {
			profile: `properties: {Age: {trim: 3}}`,
			wantErr: objprint.ErrInvalidSelectorUsage,
		},
		"negative width": {
			profile: `properties: {Name: {width: -1}}`,
			wantErr: objprint.ErrInvalidSelectorUsage,
		},
		"trim and width": {
			profile: `properties: {Name: {trim: 3, width: 3}}`,
			wantErr: objprint.ErrInvalidProfile,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := objprint.For[Person]().ApplyProfile([]byte(tt.profile))
			require.ErrorIs(t, cfg.Err(), tt.wantErr)
			_, err := cfg.Print(alexander())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileNestedTypes(t *testing.T) {
	t.Parallel()
	cfg := objprint.For[Owner]().ApplyProfile([]byte(`
types:
  objprint_test.Pet: {format: "pet %v"}
`))
	require.NoError(t, cfg.Err())
	got, err := cfg.Print(Owner{Name: "ann", Pet: Pet{Name: "rex"}})
	require.NoError(t, err)
	assert.Equal(t, lines("Owner", "\tName = ann", "\tPet = pet {rex}"), got)
}
