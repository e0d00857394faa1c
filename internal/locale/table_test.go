package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinDayPeriods(t *testing.T) {
	tests := []struct {
		localeID string
		width    Width
		want     [2]string
	}{
		{"en", Narrow, [2]string{"a", "p"}},
		{"en", Abbreviated, [2]string{"AM", "PM"}},
		{"en", Wide, [2]string{"AM", "PM"}},
		{"en-GB", Abbreviated, [2]string{"am", "pm"}},
		{"es", Wide, [2]string{"a.\u00a0m.", "p.\u00a0m."}},
		{"it", Narrow, [2]string{"m.", "p."}},
		{"ko", Narrow, [2]string{"AM", "PM"}},
		{"ko", Abbreviated, [2]string{"오전", "오후"}},
		{"ja", Wide, [2]string{"午前", "午後"}},
	}

	table := Builtin()
	for _, tt := range tests {
		t.Run(tt.localeID+"/"+tt.width.String(), func(t *testing.T) {
			got, err := table.DayPeriods(tt.localeID, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFallsBackToBaseLocale(t *testing.T) {
	table := Builtin()

	tests := map[string]string{
		"en":    "en",
		"en-US": "en",
		"en-GB": "en-GB",
		"de-AT": "de",
		"fr-CA": "fr",
		"ja-JP": "ja",
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			got, err := table.Resolve(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestResolveUnsupported(t *testing.T) {
	table := Builtin()

	for _, input := range []string{"", "xx", "not a locale!", "gl", "eu", "af", "lb", "be"} {
		t.Run(input, func(t *testing.T) {
			_, err := table.Resolve(input)
			assert.ErrorIs(t, err, ErrUnsupportedLocale)

			_, err = table.DayPeriods(input, Abbreviated)
			assert.ErrorIs(t, err, ErrUnsupportedLocale)
		})
	}
}

func TestDayPeriodsUnknownWidth(t *testing.T) {
	_, err := Builtin().DayPeriods("en", Width(7))
	assert.Error(t, err)
}

func TestSupportedListsDefaultFirst(t *testing.T) {
	ids := Builtin().Supported()

	require.NotEmpty(t, ids)
	assert.Equal(t, DefaultLocale, ids[0])
	assert.Contains(t, ids, "en-GB")
	assert.Contains(t, ids, "zh")
	assert.IsNonDecreasing(t, ids[1:])
}

func TestBuiltinLabelsAreValid(t *testing.T) {
	for id, set := range builtinDayPeriods {
		for _, w := range Widths {
			assert.NoError(t, ValidateLabels(set[w]), "%s %s", id, w)
		}
	}
}

func TestTableWithoutDefaultLocale(t *testing.T) {
	table := newTable(map[string]dayPeriodSet{"de": uniform("AM", "PM")})

	assert.Equal(t, []string{"de"}, table.Supported())
	got, err := table.DayPeriods("de-CH", Wide)
	require.NoError(t, err)
	assert.Equal(t, [2]string{"AM", "PM"}, got)
}
