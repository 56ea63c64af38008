package enums

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLetter(t *testing.T) {
	assert := assert.New(t)
	l, ok := ParseLetter("c")
	assert.True(ok)
	assert.Equal(Letter_C, l)
	_, ok = ParseLetter("H")
	assert.False(ok)
	_, ok = ParseLetter("AB")
	assert.False(ok)
	assert.Equal("?", Letter(-1).String())
}

func TestEligibility(t *testing.T) {
	flats, sharps := "", ""
	for l := Letter_A; l <= Letter_G; l++ {
		if l.CanBeFlat() {
			flats += l.String()
		}
		if l.CanBeSharp() {
			sharps += l.String()
		}
	}
	assert.Equal(t, "ABE", flats)
	assert.Equal(t, "CF", sharps)
}

func TestParseModifier(t *testing.T) {
	cases := map[string]Modifier{
		"♮": Modifier_Natural,
		"♯": Modifier_Sharp,
		"#": Modifier_Sharp,
		"♭": Modifier_Flat,
		"b": Modifier_Flat,
	}
	for s, want := range cases {
		got, ok := ParseModifier(s)
		assert.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}
	_, ok := ParseModifier("x")
	assert.False(t, ok)
}

func TestJSONUsesSymbols(t *testing.T) {
	v := struct {
		L Letter
		M Modifier
		T Tuning
	}{Letter_E, Modifier_Flat, Tuning_JustIntonation}
	b, err := json.Marshal(v)

	assert := assert.New(t)
	assert.NoError(err)
	assert.JSONEq(`{"L":"E","M":"♭","T":"JustIntonation"}`, string(b))

	var decoded struct {
		L Letter
		M Modifier
		T Tuning
	}
	assert.NoError(json.Unmarshal(b, &decoded))
	assert.Equal(v, decoded)
}
