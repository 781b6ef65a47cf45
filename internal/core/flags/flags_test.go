package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{name: "empty", requested: "", want: ""},
		{name: "global only", requested: "g", want: "g"},
		{name: "canonical order", requested: "img", want: "gmi"},
		{name: "duplicates collapse", requested: "ggmmg", want: "gm"},
		{name: "unknown dropped", requested: "xsuyi", want: "i"},
		{name: "uppercase is not a flag", requested: "GMI", want: ""},
		{name: "multiline and insensitive", requested: "mi", want: "mi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.requested).String())
		})
	}
}

func TestSetHas(t *testing.T) {
	s := Normalize("gi")
	assert.True(t, s.Has(Global))
	assert.False(t, s.Has(Multiline))
	assert.True(t, s.Has(CaseInsensitive))
	assert.False(t, s.Has(Flag('x')))
}

func TestSetToggle(t *testing.T) {
	s := Normalize("g")
	s = s.Toggle(Multiline)
	assert.Equal(t, "gm", s.String())
	s = s.Toggle(Global)
	assert.Equal(t, "m", s.String())
	s = s.Toggle(Flag('z'))
	assert.Equal(t, "m", s.String())
}

func TestSetEquality(t *testing.T) {
	assert.Equal(t, Normalize("mg"), Of(Global, Multiline))
	assert.Equal(t, Normalize("gm"), Set{}.With(Multiline).With(Global))
	assert.True(t, Normalize("q").IsEmpty())
}

func TestFlagsOrder(t *testing.T) {
	assert.Equal(t, []Flag{Global, Multiline, CaseInsensitive}, Normalize("igm").Flags())
	assert.Empty(t, Set{}.Flags())
}
