package jtdinfer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jtdinfer/jtdinfer"
)

func TestHintSet(t *testing.T) {
	t.Parallel()

	path := []string{"a", "b", "c"}
	hs := jtdinfer.NewHintSet([][]string{path})

	assert.False(t, hs.IsActive())

	_, ok := hs.PeekActive()
	assert.False(t, ok)

	a := hs.Sub("a")
	assert.False(t, a.IsActive())

	_, ok = a.PeekActive()
	assert.False(t, ok)

	ab := a.Sub("b")
	assert.False(t, ab.IsActive())

	peeked, ok := ab.PeekActive()
	assert.True(t, ok)
	assert.Equal(t, "c", peeked)

	abc := ab.Sub("c")
	assert.True(t, abc.IsActive())

	_, ok = abc.PeekActive()
	assert.False(t, ok)
}

func TestHintSetWildcard(t *testing.T) {
	t.Parallel()

	hs := jtdinfer.NewHintSet([][]string{
		{"a", "b", "c"},
		{"d", "-", "e"},
	})

	assert.False(t, hs.Sub("a").Sub("x").Sub("c").IsActive())
	assert.True(t, hs.Sub("d").Sub("x").Sub("e").IsActive())
}

func TestHintsSubAppliesToAllThreeMatchers(t *testing.T) {
	t.Parallel()

	enums := jtdinfer.NewHintSet([][]string{{"bar"}})
	values := jtdinfer.NewHintSet([][]string{{"vals", "-"}})
	disc := jtdinfer.NewHintSet([][]string{{"t"}})

	hints := jtdinfer.NewHints(jtdinfer.NumUint8, enums, values, disc)

	assert.False(t, hints.IsEnumActive())
	assert.True(t, hints.Sub("bar").IsEnumActive())

	assert.False(t, hints.IsValuesActive())
	assert.True(t, hints.Sub("vals").Sub("anything").IsValuesActive())

	tag, ok := hints.Sub("t").PeekActiveDiscriminator()
	assert.False(t, ok) // "t" is the discriminator's own key, not a descent target

	tag, ok = hints.PeekActiveDiscriminator()
	assert.True(t, ok)
	assert.Equal(t, "t", tag)

	assert.Equal(t, jtdinfer.NumUint8, hints.DefaultNumType())
	assert.Equal(t, jtdinfer.NumUint8, hints.Sub("bar").DefaultNumType())
}

func TestParseHintPath(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []string
	}{
		"root": {
			input: "",
			want:  nil,
		},
		"single segment": {
			input: "/foo",
			want:  []string{"foo"},
		},
		"nested": {
			input: "/foo/bar",
			want:  []string{"foo", "bar"},
		},
		"escaped slash": {
			input: "/foo~1bar",
			want:  []string{"foo/bar"},
		},
		"escaped tilde (non-standard !0)": {
			input: "/foo!0bar",
			want:  []string{"foo~bar"},
		},
		"wildcard segment": {
			input: "/-/bar",
			want:  []string{"-", "bar"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, jtdinfer.ParseHintPath(tc.input))
		})
	}
}
