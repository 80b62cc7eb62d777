package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateText(t *testing.T) {
	cases := []struct {
		text string
		ok   bool
	}{
		{"Buy milk", true},
		{"  padded  ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"café ✓", true},
	}
	for _, tc := range cases {
		err := ValidateText(tc.text)
		if tc.ok {
			assert.NoError(t, err, "text=%q", tc.text)
		} else {
			assert.ErrorIs(t, err, ErrEmptyText, "text=%q", tc.text)
		}
	}
}

func TestValidateText_RejectsInvalidUTF8(t *testing.T) {
	for _, text := range []string{"caf\xe9", "\xff", "ok \xc3"} {
		assert.ErrorIs(t, ValidateText(text), ErrInvalidText, "text=%q", text)
	}
}

func TestStats(t *testing.T) {
	done, pending := Stats(sampleList())
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)

	done, pending = Stats(nil)
	assert.Zero(t, done)
	assert.Zero(t, pending)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, []Item{}))
	assert.True(t, Equal(sampleList(), sampleList()))

	other := sampleList()
	other[2].Done = true
	assert.False(t, Equal(sampleList(), other))
	assert.False(t, Equal(sampleList(), sampleList()[:2]))
}

func TestSequenceGenerator_ObserveSkipsPastLoadedIDs(t *testing.T) {
	g := NewSequenceGenerator(0)
	g.Observe([]Item{{ID: "7"}, {ID: "not-a-number"}, {ID: "3"}})
	assert.Equal(t, "8", g.NewID())
	assert.Equal(t, "9", g.NewID())
}

func TestSequenceGenerator_AdvanceNeverMovesBack(t *testing.T) {
	g := NewSequenceGenerator(0)
	g.Advance(5)
	assert.Equal(t, int64(5), g.Last())
	g.Advance(2)
	assert.Equal(t, int64(5), g.Last())

	assert.Equal(t, "6", g.NewID())
	assert.Equal(t, int64(6), g.Last())
}

func TestUUIDGenerator_Distinct(t *testing.T) {
	var g UUIDGenerator
	assert.NotEqual(t, g.NewID(), g.NewID())
	assert.Len(t, g.NewID(), 36)
}
