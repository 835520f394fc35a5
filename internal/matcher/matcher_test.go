package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Drip Edge", "drip edge"},
		{"punctuation stripped", "Remove Laminated - comp. shingle rfg. - w/out felt", "remove laminated comp shingle rfg wout felt"},
		{"whitespace collapsed", "  Step   flashing  ", "step flashing"},
		{"diacritics stripped", "Café metal", "cafe metal"},
		{"digits kept", `Chimney flashing average (32" x 36")`, "chimney flashing average 32 x 36"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestEqual(t *testing.T) {
	// A missing hyphen is a formatting difference, not a different item.
	assert.True(t, Equal(
		"Remove Laminated comp. shingle rfg. - w/out felt",
		"Remove Laminated - comp. shingle rfg. - w/out felt",
	))
	assert.False(t, Equal("Valley metal", "Step flashing"))
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flash", "flash", 0},
		{"flash", "flush", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "Distance(%q, %q)", tt.a, tt.b)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 1.0, Similarity("drip edge", "drip edge"))
	assert.InDelta(t, 0.8, Similarity("abcde", "abcdx"), 1e-9)
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
}

func TestSuggest(t *testing.T) {
	candidates := []string{
		"Drip edge/gutter apron",
		"Drip edge",
		"Valley metal",
		"Step flashing",
	}

	t.Run("weak matches excluded below threshold", func(t *testing.T) {
		got := Suggest("Ridge vent", candidates)
		assert.Empty(t, got)
	})

	t.Run("near match suggested", func(t *testing.T) {
		got := Suggest("Drip edgee", candidates)
		assert.NotEmpty(t, got)
		assert.Equal(t, "Drip edge", got[0].Candidate)
		assert.GreaterOrEqual(t, got[0].Score, 0.85)
	})

	t.Run("ordered by score with stable ties", func(t *testing.T) {
		got := Suggest("Valley metal", []string{"Valley metal", "Valley metal", "Step flashing"})
		assert.Len(t, got, 2)
		assert.Equal(t, 0, got[0].Index)
		assert.Equal(t, 1, got[1].Index)
	})

	t.Run("capped at limit", func(t *testing.T) {
		same := []string{"Step flashing", "Step flashing", "Step flashing", "Step flashing", "Step flashing"}
		got := Suggest("Step flashing", same)
		assert.Len(t, got, 3)
	})
}
