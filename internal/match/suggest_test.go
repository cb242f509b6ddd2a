package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"AmountAdapter", "AmountXMLAdapter", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Distance(tt.a, tt.b))
			assert.Equal(t, tt.expected, Distance(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("Adapter", "adapter"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
}

func TestClosest(t *testing.T) {
	candidates := []string{
		"pkg.AmountXMLAdapter",
		"pkg.DecimalXMLAdapter",
		"pkg.Currency",
		"pkg.Money",
	}

	got := Closest("pkg.AmountAdapter", candidates, 2, 0.5)
	assert.Equal(t, []string{"pkg.AmountXMLAdapter", "pkg.DecimalXMLAdapter"}, got)

	assert.Empty(t, Closest("completely.Unrelated", candidates, DefaultMaxSuggestions, 0.8))
	assert.Empty(t, Closest("pkg.Money", []string{"pkg.Money"}, 1, 0))
}
