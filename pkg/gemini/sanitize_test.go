package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTips(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "enumerated bold and italic markers",
			raw:      "1. **Save more**\n2. *Invest wisely*",
			expected: []string{"Save more", "Invest wisely"},
		},
		{
			name:     "plain lines untouched",
			raw:      "Cut your food budget\nOpen a savings account",
			expected: []string{"Cut your food budget", "Open a savings account"},
		},
		{
			name:     "empty lines between tips are skipped",
			raw:      "First tip\n\nSecond tip",
			expected: []string{"First tip", "Second tip"},
		},
		{
			name:     "line that only held markers survives as empty string",
			raw:      "Real tip\n***",
			expected: []string{"Real tip", ""},
		},
		{
			name:     "prefix stripped only at line start",
			raw:      "10. Allocate 20% of income, e.g. 1. to bonds",
			expected: []string{"Allocate 20% of income, e.g. 1. to bonds"},
		},
		{
			name:     "trailing whitespace trimmed",
			raw:      "Track subscriptions  ",
			expected: []string{"Track subscriptions"},
		},
		{
			name:     "indented enumerator is not a prefix",
			raw:      "  3.   Track subscriptions  ",
			expected: []string{"3.   Track subscriptions"},
		},
		{
			name:     "empty input",
			raw:      "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeTips(tt.raw))
		})
	}
}
