package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "+79991234567",
			expected: "+79991234567",
		},
		{
			name:     "eight prefix",
			input:    "89991234567",
			expected: "+79991234567",
		},
		{
			name:     "ten digits",
			input:    "9991234567",
			expected: "+79991234567",
		},
		{
			name:     "seven prefix without plus",
			input:    "79991234567",
			expected: "+79991234567",
		},
		{
			name:     "formatted with spaces and dashes",
			input:    "8 (999) 123-45-67",
			expected: "+79991234567",
		},
		{
			name:     "plus with spaces",
			input:    "+7 999 123 45 67",
			expected: "+79991234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{
			name:     "identical normalized",
			a:        "+79991234567",
			b:        "+79991234567",
			expected: true,
		},
		{
			name:     "eight prefix vs plus seven",
			a:        "8 (999) 123-45-67",
			b:        "+79991234567",
			expected: true,
		},
		{
			name:     "ten digits vs full",
			a:        "9991234567",
			b:        "+79991234567",
			expected: true,
		},
		{
			name:     "different numbers",
			a:        "+79991234567",
			b:        "+79991234568",
			expected: false,
		},
		{
			name:     "short number never matches",
			a:        "1234567",
			b:        "+79991234567",
			expected: false,
		},
		{
			name:     "both short do not match",
			a:        "1234567",
			b:        "1234567",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Match(tt.a, tt.b))
		})
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "79991234567", Digits("+7 (999) 123-45-67"))
	assert.Equal(t, "", Digits("abc"))
}
