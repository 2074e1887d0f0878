package phone

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
		{name: "Plain digits", input: "0641234567", want: "0641234567"},
		{name: "Spaces and dashes", input: "064 123-45-67", want: "0641234567"},
		{name: "International with plus", input: "+381 64 123 4567", want: "+381641234567"},
		{name: "Parentheses", input: "(064) 1234567", want: "0641234567"},
		{name: "Empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestIsValidSerbian(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "Domestic mobile", input: "0641234567", want: true},
		{name: "Domestic with separators", input: "064 123 4567", want: true},
		{name: "International mobile", input: "+381641234567", want: true},
		{name: "International with separators", input: "+381 64 123 4567", want: true},
		{name: "Wrong country code", input: "+385641234567", want: false},
		{name: "Domestic without leading zero", input: "641234567", want: false},
		{name: "Zero after prefix", input: "+381041234567", want: false},
		{name: "Too short", input: "06412345", want: false},
		{name: "Too long", input: "06412345678901", want: false},
		{name: "Empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSerbian(tt.input))
		})
	}
}
