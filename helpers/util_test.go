package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"  Widget  ", "Widget"},
		{"Widget\n\t Pro   2000", "Widget Pro 2000"},
		{"\x00Widget\x1f", "Widget"},
		{"   \n\t  ", ""},
		{"Precio: $1.234,56", "Precio: $1.234,56"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, CleanText(tc.input), "input: %q", tc.input)
	}
}
