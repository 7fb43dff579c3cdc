package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-adventure/internal/console"
)

func TestColorText(t *testing.T) {
	assert.Equal(t, "\033[92mok\033[0m", console.ColorText("ok", console.ColorGreen))
	assert.Equal(t, "plain", console.ColorText("plain", console.Color("PURPLE")))
}

func TestFormatHealth(t *testing.T) {
	testCases := []struct {
		name     string
		health   int
		max      int
		expected console.Color
	}{
		{name: "full", health: 110, max: 110, expected: console.ColorGreen},
		{name: "three quarters", health: 75, max: 100, expected: console.ColorGreen},
		{name: "half", health: 50, max: 100, expected: console.ColorYellow},
		{name: "low", health: 49, max: 100, expected: console.ColorRed},
		{name: "zero max", health: 0, max: 0, expected: console.ColorRed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := console.FormatHealth(tc.health, tc.max)
			text := console.ColorText("", tc.expected)
			assert.Contains(t, got, text[:5])
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Arthur", console.Capitalize("  aRTHUR "))
	assert.Equal(t, "", console.Capitalize("   "))
	assert.Equal(t, "Élodie", console.Capitalize("élodie"))
}
