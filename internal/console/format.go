package console

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Color is an ANSI color name
type Color string

// Supported colors
const (
	ColorGreen  Color = "GREEN"
	ColorRed    Color = "RED"
	ColorYellow Color = "YELLOW"
	ColorBlue   Color = "BLUE"
)

const colorReset = "\033[0m"

var colorCodes = map[Color]string{
	ColorGreen:  "\033[92m",
	ColorRed:    "\033[91m",
	ColorYellow: "\033[93m",
	ColorBlue:   "\033[94m",
}

// ColorText wraps text in the color's escape codes. Unknown colors
// return the text unchanged.
func ColorText(text string, color Color) string {
	code, ok := colorCodes[color]
	if !ok {
		return text
	}
	return code + text + colorReset
}

// FormatHealth renders "health/max", green at 75% and above, yellow at
// 50% and above, red below.
func FormatHealth(health, maxHealth int) string {
	text := fmt.Sprintf("%d/%d", health, maxHealth)
	if maxHealth <= 0 {
		return ColorText(text, ColorRed)
	}

	percent := float64(health) / float64(maxHealth) * 100
	switch {
	case percent >= 75:
		return ColorText(text, ColorGreen)
	case percent >= 50:
		return ColorText(text, ColorYellow)
	default:
		return ColorText(text, ColorRed)
	}
}

// BorderText frames message in a three line box drawn with char
func BorderText(message, char string) string {
	border := strings.Repeat(char, utf8.RuneCountInString(message)+4)
	return fmt.Sprintf("%s\n%s %s %s\n%s\n", border, char, message, char, border)
}

// Capitalize upper-cases the first letter and lower-cases the rest
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
