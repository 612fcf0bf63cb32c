package render

import (
	"strconv"
	"strings"
)

// RGBA is a display color with 8-bit channels.
type RGBA struct {
	R, G, B, A uint8
}

// DefaultColor is the fallback used when a color string cannot be parsed.
var DefaultColor = RGBA{R: 215, G: 106, B: 11, A: 255}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional) into
// channel bytes. A 6-digit form gets alpha 255. Anything that matches
// neither length falls back to DefaultColor rather than failing; only
// length is validated beyond what hex decoding requires.
func ParseColor(s string) RGBA {
	h := strings.TrimPrefix(s, "#")

	switch len(h) {
	case 6:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return DefaultColor
		}
		return RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	case 8:
		v, err := strconv.ParseUint(h, 16, 64)
		if err != nil {
			return DefaultColor
		}
		return RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	default:
		return DefaultColor
	}
}
