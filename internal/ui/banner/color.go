package banner

import (
	"image/color"
	"strconv"
	"strings"
)

var defaultDigitColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}

// parseColor converts a #rgb or #rrggbb hint into a color.
func parseColor(hint string) (color.NRGBA, bool) {
	value := strings.TrimPrefix(strings.TrimSpace(hint), "#")
	if len(value) == 3 {
		value = string([]byte{value[0], value[0], value[1], value[1], value[2], value[2]})
	}
	if len(value) != 6 {
		return color.NRGBA{}, false
	}
	rgb, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 255}, true
}

func digitColor(hint string) color.NRGBA {
	if parsed, ok := parseColor(hint); ok {
		return parsed
	}
	return defaultDigitColor
}
