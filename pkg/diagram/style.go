package diagram

import "strings"

// ValidSymbols is the set of marker symbols the 3D scatter renderer
// accepts. Symbols outside this set would be dropped silently by the
// charting layer, so validation rejects them up front.
var ValidSymbols = map[string]bool{
	"circle":       true,
	"circle-open":  true,
	"cross":        true,
	"diamond":      true,
	"diamond-open": true,
	"square":       true,
	"square-open":  true,
	"x":            true,
}

// namedColors is the set of CSS color names accepted for node and line
// colors. Hex (#rgb/#rrggbb) and rgb()/rgba() values are also accepted.
var namedColors = map[string]bool{
	"black": true, "white": true, "red": true, "green": true,
	"blue": true, "yellow": true, "orange": true, "purple": true,
	"pink": true, "brown": true, "cyan": true, "magenta": true,
	"gray": true, "grey": true, "darkgray": true, "darkgrey": true,
	"lightgray": true, "lightgrey": true, "silver": true, "gold": true,
	"navy": true, "teal": true, "olive": true, "maroon": true,
	"lime": true, "aqua": true, "fuchsia": true, "indigo": true,
	"violet": true, "crimson": true, "coral": true, "salmon": true,
	"khaki": true, "orchid": true, "plum": true, "turquoise": true,
	"steelblue": true, "slategray": true, "slategrey": true,
	"darkblue": true, "darkred": true, "darkgreen": true,
	"darkorange": true, "darkviolet": true, "tomato": true,
}

// ValidColor reports whether s is an accepted color value.
func ValidColor(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "#") {
		rest := s[1:]
		if len(rest) != 3 && len(rest) != 6 {
			return false
		}
		for i := 0; i < len(rest); i++ {
			c := rest[i]
			switch {
			case c >= '0' && c <= '9':
			case c >= 'a' && c <= 'f':
			case c >= 'A' && c <= 'F':
			default:
				return false
			}
		}
		return true
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return strings.HasSuffix(s, ")")
	}
	return namedColors[strings.ToLower(s)]
}
