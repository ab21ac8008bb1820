package twconfig

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ColorKind classifies a colour value.
type ColorKind string

// Colour value kinds recognised by ParseColor.
const (
	ColorHex      ColorKind = "hex"      // #rgb, #rgba, #rrggbb, #rrggbbaa
	ColorFunction ColorKind = "function" // rgb(...), hsl(...), oklch(...)
	ColorNamed    ColorKind = "named"    // red, rebeccapurple
	ColorKeyword  ColorKind = "keyword"  // transparent, currentColor, inherit
	ColorVariable ColorKind = "variable" // var(--brand)
)

// Color is a validated colour value. Value is kept exactly as declared.
type Color struct {
	Kind  ColorKind
	Value string
}

var colorFunctions = map[string]bool{
	"rgb": true, "rgba": true,
	"hsl": true, "hsla": true,
	"hwb": true,
	"lab": true, "lch": true,
	"oklab": true, "oklch": true,
	"color": true, "color-mix": true,
}

var colorKeywords = map[string]bool{
	"transparent":  true,
	"currentcolor": true,
	"inherit":      true,
	"initial":      true,
	"unset":        true,
	"revert":       true,
}

// ParseColor checks that value is a single CSS colour.
func ParseColor(value string) (Color, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Color{}, fmt.Errorf("empty colour value")
	}

	lexer := css.NewLexer(parse.NewInputString(trimmed))
	tt, text := nextSignificant(lexer)

	var color Color
	switch tt {
	case css.HashToken:
		digits := string(text[1:])
		if !isHexColor(digits) {
			return Color{}, fmt.Errorf("%q is not a hex colour (want 3, 4, 6 or 8 hex digits)", trimmed)
		}
		color = Color{Kind: ColorHex, Value: trimmed}

	case css.FunctionToken:
		name := strings.ToLower(strings.TrimSuffix(string(text), "("))
		switch {
		case name == "var":
			color = Color{Kind: ColorVariable, Value: trimmed}
		case colorFunctions[name]:
			color = Color{Kind: ColorFunction, Value: trimmed}
		default:
			return Color{}, fmt.Errorf("%s() is not a colour function", name)
		}
		if err := skipArguments(lexer); err != nil {
			return Color{}, fmt.Errorf("%q: %w", trimmed, err)
		}

	case css.IdentToken:
		name := strings.ToLower(string(text))
		switch {
		case colorKeywords[name]:
			color = Color{Kind: ColorKeyword, Value: trimmed}
		case namedColors[name] != "":
			color = Color{Kind: ColorNamed, Value: trimmed}
		default:
			return Color{}, fmt.Errorf("%q is not a named colour", trimmed)
		}

	default:
		return Color{}, fmt.Errorf("%q is not a colour", trimmed)
	}

	if tt, text := nextSignificant(lexer); tt != css.ErrorToken {
		return Color{}, fmt.Errorf("%q: unexpected %q after colour", trimmed, string(text))
	}
	return color, nil
}

// Hex returns the colour as #rrggbb when it can be expressed that way.
// Alpha channels are dropped.
func (c Color) Hex() (string, bool) {
	switch c.Kind {
	case ColorHex:
		digits := strings.ToLower(strings.TrimPrefix(c.Value, "#"))
		switch len(digits) {
		case 3, 4:
			return "#" + string([]byte{
				digits[0], digits[0],
				digits[1], digits[1],
				digits[2], digits[2],
			}), true
		case 6, 8:
			return "#" + digits[:6], true
		}
	case ColorNamed:
		return namedColors[strings.ToLower(c.Value)], true
	}
	return "", false
}

// nextSignificant returns the next token that is neither whitespace nor a comment.
func nextSignificant(lexer *css.Lexer) (css.TokenType, []byte) {
	for {
		tt, text := lexer.Next()
		if tt != css.WhitespaceToken && tt != css.CommentToken {
			return tt, text
		}
	}
}

// skipArguments consumes tokens up to the parenthesis closing the
// function that was just read.
func skipArguments(lexer *css.Lexer) error {
	depth := 1
	for depth > 0 {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return fmt.Errorf("unterminated function")
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		}
	}
	return nil
}

func isHexColor(digits string) bool {
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// namedColors maps CSS named colours to their hex value.
var namedColors = map[string]string{
	"aliceblue": "#f0f8ff", "antiquewhite": "#faebd7", "aqua": "#00ffff",
	"aquamarine": "#7fffd4", "azure": "#f0ffff", "beige": "#f5f5dc",
	"bisque": "#ffe4c4", "black": "#000000", "blanchedalmond": "#ffebcd",
	"blue": "#0000ff", "blueviolet": "#8a2be2", "brown": "#a52a2a",
	"burlywood": "#deb887", "cadetblue": "#5f9ea0", "chartreuse": "#7fff00",
	"chocolate": "#d2691e", "coral": "#ff7f50", "cornflowerblue": "#6495ed",
	"cornsilk": "#fff8dc", "crimson": "#dc143c", "cyan": "#00ffff",
	"darkblue": "#00008b", "darkcyan": "#008b8b", "darkgoldenrod": "#b8860b",
	"darkgray": "#a9a9a9", "darkgreen": "#006400", "darkgrey": "#a9a9a9",
	"darkkhaki": "#bdb76b", "darkmagenta": "#8b008b", "darkolivegreen": "#556b2f",
	"darkorange": "#ff8c00", "darkorchid": "#9932cc", "darkred": "#8b0000",
	"darksalmon": "#e9967a", "darkseagreen": "#8fbc8f", "darkslateblue": "#483d8b",
	"darkslategray": "#2f4f4f", "darkslategrey": "#2f4f4f", "darkturquoise": "#00ced1",
	"darkviolet": "#9400d3", "deeppink": "#ff1493", "deepskyblue": "#00bfff",
	"dimgray": "#696969", "dimgrey": "#696969", "dodgerblue": "#1e90ff",
	"firebrick": "#b22222", "floralwhite": "#fffaf0", "forestgreen": "#228b22",
	"fuchsia": "#ff00ff", "gainsboro": "#dcdcdc", "ghostwhite": "#f8f8ff",
	"gold": "#ffd700", "goldenrod": "#daa520", "gray": "#808080",
	"green": "#008000", "greenyellow": "#adff2f", "grey": "#808080",
	"honeydew": "#f0fff0", "hotpink": "#ff69b4", "indianred": "#cd5c5c",
	"indigo": "#4b0082", "ivory": "#fffff0", "khaki": "#f0e68c",
	"lavender": "#e6e6fa", "lavenderblush": "#fff0f5", "lawngreen": "#7cfc00",
	"lemonchiffon": "#fffacd", "lightblue": "#add8e6", "lightcoral": "#f08080",
	"lightcyan": "#e0ffff", "lightgoldenrodyellow": "#fafad2", "lightgray": "#d3d3d3",
	"lightgreen": "#90ee90", "lightgrey": "#d3d3d3", "lightpink": "#ffb6c1",
	"lightsalmon": "#ffa07a", "lightseagreen": "#20b2aa", "lightskyblue": "#87cefa",
	"lightslategray": "#778899", "lightslategrey": "#778899", "lightsteelblue": "#b0c4de",
	"lightyellow": "#ffffe0", "lime": "#00ff00", "limegreen": "#32cd32",
	"linen": "#faf0e6", "magenta": "#ff00ff", "maroon": "#800000",
	"mediumaquamarine": "#66cdaa", "mediumblue": "#0000cd", "mediumorchid": "#ba55d3",
	"mediumpurple": "#9370db", "mediumseagreen": "#3cb371", "mediumslateblue": "#7b68ee",
	"mediumspringgreen": "#00fa9a", "mediumturquoise": "#48d1cc", "mediumvioletred": "#c71585",
	"midnightblue": "#191970", "mintcream": "#f5fffa", "mistyrose": "#ffe4e1",
	"moccasin": "#ffe4b5", "navajowhite": "#ffdead", "navy": "#000080",
	"oldlace": "#fdf5e6", "olive": "#808000", "olivedrab": "#6b8e23",
	"orange": "#ffa500", "orangered": "#ff4500", "orchid": "#da70d6",
	"palegoldenrod": "#eee8aa", "palegreen": "#98fb98", "paleturquoise": "#afeeee",
	"palevioletred": "#db7093", "papayawhip": "#ffefd5", "peachpuff": "#ffdab9",
	"peru": "#cd853f", "pink": "#ffc0cb", "plum": "#dda0dd",
	"powderblue": "#b0e0e6", "purple": "#800080", "rebeccapurple": "#663399",
	"red": "#ff0000", "rosybrown": "#bc8f8f", "royalblue": "#4169e1",
	"saddlebrown": "#8b4513", "salmon": "#fa8072", "sandybrown": "#f4a460",
	"seagreen": "#2e8b57", "seashell": "#fff5ee", "sienna": "#a0522d",
	"silver": "#c0c0c0", "skyblue": "#87ceeb", "slateblue": "#6a5acd",
	"slategray": "#708090", "slategrey": "#708090", "snow": "#fffafa",
	"springgreen": "#00ff7f", "steelblue": "#4682b4", "tan": "#d2b48c",
	"teal": "#008080", "thistle": "#d8bfd8", "tomato": "#ff6347",
	"turquoise": "#40e0d0", "violet": "#ee82ee", "wheat": "#f5deb3",
	"white": "#ffffff", "whitesmoke": "#f5f5f5", "yellow": "#ffff00",
	"yellowgreen": "#9acd32",
}
