package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/linkdraw/pkg/errors"
)

var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"gray":   "#808080",
	"grey":   "#808080",
	"orange": "#ffa500",
	"purple": "#800080",
	"yellow": "#ffff00",
}

// ParseColor parses "#rgb", "#rrggbb", "rgb(r,g,b)", "rgba(r,g,b,a)" and a
// small set of named colors. It returns the color and its alpha.
// "none" and "transparent" parse to a fully transparent black.
func ParseColor(s string) (colorful.Color, float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "none" || s == "transparent":
		return colorful.Color{}, 0, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, 0, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
		}
		return c, 1, nil
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	}
	if hex, ok := namedColors[s]; ok {
		c, _ := colorful.Hex(hex)
		return c, 1, nil
	}
	return colorful.Color{}, 0, errors.New(errors.ErrCodeInvalidColor, "unknown color %q", s)
}

func parseRGBFunc(s string) (colorful.Color, float64, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return colorful.Color{}, 0, errors.New(errors.ErrCodeInvalidColor, "invalid color %q", s)
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return colorful.Color{}, 0, errors.New(errors.ErrCodeInvalidColor, "invalid color %q", s)
	}
	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return colorful.Color{}, 0, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
		}
		ch[i] = v
	}
	return colorful.Color{R: ch[0] / 255, G: ch[1] / 255, B: ch[2] / 255}, ch[3], nil
}

// Format renders a color with alpha as "#rrggbb" or "rgba(...)".
func Format(c colorful.Color, alpha float64) string {
	if alpha >= 1 {
		return c.Clamped().Hex()
	}
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, FormatNumber(alpha))
}

// Lift lightens color towards white by level (0..1). Unparseable colors are
// returned unchanged.
func Lift(color string, level float64) string {
	c, a, err := ParseColor(color)
	if err != nil || a == 0 {
		return color
	}
	return Format(c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, level), a)
}
