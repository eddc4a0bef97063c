package connector

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/linkdraw/pkg/data"
	"github.com/matzehuels/linkdraw/pkg/geom"
	"github.com/matzehuels/linkdraw/pkg/scene"
	"github.com/matzehuels/linkdraw/pkg/style"
)

// Label placement policies.
const (
	PosStart              = "start"
	PosMiddle             = "middle"
	PosEnd                = "end"
	PosInsideStart        = "insideStart"
	PosInsideStartTop     = "insideStartTop"
	PosInsideStartBottom  = "insideStartBottom"
	PosInsideMiddle       = "insideMiddle"
	PosInsideMiddleTop    = "insideMiddleTop"
	PosInsideMiddleBottom = "insideMiddleBottom"
	PosInsideEnd          = "insideEnd"
	PosInsideEndTop       = "insideEndTop"
	PosInsideEndBottom    = "insideEndBottom"
)

// Positions lists every label policy.
var Positions = []string{
	PosStart, PosMiddle, PosEnd,
	PosInsideStart, PosInsideStartTop, PosInsideStartBottom,
	PosInsideMiddle, PosInsideMiddleTop, PosInsideMiddleBottom,
	PosInsideEnd, PosInsideEndTop, PosInsideEndBottom,
}

// Label defaults.
const (
	DefaultLabelDistance = 5
	DefaultFontSize      = 12
)

// LabelLayoutCache is the placement input resolved on data update and read
// by every layout pass.
type LabelLayoutCache struct {
	Position      string
	Distance      style.Pair
	Align         string // user override, empty for automatic
	VerticalAlign string // user override, empty for automatic
}

// Label is the connector's text annotation.
type Label struct {
	*scene.Text

	cache  LabelLayoutCache
	normal geom.Point
}

func newLabel() *Label {
	l := &Label{Text: scene.NewText("label")}
	l.Ignore = true
	l.cache = LabelLayoutCache{Position: PosMiddle, Distance: style.Broadcast(DefaultLabelDistance)}
	return l
}

// Cache returns the placement input of the last data update.
func (l *Label) Cache() LabelLayoutCache { return l.cache }

// HoverText returns the text shown in the emphasis state.
func (l *Label) HoverText() string {
	if l.Hover == nil {
		return ""
	}
	return l.Hover.Text
}

// Normal returns the upward unit-less normal of the curve at the label's
// sample point, as of the last layout pass.
func (l *Label) Normal() geom.Point { return l.normal }

// resolveLabel recomputes text, style, visibility and layout cache of the
// label from the record. color is the connector's visual color.
func (e *Element) resolveLabel(src data.Source, idx int, normal, hover style.Label, color string) {
	l := e.label
	show, hoverShow := normal.Show, hover.Show

	var baseText, hoverText string
	hasHover := false
	if show || hoverShow {
		if s, ok := src.FormattedLabel(idx, scene.StateNormal); ok {
			baseText = s
		} else {
			baseText = fallbackText(src.RawValue(idx), src.Name(idx))
		}
		hoverText = baseText
		if s, ok := src.FormattedLabel(idx, scene.StateEmphasis); ok {
			hoverText = s
		}
		hasHover = true

		pos := normal.Position
		if !slices.Contains(Positions, pos) {
			pos = PosMiddle
		}
		dist := style.Broadcast(DefaultLabelDistance)
		if normal.HasDistance {
			dist = normal.Distance
		}
		l.cache = LabelLayoutCache{
			Position:      pos,
			Distance:      dist,
			Align:         normal.Align,
			VerticalAlign: normal.VerticalAlign,
		}
	}

	fill := normal.Color
	if fill == "" {
		fill = color
	}
	if fill == "" {
		fill = "#000"
	}
	fontSize := normal.FontSize
	if fontSize == 0 {
		fontSize = DefaultFontSize
	}
	text := ""
	if show {
		text = baseText
	}
	l.Style = scene.TextStyle{
		Text:          text,
		Fill:          fill,
		Opacity:       1,
		FontStyle:     normal.FontStyle,
		FontWeight:    normal.FontWeight,
		FontSize:      fontSize,
		FontFamily:    normal.FontFamily,
		Align:         l.Style.Align,
		VerticalAlign: l.Style.VerticalAlign,
	}

	if hasHover {
		l.Hover = &scene.TextOverlay{
			Text:       hoverText,
			Fill:       hover.Color,
			FontStyle:  hover.FontStyle,
			FontWeight: hover.FontWeight,
			FontSize:   hover.FontSize,
			FontFamily: hover.FontFamily,
		}
	} else {
		l.Hover = &scene.TextOverlay{}
	}

	l.Ignore = !show && !hoverShow
	l.MarkDirty()
}

// fallbackText is the label text used when no formatter applies: the record
// name when there is no value, the value rounded for display when it is a
// finite number, and the value verbatim otherwise. Booleans count as the
// numbers 1 and 0.
func fallbackText(raw any, name string) string {
	if raw == nil {
		return name
	}
	if f, ok := style.Number(raw); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Sprint(raw)
		}
		return style.FormatNumber(f)
	}
	if b, ok := raw.(bool); ok {
		if b {
			return "1"
		}
		return "0"
	}
	if s, ok := raw.(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return style.FormatNumber(f)
		}
		return s
	}
	return fmt.Sprint(raw)
}
