package tview

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme holds the colors new primitives start with.
type Theme struct {
	PrimitiveBackgroundColor    tcell.Color
	BorderColor                 tcell.Color
	TitleColor                  tcell.Color
	PrimaryTextColor            tcell.Color
	SecondaryTextColor          tcell.Color // Footers and other secondary labels.
	TertiaryTextColor           tcell.Color // Decoration rows such as banners.
	InverseTextColor            tcell.Color // Text on PrimaryTextColor, such as the selected row.
	StickyHeaderBackgroundColor tcell.Color // Section headers, pinned or in place.
	StickyHeaderTextColor       tcell.Color // Text of section headers.
}

// Styles is the theme used by constructors. Change it before creating
// primitives.
var Styles = Theme{
	PrimitiveBackgroundColor:    color.Black,
	BorderColor:                 color.White,
	TitleColor:                  color.White,
	PrimaryTextColor:            color.White,
	SecondaryTextColor:          color.Yellow,
	TertiaryTextColor:           color.Green,
	InverseTextColor:            color.Blue,
	StickyHeaderBackgroundColor: color.Navy,
	StickyHeaderTextColor:       color.Yellow,
}
