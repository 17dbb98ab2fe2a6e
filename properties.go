package ecap

import "image/color"

import "github.com/tinne26/ecap/prop"

// The font family that fresh displays prefer, both as the initial
// font property selection and as the fallback face when a caption
// requests an empty family.
const defaultFontFamily = "DejaVu Sans Mono"

// The user-editable properties of a [Display], as observable cells
// that a host application can expose through its own widgets. The
// display subscribes to every cell, so edits through Set methods are
// folded into the rendering configuration automatically.
//
// Property visibility follows the overtake flags: each group's cells
// are only marked visible while the matching overtake is active. The
// cells still accept edits while hidden; visibility is a hint for
// editing widgets, not an enforcement.
type Properties struct {
	OvertakePosition *prop.Bool
	OvertakeFgColor *prop.Bool
	OvertakeBgColor *prop.Bool
	AlignBottom *prop.Bool
	InvertShadow *prop.Bool

	// position group
	Top *prop.Int
	Left *prop.Int
	Width *prop.Int
	Height *prop.Int
	TextSize *prop.Int

	// foreground group
	FgColor *prop.Color
	FgAlpha *prop.Float
	LineWidth *prop.Int
	Font *prop.Enum

	// background group
	BgColor *prop.Color
	BgAlpha *prop.Float
}

// Creates the property set of a fresh display. The font enum options
// are populated from the given family names, preferring the
// "DejaVu Sans Mono" family as the initial selection when present.
func NewProperties(families []string) *Properties {
	properties := &Properties{
		OvertakePosition: prop.NewBool(false),
		OvertakeFgColor: prop.NewBool(false),
		OvertakeBgColor: prop.NewBool(false),
		AlignBottom: prop.NewBool(false),
		InvertShadow: prop.NewBool(false),
		Top: prop.NewInt(0),
		Left: prop.NewInt(0),
		Width: prop.NewInt(128),
		Height: prop.NewInt(128),
		TextSize: prop.NewInt(12),
		FgColor: prop.NewColor(color.RGBA{25, 255, 240, 255}),
		FgAlpha: prop.NewFloat(0.8),
		LineWidth: prop.NewInt(2),
		Font: prop.NewEnum(0),
		BgColor: prop.NewColor(color.RGBA{0, 0, 0, 255}),
		BgAlpha: prop.NewFloat(0.8),
	}

	properties.Top.SetMin(0)
	properties.Left.SetMin(0)
	properties.Width.SetMin(0)
	properties.Height.SetMin(0)
	properties.TextSize.SetMin(0)
	properties.LineWidth.SetMin(0)
	properties.FgAlpha.SetRange(0.0, 1.0)
	properties.BgAlpha.SetRange(0.0, 1.0)

	properties.Font.SetOptions(families)
	if index, found := properties.Font.IndexOf(defaultFontFamily); found {
		properties.Font.Set(index)
	}
	return properties
}
