package texture

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/carousel/item"
)

// Fixed card palette. Badge colours are keyed by enumeration and are not
// configurable.
var (
	backgroundTop    = gg.Hex("#1a1a1a")
	backgroundBottom = gg.Hex("#0f0f0f")
	dividerColor     = gg.Hex("#333333")
	descriptionColor = gg.Hex("#d1d5db")
	placeholderColor = gg.Hex("#6b7280")
	dateColor        = gg.Hex("#9ca3af")
	statusLabelColor = gg.Hex("#000000")
	priorityLabel    = gg.Hex("#ffffff")
)

// AccentColor returns the border and status badge colour for a status.
func AccentColor(s item.Status) gg.RGBA {
	switch s {
	case item.StatusInProgress:
		return gg.Hex("#eab308")
	case item.StatusDone:
		return gg.Hex("#22c55e")
	default:
		return gg.Hex("#6b7280")
	}
}

// PriorityColor returns the priority badge fill.
func PriorityColor(p item.Priority) gg.RGBA {
	switch p {
	case item.PriorityHigh:
		return gg.Hex("#ef4444")
	case item.PriorityMedium:
		return gg.Hex("#f59e0b")
	default:
		return gg.Hex("#3b82f6")
	}
}
