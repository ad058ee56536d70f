// Package config loads carousel settings and items from TOML files.
//
// A file has an optional [carousel] table and any number of [[items]]:
//
//	[carousel]
//	bend = -2
//	text_color = "#f5f5f5"
//	scroll_ease = 0.08
//	locale = "de-DE"
//
//	[[items]]
//	label = "Write release notes"
//	status = "in-progress"
//	priority = "high"
//	due_date = "2026-05-01"
//
// Keys left out keep the carousel defaults. Items without an id get a
// stable one derived from their label and position.
package config
