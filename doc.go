// Package tooltip provides hover tooltips for [Ebitengine] scenes.
//
// A tooltip watches an anchor node for pointer enter and leave. Its
// visibility is debounced symmetrically: the hover state has to hold for
// the full delay (250 ms by default) before the overlay appears or
// disappears, so a pointer brushing over an anchor or jittering on its edge
// produces no flicker.
//
// # Quick start
//
//	scene := tooltip.NewScene()
//	button := tooltip.NewBox("save", 80, 24, tooltip.Color{R: 0.3, G: 0.5, B: 0.9, A: 1})
//	button.Interactable = true
//	scene.Root().AddChild(button)
//
//	font, _ := tooltip.LoadTTFFont(goregular.TTF, 14)
//	scene.NewTooltip(button, font, tooltip.Options{Text: "Save the document"})
//
//	tooltip.Run(scene, tooltip.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// # Placement
//
// While the overlay is mounted, every frame measures the anchor and the
// overlay (inflated by [OverlayMargin]) and probes the four candidate
// positions against the viewport. [Resolve] picks one:
//
//   - [PlacementUpDown]: down, else up, else right, else left.
//   - [PlacementLeftRight]: right, else left, else up, else down.
//
// The last member of each order is used even when it does not fit, so a
// placement is always produced. The chosen [Direction] selects an
// [Alignment] for [PopOver] and, for the expanded variant, an arrow glyph
// pointing back at the anchor.
//
// # Variants
//
// [VariantDefault] shows a single wrapped text block and always prefers
// up-down placement. [VariantExpanded] shows an optional title row (title
// and extra info), wrapped contents, an arrow, and fades in via [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package tooltip
