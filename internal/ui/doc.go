// Package ui implements interactive terminal interfaces using bubbletea's Elm architecture.
//
// Two programs live here:
//  1. [BrowserModel] : Browse the track catalogue with fuzzy filtering, genre cycling and a detail view
//  2. [PaintModel] : Mouse-driven terminal front end for the paint widget
//
// Both implement bubbletea/Elm's standard Init/Update/View pattern, receiving async results via the Msg union type.
//
// The paint program renders the surface with half-block characters (two pixels per cell) and translates terminal
// mouse events into paint pointer events. Press, motion and release are routed by region: title bar, toolbar,
// canvas, swatch row and gradient picker. A release is delivered to all three handler families so no flag sticks.
// Run it with tea.WithMouseAllMotion so swatch hovering and drags report motion.
package ui
