// Package paint is a headless model of the paint widget: a raster drawing surface,
// brush and eraser tools, a swatch palette, a hue-gradient color picker and a draggable
// window frame.
//
// # Controller
//
// A [Controller] owns all widget state. Input arrives as [PointerEvent] values that unify
// mouse and touch sources; each of the three handler families gates on its own flag:
//
//   - [Controller.HandleCanvas] : drawing-active, set on press and cleared on release/leave
//   - [Controller.HandlePicker] : picking-active, same lifecycle over the gradient bitmap
//   - [Controller.HandleTitleBar] : frame-dragging, same lifecycle over the title bar
//
// A release always clears its flag, so a flag cannot stick as long as release or leave
// events are delivered. The controller is not safe for concurrent use; callers drive it
// from a single goroutine.
//
// # Raster
//
// [Surface] wraps an opaque [image.RGBA]. Segments are rasterised as capsules (round caps
// and joins) with golang.org/x/image/vector and written hard-edged, so every touched pixel
// holds exactly the stroke color. The eraser paints opaque white rather than clearing to
// transparent.
//
// # Gradient
//
// [NewGradient] renders the horizontal hue ramp red, yellow, green, cyan, blue, magenta,
// red. Column x of a W-wide bitmap samples the ramp at x/W, which makes column 0 exactly
// red and column W/2 exactly cyan.
package paint
