// Package imaging provides the image-level helpers around OCR: a quick
// pre-flight inspection of screenshots and an optional preprocessing step
// that cleans a copy of the image before it reaches the engine.
//
// Neither helper is on the required path of a run. Inspection only feeds
// warnings (a screenshot that is effectively blank will waste an engine
// invocation and contribute nothing to the combined output); preprocessing is
// opt-in and operates on a temporary copy, never on the user's file.
//
// # Coordinate and color conventions
//
// Images use the standard Go image coordinate system with the origin at the
// top-left corner. Colors reported by Inspect are hex "#rrggbb" strings;
// contrast is measured as the spread of CIE Lab lightness across a coarse
// sample grid, ranging from 0 (uniform) to 1 (full black-to-white range).
package imaging
