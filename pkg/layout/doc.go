// Package layout composes canvas primitives into the recurring blocks of a
// slide: bullet lists under a heading, rows of flow nodes joined by arrow
// bars, and grids of cards.
//
// Layout never measures text. Every block advances by fixed line heights,
// so a bullet that wraps to a second line will overlap the next one. The
// helpers return the y coordinate just below what they drew so callers can
// stack blocks vertically.
package layout
