// Package render implements the color-slot allocation and patch-encoding
// core: it packs two vertically stacked scalar samples into one character
// cell using half-block glyphs, and maps the unordered color pair of each
// cell into the scarce linear slot space of palette-limited terminals.
//
// Everything here is pure; binding slots to live terminal color pairs is the
// terminal package's job.
package render
