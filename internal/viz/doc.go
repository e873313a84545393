// Package viz provides the Braille pixel canvas and styles used by the
// terminal game view. The canvas maps world coordinates onto 2x4 dot
// cells, giving the playfield roughly double horizontal and quadruple
// vertical resolution over plain character cells.
package viz
