// Package chamber simulates a falling-block puzzle in three dimensions.
//
// A Chamber owns a length × width × height grid of colored cells plus a
// hidden SafeMargin of layers above it. One piece falls at a time; drivers
// move and rotate it with Move and Rotate, which either succeed completely or
// leave the piece where it was. When a piece can fall no further the driver
// calls Lock, which writes it into the grid, clears full horizontal planes and
// scores them, and then NextPiece to promote the lookahead piece.
//
// The package has no notion of time, input or rendering. Those belong to the
// driver; see package game.
package chamber
