// Package interp implements bilinear interpolation over a celllib.Table:
// index selection clamps a query to the table's breakpoint range (never a
// float equality check), and the interpolation formula itself runs on
// whichever coordinates the clamped brackets select. A query inside the
// table interpolates normally; a query beyond one edge collapses that
// dimension's bracket to the boundary row or column and interpolates
// normally across the other dimension.
package interp
