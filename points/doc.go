// Package points generates and reads points files: a radius on the first
// line followed by random 2D points in the unit square, one "x, y" pair per
// line.
//
// Generated files are used as fixtures for fixed-radius clustering, see
// package cluster.
package points
