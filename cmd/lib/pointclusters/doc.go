// Package pointclusters implements the pointclusters command.
//
// It reads a points file and prints the sizes of the clusters of points that
// are connected within the file's radius, largest first:
//
//	$ pointclusters --in points.pts
//	[12 9 5 3 1]
//
// With --grid it also prints the grid used to find them, one row per line,
// each cell as "<cluster> (<number of points>)".
//
// This package is separated from the main package so it can be tested.
package pointclusters
