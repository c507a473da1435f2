// Package pointsgen implements the logic for the pointsgen binary.
//
// To use this library, create a package with main function as:
//
//	func main() {
//	  os.Exit(pointsgen.Run())
//	}
package pointsgen
