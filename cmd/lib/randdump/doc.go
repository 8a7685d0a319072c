// Package randdump implements the logic for randdump binary,
// which prints the output sequence of a generator.
//
// To use this library, create a package with main function as:
//
//	func main() {
//	  os.Exit(randdump.Run())
//	}
//
// Example:
//
//	randdump -profile compatible -seed 5489 -count 3 -format uint32
//	3499211612
//	581869302
//	3890346734
package randdump
