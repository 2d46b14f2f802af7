// Command wallbom computes a bill of materials for a single wall from a
// JSON description on disk: standard-block placement, cut customs, and
// any recoverable geometric warnings.
package main

func main() {
	Execute()
}
