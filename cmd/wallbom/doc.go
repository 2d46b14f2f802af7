// What: a cobra CLI exercising wallpack.PackWall end to end against a
// JSON wall description read from disk.
// Why: every package below cmd/wallbom is a library; something has to
// turn a file on disk into an Input and a Result back into text, the way
// builder's examples turn options into a graph and print it.
// Complexity: O(1) CLI overhead on top of whatever PackWall costs.
// Errors: a malformed input file or a PackWall configuration error both
// exit non-zero with a message on stderr; geometric warnings are printed
// to stderr, after a successful report on stdout.
package main
