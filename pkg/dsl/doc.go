/*
Package dsl provides a fluent builder for composing preamble seeds.

A preamble seed is easy to get wrong by hand: the selector letters must come
first and their count must match the number of 16-letter chunks that follow.
The builder takes (action, chunk) pairs and lays them out so that Reduce sees
exactly the intended action for every chunk.

Example usage:

	seed, err := dsl.New().
		Group(action.A, "CDEFGHIJKLMNOPQR").
		Group(action.B, "STUVWXYZ").
		Build()
	// seed == "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
*/
package dsl
