/*
Package route plans a greedy tour over planets in four-dimensional space.

The planned route is a newline separated list of planet names, starting and ending
at SOL, and is suitable as a seed for an implicit-preamble reduction once the names
contain only uppercase letters (see Normalize).
*/
package route
