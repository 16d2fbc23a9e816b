/*
Package domain contains the core value types of the Marvin reduction engine.

It defines the closed alphabet the engine works over and the fixed-size block that
every transformation consumes and produces. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Symbol: an uppercase letter encoded as its 1-indexed alphabet position (A=1 .. Z=26).
  - Alphabet: the read-only table of the 26 symbols, used as the padding source.
  - Block: exactly 16 symbols; the unit every Action transforms and the fold combines.
  - LifecycleHooks: callbacks fired while a seed is reduced, for logging and metrics.
*/
package domain
