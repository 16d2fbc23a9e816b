/*
Package ports defines the driven ports (interfaces) for the Marvin engine.

These interfaces decouple the core reduction logic from external implementations,
allowing the engine to memoise fingerprints in different backends and letting the
transport adapters (HTTP, MCP) depend on a narrow view of the engine.

# Key Interfaces

  - Fingerprinter: what a transport adapter needs from the engine.
  - FingerprintCache: stores seed to fingerprint results (memory or Redis).
*/
package ports
