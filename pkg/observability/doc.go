/*
Package observability turns reducer lifecycle events into Prometheus metrics
and debug logs.

Hooks from several sources are merged with Combine before being handed to
marvin.WithLifecycleHooks.
*/
package observability
