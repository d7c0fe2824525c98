/*
Package observability turns compile and validate lifecycle events into
Prometheus metrics and structured log records.

Both are exposed as domain.Hooks so callers can merge them and pass the
result to the suite facade.
*/
package observability
