// Package cache implements the local mirror of Taskdesk data that lets
// read commands answer from disk instead of the network.
//
// The cache is an incremental-sync client of the service's delta
// endpoint: every resource scope (tasks, projects, sections, ...) carries
// an opaque sync token and a last-refresh timestamp, and reads go through
// [Manager.EnsureFresh], which refreshes stale scopes, collapses
// concurrent refreshes into one fetch, and degrades to "no cache" rather
// than failing when the service is unreachable.
//
// Layering inside the package:
//   - Store: durable SQLite persistence of entity snapshots and per-scope
//     sync state
//   - Store.Apply: the merge engine folding delta payloads into the store
//   - Manager: freshness tracking and refresh coalescing
//   - Repository: typed read access over a usable snapshot
//   - filter helpers: pure in-memory predicates shared by cached and live
//     read paths
package cache
