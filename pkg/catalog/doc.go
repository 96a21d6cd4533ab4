// Package catalog stores parsed game descriptions.
//
// A catalog entry records the canonical rendering of a description, its
// serialized syntax tree, and bookkeeping such as clause counts and content
// hashes. Entries are keyed by name; re-adding a name updates the entry in
// place while preserving its identifier and creation time.
//
// Two Store backends are provided: an in-memory store for tests and
// short-lived tooling, and a SQLite store for persistence. Open selects
// between them based on configuration.
//
// The package also provides a file Watcher that reloads descriptions into
// the catalog when their source files change, and a Sweeper that runs on a
// cron schedule to prune entries whose sources have disappeared and to
// verify that stored canonical text still round-trips.
package catalog
