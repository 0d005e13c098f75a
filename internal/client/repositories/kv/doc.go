// Package kv provides the durable key/value store that keeps the session
// record (bearer token and serialized user) across process restarts.
//
// SQLiteRepository is the production implementation over the "kv" table
// created by the client migrations; MemoryRepository is a map-backed twin
// for tests and ephemeral runs.
package kv
