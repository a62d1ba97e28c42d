// Package store provides durable storage for converted levels.
//
// The store is a conversion cache keyed by chart content hash: converting
// the same chart twice reuses the stored record instead of writing a
// duplicate. Records hold the canonical JSON payload of the exported level,
// so a cache hit hands back exactly the bytes a fresh conversion would
// produce.
//
// SQLite with WAL mode backs the store; writes are idempotent via
// ON CONFLICT DO NOTHING on the hash.
package store
