// SPDX-License-Identifier: MIT

// Package store persists graphs with string payloads in SQLite.
//
// A saved graph keeps its vertex indices and the exact arc sequence of every
// row, so loading it into the same storage variant reproduces neighbor order
// and therefore traversal order. Arcs are stored one per direction; mirrored
// connections come back as two independent arcs.
//
// Save replaces any graph previously saved under the same name, inside one
// transaction. Concurrent Snapshot calls for the same name share one query.
package store
