// SPDX-License-Identifier: MIT

// Package app wires the starlane packages into the command-line workflow:
// obtain a graph, optionally persist it, answer queries and benchmark the
// strategies against it.
package app
