// Package cellmcp exposes the cell gRPC service as MCP tools.
//
// One bridge process acts as a single observer of every cell it touches: it
// keeps the longest token returned for each cell and presents it on the next
// call, so an MCP session sees the same monotonic view a cell.Client would.
package cellmcp
