// Package cell serves hosted cells over gRPC as tracecell.v1.CellService.
//
// The wire messages are generated from api/proto/tracecell/v1/cell.proto.
package cell
