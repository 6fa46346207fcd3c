// Package timeouts holds the durations shared by tracecell processes.
package timeouts

import "time"

// GRPCDial caps the wait for a cell server to report healthy.
const GRPCDial = 10 * time.Second

// GRPCRequest caps one cell call made on behalf of an MCP tool.
const GRPCRequest = 5 * time.Second

// ReadHeader limits how long the metrics server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits graceful shutdown of HTTP servers and telemetry exporters.
const Shutdown = 5 * time.Second
