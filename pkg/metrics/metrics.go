// Package metrics provides observability primitives for the QOSST control
// protocol:
//   - frame and fault counters
//   - OpenTelemetry tracing
//   - structured logging setup (zerolog)
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/qosst/qosst-go/pkg/codes"
)

// Collector aggregates counters from control connections.
type Collector struct {
	// Traffic
	framesSent     atomic.Uint64
	framesReceived atomic.Uint64
	bytesSent      atomic.Uint64
	bytesReceived  atomic.Uint64

	// Faults
	disconnections atomic.Uint64
	frameErrors    atomic.Uint64
	authFailures   atomic.Uint64
	unknownCodes   atomic.Uint64

	// Initiator recovery
	reconnects atomic.Uint64

	createdAt time.Time
}

// NewCollector creates a new counter collector.
func NewCollector() *Collector {
	return &Collector{createdAt: time.Now()}
}

// FrameSent records one outgoing frame of n wire bytes.
func (c *Collector) FrameSent(n int) {
	if c == nil {
		return
	}
	c.framesSent.Add(1)
	c.bytesSent.Add(uint64(n))
}

// FrameReceived records one accepted incoming frame of n payload bytes.
func (c *Collector) FrameReceived(n int) {
	if c == nil {
		return
	}
	c.framesReceived.Add(1)
	c.bytesReceived.Add(uint64(n))
}

// Fault records a local error code produced by a receive.
func (c *Collector) Fault(code codes.Code) {
	if c == nil {
		return
	}
	switch code {
	case codes.SocketDisconnection:
		c.disconnections.Add(1)
	case codes.FrameError:
		c.frameErrors.Add(1)
	case codes.AuthenticationFailure:
		c.authFailures.Add(1)
	case codes.UnknownCode:
		c.unknownCodes.Add(1)
	}
}

// Reconnect records one automatic reconnection of the initiator.
func (c *Collector) Reconnect() {
	if c == nil {
		return
	}
	c.reconnects.Add(1)
}

// Snapshot is a point-in-time copy of the collected counters.
type Snapshot struct {
	FramesSent     uint64
	FramesReceived uint64
	BytesSent      uint64
	BytesReceived  uint64
	Disconnections uint64
	FrameErrors    uint64
	AuthFailures   uint64
	UnknownCodes   uint64
	Reconnects     uint64
	Uptime         time.Duration
}

// Snapshot returns the current counter values.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	return Snapshot{
		FramesSent:     c.framesSent.Load(),
		FramesReceived: c.framesReceived.Load(),
		BytesSent:      c.bytesSent.Load(),
		BytesReceived:  c.bytesReceived.Load(),
		Disconnections: c.disconnections.Load(),
		FrameErrors:    c.frameErrors.Load(),
		AuthFailures:   c.authFailures.Load(),
		UnknownCodes:   c.unknownCodes.Load(),
		Reconnects:     c.reconnects.Load(),
		Uptime:         time.Since(c.createdAt),
	}
}
