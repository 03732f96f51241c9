package metrics_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/qosst/qosst-go/pkg/codes"
	"github.com/qosst/qosst-go/pkg/metrics"
)

func TestCollectorCounters(t *testing.T) {
	c := metrics.NewCollector()

	c.FrameSent(100)
	c.FrameSent(50)
	c.FrameReceived(30)
	c.Fault(codes.SocketDisconnection)
	c.Fault(codes.FrameError)
	c.Fault(codes.AuthenticationFailure)
	c.Fault(codes.UnknownCode)
	c.Fault(codes.IdentificationRequest) // not a fault, ignored
	c.Reconnect()

	s := c.Snapshot()
	if s.FramesSent != 2 || s.BytesSent != 150 {
		t.Errorf("sent = %d frames / %d bytes, want 2 / 150", s.FramesSent, s.BytesSent)
	}
	if s.FramesReceived != 1 || s.BytesReceived != 30 {
		t.Errorf("received = %d frames / %d bytes, want 1 / 30", s.FramesReceived, s.BytesReceived)
	}
	if s.Disconnections != 1 || s.FrameErrors != 1 || s.AuthFailures != 1 || s.UnknownCodes != 1 {
		t.Errorf("fault counters = %+v", s)
	}
	if s.Reconnects != 1 {
		t.Errorf("reconnects = %d, want 1", s.Reconnects)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *metrics.Collector
	c.FrameSent(1)
	c.FrameReceived(1)
	c.Fault(codes.FrameError)
	c.Reconnect()
	if s := c.Snapshot(); s.FramesSent != 0 {
		t.Errorf("nil collector snapshot = %+v", s)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := metrics.NewLogger(&buf, "frame")
	log.Info().Int("code", 100).Msg("frame sent")

	out := buf.String()
	if !strings.Contains(out, `"component":"frame"`) {
		t.Errorf("log output missing component field: %s", out)
	}
	if !strings.Contains(out, `"code":100`) {
		t.Errorf("log output missing code field: %s", out)
	}
}

func TestNoOpTracer(t *testing.T) {
	var tr metrics.NoOpTracer
	ctx, end := tr.StartSpan(context.Background(), "recv")
	if ctx == nil {
		t.Fatal("context should not be nil")
	}
	end(nil) // must not panic
}

func TestOTelTracerSpans(t *testing.T) {
	tr := metrics.NewOTelTracer("")
	_, end := tr.StartSpan(context.Background(), "request")
	end(nil)

	_, end = tr.StartSpan(context.Background(), "request")
	end(context.DeadlineExceeded)
}
