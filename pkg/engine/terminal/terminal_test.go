package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

var errClosed = errors.New("closed")

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errClosed }

func TestScreenSequences(t *testing.T) {
	var buf bytes.Buffer
	if err := enterScreen(&buf); err != nil {
		t.Fatalf("enterScreen() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), seqAltScreenOn) {
		t.Errorf("enterScreen output %q does not start on the alternate screen", buf.String())
	}

	buf.Reset()
	if err := leaveScreen(&buf); err != nil {
		t.Fatalf("leaveScreen() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), seqAltScreenOff) {
		t.Errorf("leaveScreen output %q does not leave the alternate screen", buf.String())
	}
}

func TestScreenWriteErrorsAreReturned(t *testing.T) {
	if err := enterScreen(failWriter{}); !errors.Is(err, errClosed) {
		t.Errorf("enterScreen() error = %v, want %v", err, errClosed)
	}
	if err := leaveScreen(failWriter{}); !errors.Is(err, errClosed) {
		t.Errorf("leaveScreen() error = %v, want %v", err, errClosed)
	}
	r := &Raw{out: failWriter{}}
	if err := r.Home(); !errors.Is(err, errClosed) {
		t.Errorf("Home() error = %v, want %v", err, errClosed)
	}
}

func TestEmergencyResetRestoresCursorAndScreen(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for _, seq := range []string{seqCursorShow, seqAltScreenOff, seqResetStyle} {
		if !strings.Contains(out, seq) {
			t.Errorf("EmergencyReset output %q missing %q", out, seq)
		}
	}
}

func TestGetSizeFallsBackWithoutTerminal(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d,%d, want positive dimensions", w, h)
	}
}
