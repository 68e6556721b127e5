package terminal

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type stubGrid struct {
	rows [][]rune
}

func (g stubGrid) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

func (g stubGrid) Height() int      { return len(g.rows) }
func (g stubGrid) Row(j int) []rune { return g.rows[j] }

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteFrameConcatenatesRows(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(&buf, false)

	g := stubGrid{rows: [][]rune{[]rune("ab."), []rune("c@$")}}
	if err := out.WriteFrame(g); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if got := buf.String(); got != "ab.c@$\n" {
		t.Errorf("Expected %q, got %q", "ab.c@$\n", got)
	}
}

func TestWriteFrameNonASCII(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(&buf, false)

	if err := out.WriteFrame(stubGrid{rows: [][]rune{[]rune("░█")}}); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if got := buf.String(); got != "░█\n" {
		t.Errorf("Expected multi-byte glyphs intact, got %q", got)
	}
}

func TestWriteFrameClear(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(&buf, true)

	if err := out.WriteFrame(stubGrid{rows: [][]rune{[]rune("x")}}); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if !strings.HasPrefix(buf.String(), string(csiClear)) {
		t.Errorf("Expected clear sequence prefix, got %q", buf.String())
	}
}

func TestWriteFrameEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOutput(&buf, false).WriteFrame(stubGrid{}); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if buf.String() != "\n" {
		t.Errorf("Expected only newline for empty frame, got %q", buf.String())
	}
}

func TestWriteElapsed(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(&buf, false)

	if err := out.WriteElapsed("parallel", 1500*time.Millisecond); err != nil {
		t.Fatalf("WriteElapsed: %v", err)
	}
	if got := buf.String(); got != "1.500000 s parallel\n" {
		t.Errorf("Expected timing line, got %q", got)
	}
}

func TestWriteErrorsPropagate(t *testing.T) {
	out := NewOutput(failWriter{}, false)
	if err := out.WriteFrame(stubGrid{rows: [][]rune{[]rune("abc")}}); err == nil {
		t.Error("Expected WriteFrame error from failing writer")
	}
	if err := out.WriteElapsed("x", time.Second); err == nil {
		t.Error("Expected WriteElapsed error from failing writer")
	}
}

func TestQuerySizeNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if _, err := QuerySize(f); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Expected ErrNotTerminal, got %v", err)
	}

	fallback := Size{Width: 33, Height: 11}
	if got := SizeOr(f, fallback); got != fallback {
		t.Errorf("Expected fallback %v, got %v", fallback, got)
	}
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	for _, seq := range [][]byte{csiCursorShow, csiSGR0, csiAutoWrapOn} {
		if !bytes.Contains(buf.Bytes(), seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}

func TestSizeString(t *testing.T) {
	if got := DefaultSize.String(); got != "80x24" {
		t.Errorf("Expected 80x24, got %s", got)
	}
}
