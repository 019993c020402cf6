package pproc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func upper(batch [][]byte) ([]byte, error) {
	var buf bytes.Buffer
	for _, b := range batch {
		buf.Write(bytes.ToUpper(b))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func sortedLines(s string) []string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	sort.Strings(lines)
	return lines
}

func TestProcess(t *testing.T) {
	var cases = []struct {
		name    string
		input   string
		workers int
		batch   int
		want    []string
	}{
		{"empty", "", 2, 2, []string{""}},
		{"blank lines", "\n\n  \n", 2, 2, []string{""}},
		{"single", "a\n", 1, 10, []string{"A"}},
		{"no trailing newline", "a\nb", 4, 1, []string{"A", "B"}},
		{"batches", "a\nb\nc\nd\ne\n", 3, 2, []string{"A", "B", "C", "D", "E"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewProcessor(upper, WithWorkers(c.workers), WithBatchSize(c.batch))
			if err := p.Process(context.Background(), strings.NewReader(c.input), &buf); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, sortedLines(buf.String())); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProcessBatchSize(t *testing.T) {
	var (
		input strings.Builder
		calls int64
		max   int64
	)
	for i := 0; i < 95; i++ {
		fmt.Fprintf(&input, "%d\n", i)
	}
	f := func(batch [][]byte) ([]byte, error) {
		atomic.AddInt64(&calls, 1)
		for {
			m := atomic.LoadInt64(&max)
			if int64(len(batch)) <= m || atomic.CompareAndSwapInt64(&max, m, int64(len(batch))) {
				break
			}
		}
		return nil, nil
	}
	p := NewProcessor(f, WithWorkers(4), WithBatchSize(10))
	if err := p.Process(context.Background(), strings.NewReader(input.String()), &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if calls != 10 || max != 10 {
		t.Errorf("got %d calls, max batch %d, want 10, 10", calls, max)
	}
}

func TestProcessError(t *testing.T) {
	errBoom := errors.New("boom")
	f := func(batch [][]byte) ([]byte, error) {
		return nil, errBoom
	}
	p := NewProcessor(f, WithWorkers(2), WithBatchSize(1))
	err := p.Process(context.Background(), strings.NewReader("a\nb\nc\n"), &bytes.Buffer{})
	if !errors.Is(err, errBoom) {
		t.Errorf("got %v, want %v", err, errBoom)
	}
}

func TestProcessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewProcessor(upper, WithWorkers(1), WithBatchSize(1))
	err := p.Process(ctx, strings.NewReader(strings.Repeat("x\n", 1000)), &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want %v", err, context.Canceled)
	}
}

func TestProcessTokenTooLong(t *testing.T) {
	p := NewProcessor(upper, WithMaxTokenSize(16))
	err := p.Process(context.Background(), strings.NewReader(strings.Repeat("x", 100)+"\n"), &bytes.Buffer{})
	if err == nil {
		t.Errorf("expected error for oversized record")
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestProcessFlushError(t *testing.T) {
	errFull := errors.New("disk full")
	p := NewProcessor(upper, WithWorkers(2))
	err := p.Process(context.Background(), strings.NewReader("a\nb\n"), failingWriter{errFull})
	if !errors.Is(err, errFull) {
		t.Errorf("got %v, want %v", err, errFull)
	}
}
