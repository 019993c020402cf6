// Package pproc processes newline delimited records in parallel batches.
package pproc

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	defaultBatchSize     = 1000
	defaultInitialBuffer = 1 << 16
	defaultMaxTokenSize  = 1 << 26 // 64MB, hard limit for a single record
)

// BatchFunc transforms a batch of records into output bytes. Returning an
// error stops the processing.
type BatchFunc func(batch [][]byte) ([]byte, error)

// ProcessorOption allows configuration of the Processor
type ProcessorOption func(*Processor)

// WithWorkers sets the number of worker goroutines
func WithWorkers(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.numWorkers = n
		}
	}
}

// WithBatchSize sets the number of records passed to a single call.
func WithBatchSize(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// WithMaxTokenSize sets the maximum size of a single record.
func WithMaxTokenSize(size int) ProcessorOption {
	return func(p *Processor) {
		if size > 0 {
			p.maxTokenSize = size
		}
	}
}

// Processor handles parallel processing of line delimited records. Output
// of different batches may be interleaved in any order.
type Processor struct {
	batchFunc    BatchFunc
	numWorkers   int
	batchSize    int
	maxTokenSize int
}

// NewProcessor creates a new Processor.
func NewProcessor(f BatchFunc, opts ...ProcessorOption) *Processor {
	p := &Processor{
		batchFunc:    f,
		numWorkers:   runtime.NumCPU(),
		batchSize:    defaultBatchSize,
		maxTokenSize: defaultMaxTokenSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process reads from the input, processes batches in parallel, and writes
// results to output. Blank lines are skipped.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(defaultInitialBuffer, p.maxTokenSize)), p.maxTokenSize)
	workChan := make(chan [][]byte, p.numWorkers*2)
	var writeMu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(workChan)
		batch := make([][]byte, 0, p.batchSize)
		send := func() error {
			if len(batch) == 0 {
				return nil
			}
			select {
			case workChan <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}
			batch = make([][]byte, 0, p.batchSize)
			return nil
		}
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			token := bytes.TrimSpace(scanner.Bytes())
			if len(token) == 0 {
				continue
			}
			data := make([]byte, len(token))
			copy(data, token)
			batch = append(batch, data)
			if len(batch) == p.batchSize {
				if err := send(); err != nil {
					return err
				}
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		return send()
	})
	for i := 0; i < p.numWorkers; i++ {
		g.Go(func() error {
			for batch := range workChan {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				result, err := p.batchFunc(batch)
				if err != nil {
					return err
				}
				if len(result) > 0 {
					writeMu.Lock()
					_, err := bw.Write(result)
					writeMu.Unlock()
					if err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return bw.Flush()
}
