package numo

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
)

// BatchCalculator processes multiple expression files concurrently. Files
// are independent batches: each gets its own engine so variables never leak
// between files, while lines within one file keep their strict input order.
type BatchCalculator struct {
	workers int
	opts    []Option
}

// NewBatchCalculator creates a batch calculator. Engine options are applied
// to every per-file engine.
func NewBatchCalculator(workers int, opts ...Option) *BatchCalculator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchCalculator{workers: workers, opts: opts}
}

// FileResult represents the outcome of calculating one file.
type FileResult struct {
	Filename string
	Lines    []string
	Results  []Result
	Error    error
}

type fileWork struct {
	index int
	file  string
}

type indexedResult struct {
	index  int
	result FileResult
}

// CalculateFiles evaluates every file and returns results in input order,
// one FileResult per input file. Per-file read failures are reported in
// FileResult.Error. When the context is cancelled mid-run, files not yet
// processed carry the context error in their FileResult and the call itself
// returns the context error.
func (bc *BatchCalculator) CalculateFiles(ctx context.Context, files []string) ([]FileResult, error) {
	if len(files) == 0 {
		return nil, nil
	}

	workChan := make(chan fileWork, len(files))
	resultChan := make(chan indexedResult, len(files))

	var wg sync.WaitGroup
	for i := 0; i < bc.workers && i < len(files); i++ {
		wg.Add(1)
		go bc.worker(ctx, &wg, workChan, resultChan)
	}

	// workChan is buffered to len(files), so enqueueing never blocks; the
	// workers observe cancellation per item.
	for i, file := range files {
		workChan <- fileWork{index: i, file: file}
	}
	close(workChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]FileResult, len(files))
	for r := range resultChan {
		results[r.index] = r.result
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func (bc *BatchCalculator) worker(ctx context.Context, wg *sync.WaitGroup, work <-chan fileWork, results chan<- indexedResult) {
	defer wg.Done()

	for w := range work {
		// Queued files are never dropped: once the context is cancelled the
		// remaining work items report the cancellation instead of vanishing.
		if err := ctx.Err(); err != nil {
			results <- indexedResult{index: w.index, result: FileResult{Filename: w.file, Error: err}}
			continue
		}
		results <- indexedResult{index: w.index, result: bc.calculateFile(ctx, w.file)}
	}
}

// calculateFile runs one file through a fresh engine.
func (bc *BatchCalculator) calculateFile(ctx context.Context, filename string) FileResult {
	result := FileResult{Filename: filename}

	content, err := os.ReadFile(filename)
	if err != nil {
		result.Error = fmt.Errorf("failed to read file %s: %w", filename, err)
		return result
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	engine := New(bc.opts...)
	result.Lines = lines
	result.Results = engine.Calculate(ctx, lines)
	return result
}

// CollectErrors aggregates per-file failures into a single error, or nil
// when every file was read successfully.
func CollectErrors(results []FileResult) error {
	var errs MultiError
	for _, r := range results {
		errs.Add(r.Error)
	}
	if errs.HasErrors() {
		return &errs
	}
	return nil
}
