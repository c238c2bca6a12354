package scheduler

import (
	"bytes"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/dl/rgrep/internal/glob"
	"github.com/dl/rgrep/internal/input"
	"github.com/dl/rgrep/internal/matcher"
	"github.com/dl/rgrep/internal/output"
	"github.com/dl/rgrep/internal/scanner"
)

// bufPool pools per-file output buffers to reduce heap allocations.
var bufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 64*1024))
	},
}

// maxPooledBuffer keeps one huge result from pinning memory in the pool.
const maxPooledBuffer = 1 << 20

// Stats summarizes one Run.
type Stats struct {
	Scanned int64 // files handed to the strategy
	Skipped int64 // entries that could not be resolved or opened
	Failed  int64 // files whose strategy or output write failed
}

// Scheduler manages a pool of workers that search files concurrently.
type Scheduler struct {
	workers  int
	matcher  matcher.Matcher
	strategy scanner.Strategy
	sink     *output.Writer
	logger   *log.Logger
}

// New creates a Scheduler with the given number of workers.
// If workers is 0, defaults to NumCPU * 2.
func New(workers int, m matcher.Matcher, strategy scanner.Strategy, sink *output.Writer, logger *log.Logger) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	return &Scheduler{
		workers:  workers,
		matcher:  m,
		strategy: strategy,
		sink:     sink,
		logger:   logger,
	}
}

// Run processes every entry from the channel and returns once all of them
// are done. Blocks reach the sink in completion order, each in one piece.
func (s *Scheduler) Run(entries <-chan glob.Entry) Stats {
	var scanned, skipped, failed atomic.Int64

	var wg sync.WaitGroup
	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range entries {
				ok, err := s.processFile(entry)
				switch {
				case err != nil:
					failed.Add(1)
					s.logger.Error("internal error", "path", entry.Path, "err", err)
				case !ok:
					skipped.Add(1)
				default:
					scanned.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	return Stats{
		Scanned: scanned.Load(),
		Skipped: skipped.Load(),
		Failed:  failed.Load(),
	}
}

// processFile scans one entry. It reports false when the entry was skipped
// because it could not be resolved or opened.
func (s *Scheduler) processFile(entry glob.Entry) (bool, error) {
	if entry.Err != nil {
		s.logger.Debug("skipping entry", "path", entry.Path, "err", entry.Err)
		return false, nil
	}

	f, err := input.Open(entry.Path)
	if err != nil {
		s.logger.Debug("skipping file", "path", entry.Path, "err", err)
		return false, nil
	}
	defer f.Close()

	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		if buf.Cap() <= maxPooledBuffer {
			bufPool.Put(buf)
		}
	}()

	if err := s.strategy.Scan(entry.Path, f, s.matcher, buf); err != nil {
		if !errors.Is(err, scanner.ErrRead) {
			return true, err
		}
		s.logger.Debug("read stopped early", "path", entry.Path, "err", err)
	}

	if _, err := s.sink.Write(buf.Bytes()); err != nil {
		return true, errors.Mark(errors.Wrapf(err, "write %s", entry.Path), scanner.ErrWrite)
	}
	return true, nil
}
