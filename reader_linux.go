//go:build linux

package arm64id

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/eapache/queue"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// goRuntimeSIGILL is what the Go runtime prints when it throws on SIGILL.
// Seen only if the worker could not restore the default disposition.
const goRuntimeSIGILL = "SIGILL: illegal instruction"

// exitRuntimeThrow is the status the Go runtime exits with after a throw.
const exitRuntimeThrow = 2

type workerOutcome int

const (
	// workerDone: the worker ran every requested probe and exited 0.
	workerDone workerOutcome = iota
	// workerTrapped: the worker was killed by SIGILL at the first unreported probe.
	workerTrapped
	// workerFailed: the worker died some other way at the first unreported probe.
	workerFailed
	// workerFatal: the run cannot continue.
	workerFatal
)

// reader runs probes in worker processes so that a register the CPU does not
// implement costs one worker, not the whole run.
type reader struct {
	path string
	log  *zap.Logger
}

func newReader(cfg *probeConfig) (*reader, error) {
	// A worker that reaches this point never handed over to MaybeRunWorker;
	// starting another one would recurse without bound.
	if IsWorker() {
		return nil, fmt.Errorf("%w: probe worker re-entered the supervisor; call MaybeRunWorker first in main", ErrWorkerSetup)
	}
	path := cfg.workerPath
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("%w: resolve executable: %v", ErrWorkerSetup, err)
		}
		path = exe
	}
	return &reader{path: path, log: cfg.logger}, nil
}

// readAll probes every entry of probes, in order. Each worker run starts at
// the first pending probe; when a worker traps, that probe is marked
// unsupported and the next run starts right after it.
func (r *reader) readAll(ctx context.Context, probes []Entry) ([]Reading, error) {
	readings := make([]Reading, len(probes))
	pending := queue.New()
	for i, p := range probes {
		readings[i] = Reading{Name: p.name, Alias: Alias(p.name)}
		pending.Add(i)
	}

	for run := 1; pending.Length() > 0; run++ {
		names := make([]string, 0, pending.Length())
		for i := 0; i < pending.Length(); i++ {
			names = append(names, probes[pending.Get(i).(int)].name)
		}
		r.log.Debug("starting probe worker",
			zap.Int("run", run),
			zap.String("first", names[0]),
			zap.Int("pending", len(names)))

		outcome, err := r.run(ctx, names, func(name string, value uint64) error {
			if pending.Length() == 0 {
				return fmt.Errorf("%w: unexpected result for %s", ErrWorkerProtocol, name)
			}
			head := pending.Peek().(int)
			if probes[head].name != name {
				return fmt.Errorf("%w: got result for %s, want %s", ErrWorkerProtocol, name, probes[head].name)
			}
			readings[head].Value = value
			readings[head].Supported = true
			pending.Remove()
			return nil
		})

		switch outcome {
		case workerFatal:
			return nil, err
		case workerDone:
			if pending.Length() > 0 {
				return nil, fmt.Errorf("%w: worker exited with %d probes pending", ErrWorkerProtocol, pending.Length())
			}
		case workerTrapped, workerFailed:
			if pending.Length() == 0 {
				return nil, fmt.Errorf("%w: worker died after reporting every probe", ErrWorkerProtocol)
			}
			head := pending.Remove().(int)
			if outcome == workerTrapped {
				r.log.Debug("register trapped", zap.String("register", probes[head].name))
				continue
			}
			readings[head].Error = err
			r.log.Warn("probe worker failed",
				zap.String("register", probes[head].name),
				zap.Error(err))
		}
	}
	return readings, nil
}

// run starts one worker for names and feeds each reported result to report.
func (r *reader) run(ctx context.Context, names []string, report func(string, uint64) error) (workerOutcome, error) {
	cmd := exec.CommandContext(ctx, r.path)
	cmd.Env = append(os.Environ(), workerEnv+"="+strings.Join(names, ","))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return workerFatal, fmt.Errorf("%w: %v", ErrWorkerSetup, err)
	}
	if err := cmd.Start(); err != nil {
		return workerFatal, fmt.Errorf("%w: start %s: %v", ErrWorkerSetup, r.path, err)
	}

	if err := scanResults(stdout, report); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return workerFatal, err
	}

	waitErr := cmd.Wait()
	if ctx.Err() != nil {
		return workerFatal, ctx.Err()
	}
	return classifyExit(waitErr, stderr.String())
}

// scanResults parses "<name> <hex value>" lines.
func scanResults(r io.Reader, report func(string, uint64) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		var (
			name  string
			value uint64
		)
		if _, err := fmt.Sscanf(sc.Text(), "%s %x", &name, &value); err != nil {
			return fmt.Errorf("%w: malformed result %q: %v", ErrWorkerProtocol, sc.Text(), err)
		}
		if err := report(name, value); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read worker results: %w", err)
	}
	return nil
}

func classifyExit(err error, stderr string) (workerOutcome, error) {
	if err == nil {
		return workerDone, nil
	}

	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		return workerFatal, fmt.Errorf("wait for worker: %w", err)
	}
	if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() && ws.Signal() == unix.SIGILL {
		return workerTrapped, nil
	}
	if ee.ExitCode() == exitRuntimeThrow && strings.Contains(stderr, goRuntimeSIGILL) {
		return workerTrapped, nil
	}
	if ee.ExitCode() == exitWorkerSetup {
		return workerFatal, fmt.Errorf("%w: %s", ErrWorkerSetup, firstLine(stderr))
	}
	return workerFailed, fmt.Errorf("worker %v: %s", ee, firstLine(stderr))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
