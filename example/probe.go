package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"

	apiError "github.com/next-trace/path-error/error"
	"github.com/next-trace/path-error/terminal"
)

// seqCounter is a 16-bit packet sequence counter that refuses to wrap.
type seqCounter struct {
	next uint16
	done bool
}

func newSeqCounter(start uint16) *seqCounter { return &seqCounter{next: start} }

func (c *seqCounter) Next() (uint16, error) {
	if err := apiError.Require(!c.done, apiError.PacketCounterOverflow, func() string {
		return fmt.Sprintf("sequence counter exhausted after %d", math.MaxUint16)
	}); err != nil {
		return 0, err
	}

	v := c.next
	if v == math.MaxUint16 {
		c.done = true
	} else {
		c.next++
	}

	return v, nil
}

// handshake waits for ready or gives up after timeout.
func handshake(ctx context.Context, ready <-chan struct{}, timeout time.Duration) error {
	if timeout <= 0 {
		return apiError.Bail(apiError.Internal, "handshake timeout must be positive, got %s", timeout)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ready:
		return nil
	case <-timer.C:
		return apiError.Bail(apiError.Timeout, "handshake not completed within %s", timeout)
	case <-ctx.Done():
		return apiError.Wrap(ctx.Err())
	}
}

// statAll stats every path and reports all failures together.
func statAll(paths []string) ([]os.FileInfo, error) {
	var (
		infos  []os.FileInfo
		result *multierror.Error
	)

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			var pe *fs.PathError
			if errors.As(err, &pe) {
				result = multierror.Append(result, apiError.From(pe))
			} else {
				result = multierror.Append(result, apiError.Ensure(err))
			}

			continue
		}

		infos = append(infos, info)
	}

	return infos, result.ErrorOrNil()
}

func termSize(fd int) (int, int, error) {
	w, h, err := terminal.Size(fd)
	if err != nil {
		var te *terminal.Error
		if errors.As(err, &te) {
			return 0, 0, apiError.From(te)
		}

		return 0, 0, apiError.Wrap(err)
	}

	return w, h, nil
}

// exitCode maps an error's classification to a process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	kind, ok := apiError.KindOf(err)
	if !ok {
		return 1
	}

	switch kind {
	case apiError.Timeout:
		return 3
	case apiError.PacketCounterOverflow:
		return 4
	case apiError.Internal:
		return 70
	default:
		return 1
	}
}
