package error_test

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiError "github.com/next-trace/path-error/error"
	"github.com/next-trace/path-error/terminal"
)

func assertConverted(t *testing.T, e *apiError.Error, cause error) {
	t.Helper()

	require.NotNil(t, e)
	assert.Equal(t, apiError.Other, e.Kind())
	assert.Equal(t, cause.Error(), e.Description())
	assert.Equal(t, cause, e.Cause())
	assert.True(t, errors.Is(e, cause))
}

func TestFrom_PathError(t *testing.T) {
	t.Parallel()

	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))

	var pe *fs.PathError
	require.True(t, errors.As(err, &pe))

	e := apiError.From(pe)
	assertConverted(t, e, pe)
	assert.True(t, errors.Is(e, fs.ErrNotExist))

	var out *fs.PathError
	require.True(t, errors.As(e, &out))
	assert.Same(t, pe, out, "boxed cause must be the original value")
}

func TestFrom_AllowListedOrigins(t *testing.T) {
	t.Parallel()

	inner := errors.New("connection refused")

	t.Run("syscall errno", func(t *testing.T) {
		t.Parallel()
		assertConverted(t, apiError.From(syscall.ENOENT), syscall.ENOENT)
	})

	t.Run("syscall error", func(t *testing.T) {
		t.Parallel()
		se := os.NewSyscallError("sendto", syscall.EHOSTUNREACH).(*os.SyscallError)
		assertConverted(t, apiError.From(se), se)
	})

	t.Run("link error", func(t *testing.T) {
		t.Parallel()
		le := &os.LinkError{Op: "symlink", Old: "a", New: "b", Err: fs.ErrExist}
		assertConverted(t, apiError.From(le), le)
	})

	t.Run("net op error", func(t *testing.T) {
		t.Parallel()
		oe := &net.OpError{Op: "dial", Net: "udp", Err: inner}
		e := apiError.From(oe)
		assertConverted(t, e, oe)
		assert.True(t, errors.Is(e, inner))
	})

	t.Run("dns error", func(t *testing.T) {
		t.Parallel()
		de := &net.DNSError{Err: "no such host", Name: "hop.invalid", IsNotFound: true}
		assertConverted(t, apiError.From(de), de)
	})

	t.Run("addr error", func(t *testing.T) {
		t.Parallel()
		ae := &net.AddrError{Err: "missing port in address", Addr: "10.0.0.1"}
		assertConverted(t, apiError.From(ae), ae)
	})

	t.Run("terminal backend", func(t *testing.T) {
		t.Parallel()
		te := &terminal.Error{Op: "size", Fd: 1, Err: terminal.ErrNotTerminal}
		e := apiError.From(te)
		assertConverted(t, e, te)
		assert.True(t, errors.Is(e, terminal.ErrNotTerminal))
	})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("entity not found")
	e := apiError.Wrap(cause)

	assertConverted(t, e, cause)
	assert.Equal(t, "entity not found", e.Description())
	assert.Equal(t, "Code: Other, Description: entity not found", e.Error())
}

func TestWrap_NilCause(t *testing.T) {
	t.Parallel()

	e := apiError.Wrap(nil)

	require.NotNil(t, e.Cause(), "conversion path always carries a cause")
	assert.Equal(t, "unknown", e.Description())
	assert.Equal(t, apiError.Other, e.Kind())
}

func TestWrap_EmptyCauseText(t *testing.T) {
	t.Parallel()

	e := apiError.Wrap(errors.New(""))
	assert.NotEmpty(t, e.Description())
	assert.NotNil(t, e.Cause())
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	if got := apiError.Ensure(nil); got != nil {
		t.Fatalf("Ensure(nil) => %v; want nil", got)
	}

	e := apiError.New(apiError.Timeout, "probe expired")
	if got := apiError.Ensure(e); got != e {
		t.Fatalf("Ensure(*Error) returned different pointer")
	}

	if got := apiError.Ensure(fmt.Errorf("hop 4: %w", e)); got != e {
		t.Fatalf("Ensure(wrapped *Error) returned different pointer")
	}

	plain := errors.New("boom")
	wrapped := apiError.Ensure(plain)

	require.NotNil(t, wrapped)
	assert.Equal(t, apiError.Other, wrapped.Kind())
	assert.True(t, errors.Is(wrapped, plain))
}
