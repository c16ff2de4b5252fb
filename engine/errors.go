package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDeviceUnavailable is returned when no GPU adapter satisfies the
	// default feature and limit requirements.
	ErrDeviceUnavailable = errors.New("engine: no suitable GPU adapter available")

	// ErrDeviceRequestFailed is returned when the adapter refuses to create
	// a device.
	ErrDeviceRequestFailed = errors.New("engine: adapter refused device creation")

	// ErrReadback is returned when mapping the staging buffer for host
	// access fails, typically because the device was lost. The frame is not
	// retried; the instance must be reconstructed to recover.
	ErrReadback = errors.New("engine: staging buffer readback failed")

	// ErrUserData is returned at construction when the user-data type is
	// not plain old data (contains pointers, slices, maps, strings or
	// other non-uniform-representable kinds).
	ErrUserData = errors.New("engine: user data must be plain old data")
)

// CompileError reports that a fragment shader source failed to compile,
// before anything was submitted to the GPU.
type CompileError struct {
	Label      string
	Diagnostic error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling %s: %v", e.Label, e.Diagnostic)
}

func (e *CompileError) Unwrap() error { return e.Diagnostic }

// EntryPointError reports that the requested fragment entry point does not
// exist in the supplied source, or that no entry point was named and the
// source doesn't declare exactly one.
type EntryPointError struct {
	EntryPoint string
	Available  []string
}

func (e *EntryPointError) Error() string {
	avail := "none"
	if len(e.Available) > 0 {
		avail = strings.Join(e.Available, ", ")
	}
	if e.EntryPoint == "" {
		return fmt.Sprintf("shader must declare exactly one @fragment function or an entry point must be named; found: %s", avail)
	}
	return fmt.Sprintf("no @fragment function named %q; found: %s", e.EntryPoint, avail)
}

// ViewportError reports a viewport with a zero dimension. It is returned
// before any GPU work is encoded or submitted.
type ViewportError struct {
	Width, Height uint32
}

func (e *ViewportError) Error() string {
	return fmt.Sprintf("invalid viewport %dx%d: both dimensions must be at least 1", e.Width, e.Height)
}
