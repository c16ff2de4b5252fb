package wgpu_engine

import (
	"fmt"
	"sync"

	"honnef.co/go/wgpu"

	"github.com/pemattern/tui-shader/engine"
)

// Session owns the instance/adapter/device/queue chain. One session can back
// any number of engines; each engine owns its own pipeline, bind group,
// texture and staging buffer, and the queue serializes their submissions.
type Session struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
}

// NewSession negotiates a device and queue suitable for off-screen
// rendering; no surface is requested. The negotiation is asynchronous on
// the driver side and this call blocks until it resolves, which is
// acceptable because it happens once per session, not per frame.
func NewSession() (*Session, error) {
	instance := wgpu.CreateInstance(wgpu.InstanceDescriptor{})

	adapter, err := instance.RequestAdapter(wgpu.RequestAdapterOptions{})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: %v", engine.ErrDeviceUnavailable, err)
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "tui-shader",
	})
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: %v", engine.ErrDeviceRequestFailed, err)
	}

	return &Session{
		instance: instance,
		adapter:  adapter,
		Device:   device,
		Queue:    device.Queue(),
	}, nil
}

var (
	defaultSession     *Session
	defaultSessionErr  error
	defaultSessionOnce sync.Once
)

// DefaultSession returns the process-wide session, acquiring it on first
// use. GPU availability doesn't change within a process run, so a failed
// acquisition is remembered and returned on every subsequent call.
func DefaultSession() (*Session, error) {
	defaultSessionOnce.Do(func() {
		defaultSession, defaultSessionErr = NewSession()
	})
	return defaultSession, defaultSessionErr
}

// Close releases the session's resources in reverse acquisition order. It
// must not be called while engines derived from the session are still in
// use.
func (s *Session) Close() {
	if s.Device != nil {
		s.Device.Release()
		s.Device = nil
		s.Queue = nil
	}
	if s.adapter != nil {
		s.adapter.Release()
		s.adapter = nil
	}
	if s.instance != nil {
		s.instance.Release()
		s.instance = nil
	}
}
