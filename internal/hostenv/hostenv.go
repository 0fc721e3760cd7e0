// Package hostenv reads snapshot descriptors from the host running the tests.
package hostenv

import (
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/snapshot/internal/config"
	"github.com/cory-johannsen/snapshot/internal/naming"
)

// Host implements naming.Environment for the current process.
//
// Configured overrides take precedence over probed values. Headless processes
// have no key window, so the screen size is only known when configured.
//
// Invariant: Host is read-only after construction and safe for concurrent use.
type Host struct {
	cfg    config.EnvironmentConfig
	logger *zap.Logger
	goos   string
	model  func() (string, error)
	uname  func() (utsname, error)
}

type utsname struct {
	release string
	machine string
}

// New creates a Host using cfg for overrides.
//
// Postcondition: Returns a non-nil Host.
func New(cfg config.EnvironmentConfig, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		cfg:    cfg,
		logger: logger,
		goos:   runtime.GOOS,
		model:  probeModel,
		uname:  probeUname,
	}
}

// DeviceModel returns the configured device model, the hardware model
// reported by the platform, or the uname machine, in that order.
func (h *Host) DeviceModel() (string, error) {
	if h.cfg.DeviceModel != "" {
		return h.cfg.DeviceModel, nil
	}
	model, err := h.model()
	if err == nil && model != "" {
		return model, nil
	}
	h.logger.Debug("hardware model probe failed, falling back to uname", zap.Error(err))
	u, uerr := h.uname()
	if uerr != nil {
		return "", fmt.Errorf("device model: %w: %w", naming.ErrDescriptorUnavailable, uerr)
	}
	if u.machine == "" {
		return "", fmt.Errorf("device model: %w", naming.ErrDescriptorUnavailable)
	}
	return u.machine, nil
}

// OSVersion returns the configured OS version or "<goos> <kernel release>".
func (h *Host) OSVersion() (string, error) {
	if h.cfg.OSVersion != "" {
		return h.cfg.OSVersion, nil
	}
	u, err := h.uname()
	if err != nil {
		return "", fmt.Errorf("os version: %w: %w", naming.ErrDescriptorUnavailable, err)
	}
	return strings.TrimSpace(h.goos + " " + u.release), nil
}

// ScreenSize returns the configured screen size formatted as "<w>x<h>".
func (h *Host) ScreenSize() (string, error) {
	if h.cfg.ScreenWidth <= 0 || h.cfg.ScreenHeight <= 0 {
		return "", fmt.Errorf("screen size: %w: not configured", naming.ErrDescriptorUnavailable)
	}
	return naming.FormatScreenSize(h.cfg.ScreenWidth, h.cfg.ScreenHeight), nil
}
