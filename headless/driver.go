// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"github.com/gogpu/gldraw/driver"
	"github.com/gogpu/gldraw/glcore"
)

// init registers the headless driver on package import.
func init() {
	driver.Register(driver.NameHeadless, func() driver.Driver {
		return &Driver{}
	})
}

// Driver wraps a headless Device for the driver registry.
type Driver struct {
	dev *Device
}

// NewDriver creates a headless driver.
func NewDriver(opts ...Option) *Driver {
	return &Driver{dev: New(opts...)}
}

// Name returns the driver identifier.
func (d *Driver) Name() string { return driver.NameHeadless }

// Init creates the device. It always succeeds.
func (d *Driver) Init() error {
	if d.dev == nil {
		d.dev = New()
	}
	return nil
}

// Device returns the headless device, or nil before Init.
func (d *Driver) Device() glcore.Device {
	if d.dev == nil {
		return nil
	}
	return d.dev
}

// Close drops the device.
func (d *Driver) Close() { d.dev = nil }
