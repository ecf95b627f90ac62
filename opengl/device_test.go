// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"testing"

	"github.com/gogpu/gldraw/driver"
)

func TestDriverRegistered(t *testing.T) {
	if !driver.IsRegistered(driver.NameOpenGL) {
		t.Fatal("opengl driver not registered")
	}
	d := driver.Get(driver.NameOpenGL)
	if d == nil || d.Name() != driver.NameOpenGL {
		t.Fatalf("Get(opengl) = %v", d)
	}
	if d.Device() != nil {
		t.Error("Device() before Init should be nil")
	}
}
