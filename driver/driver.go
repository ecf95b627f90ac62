// Package driver selects the glcore.Device implementation a program draws
// with.
//
// Drivers register themselves from init functions. Importing a driver
// package is enough to make it available:
//
//	import (
//	    "github.com/gogpu/gldraw/driver"
//	    _ "github.com/gogpu/gldraw/headless"
//	    _ "github.com/gogpu/gldraw/opengl"
//	)
//
//	d, err := driver.InitDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer d.Close()
//	ctx := gldraw.NewContext(d.Device())
package driver

import (
	"errors"

	"github.com/gogpu/gldraw/glcore"
)

// Driver name constants.
const (
	// NameOpenGL is the go-gl driver. It needs a current OpenGL 3.3 context.
	NameOpenGL = "opengl"
	// NameHeadless is the in-memory recording driver.
	NameHeadless = "headless"
)

// Common driver errors.
var (
	// ErrDriverNotAvailable is returned when no registered driver initializes.
	ErrDriverNotAvailable = errors.New("driver: not available")

	// ErrNotInitialized is returned when a device is requested before Init.
	ErrNotInitialized = errors.New("driver: not initialized")
)

// Driver is the interface for device drivers.
//
// Drivers must be registered via Register() and are selected via
// Get(), Default() or InitDefault().
type Driver interface {
	// Name returns the driver identifier (e.g., "opengl", "headless").
	Name() string

	// Init prepares the driver. It fails when the driver cannot run in the
	// current environment.
	Init() error

	// Device returns the device. It is nil before Init succeeds.
	Device() glcore.Device

	// Close releases driver resources. The device must not be used after.
	Close()
}
