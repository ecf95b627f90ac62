package driver

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Factory creates a new driver instance.
type Factory func() Driver

// registry holds registered drivers.
var (
	registryMu sync.RWMutex
	drivers    = make(map[string]Factory)
	// Priority order for driver selection (first that initializes wins).
	// A real context beats the recording fallback.
	driverPriority = []string{NameOpenGL, NameHeadless}
)

// Register registers a driver factory with the given name.
// This is typically called from init() functions in driver packages.
// If a driver with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	drivers[name] = factory
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// Available returns the registered driver names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a driver with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := drivers[name]
	return ok
}

// Get returns a driver instance by name.
// Returns nil if the driver is not registered.
func Get(name string) Driver {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := drivers[name]
	if !ok {
		return nil
	}
	return factory()
}

// candidates returns the factories in selection order: priority list
// first, then the remaining drivers by name.
func candidates() []Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := make(map[string]bool, len(drivers))
	var out []Factory
	for _, name := range driverPriority {
		if f, ok := drivers[name]; ok {
			out = append(out, f)
			seen[name] = true
		}
	}
	rest := make([]string, 0, len(drivers))
	for name := range drivers {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, drivers[name])
	}
	return out
}

// Default returns the highest priority registered driver, uninitialized.
// Returns nil if no drivers are registered.
func Default() Driver {
	for _, f := range candidates() {
		if d := f(); d != nil {
			return d
		}
	}
	return nil
}

// MustDefault returns the default driver or panics.
func MustDefault() Driver {
	d := Default()
	if d == nil {
		panic("driver: no driver available")
	}
	return d
}

// InitDefault initializes drivers in priority order and returns the first
// one whose Init succeeds. The init errors of skipped drivers are joined
// into the returned error when none succeeds.
func InitDefault() (Driver, error) {
	var errs []error
	for _, f := range candidates() {
		d := f()
		if d == nil {
			continue
		}
		if err := d.Init(); err != nil {
			Logger().Debug("driver: init failed", "driver", d.Name(), "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", d.Name(), err))
			continue
		}
		Logger().Info("driver: selected", "driver", d.Name())
		return d, nil
	}
	return nil, errors.Join(append([]error{ErrDriverNotAvailable}, errs...)...)
}

// loggerMu guards logger.
var (
	loggerMu sync.RWMutex
	logger   = slog.New(slog.DiscardHandler)
)

// SetLogger sets the logger used for driver selection messages.
// Nil restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// Logger returns the driver package logger.
func Logger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
