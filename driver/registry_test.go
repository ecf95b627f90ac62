package driver

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gldraw/glcore"
)

// fakeDriver is a Driver whose Init result is fixed.
type fakeDriver struct {
	name    string
	initErr error
	inited  bool
	closed  bool
}

func (d *fakeDriver) Name() string { return d.name }

func (d *fakeDriver) Init() error {
	if d.initErr != nil {
		return d.initErr
	}
	d.inited = true
	return nil
}

func (d *fakeDriver) Device() glcore.Device { return nil }
func (d *fakeDriver) Close()                { d.closed = true }

// withRegistry swaps the registry contents for the duration of a test.
func withRegistry(t *testing.T, factories map[string]Factory) {
	t.Helper()
	registryMu.Lock()
	saved := drivers
	drivers = factories
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		drivers = saved
		registryMu.Unlock()
	})
}

func factoryFor(name string, initErr error) Factory {
	return func() Driver { return &fakeDriver{name: name, initErr: initErr} }
}

func TestRegistryRegisterAndGet(t *testing.T) {
	withRegistry(t, map[string]Factory{})
	Register("fake", factoryFor("fake", nil))

	if !IsRegistered("fake") {
		t.Fatal("fake driver should be registered")
	}
	d := Get("fake")
	if d == nil {
		t.Fatal("Get(fake) returned nil")
	}
	if d.Name() != "fake" {
		t.Errorf("Get(fake).Name() = %q, want %q", d.Name(), "fake")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	withRegistry(t, map[string]Factory{})
	if d := Get("nonexistent"); d != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailableSorted(t *testing.T) {
	withRegistry(t, map[string]Factory{
		"zeta":       factoryFor("zeta", nil),
		NameHeadless: factoryFor(NameHeadless, nil),
		"alpha":      factoryFor("alpha", nil),
	})

	got := strings.Join(Available(), ",")
	if want := "alpha,headless,zeta"; got != want {
		t.Errorf("Available() = %s, want %s", got, want)
	}
}

func TestRegistryUnregister(t *testing.T) {
	withRegistry(t, map[string]Factory{})
	Register("test-driver", factoryFor("test-driver", nil))
	Unregister("test-driver")

	if IsRegistered("test-driver") {
		t.Error("test-driver should be unregistered")
	}
}

func TestRegistryDefaultPriority(t *testing.T) {
	withRegistry(t, map[string]Factory{
		"aaa":        factoryFor("aaa", nil),
		NameHeadless: factoryFor(NameHeadless, nil),
		NameOpenGL:   factoryFor(NameOpenGL, nil),
	})

	d := Default()
	if d == nil {
		t.Fatal("Default() returned nil")
	}
	if d.Name() != NameOpenGL {
		t.Errorf("Default().Name() = %q, want %q", d.Name(), NameOpenGL)
	}
}

func TestRegistryDefaultEmpty(t *testing.T) {
	withRegistry(t, map[string]Factory{})
	if d := Default(); d != nil {
		t.Errorf("Default() = %v, want nil", d.Name())
	}
}

func TestRegistryMustDefaultPanics(t *testing.T) {
	withRegistry(t, map[string]Factory{})
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustDefault() should panic with no drivers")
		}
	}()
	MustDefault()
}

func TestRegistryInitDefaultFallsBack(t *testing.T) {
	errNoContext := errors.New("no current context")
	withRegistry(t, map[string]Factory{
		NameOpenGL:   factoryFor(NameOpenGL, errNoContext),
		NameHeadless: factoryFor(NameHeadless, nil),
	})

	d, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	if d.Name() != NameHeadless {
		t.Errorf("InitDefault().Name() = %q, want %q", d.Name(), NameHeadless)
	}
	if !d.(*fakeDriver).inited {
		t.Error("selected driver was not initialized")
	}
}

func TestRegistryInitDefaultAllFail(t *testing.T) {
	errNoContext := errors.New("no current context")
	withRegistry(t, map[string]Factory{
		NameOpenGL: factoryFor(NameOpenGL, errNoContext),
	})

	d, err := InitDefault()
	if d != nil {
		t.Errorf("InitDefault() driver = %v, want nil", d.Name())
	}
	if !errors.Is(err, ErrDriverNotAvailable) {
		t.Errorf("InitDefault() error = %v, want ErrDriverNotAvailable", err)
	}
	if !errors.Is(err, errNoContext) {
		t.Errorf("InitDefault() error should wrap the driver error, got %v", err)
	}
}

func TestRegistryInitDefaultLogsSelection(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	withRegistry(t, map[string]Factory{
		NameOpenGL:   factoryFor(NameOpenGL, errors.New("no context")),
		NameHeadless: factoryFor(NameHeadless, nil),
	})
	if _, err := InitDefault(); err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "driver: init failed") || !strings.Contains(out, "driver: selected") {
		t.Errorf("unexpected log output: %s", out)
	}
}

func TestSetLoggerNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("SetLogger(nil) should install a discard logger, not nil")
	}
}
