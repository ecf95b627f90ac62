// Command gldemo renders a draw pass in an OpenGL 3.3 window.
//
// Without -pass it draws a built-in spinning triangle. With -watch the pass
// file and its shader files are reloaded when they change; a pass that
// fails to build is reported and the previous one keeps drawing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gldraw"
	"github.com/gogpu/gldraw/driver"
	"github.com/gogpu/gldraw/drawfile"
	"github.com/gogpu/gldraw/glcore"
	"github.com/gogpu/gldraw/opengl"
)

func init() {
	// GL calls must stay on the thread that owns the context.
	runtime.LockOSThread()
}

type config struct {
	pass          string
	width, height int
	watch         bool
	frames        uint64
}

func main() {
	var (
		pass    = flag.String("pass", "", "pass file (.yaml, .yml or .toml); empty draws the built-in triangle")
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 600, "window height")
		watch   = flag.Bool("watch", false, "reload the pass file when it changes")
		frames  = flag.Uint64("frames", 0, "exit after n frames (0 runs until the window closes)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gldraw.SetLogger(logger)
	driver.SetLogger(logger)

	cfg := config{pass: *pass, width: *width, height: *height, watch: *watch, frames: *frames}
	if cfg.watch && cfg.pass == "" {
		log.Fatal("-watch needs -pass")
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(cfg.width, cfg.height, "gldemo", nil, nil)
	if err != nil {
		return fmt.Errorf("glfw: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	drv := driver.Get(driver.NameOpenGL)
	if drv == nil {
		return errors.New("opengl driver not registered")
	}
	if err := drv.Init(); err != nil {
		return err
	}
	defer drv.Close()
	dev, ok := drv.Device().(*opengl.Device)
	if !ok {
		return fmt.Errorf("unexpected device %T", drv.Device())
	}
	ctx := gldraw.NewContext(dev)

	cmd, files, err := load(ctx, cfg.pass)
	if err != nil {
		return err
	}
	defer func() { cmd.Release() }()

	var changes <-chan string
	if cfg.watch {
		w, err := drawfile.Watch(files...)
		if err != nil {
			return err
		}
		defer w.Close()
		changes = w.Changes()
	}

	start := time.Now()
	for tick := uint64(0); !window.ShouldClose(); tick++ {
		if cfg.frames > 0 && tick >= cfg.frames {
			break
		}
		select {
		case name := <-changes:
			if next, _, err := load(ctx, cfg.pass); err != nil {
				log.Printf("reload after %s change: %v", name, err)
			} else {
				cmd.Release()
				cmd = next
				log.Printf("reloaded %s", cfg.pass)
			}
		default:
		}

		w, h := window.GetFramebufferSize()
		dev.Viewport(w, h)
		dev.Clear(0.08, 0.08, 0.1, 1)

		env := gldraw.FrameEnvironment{
			ElapsedTime:    time.Since(start).Seconds(),
			FrameTick:      tick,
			ViewportWidth:  uint32(w),
			ViewportHeight: uint32(h),
		}
		if err := cmd.Draw(env); err != nil {
			return err
		}
		if e := dev.GetError(); e != glcore.NoError {
			gldraw.Logger().Warn("gldemo: gl error", "error", fmt.Sprintf("0x%04X", uint32(e)), "frame", tick)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// load builds the pass file, or the built-in triangle when path is empty.
// It also returns the files to watch.
func load(ctx *gldraw.Context, path string) (*gldraw.Command, []string, error) {
	if path == "" {
		cmd, err := triangle(ctx)
		return cmd, nil, err
	}
	p, err := drawfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	cmd, err := p.Build(ctx)
	if err != nil {
		return nil, nil, err
	}
	return cmd, p.Files(), nil
}
