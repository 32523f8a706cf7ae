// Example opens a window with a menu bar and a few dockable panels.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Drag a panel by its title bar onto the screen edges or onto another
// docked panel to dock it. Drag a docked title bar to pull it out again.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/fadan/gui"
	"github.com/fadan/gui/backend/opengl"
	"github.com/fadan/gui/font"
)

const windowTitle = "gui example"

// optCaptionColor is a custom option read by caption.
var optCaptionColor = gui.NewOptKey[uint32]("captionColor", gui.ColorGray)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		verbose  = flag.Bool("verbose", false, "log panel, dock and atlas diagnostics")
		fontPath = flag.String("font", "", "TrueType font file (default: Go Regular)")
		fontSize = flag.Float64("font-size", 13, "font pixel height")
		width    = flag.Int("width", 1280, "window width")
		height   = flag.Int("height", 720, "window height")
	)
	flag.Parse()

	gui.SetVerbose(*verbose)
	if *verbose {
		font.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*fontPath, float32(*fontSize), *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadFont(path string, size float32) (*font.Font, error) {
	ttf := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		ttf = b
	}
	cfg := font.DefaultConfig()
	cfg.Size = size
	return font.Build(ttf, cfg)
}

func run(fontPath string, fontSize float32, width, height int) error {
	atlas, err := loadFont(fontPath, fontSize)
	if err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh, atlas.Texture)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(renderer, gui.WithFont(atlas))

	var (
		clicks  int
		dark    bool
		panels  = []string{"Scene", "Inspector", "Log"}
		visible = map[string]bool{"Scene": true, "Inspector": true, "Log": true}
	)
	last := glfw.GetTime()

	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input.Input(), gui.Vec2{X: float32(w), Y: float32(h)}, dt)

		if ctx.BeginMenuBar(24) {
			if ctx.BeginMenu("File") {
				if ctx.MenuItem("Quit") {
					window.SetShouldClose(true)
				}
				ctx.EndMenu()
			}
			if ctx.BeginMenu("View") {
				for _, name := range panels {
					label := "Show " + name
					if visible[name] {
						label = "Hide " + name
					}
					if ctx.MenuItem(label) {
						visible[name] = !visible[name]
					}
				}
				ctx.EndMenu()
			}
			if ctx.MenuBarButton("Theme") {
				dark = !dark
				if dark {
					ui.SetStyle(gui.DarkStyle())
				} else {
					ui.SetStyle(gui.DefaultStyle())
				}
			}
			ctx.EndMenuBar()
		}

		if visible["Scene"] {
			ctx.Panel("Scene", gui.WithPos(40, 60), gui.WithSize(420, 300))(func() {
				ctx.DrawGradientBackground(0xFF402010, 0xFF100804, 0xFF201008, 0xFF804020)
				ctx.Textf("%dx%d @ %.1f fps", w, h, 1/maxf(dt, 1e-6))
			})
		}
		if visible["Inspector"] {
			ctx.Panel("Inspector", gui.WithPos(500, 60), gui.WithSize(260, 220))(func() {
				if ctx.Button("Click me") {
					clicks++
				}
				ctx.Newline()
				ctx.Textf("clicked %d time%s", clicks, plural(clicks))
				ctx.Separator()
				caption(ctx, "Hovered:")
				ctx.Text(panelName(ctx, ctx.HoveredPanel()))
			})
		}
		if visible["Log"] {
			ctx.Panel("Log", gui.WithPos(40, 400), gui.WithSize(720, 160))(func() {
				caption(ctx, "Last frame", gui.WithOpt(optCaptionColor, gui.ColorWhite))
				ctx.Newline()
				ctx.Textf("frame %d, %d vertices, %d commands",
					ctx.FrameCount, len(ctx.DrawList.VtxBuffer), len(ctx.DrawList.CmdBuffer))
			})
		}

		if err := ui.End(); err != nil {
			slog.Warn("frame dropped", "err", err)
		}
		input.EndFrame()

		window.SwapBuffers()
	}

	return nil
}

// caption draws a dimmed label. Its color comes from optCaptionColor.
func caption(ctx *gui.Context, text string, opts ...gui.Option) {
	ctx.Text(text, gui.WithTextColor(gui.ApplyAndGet(opts, optCaptionColor)))
}

func panelName(ctx *gui.Context, h gui.PanelHandle) string {
	if p := ctx.PanelAt(h); p != nil {
		return p.Name
	}
	return "-"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
