// Command gen renders sample scenes offscreen and saves PNG screenshots,
// plus the font atlas, to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/fadan/gui"
	"github.com/fadan/gui/backend/opengl"
	"github.com/fadan/gui/font"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single scene to capture.
type screenshot struct {
	name   string                 // filename without extension
	width  int                    // viewport width
	height int                    // viewport height
	draw   func(ctx *gui.Context) // scene drawing function
	// input scripts the mouse before frame i; nil leaves it idle.
	input  func(i int, in *gui.InputState)
	frames int // frames to render (0 = default 2)
}

func run() error {
	atlas, err := font.Build(goregular.TTF, font.DefaultConfig())
	if err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := savePNG(filepath.Join(outDir, "atlas.png"), atlas.Texture); err != nil {
		return fmt.Errorf("save atlas: %w", err)
	}
	fmt.Printf("  atlas.png (%dx%d)\n", atlas.Texture.Bounds().Dx(), atlas.Texture.Bounds().Dy())

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600, atlas.Texture)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, atlas, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.png (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, atlas *font.Font, s screenshot, outDir string) error {
	// Only update the renderer projection; the hidden window stays at
	// 800x600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot so panel state does not leak between captures.
	ui := gui.New(renderer, gui.WithFont(atlas))
	in := gui.NewInputState()

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		if s.input != nil {
			s.input(i, in)
		}
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := gui.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := ui.Begin(in, displaySize, 1.0/60.0)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
		in.Reset()
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	rowLen := s.width * 4
	for y := 0; y < s.height; y++ {
		src := (s.height - 1 - y) * rowLen
		copy(img.Pix[y*rowLen:(y+1)*rowLen], pixels[src:src+rowLen])
	}

	return savePNG(filepath.Join(outDir, s.name+".png"), img)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// click presses at (x, y) on frame at and releases on the next frame.
func click(at int, x, y float32) func(int, *gui.InputState) {
	return func(i int, in *gui.InputState) {
		switch i {
		case at:
			in.SetMousePos(x, y)
			in.SetMouseButton(gui.MouseButtonLeft, true)
		case at + 1:
			in.SetMouseButton(gui.MouseButtonLeft, false)
		}
	}
}

// buildScreenshots returns the scenes to capture.
func buildScreenshots() []screenshot {
	fileMenu := func(ctx *gui.Context) {
		if ctx.BeginMenuBar(24) {
			if ctx.BeginMenu("File") {
				ctx.MenuItem("New")
				ctx.MenuItem("Open...")
				ctx.MenuItem("Quit")
				ctx.EndMenu()
			}
			ctx.MenuBarButton("Edit")
			ctx.MenuBarButton("Help")
			ctx.EndMenuBar()
		}
	}

	return []screenshot{
		{
			name: "text", width: 400, height: 160,
			draw: func(ctx *gui.Context) {
				ctx.Panel("Text", gui.WithPos(10, 10), gui.WithSize(380, 140))(func() {
					ctx.Text("Plain text")
					ctx.Newline()
					ctx.Text("Colored text", gui.WithTextColor(gui.ColorYellow))
					ctx.Newline()
					ctx.Textf("%-8s|%6.2f|%#x", "fmt", 3.14159, 255)
					ctx.Separator()
					ctx.Text("UTF-8: déjà vu, ½ × ¾")
				})
			},
		},
		{
			name: "button", width: 400, height: 120,
			draw: func(ctx *gui.Context) {
				ctx.Panel("Buttons", gui.WithPos(10, 10), gui.WithSize(380, 100))(func() {
					ctx.Button("Standard")
					ctx.Button("Wide", gui.WithWidth(120))
					ctx.Button("Red", gui.WithTextColor(gui.ColorRed))
				})
			},
		},
		{
			name: "menu", width: 400, height: 200,
			draw:   fileMenu,
			input:  click(1, 10, 12),
			frames: 4,
		},
		{
			name: "gradient", width: 300, height: 200,
			draw: func(ctx *gui.Context) {
				ctx.Panel("Gradient", gui.WithPos(10, 10), gui.WithSize(280, 180))(func() {
					ctx.DrawGradientBackground(gui.ColorRed, gui.ColorGreen, gui.ColorBlue, gui.ColorYellow)
				})
			},
		},
		{
			name: "docking", width: 640, height: 400,
			draw: func(ctx *gui.Context) {
				ctx.Panel("Inspector", gui.WithPos(300, 220), gui.WithSize(200, 150))(func() {
					ctx.Text("Docked on the left")
				})
				ctx.Panel("Floating", gui.WithPos(240, 60), gui.WithSize(240, 140))(func() {
					ctx.Text("Still floating")
				})
			},
			// Drag the Inspector title bar onto the left screen zone.
			input: func(i int, in *gui.InputState) {
				switch i {
				case 1:
					in.SetMousePos(400, 230)
					in.SetMouseButton(gui.MouseButtonLeft, true)
				case 2:
					in.SetMousePos(24, 200)
				case 3:
					in.SetMouseButton(gui.MouseButtonLeft, false)
				}
			},
			frames: 5,
		},
	}
}
