/*
Package gui provides an immediate-mode GUI library with dockable panels,
designed as idiomatic Go with a dedicated Context type.

# Overview

The UI is rebuilt every frame. Widgets return interaction results directly
and the library emits one vertex/index stream per frame for a GPU
rasterizer. Panels are the only retained state: their position, size and
dock placement survive across frames and are keyed by name.

# Quick Start

	// Setup
	atlas, _ := font.Build(goregular.TTF, font.DefaultConfig())
	renderer, _ := opengl.NewRenderer(1280, 720, atlas.Texture)
	ui := gui.New(renderer, gui.WithFont(atlas))

	// Main loop
	for !window.ShouldClose() {
	    ctx := ui.Begin(input, gui.Vec2{X: 1280, Y: 720}, deltaTime)

	    if ctx.BeginMenuBar(24) {
	        if ctx.BeginMenu("File") {
	            if ctx.MenuItem("Quit") {
	                window.SetShouldClose(true)
	            }
	            ctx.EndMenu()
	        }
	        ctx.EndMenuBar()
	    }

	    ctx.Panel("Stats", gui.WithPos(20, 40))(func() {
	        ctx.Textf("frame %d", ctx.FrameCount)
	        ctx.Newline()
	        if ctx.Button("Reset") {
	            // Button was clicked
	        }
	    })

	    if err := ui.End(); err != nil {
	        log.Fatal(err)
	    }
	    window.SwapBuffers()
	    input.Reset()
	}

# Panels and Docking

A panel floats until its header is dragged onto a dock zone. While a panel
is dragged, square zones appear at the middle of each screen edge and
around the center of the docked area under the mouse. Dropping on a screen
zone gives the panel a quarter of the screen on that side; dropping on a
side zone of a docked area splits it in half; dropping on its center adds
the panel as a tab. Dragging a docked panel's header more than
UndockThreshold pixels takes it out of the tree again.

Panels are resized from the bottom-right handle. Docked panels move the
split line they border instead.

# Draw Order

EndFrame emits loose content first, then docked panels, floating panels
and overlays (menu bar, dropdowns) each clipped to their bounds, and
finally the dock zone overlay.

# Errors

Capacity overflow, unbalanced Begin/End pairs and layout stack misuse do
not panic. The first error of a frame is kept and returned by EndFrame
(and by GUI.End, which then skips rendering).

# Logging

The package logs through log/slog to stderr. SetVerbose(true) enables
debug output for panel creation, docking, resizing and menu events.
*/
package gui
