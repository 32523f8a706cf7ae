package gui

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID uniquely identifies a panel or widget.
// IDs are stable across frames for the same name.
type ID uint64

// PanelID returns the identity of the panel with the given name.
func PanelID(name string) ID {
	return ID(xxhash.Sum64String(name))
}

// GetID derives a widget ID from a label, scoped by the ID stack and the
// panel being built.
func (ctx *Context) GetID(label string) ID {
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], uint64(ctx.CurrentID()))
	ctx.digest.Reset()
	ctx.digest.Write(seed[:])
	ctx.digest.WriteString(label)
	return ID(ctx.digest.Sum64())
}

// PushID pushes an ID onto the stack for nested widgets.
// All GetID calls will be relative to this parent ID.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID: the top of the ID stack, or the
// ID of the panel being built when the stack is empty.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	if h := ctx.currentPanel(); h != NoPanel {
		return ctx.panels[h].ID
	}
	return 0
}
