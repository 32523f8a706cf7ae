package gui

// StyleColor identifies a color slot in Style.
type StyleColor int

const (
	ColText StyleColor = iota
	ColPanelBackground
	ColPanelHeader
	ColPanelTabInactive
	ColPanelBorder
	ColResizeHandle
	ColButton
	ColButtonHovered
	ColButtonActive
	ColMenuBar
	ColMenuBarUnderline
	ColMenuHighlight
	ColMenuText
	ColDropdownBackground
	ColSeparator
	ColDockZone
	ColDockZoneHot
	ColDockPreview
	ColCount
)

// StyleVar identifies a float metric in Style.
type StyleVar int

const (
	VarItemSpacing StyleVar = iota
	VarContentPadding
	VarFontSize
	VarMenuButtonPadding
	VarCount
)

// StyleVarVec2 identifies a two-component metric in Style.
type StyleVarVec2 int

const (
	VarHeaderPadding StyleVarVec2 = iota
	VarButtonPadding
	VarVec2Count
)

// Style defines the visual appearance of UI elements.
type Style struct {
	Colors [ColCount]uint32

	// Sizing
	ItemSpacing       float32 // Gap between items on a line and between lines
	ContentPadding    float32 // Inset of panel content from the panel edges
	FontSize          float32 // Text size in pixels (0 = the font's native size)
	MenuButtonPadding float32 // Horizontal padding of menu bar buttons

	HeaderPadding Vec2 // Padding around the panel title
	ButtonPadding Vec2
}

// DefaultStyle returns the default light palette.
func DefaultStyle() Style {
	s := Style{
		ItemSpacing:       4,
		ContentPadding:    4,
		FontSize:          0,
		MenuButtonPadding: 15,
		HeaderPadding:     Vec2{10, 5},
		ButtonPadding:     Vec2{8, 4},
	}
	s.Colors = [ColCount]uint32{
		ColText:               0xFF201B1C,
		ColPanelBackground:    0xF0F4F4F4,
		ColPanelHeader:        0xFFCCCCCC,
		ColPanelTabInactive:   0xFFA8A8A8,
		ColPanelBorder:        0xFF9A9A9A,
		ColResizeHandle:       0xFF9A9A9A,
		ColButton:             0xFFDDDDDD,
		ColButtonHovered:      0xFFEBEBEB,
		ColButtonActive:       0xFFFB9608,
		ColMenuBar:            0xAAFFFFFF,
		ColMenuBarUnderline:   0xAA7E72C5,
		ColMenuHighlight:      0xFFFB9608,
		ColMenuText:           0xFF201B1C,
		ColDropdownBackground: 0xF8FFFFFF,
		ColSeparator:          0xFFBBBBBB,
		ColDockZone:           0x80FB9608,
		ColDockZoneHot:        0xE0FB9608,
		ColDockPreview:        0x40FB9608,
	}
	return s
}

// DarkStyle returns a dark palette with the same metrics as DefaultStyle.
func DarkStyle() Style {
	s := DefaultStyle()
	s.Colors[ColText] = ColorWhite
	s.Colors[ColPanelBackground] = RGBA(20, 20, 20, 220)
	s.Colors[ColPanelHeader] = RGBA(40, 40, 45, 255)
	s.Colors[ColPanelTabInactive] = RGBA(28, 28, 30, 255)
	s.Colors[ColPanelBorder] = RGBA(80, 80, 80, 255)
	s.Colors[ColResizeHandle] = RGBA(100, 100, 100, 255)
	s.Colors[ColButton] = RGBA(50, 50, 50, 255)
	s.Colors[ColButtonHovered] = RGBA(70, 70, 70, 255)
	s.Colors[ColButtonActive] = RGBA(90, 90, 90, 255)
	s.Colors[ColDropdownBackground] = RGBA(25, 25, 25, 250)
	s.Colors[ColSeparator] = RGBA(80, 80, 80, 255)
	return s
}

func (s *Style) colorSlot(i int) *uint32 {
	if i < 0 || i >= int(ColCount) {
		return nil
	}
	return &s.Colors[i]
}

func (s *Style) varSlot(i int) *float32 {
	switch StyleVar(i) {
	case VarItemSpacing:
		return &s.ItemSpacing
	case VarContentPadding:
		return &s.ContentPadding
	case VarFontSize:
		return &s.FontSize
	case VarMenuButtonPadding:
		return &s.MenuButtonPadding
	}
	return nil
}

func (s *Style) vec2Slot(i int) *Vec2 {
	switch StyleVarVec2(i) {
	case VarHeaderPadding:
		return &s.HeaderPadding
	case VarButtonPadding:
		return &s.ButtonPadding
	}
	return nil
}

// overrideStack records scoped overrides of one value type so that pops
// restore the previous value of whichever slot was pushed.
type overrideStack[T any] struct {
	entries []override[T]
}

type override[T any] struct {
	slot int
	prev T
}

func (s *overrideStack[T]) push(slot int, cur *T, v T) {
	s.entries = append(s.entries, override[T]{slot: slot, prev: *cur})
	*cur = v
}

// pop undoes the last n overrides. It reports false if fewer than n were
// pushed; the available ones are still restored.
func (s *overrideStack[T]) pop(n int, lookup func(int) *T) bool {
	ok := true
	if n > len(s.entries) {
		n = len(s.entries)
		ok = false
	}
	for ; n > 0; n-- {
		e := s.entries[len(s.entries)-1]
		s.entries = s.entries[:len(s.entries)-1]
		if p := lookup(e.slot); p != nil {
			*p = e.prev
		}
	}
	return ok
}

func (s *overrideStack[T]) len() int { return len(s.entries) }

func (s *overrideStack[T]) reset() { s.entries = s.entries[:0] }

// Style returns the current style, including active overrides.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Color returns the current value of a color slot.
func (ctx *Context) Color(c StyleColor) uint32 {
	if p := ctx.style.colorSlot(int(c)); p != nil {
		return *p
	}
	return 0
}

// PushStyleColor temporarily overrides a single color.
func (ctx *Context) PushStyleColor(c StyleColor, color uint32) {
	if p := ctx.style.colorSlot(int(c)); p != nil {
		ctx.colorStack.push(int(c), p, color)
	}
}

// PopStyleColor restores the last count color overrides.
func (ctx *Context) PopStyleColor(count int) {
	if !ctx.colorStack.pop(count, ctx.style.colorSlot) {
		ctx.setErr(ErrUnbalancedStyles)
	}
}

// PushStyleVar temporarily overrides a float metric.
func (ctx *Context) PushStyleVar(v StyleVar, value float32) {
	if p := ctx.style.varSlot(int(v)); p != nil {
		ctx.varStack.push(int(v), p, value)
	}
}

// PushStyleVarVec2 temporarily overrides a two-component metric.
func (ctx *Context) PushStyleVarVec2(v StyleVarVec2, value Vec2) {
	if p := ctx.style.vec2Slot(int(v)); p != nil {
		ctx.vec2Stack.push(int(v), p, value)
	}
}

// PopStyleVar restores the last count float overrides.
func (ctx *Context) PopStyleVar(count int) {
	if !ctx.varStack.pop(count, ctx.style.varSlot) {
		ctx.setErr(ErrUnbalancedStyles)
	}
}

// PopStyleVarVec2 restores the last count two-component overrides.
func (ctx *Context) PopStyleVarVec2(count int) {
	if !ctx.vec2Stack.pop(count, ctx.style.vec2Slot) {
		ctx.setErr(ErrUnbalancedStyles)
	}
}
