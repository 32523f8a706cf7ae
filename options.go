package gui

// Option configures a panel or widget.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	var OptAccent = gui.NewOptKey("accent", uint32(0))
//
//	ctx.Button("OK", gui.WithOpt(OptAccent, 0xFF00FF00))
//
//	accent := gui.ApplyAndGet(opts, OptAccent)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// Built-in option keys.
var (
	OptPos        = NewOptKey("pos", Vec2{})
	OptSize       = NewOptKey("size", DefaultPanelSize)
	OptPanelFlags = NewOptKey("panelFlags", PanelFlags(0))
	OptWidth      = NewOptKey[float32]("width", 0)
	OptHeight     = NewOptKey[float32]("height", 0)
	OptTextColor  = NewOptKey[uint32]("textColor", 0)
)

// WithPos sets the position a panel is created at.
func WithPos(x, y float32) Option { return WithOpt(OptPos, Vec2{x, y}) }

// WithSize sets the size a panel is created with.
func WithSize(w, h float32) Option { return WithOpt(OptSize, Vec2{w, h}) }

// WithFlags sets the behavior flags a panel is created with.
func WithFlags(flags PanelFlags) Option { return WithOpt(OptPanelFlags, flags) }

// WithWidth sets a minimum width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a minimum height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithTextColor overrides the label color of a single widget.
func WithTextColor(color uint32) Option { return WithOpt(OptTextColor, color) }
