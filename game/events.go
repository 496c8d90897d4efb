package game

// Event is an observable occurrence emitted by the core. Presentation
// concerns (flavor text, notifications) subscribe to these instead of the
// core carrying any display state.
type Event int

const (
	EventNone Event = iota
	// EventKnightCaptured fires when the King captures a Knight.
	EventKnightCaptured
)

// CaptureHook receives the square on which the King captured a Knight.
type CaptureHook func(Position)

// Option configures a GameState at construction time.
type Option func(gs *GameState)

// WithCaptureHook registers a callback invoked on every Knight capture.
func WithCaptureHook(hook CaptureHook) Option {
	return func(gs *GameState) {
		if hook != nil {
			gs.onCapture = hook
		}
	}
}
