package effect

// Handler performs effects of the types it declares
// Collaborators (navigator, haptics, analytics, announcer) implement this
type Handler interface {
	// HandleEffect performs a single effect
	// Called synchronously in emission order
	HandleEffect(e Effect)

	// EffectTypes returns the effect types this handler performs
	EffectTypes() []Type
}

// HandlerFunc adapts a function to Handler for a fixed set of types
type HandlerFunc struct {
	Types []Type
	Fn    func(Effect)
}

func (h HandlerFunc) HandleEffect(e Effect) { h.Fn(e) }
func (h HandlerFunc) EffectTypes() []Type   { return h.Types }

// Router dispatches effect lists returned by the engine to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the host's event loop
//   - Multiple handlers can register for the same effect type
//   - Handlers are invoked in registration order
//   - Effects without a handler are dropped and counted
type Router struct {
	handlers  map[Type][]Handler
	unhandled int
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[Type][]Handler),
	}
}

// Register adds a handler for its declared effect types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EffectTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch routes effects in FIFO order
func (r *Router) Dispatch(effects []Effect) {
	for _, e := range effects {
		handlers := r.handlers[e.Type]
		if len(handlers) == 0 {
			r.unhandled++
			continue
		}
		for _, h := range handlers {
			h.HandleEffect(e)
		}
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t Type) int {
	return len(r.handlers[t])
}

// Unhandled returns how many effects were dropped for lack of a handler
func (r *Router) Unhandled() int {
	return r.unhandled
}
