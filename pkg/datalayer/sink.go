package datalayer

// Defined event names. Payload field sets per event are produced by the
// pipeline packages; the sink treats them as opaque.
const (
	EventPageView     = "page_view"
	EventScroll       = "scroll"
	EventEngagedTime  = "engaged_time"
	EventContactClick = "contact_click"
	EventCTAClick     = "cta_click"
	EventContentClick = "content_click"
	EventButtonClick  = "button_click"
	EventFormStart    = "form_start"
	EventFormSubmit   = "form_submit"
	EventFormSuccess  = "form_success"
)

// Event is one emitted record: a name plus its stamped payload.
type Event struct {
	Name    string
	Payload map[string]any
}

// Sink is the append-only queue the tracker emits into. Pushes are
// fire-and-forget: no retry, no delivery guarantee. Implementations must be
// safe for concurrent use and must not block.
type Sink interface {
	Push(event string, payload map[string]any)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(event string, payload map[string]any)

// Push calls the wrapped function.
func (f SinkFunc) Push(event string, payload map[string]any) {
	f(event, payload)
}
