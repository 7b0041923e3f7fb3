package banbridge

// Handler is an interface that defines the methods for handling events.
type Handler interface {
	Check(*Event) bool
	Invoke(*Event) error
	Priority() Priority
}

// Callback is a function type that represents a callback function for handling events.
type Callback func(*Event) error

// TypeHandler is a struct that implements the Handler interface for handling events of a specific type.
type TypeHandler struct {
	Callback Callback
	Filter   Filter
	Type     EventType
	Order    Priority
}

// Check checks if the event is of the specified type.
func (th *TypeHandler) Check(event *Event) bool {
	if th.Type&event.Type == 0 {
		return false
	}
	ok := true
	if th.Filter != nil {
		ok = th.Filter.Check(event)
	}
	return ok
}

// Invoke executes the callback function for the event of the specified type.
func (th *TypeHandler) Invoke(event *Event) error {
	return th.Callback(event)
}

// Priority returns the priority the handler was registered with.
func (th *TypeHandler) Priority() Priority {
	return th.Order
}

// NewTypeHandler returns a new `TypeHandler`.
func NewTypeHandler(callback Callback, filter Filter, eventType EventType, priority Priority) Handler {
	return &TypeHandler{
		Callback: callback,
		Filter:   filter,
		Type:     eventType,
		Order:    priority,
	}
}
