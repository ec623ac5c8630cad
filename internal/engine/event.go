package engine

// Event is a multi-cast notification without arguments.
type Event struct {
	listeners []func()
}

// AddListener adds a callback to be invoked when the event fires
func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// Invoke calls all registered listeners in registration order.
func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

// EventWithArg is a multi-cast notification carrying one value.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}
