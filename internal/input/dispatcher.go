package input

// KeyHandler receives forwarded key presses. *viewport.Viewport is the
// usual implementation.
type KeyHandler interface {
	HandleKeyDown(key string)
}

// Dispatcher buffers key events arriving from another goroutine (the
// transport's) and replays them on the goroutine that owns the
// program, keeping all program calls single-threaded.
type Dispatcher struct {
	pending chan KeyEvent
}

// NewDispatcher creates a dispatcher with a bounded backlog. Events
// past the backlog are dropped rather than blocking the transport.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{pending: make(chan KeyEvent, 64)}
}

// Enqueue parses and queues a wire event. Safe to call from any
// goroutine.
func (d *Dispatcher) Enqueue(data []byte) error {
	evt, err := Unmarshal(data)
	if err != nil {
		return err
	}
	select {
	case d.pending <- evt:
	default:
	}
	return nil
}

// Drain forwards every queued event to the handler, in arrival order,
// one call per event. Call between program updates.
func (d *Dispatcher) Drain(h KeyHandler) {
	for {
		select {
		case evt := <-d.pending:
			h.HandleKeyDown(evt.Key)
		default:
			return
		}
	}
}
