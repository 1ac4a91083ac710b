package core

// Client is a live transport session as seen by the core layer.
// The transport owns the underlying connection; the core only holds
// the handle and the outbound event queue.
type Client struct {
	ID     string
	Events chan *Event
}

// NewClient constructs a client with an initialized event queue.
func NewClient(id string) *Client {
	return &Client{
		ID:     id,
		Events: make(chan *Event, 16),
	}
}

// send queues an event without blocking. A slow consumer loses events
// rather than stalling the hub.
func (c *Client) send(event *Event) {
	select {
	case c.Events <- event:
	default:
		// Drop if slow consumer.
	}
}
