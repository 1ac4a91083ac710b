package core

import (
	"context"

	"github.com/rs/zerolog"
)

// Hub is the signaling relay. A single Run goroutine owns client
// attachment and command processing, so events from one connection are
// handled in arrival order and registry updates are never interleaved.
type Hub struct {
	registry *Registry
	log      *zerolog.Logger

	attach   chan *Client
	detach   chan *Client
	commands chan *Command

	clients map[*Client]struct{}
}

// NewHub creates a hub over the given registry. A nil logger disables
// logging, a nil registry gets a fresh one.
func NewHub(registry *Registry, logger *zerolog.Logger) *Hub {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		registry: registry,
		log:      logger,
		attach:   make(chan *Client),
		detach:   make(chan *Client),
		commands: make(chan *Command, 64),
		clients:  make(map[*Client]struct{}),
	}
}

// AttachClient hands a freshly accepted connection to the hub.
func (h *Hub) AttachClient(c *Client) {
	h.attach <- c
}

// DetachClient reports that a connection is gone. Its identity is
// released and remaining clients see a presence update.
func (h *Hub) DetachClient(c *Client) {
	h.detach <- c
}

// Dispatch queues a client command for processing.
func (h *Hub) Dispatch(cmd *Command) {
	h.commands <- cmd
}

// Run processes hub traffic until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.attach:
			h.clients[c] = struct{}{}
			h.log.Debug().Str("conn_id", c.ID).Msg("client attached")
		case c := <-h.detach:
			h.handleDetach(c)
		case cmd := <-h.commands:
			h.handleCommand(cmd)
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handleCommand(cmd *Command) {
	switch cmd.Kind {
	case CommandRegister:
		h.handleRegister(cmd)
	case CommandCallUser:
		h.handleCallUser(cmd)
	case CommandCallAccept:
		h.forward(cmd, EventCallAccepted)
	case CommandCallReject:
		h.forward(cmd, EventCallRejected)
	case CommandOffer:
		h.forward(cmd, EventOffer)
	case CommandAnswer:
		h.forward(cmd, EventAnswer)
	case CommandIceCandidate:
		h.forward(cmd, EventIceCandidate)
	case CommandEndCall:
		h.forward(cmd, EventCallEnded)
	}
}

func (h *Hub) handleRegister(cmd *Command) {
	identity, changed, err := h.registry.Register(cmd.UserID, cmd.From)
	if err != nil {
		cmd.From.send(&Event{Kind: EventRegisterError, Error: err})
		return
	}

	cmd.From.send(&Event{Kind: EventRegistered, User: identity})
	if changed {
		h.log.Info().Str("conn_id", cmd.From.ID).Str("user_id", identity).Msg("identity registered")
		h.broadcastPresence()
	}
}

func (h *Hub) handleCallUser(cmd *Command) {
	from, ok := h.registry.IdentityOf(cmd.From)
	if !ok {
		cmd.From.send(&Event{Kind: EventCallError, Error: coreError(ErrCodeNotRegistered, "Register your ID first.")})
		return
	}

	target, ok := NormalizeIdentity(cmd.Target)
	if !ok {
		cmd.From.send(&Event{Kind: EventCallError, Error: coreError(ErrCodeInvalidIdentity, "Target ID must be 4 digits.")})
		return
	}
	if target == from {
		cmd.From.send(&Event{Kind: EventCallError, Error: coreError(ErrCodeSelfCall, "You cannot call yourself.")})
		return
	}

	peer, online := h.registry.Resolve(target)
	if !online {
		cmd.From.send(&Event{Kind: EventUserOffline, User: target})
		return
	}

	peer.send(&Event{Kind: EventIncomingCall, User: from})
	cmd.From.send(&Event{Kind: EventCalling, User: target})
	h.log.Info().Str("from", from).Str("to", target).Msg("call initiated")
}

// forward delivers a mid-call message to the target identity. Unlike
// call initiation these are best-effort: an unresolvable target means
// the peer is gone and the message is dropped.
func (h *Hub) forward(cmd *Command, kind EventKind) {
	from, ok := h.registry.IdentityOf(cmd.From)
	if !ok {
		cmd.From.send(&Event{Kind: EventCallError, Error: coreError(ErrCodeNotRegistered, "Register your ID first.")})
		return
	}

	target, ok := NormalizeIdentity(cmd.Target)
	if !ok {
		return
	}
	peer, online := h.registry.Resolve(target)
	if !online {
		return
	}

	event := &Event{Kind: kind, User: from, Payload: cmd.Payload}
	if kind == EventCallRejected {
		event.Reason = cmd.Reason
		if event.Reason == "" {
			event.Reason = "Rejected"
		}
	}
	peer.send(event)
}

func (h *Hub) handleDetach(c *Client) {
	if _, attached := h.clients[c]; !attached {
		return
	}
	delete(h.clients, c)

	identity, released := h.registry.Release(c)
	if released {
		h.log.Info().Str("conn_id", c.ID).Str("user_id", identity).Msg("client disconnected, identity freed")
		h.broadcastPresence()
	} else {
		h.log.Debug().Str("conn_id", c.ID).Msg("client disconnected")
	}
}

// broadcastPresence pushes the sorted identity snapshot to every
// attached client, registered or not.
func (h *Hub) broadcastPresence() {
	event := &Event{Kind: EventOnlineUsers, Users: h.registry.Identities()}
	for client := range h.clients {
		client.send(event)
	}
}
