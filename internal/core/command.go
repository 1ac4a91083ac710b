package core

import "encoding/json"

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandRegister claims a 4-digit identity for the connection.
	CommandRegister CommandKind = iota
	// CommandCallUser rings another identity.
	CommandCallUser
	// CommandCallAccept tells the caller the call was accepted.
	CommandCallAccept
	// CommandCallReject tells the caller the call was rejected.
	CommandCallReject
	// CommandOffer forwards a session description offer.
	CommandOffer
	// CommandAnswer forwards a session description answer.
	CommandAnswer
	// CommandIceCandidate forwards a connectivity candidate.
	CommandIceCandidate
	// CommandEndCall tells the peer the call is over.
	CommandEndCall
)

// Command represents an action requested by a client.
type Command struct {
	Kind   CommandKind
	From   *Client
	UserID string // identity being claimed (register only)
	Target string // toUserId as sent by the client
	Reason string // call-reject only
	// Payload is the opaque offer/answer/candidate body. The relay
	// never inspects it.
	Payload json.RawMessage
}
