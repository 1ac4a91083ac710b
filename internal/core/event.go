package core

import "encoding/json"

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRegistered confirms a successful identity claim.
	EventRegistered EventKind = iota
	// EventRegisterError rejects an identity claim.
	EventRegisterError
	// EventCallError rejects a call command (unregistered sender,
	// malformed target, self-call).
	EventCallError
	// EventOnlineUsers carries the full presence snapshot.
	EventOnlineUsers
	// EventIncomingCall notifies the callee of a ringing call.
	EventIncomingCall
	// EventCalling confirms to the caller that the callee is ringing.
	EventCalling
	// EventUserOffline tells the caller the callee is unreachable.
	EventUserOffline
	// EventCallAccepted notifies the caller that the call was accepted.
	EventCallAccepted
	// EventCallRejected notifies the caller that the call was rejected.
	EventCallRejected
	// EventOffer delivers a forwarded session description offer.
	EventOffer
	// EventAnswer delivers a forwarded session description answer.
	EventAnswer
	// EventIceCandidate delivers a forwarded connectivity candidate.
	EventIceCandidate
	// EventCallEnded notifies the peer that the call is over.
	EventCallEnded
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind    EventKind
	User    string          // fromUserId / by / toUserId, depending on Kind
	Reason  string          // call-rejected only
	Users   []string        // presence snapshot, sorted
	Payload json.RawMessage // opaque offer/answer/candidate body
	Error   *CoreError
}
