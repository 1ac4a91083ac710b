package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Inbound event names.
const (
	InboundRegister     = "register"
	InboundCallUser     = "call-user"
	InboundCallAccept   = "call-accept"
	InboundCallReject   = "call-reject"
	InboundOffer        = "offer"
	InboundAnswer       = "answer"
	InboundIceCandidate = "ice-candidate"
	InboundEndCall      = "end-call"
)

// Outbound event names.
const (
	OutboundRegistered    = "registered"
	OutboundRegisterError = "register-error"
	OutboundCallError     = "call-error"
	OutboundErrorMsg      = "error-msg"
	OutboundOnlineUsers   = "online-users"
	OutboundIncomingCall  = "incoming-call"
	OutboundCalling       = "calling"
	OutboundUserOffline   = "user-offline"
	OutboundCallAccepted  = "call-accepted"
	OutboundCallRejected  = "call-rejected"
	OutboundOffer         = "offer"
	OutboundAnswer        = "answer"
	OutboundIceCandidate  = "ice-candidate"
	OutboundCallEnded     = "call-ended"
)

// RegisterData claims a 4-digit ID.
type RegisterData struct {
	UserID string `json:"userId"`
}

// TargetData addresses a command at another user.
type TargetData struct {
	ToUserID string `json:"toUserId"`
}

// RejectData declines an incoming call.
type RejectData struct {
	ToUserID string `json:"toUserId"`
	Reason   string `json:"reason,omitempty"`
}

// OfferData carries an opaque session description offer.
type OfferData struct {
	ToUserID string          `json:"toUserId"`
	Offer    json.RawMessage `json:"offer"`
}

// AnswerData carries an opaque session description answer.
type AnswerData struct {
	ToUserID string          `json:"toUserId"`
	Answer   json.RawMessage `json:"answer"`
}

// CandidateData carries an opaque connectivity candidate.
type CandidateData struct {
	ToUserID  string          `json:"toUserId"`
	Candidate json.RawMessage `json:"candidate"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// RegisteredData confirms a successful ID claim.
type RegisteredData struct {
	UserID string `json:"userId"`
}

// ErrorData describes a rejected request.
type ErrorData struct {
	Message string `json:"message"`
}

// OnlineUsersData is the presence snapshot broadcast to all clients.
type OnlineUsersData struct {
	Users []string `json:"users"`
}

// IncomingCallData notifies the callee that someone is ringing.
type IncomingCallData struct {
	FromUserID string `json:"fromUserId"`
}

// CallingData confirms to the caller that the callee is ringing.
type CallingData struct {
	ToUserID string `json:"toUserId"`
}

// UserOfflineData tells the caller the callee is unreachable.
type UserOfflineData struct {
	ToUserID string `json:"toUserId"`
}

// CallAcceptedData notifies the caller of acceptance.
type CallAcceptedData struct {
	By string `json:"by"`
}

// CallRejectedData notifies the caller of rejection.
type CallRejectedData struct {
	By     string `json:"by"`
	Reason string `json:"reason"`
}

// OfferEventData delivers a forwarded offer.
type OfferEventData struct {
	FromUserID string          `json:"fromUserId"`
	Offer      json.RawMessage `json:"offer"`
}

// AnswerEventData delivers a forwarded answer.
type AnswerEventData struct {
	FromUserID string          `json:"fromUserId"`
	Answer     json.RawMessage `json:"answer"`
}

// CandidateEventData delivers a forwarded candidate.
type CandidateEventData struct {
	FromUserID string          `json:"fromUserId"`
	Candidate  json.RawMessage `json:"candidate"`
}

// CallEndedData notifies the peer that the call is over.
type CallEndedData struct {
	By string `json:"by"`
}
