package http

import (
	"encoding/json"

	"github.com/tariqueislamanik2021-tech/webrtc-audio-call/internal/core"
	"github.com/tariqueislamanik2021-tech/webrtc-audio-call/internal/proto"
)

// inboundToCommand translates a wire message into a hub command. A non-nil
// *proto.Outbound means the message was rejected at the protocol level and
// the reply should go straight back to the sender.
func inboundToCommand(client *core.Client, inbound proto.Inbound) (*core.Command, *proto.Outbound, error) {
	switch inbound.Event {
	case proto.InboundRegister:
		var data proto.RegisterData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:   core.CommandRegister,
			From:   client,
			UserID: data.UserID,
		}, nil, nil
	case proto.InboundCallUser:
		var data proto.TargetData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:   core.CommandCallUser,
			From:   client,
			Target: data.ToUserID,
		}, nil, nil
	case proto.InboundCallAccept:
		var data proto.TargetData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:   core.CommandCallAccept,
			From:   client,
			Target: data.ToUserID,
		}, nil, nil
	case proto.InboundCallReject:
		var data proto.RejectData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:   core.CommandCallReject,
			From:   client,
			Target: data.ToUserID,
			Reason: data.Reason,
		}, nil, nil
	case proto.InboundOffer:
		var data proto.OfferData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:    core.CommandOffer,
			From:    client,
			Target:  data.ToUserID,
			Payload: data.Offer,
		}, nil, nil
	case proto.InboundAnswer:
		var data proto.AnswerData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:    core.CommandAnswer,
			From:    client,
			Target:  data.ToUserID,
			Payload: data.Answer,
		}, nil, nil
	case proto.InboundIceCandidate:
		var data proto.CandidateData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:    core.CommandIceCandidate,
			From:    client,
			Target:  data.ToUserID,
			Payload: data.Candidate,
		}, nil, nil
	case proto.InboundEndCall:
		var data proto.TargetData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:   core.CommandEndCall,
			From:   client,
			Target: data.ToUserID,
		}, nil, nil
	default:
		return nil, &proto.Outbound{
			Event: proto.OutboundErrorMsg,
			Data:  proto.ErrorData{Message: "unknown event: " + inbound.Event},
		}, nil
	}
}

// outboundFromEvent translates a hub event into its wire form.
func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRegistered:
		return proto.Outbound{
			Event: proto.OutboundRegistered,
			Data:  proto.RegisteredData{UserID: event.User},
		}
	case core.EventRegisterError:
		return proto.Outbound{
			Event: proto.OutboundRegisterError,
			Data:  proto.ErrorData{Message: errorMessage(event.Error)},
		}
	case core.EventCallError:
		return proto.Outbound{
			Event: proto.OutboundCallError,
			Data:  proto.ErrorData{Message: errorMessage(event.Error)},
		}
	case core.EventOnlineUsers:
		return proto.Outbound{
			Event: proto.OutboundOnlineUsers,
			Data:  proto.OnlineUsersData{Users: event.Users},
		}
	case core.EventIncomingCall:
		return proto.Outbound{
			Event: proto.OutboundIncomingCall,
			Data:  proto.IncomingCallData{FromUserID: event.User},
		}
	case core.EventCalling:
		return proto.Outbound{
			Event: proto.OutboundCalling,
			Data:  proto.CallingData{ToUserID: event.User},
		}
	case core.EventUserOffline:
		return proto.Outbound{
			Event: proto.OutboundUserOffline,
			Data:  proto.UserOfflineData{ToUserID: event.User},
		}
	case core.EventCallAccepted:
		return proto.Outbound{
			Event: proto.OutboundCallAccepted,
			Data:  proto.CallAcceptedData{By: event.User},
		}
	case core.EventCallRejected:
		return proto.Outbound{
			Event: proto.OutboundCallRejected,
			Data:  proto.CallRejectedData{By: event.User, Reason: event.Reason},
		}
	case core.EventOffer:
		return proto.Outbound{
			Event: proto.OutboundOffer,
			Data:  proto.OfferEventData{FromUserID: event.User, Offer: event.Payload},
		}
	case core.EventAnswer:
		return proto.Outbound{
			Event: proto.OutboundAnswer,
			Data:  proto.AnswerEventData{FromUserID: event.User, Answer: event.Payload},
		}
	case core.EventIceCandidate:
		return proto.Outbound{
			Event: proto.OutboundIceCandidate,
			Data:  proto.CandidateEventData{FromUserID: event.User, Candidate: event.Payload},
		}
	case core.EventCallEnded:
		return proto.Outbound{
			Event: proto.OutboundCallEnded,
			Data:  proto.CallEndedData{By: event.User},
		}
	default:
		return proto.Outbound{
			Event: proto.OutboundErrorMsg,
			Data:  proto.ErrorData{Message: "unknown event"},
		}
	}
}

func errorMessage(err *core.CoreError) string {
	if err == nil {
		return "unknown error"
	}
	return err.Message
}
