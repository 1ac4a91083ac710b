package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tariqueislamanik2021-tech/webrtc-audio-call/internal/core"
	"github.com/tariqueislamanik2021-tech/webrtc-audio-call/internal/proto"
)

func TestInboundToCommandMapsAllEvents(t *testing.T) {
	client := core.NewClient("conn")

	tests := []struct {
		event string
		data  string
		kind  core.CommandKind
	}{
		{proto.InboundRegister, `{"userId":"1234"}`, core.CommandRegister},
		{proto.InboundCallUser, `{"toUserId":"5678"}`, core.CommandCallUser},
		{proto.InboundCallAccept, `{"toUserId":"5678"}`, core.CommandCallAccept},
		{proto.InboundCallReject, `{"toUserId":"5678","reason":"busy"}`, core.CommandCallReject},
		{proto.InboundOffer, `{"toUserId":"5678","offer":{"sdp":"x"}}`, core.CommandOffer},
		{proto.InboundAnswer, `{"toUserId":"5678","answer":{"sdp":"y"}}`, core.CommandAnswer},
		{proto.InboundIceCandidate, `{"toUserId":"5678","candidate":{"c":1}}`, core.CommandIceCandidate},
		{proto.InboundEndCall, `{"toUserId":"5678"}`, core.CommandEndCall},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			cmd, reply, err := inboundToCommand(client, proto.Inbound{
				Event: tt.event,
				Data:  json.RawMessage(tt.data),
			})
			require.NoError(t, err)
			require.Nil(t, reply)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.kind, cmd.Kind)
			assert.Same(t, client, cmd.From)
		})
	}
}

func TestInboundToCommandKeepsPayloadOpaque(t *testing.T) {
	client := core.NewClient("conn")

	// Payload shape is never interpreted, only carried.
	raw := `{"sdp":"v=0\r\n","weird":[1,{"nested":true}]}`
	cmd, reply, err := inboundToCommand(client, proto.Inbound{
		Event: proto.InboundOffer,
		Data:  json.RawMessage(`{"toUserId":"1234","offer":` + raw + `}`),
	})
	require.NoError(t, err)
	require.Nil(t, reply)
	assert.JSONEq(t, raw, string(cmd.Payload))
}

func TestInboundToCommandRejectsUnknownEvent(t *testing.T) {
	client := core.NewClient("conn")

	cmd, reply, err := inboundToCommand(client, proto.Inbound{Event: "subscribe"})
	require.NoError(t, err)
	assert.Nil(t, cmd)
	require.NotNil(t, reply)
	assert.Equal(t, proto.OutboundErrorMsg, reply.Event)
}

func TestInboundToCommandPropagatesBadJSON(t *testing.T) {
	client := core.NewClient("conn")

	_, _, err := inboundToCommand(client, proto.Inbound{
		Event: proto.InboundRegister,
		Data:  json.RawMessage(`{"userId":`),
	})
	require.Error(t, err)
}

func TestOutboundFromEventWireShapes(t *testing.T) {
	tests := []struct {
		name  string
		event *core.Event
		want  string
	}{
		{
			"registered",
			&core.Event{Kind: core.EventRegistered, User: "1234"},
			`{"event":"registered","data":{"userId":"1234"}}`,
		},
		{
			"online users",
			&core.Event{Kind: core.EventOnlineUsers, Users: []string{"1111", "2222"}},
			`{"event":"online-users","data":{"users":["1111","2222"]}}`,
		},
		{
			"incoming call",
			&core.Event{Kind: core.EventIncomingCall, User: "1111"},
			`{"event":"incoming-call","data":{"fromUserId":"1111"}}`,
		},
		{
			"user offline",
			&core.Event{Kind: core.EventUserOffline, User: "2222"},
			`{"event":"user-offline","data":{"toUserId":"2222"}}`,
		},
		{
			"call rejected with reason",
			&core.Event{Kind: core.EventCallRejected, User: "2222", Reason: "busy"},
			`{"event":"call-rejected","data":{"by":"2222","reason":"busy"}}`,
		},
		{
			"call ended",
			&core.Event{Kind: core.EventCallEnded, User: "2222"},
			`{"event":"call-ended","data":{"by":"2222"}}`,
		},
		{
			"offer passthrough",
			&core.Event{Kind: core.EventOffer, User: "1111", Payload: json.RawMessage(`{"sdp":"x"}`)},
			`{"event":"offer","data":{"fromUserId":"1111","offer":{"sdp":"x"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(outboundFromEvent(tt.event))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
