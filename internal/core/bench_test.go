package core

import (
	"context"
	"fmt"
	"testing"
)

func benchmarkPresenceBroadcast(b *testing.B, recipients int) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, nil)
	go hub.Run(ctx)

	sender := NewClient("sender")
	hub.AttachClient(sender)
	go func() {
		for range sender.Events {
		}
	}()

	clients := make([]*Client, 0, recipients)
	for i := 0; i < recipients; i++ {
		c := NewClient(fmt.Sprintf("c%d", i))
		hub.AttachClient(c)
		clients = append(clients, c)
	}

	// Drain events for all but the first recipient to avoid channel backpressure.
	target := clients[0]
	for _, c := range clients[1:] {
		go func(cl *Client) {
			for range cl.Events {
			}
		}(c)
	}

	// Alternate identities so every registration changes membership and
	// triggers a broadcast.
	identities := [2]string{"0001", "0002"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		hub.Dispatch(&Command{
			Kind:   CommandRegister,
			From:   sender,
			UserID: identities[i%2],
		})
		<-target.Events
	}
}

func BenchmarkPresenceBroadcast_10(b *testing.B)  { benchmarkPresenceBroadcast(b, 10) }
func BenchmarkPresenceBroadcast_100(b *testing.B) { benchmarkPresenceBroadcast(b, 100) }
func BenchmarkPresenceBroadcast_500(b *testing.B) { benchmarkPresenceBroadcast(b, 500) }
