package service

import (
	"context"
	"log"
	"time"
)

const resubscribeDelay = 5 * time.Second

// Relay forwards totals updates from the feed to the hub until ctx is
// cancelled, resubscribing if the feed drops.
type Relay struct {
	Feed TotalsFeed
	Hub  *Hub
}

func NewRelay(feed TotalsFeed, hub *Hub) *Relay {
	return &Relay{Feed: feed, Hub: hub}
}

func (r *Relay) Start(ctx context.Context) {
	log.Println("Starting live totals relay...")
	for {
		updates, err := r.Feed.Updates(ctx)
		if err != nil {
			log.Printf("Error subscribing to totals: %v", err)
		} else {
			for update := range updates {
				r.Hub.Broadcast(update.UserID, update.Payload)
			}
		}

		select {
		case <-ctx.Done():
			log.Println("Live totals relay stopped")
			return
		case <-time.After(resubscribeDelay):
		}
	}
}
