package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"orghub-backend/internal/domain"
)

func TestDispatcher_DeliversInRegistrationOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int

	d.Subscribe(domain.RequestCreated{}.EventName(), func(ctx context.Context, e domain.Event) {
		order = append(order, 1)
	})
	d.Subscribe(domain.RequestCreated{}.EventName(), func(ctx context.Context, e domain.Event) {
		order = append(order, 2)
	})

	d.Dispatch(context.Background(), domain.RequestCreated{RequestID: 1})
	assert.Equal(t, []int{1, 2}, order)
}

func TestDispatcher_RecoversSubscriberPanic(t *testing.T) {
	d := NewDispatcher()
	delivered := false

	d.Subscribe(domain.RequestApproved{}.EventName(), func(ctx context.Context, e domain.Event) {
		panic("boom")
	})
	d.Subscribe(domain.RequestApproved{}.EventName(), func(ctx context.Context, e domain.Event) {
		delivered = true
	})

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), domain.RequestApproved{RequestID: 1})
	})
	assert.True(t, delivered)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), domain.RequestRejected{RequestID: 1})
	})
	assert.Equal(t, 0, d.SubscribersCount(domain.RequestRejected{}.EventName()))
}

func TestDispatcher_OnlyMatchingEventName(t *testing.T) {
	d := NewDispatcher()
	created := 0
	d.Subscribe(domain.RequestCreated{}.EventName(), func(ctx context.Context, e domain.Event) {
		created++
	})

	d.Dispatch(context.Background(), domain.RequestRejected{RequestID: 1})
	d.Dispatch(context.Background(), domain.RequestCreated{RequestID: 2})
	assert.Equal(t, 1, created)
}
