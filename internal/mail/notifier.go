package mail

import (
	"context"
	"fmt"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/events"
)

// Notifier turns request lifecycle events into emails. It subscribes to the
// dispatcher and enqueues messages; the workflow never waits on delivery.
type Notifier struct {
	queue *Queue
}

func NewNotifier(queue *Queue) *Notifier {
	return &Notifier{queue: queue}
}

// Register subscribes the notifier to the request lifecycle events.
func (n *Notifier) Register(d *events.Dispatcher) {
	d.Subscribe(domain.RequestCreated{}.EventName(), n.handleRequestCreated)
	d.Subscribe(domain.RequestApproved{}.EventName(), n.handleRequestApproved)
	d.Subscribe(domain.RequestRejected{}.EventName(), n.handleRequestRejected)
}

func (n *Notifier) handleRequestCreated(ctx context.Context, e domain.Event) {
	evt, ok := e.(domain.RequestCreated)
	if !ok {
		return
	}
	n.queue.Enqueue(Message{
		To:      evt.Email,
		ToName:  evt.Name,
		Subject: fmt.Sprintf("We received your request for %s", evt.OrganizationName),
		PlainText: fmt.Sprintf(
			"Hello %s,\n\nWe received your request to register the organization %s. "+
				"An administrator will review it shortly and you will be notified of the outcome.\n",
			evt.Name, evt.OrganizationName),
	})
}

func (n *Notifier) handleRequestApproved(ctx context.Context, e domain.Event) {
	evt, ok := e.(domain.RequestApproved)
	if !ok {
		return
	}
	n.queue.Enqueue(Message{
		To:      evt.Email,
		ToName:  evt.Name,
		Subject: fmt.Sprintf("Your organization %s has been approved", evt.OrganizationName),
		PlainText: fmt.Sprintf(
			"Hello %s,\n\nYour request to register %s has been approved. "+
				"An administrator account was created for this email address.\n\n"+
				"Temporary password: %s\n\nPlease sign in and change it.\n",
			evt.Name, evt.OrganizationName, evt.TemporaryPassword),
	})
}

func (n *Notifier) handleRequestRejected(ctx context.Context, e domain.Event) {
	evt, ok := e.(domain.RequestRejected)
	if !ok {
		return
	}
	n.queue.Enqueue(Message{
		To:      evt.Email,
		ToName:  evt.Name,
		Subject: fmt.Sprintf("Your request for %s was declined", evt.OrganizationName),
		PlainText: fmt.Sprintf(
			"Hello %s,\n\nYour request to register the organization %s was declined.\n",
			evt.Name, evt.OrganizationName),
	})
}
