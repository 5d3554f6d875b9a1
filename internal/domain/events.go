package domain

// Domain events returned by mutating services and delivered to subscribers
// through the events dispatcher. The workflow never blocks on delivery.

type Event interface {
	EventName() string
}

type RequestCreated struct {
	RequestID        int32
	Name             string
	Email            string
	OrganizationName string
}

func (RequestCreated) EventName() string { return "request.created" }

type RequestApproved struct {
	RequestID        int32
	OrganizationID   int32
	Name             string
	Email            string
	OrganizationName string
	// TemporaryPassword is the one-time credential generated for the
	// provisioned admin; it is never persisted in clear text.
	TemporaryPassword string
}

func (RequestApproved) EventName() string { return "request.approved" }

type RequestRejected struct {
	RequestID        int32
	Name             string
	Email            string
	OrganizationName string
}

func (RequestRejected) EventName() string { return "request.rejected" }

type CUIChanged struct {
	OrganizationID int32
	CUI            string
}

func (CUIChanged) EventName() string { return "organization.cui_changed" }
