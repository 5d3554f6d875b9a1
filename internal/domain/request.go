package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusDeclined RequestStatus = "DECLINED"
)

// Request is an applicant's submission to create a new Organization,
// pending administrative review. Requests are never deleted; approve and
// reject are the only mutations.
type Request struct {
	ID               int32         `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	OrganizationName string        `json:"organization_name"`
	OrganizationID   int32         `json:"organization_id"`
	Status           RequestStatus `json:"status"`
	CreatedOn        time.Time     `json:"created_on"`
	Organization     *Organization `json:"organization,omitempty"`
}
