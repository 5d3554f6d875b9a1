package domain

import "time"

type ApplicationType string

const (
	ApplicationTypeIndependent ApplicationType = "INDEPENDENT"
	ApplicationTypeStandalone  ApplicationType = "STANDALONE"
	ApplicationTypeSimple      ApplicationType = "SIMPLE"
)

type ApplicationStatus string

const (
	ApplicationStatusActive   ApplicationStatus = "ACTIVE"
	ApplicationStatusDisabled ApplicationStatus = "DISABLED"
)

type Application struct {
	ID               int32             `json:"id"`
	Name             string            `json:"name"`
	Type             ApplicationType   `json:"type"`
	Status           ApplicationStatus `json:"status"`
	LoginLink        string            `json:"login_link,omitempty"`
	Website          string            `json:"website,omitempty"`
	LogoKey          string            `json:"logo,omitempty"`
	ShortDescription string            `json:"short_description"`
	Description      string            `json:"description"`
	Steps            []string          `json:"steps,omitempty"`
	CreatedOn        time.Time         `json:"created_on"`
}
