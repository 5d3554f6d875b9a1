package domain

// Read-only reference data used by organization profile forms.

type City struct {
	ID       int32  `json:"id"`
	Name     string `json:"name"`
	CountyID int32  `json:"county_id"`
}

type County struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type Domain struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}
