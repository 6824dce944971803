package domain

// Vehicle carries the renewable documents tracked for each business vehicle.
type Vehicle struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Number          string `json:"number"`
	PUCExpiry       string `json:"pucExpiry"`
	InsuranceExpiry string `json:"insuranceExpiry"`
	FCExpiry        string `json:"fcExpiry"`
	RoadTaxExpiry   string `json:"roadTaxExpiry"`
}
