package domain

// PropertyType enumerates rentable property kinds.
type PropertyType string

const (
	PropertyBuilding PropertyType = "Building"
	PropertyRoom     PropertyType = "Room"
	PropertyShop     PropertyType = "Shop"
)

// Property is a rentable unit owned by the business.
type Property struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Type    PropertyType `json:"type"`
	Address string       `json:"address"`
}

// Tenant occupies a property under a rental contract.
type Tenant struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	PropertyID     string  `json:"propertyId"`
	RentAmount     float64 `json:"rentAmount"`
	Deposit        float64 `json:"deposit"`
	DueDay         int     `json:"dueDate"`
	ContractExpiry string  `json:"contractExpiry"`
	PendingDues    float64 `json:"pendingDues"`
}
