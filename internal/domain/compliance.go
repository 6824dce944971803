package domain

// ComplianceCategory enumerates statutory obligation kinds.
type ComplianceCategory string

const (
	ComplianceTax     ComplianceCategory = "Tax"
	ComplianceLicense ComplianceCategory = "License"
	ComplianceLoan    ComplianceCategory = "Loan"
)

// ComplianceItem is a dated statutory obligation the business must meet.
type ComplianceItem struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	DueDate  string             `json:"dueDate"`
	Category ComplianceCategory `json:"category"`
}
