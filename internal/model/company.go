package model

// CompanyInfo is the single record describing the business, shown on printed
// documents.
type CompanyInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
