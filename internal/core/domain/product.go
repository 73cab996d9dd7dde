package domain

// Product groups SKUs under a catalog entry sourced from one partner.
type Product struct {
	ProductID   string   `json:"productID"` // Primary Key (UUID)
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	PartnerID   string   `json:"partnerID,omitempty"` // FK -> partners
	Images      []string `json:"images,omitempty"`
	IsActive    bool     `json:"isActive"`
	AuditFields
}

// Variant is a named product attribute value (e.g. name "رنگ", value "آبی")
// that SKUs combine.
type Variant struct {
	VariantID string `json:"variantID"` // Primary Key (UUID)
	ProductID string `json:"productID"` // FK -> products
	Name      string `json:"name"`
	Value     string `json:"value"`
	AuditFields
}
