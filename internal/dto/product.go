package dto

import (
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
)

// CreateProductRequest defines the payload for creating a product.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"omitempty,max=255"`
	Brand       string   `json:"brand" binding:"omitempty,max=255"`
	PartnerID   string   `json:"partnerID" binding:"omitempty,uuid"`
	Images      []string `json:"images"`
}

// UpdateProductRequest defines the fields that can be changed on a product.
type UpdateProductRequest struct {
	Name        *string   `json:"name" binding:"omitempty,max=255"`
	Description *string   `json:"description"`
	Category    *string   `json:"category" binding:"omitempty,max=255"`
	Brand       *string   `json:"brand" binding:"omitempty,max=255"`
	PartnerID   *string   `json:"partnerID" binding:"omitempty,uuid"`
	Images      *[]string `json:"images"`
	IsActive    *bool     `json:"isActive"`
}

// CreateVariantRequest defines the payload for adding a variant to a product.
type CreateVariantRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Value string `json:"value" binding:"required,max=100"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	PartnerID  string `form:"partnerID" binding:"omitempty,uuid"`
	Category   string `form:"category"`
	ActiveOnly bool   `form:"activeOnly,default=true"`
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
}

// VariantResponse is the API representation of a variant.
type VariantResponse struct {
	VariantID string `json:"variantID"`
	ProductID string `json:"productID"`
	Name      string `json:"name"`
	Value     string `json:"value"`
}

// ToVariantResponse converts a domain.Variant to its API representation.
func ToVariantResponse(v *domain.Variant) VariantResponse {
	return VariantResponse{
		VariantID: v.VariantID,
		ProductID: v.ProductID,
		Name:      v.Name,
		Value:     v.Value,
	}
}

// ProductResponse is the API representation of a product.
type ProductResponse struct {
	ProductID   string    `json:"productID"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	PartnerID   string    `json:"partnerID,omitempty"`
	Images      []string  `json:"images,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToProductResponse converts a domain.Product to its API representation.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Brand:       p.Brand,
		PartnerID:   p.PartnerID,
		Images:      p.Images,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.LastUpdatedAt,
	}
}
