package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ProductInput struct {
	Name          string           `json:"name" validate:"notblank,max=200"`
	NameSI        string           `json:"name_si" validate:"max=200"`
	NameTA        string           `json:"name_ta" validate:"max=200"`
	Description   string           `json:"description" validate:"max=4000"`
	DescriptionSI string           `json:"description_si" validate:"max=4000"`
	DescriptionTA string           `json:"description_ta" validate:"max=4000"`
	Price         decimal.Decimal  `json:"price" validate:"gte=0"`
	OriginalPrice *decimal.Decimal `json:"original_price" validate:"omitempty,gte=0"`
	ImageURL      string           `json:"image_url" validate:"omitempty,url"`
	CategoryID    string           `json:"category_id"`
	IsActive      bool             `json:"is_active"`
	IsFeatured    bool             `json:"is_featured"`
}

func (in ProductInput) applyTo(p *Product) {
	p.Name = strings.TrimSpace(in.Name)
	p.NameSI = strings.TrimSpace(in.NameSI)
	p.NameTA = strings.TrimSpace(in.NameTA)
	p.Description = in.Description
	p.DescriptionSI = in.DescriptionSI
	p.DescriptionTA = in.DescriptionTA
	p.PriceCents = toCents(in.Price)
	p.OriginalPriceCents = 0
	if in.OriginalPrice != nil {
		p.OriginalPriceCents = toCents(*in.OriginalPrice)
	}
	p.ImageURL = in.ImageURL
	p.CategoryID = in.CategoryID
	p.IsActive = in.IsActive
	p.IsFeatured = in.IsFeatured
}

type CategoryInput struct {
	Name      string `json:"name" validate:"notblank,max=100"`
	NameSI    string `json:"name_si" validate:"max=100"`
	NameTA    string `json:"name_ta" validate:"max=100"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
	IsActive  bool   `json:"is_active"`
}

func (in CategoryInput) applyTo(cat *Category) {
	cat.Name = strings.TrimSpace(in.Name)
	cat.NameSI = strings.TrimSpace(in.NameSI)
	cat.NameTA = strings.TrimSpace(in.NameTA)
	cat.SortOrder = in.SortOrder
	cat.IsActive = in.IsActive
}

// DeliveryChargeInput without city sets the default of the district.
type DeliveryChargeInput struct {
	District string          `json:"district" validate:"notblank,max=100"`
	City     string          `json:"city" validate:"max=100"`
	Charge   decimal.Decimal `json:"charge" validate:"gte=0"`
}

func (in DeliveryChargeInput) applyTo(dc *DeliveryCharge) {
	dc.District = strings.TrimSpace(in.District)
	dc.City = strings.TrimSpace(in.City)
	dc.ChargeCents = toCents(in.Charge)
}

// PaymentMethodUpdate changes only the fields that are set.
type PaymentMethodUpdate struct {
	IsActive    *bool   `json:"is_active"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Details     *string `json:"details" validate:"omitempty,max=2000"`
}
