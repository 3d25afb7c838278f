package catalog

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danudara/storefront/services/cart"
)

const (
	featuredLimit    = 8
	newArrivalsLimit = 8
)

// Money is kept in cents in storage; the datastore cannot hold decimals.
func toCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func fromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// amount renders money as a json number, the way the storefront pages expect it.
func amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func optionalAmount(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := amount(*d)
	return &n
}

type Product struct {
	ID                 string
	Name               string
	NameSI             string
	NameTA             string
	Description        string `datastore:",noindex"`
	DescriptionSI      string `datastore:",noindex"`
	DescriptionTA      string `datastore:",noindex"`
	PriceCents         int64
	OriginalPriceCents int64
	ImageURL           string `datastore:",noindex"`
	CategoryID         string
	IsActive           bool
	IsFeatured         bool
	CreatedAt          time.Time
	LastModified       *time.Time
}

func (p Product) Price() decimal.Decimal {
	return fromCents(p.PriceCents)
}

// OriginalPrice is nil when the product is not discounted.
func (p Product) OriginalPrice() *decimal.Decimal {
	if p.OriginalPriceCents <= 0 {
		return nil
	}
	original := fromCents(p.OriginalPriceCents)
	return &original
}

// ToCartProduct hands the product to the cart with its price as seen now.
func (p Product) ToCartProduct() cart.Product {
	names := map[string]string{}
	if p.NameSI != "" {
		names["si"] = p.NameSI
	}
	if p.NameTA != "" {
		names["ta"] = p.NameTA
	}
	return cart.Product{
		ID:            p.ID,
		Name:          p.Name,
		Names:         names,
		Price:         p.Price(),
		OriginalPrice: p.OriginalPrice(),
		ImageURL:      p.ImageURL,
	}
}

func (p Product) matches(query string) bool {
	query = strings.ToLower(query)
	for _, text := range []string{p.Name, p.NameSI, p.NameTA, p.Description} {
		if strings.Contains(strings.ToLower(text), query) {
			return true
		}
	}
	return false
}

type productJSON struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	NameSI        string       `json:"name_si,omitempty"`
	NameTA        string       `json:"name_ta,omitempty"`
	Description   string       `json:"description,omitempty"`
	DescriptionSI string       `json:"description_si,omitempty"`
	DescriptionTA string       `json:"description_ta,omitempty"`
	Price         json.Number  `json:"price"`
	OriginalPrice *json.Number `json:"original_price,omitempty"`
	ImageURL      string       `json:"image_url,omitempty"`
	CategoryID    string       `json:"category_id,omitempty"`
	IsActive      bool         `json:"is_active"`
	IsFeatured    bool         `json:"is_featured"`
	CreatedAt     time.Time    `json:"created_at"`
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:            p.ID,
		Name:          p.Name,
		NameSI:        p.NameSI,
		NameTA:        p.NameTA,
		Description:   p.Description,
		DescriptionSI: p.DescriptionSI,
		DescriptionTA: p.DescriptionTA,
		Price:         amount(p.Price()),
		OriginalPrice: optionalAmount(p.OriginalPrice()),
		ImageURL:      p.ImageURL,
		CategoryID:    p.CategoryID,
		IsActive:      p.IsActive,
		IsFeatured:    p.IsFeatured,
		CreatedAt:     p.CreatedAt,
	})
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameSI    string    `json:"name_si,omitempty"`
	NameTA    string    `json:"name_ta,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// DeliveryCharge without City is the default for its district.
type DeliveryCharge struct {
	ID          string
	District    string
	City        string
	ChargeCents int64
}

func (dc DeliveryCharge) Charge() decimal.Decimal {
	return fromCents(dc.ChargeCents)
}

func (dc DeliveryCharge) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string      `json:"id"`
		District string      `json:"district"`
		City     *string     `json:"city"`
		Charge   json.Number `json:"charge"`
	}{
		ID:       dc.ID,
		District: dc.District,
		City: func() *string {
			if dc.City == "" {
				return nil
			}
			return &dc.City
		}(),
		Charge: amount(dc.Charge()),
	})
}

const (
	PaymentTypeBankTransfer = "bank_transfer"
	PaymentTypeKokoPay      = "koko_pay"
	PaymentTypeCard         = "card"
)

type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty" datastore:",noindex"`
	Details     string `json:"details,omitempty" datastore:",noindex"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

func defaultPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{ID: "bank_transfer", Name: "Bank Transfer", Type: PaymentTypeBankTransfer, IsActive: true, SortOrder: 1},
		{ID: "koko_pay", Name: "Koko Pay", Type: PaymentTypeKokoPay, IsActive: true, SortOrder: 2},
		{ID: "card_payment", Name: "Card Payment", Type: PaymentTypeCard, IsActive: false, SortOrder: 3},
	}
}
