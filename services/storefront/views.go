package storefront

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/danudara/storefront/services/cart"
	"github.com/danudara/storefront/services/cms"
)

const placeholderImage = "assets/images/placeholder.jpg"

func amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

type lineItemView struct {
	ProductID         string       `json:"productId"`
	Name              string       `json:"name"`
	UnitPrice         json.Number  `json:"unitPrice"`
	OriginalUnitPrice *json.Number `json:"originalUnitPrice,omitempty"`
	Image             string       `json:"image"`
	Quantity          int          `json:"quantity"`
	LineTotal         json.Number  `json:"lineTotal"`
}

type cartView struct {
	Items           []lineItemView `json:"items"`
	ItemCount       int            `json:"itemCount"`
	UniqueItemCount int            `json:"uniqueItemCount"`
	Subtotal        json.Number    `json:"subtotal"`
	Currency        string         `json:"currency"`
	CurrencySymbol  string         `json:"currencySymbol"`
	SaveError       string         `json:"saveError,omitempty"`
}

func newCartView(items []cart.LineItem, lang string, persistErr error, opts Options) cartView {
	summary := cart.Summarize(items)
	view := cartView{
		Items:           []lineItemView{},
		ItemCount:       summary.ItemCount,
		UniqueItemCount: summary.UniqueItemCount,
		Subtotal:        amount(summary.Subtotal),
		Currency:        opts.Currency,
		CurrencySymbol:  opts.CurrencySymbol,
	}
	for _, item := range items {
		line := lineItemView{
			ProductID: item.ProductID,
			Name:      item.LocalizedName(lang),
			UnitPrice: amount(item.UnitPrice),
			Image:     item.ImageRef,
			Quantity:  item.Quantity,
			LineTotal: amount(item.LineTotal()),
		}
		if line.Image == "" {
			line.Image = placeholderImage
		}
		if item.OriginalUnitPrice != nil {
			original := amount(*item.OriginalUnitPrice)
			line.OriginalUnitPrice = &original
		}
		view.Items = append(view.Items, line)
	}
	if persistErr != nil {
		view.SaveError = persistErr.Error()
	}
	return view
}

type deliveryChargeView struct {
	District string      `json:"district"`
	City     string      `json:"city,omitempty"`
	Charge   json.Number `json:"charge"`
}

type languageView struct {
	Language  string            `json:"language"`
	Supported []string          `json:"supported"`
	Strings   map[string]string `json:"strings"`
}

type contentView struct {
	Language string      `json:"language"`
	Content  cms.Content `json:"content"`
}
