package cart

import (
	"context"

	"github.com/shopspring/decimal"
)

// LineItem is one product-and-quantity entry; UnitPrice is the price seen when the item was added.
type LineItem struct {
	ProductID         string            `json:"productId"`
	DisplayName       string            `json:"displayName"`
	Names             map[string]string `json:"names,omitempty"`
	UnitPrice         decimal.Decimal   `json:"unitPrice"`
	OriginalUnitPrice *decimal.Decimal  `json:"originalUnitPrice,omitempty"`
	ImageRef          string            `json:"imageRef,omitempty"`
	Quantity          int               `json:"quantity"`
}

// LocalizedName returns the name in the given language, or the primary name when there is none.
func (li LineItem) LocalizedName(lang string) string {
	if name, found := li.Names[lang]; found && name != "" {
		return name
	}
	return li.DisplayName
}

func (li LineItem) LineTotal() decimal.Decimal {
	if li.UnitPrice.IsNegative() || li.Quantity < 1 {
		return decimal.Zero
	}
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Product is what the catalog hands to AddItem.
type Product struct {
	ID            string
	Name          string
	Names         map[string]string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	ImageURL      string
}

type Summary struct {
	ItemCount       int             `json:"itemCount"`
	UniqueItemCount int             `json:"uniqueItemCount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notifier receives user feedback; a nil Notifier is allowed.
type Notifier interface {
	Notify(c context.Context, kind NotificationKind, message string)
}

// Translator resolves a message key in the shopper's current language.
type Translator interface {
	Translate(c context.Context, key string) string
}

// Listener is called after every state change, outside the cart lock.
type Listener func(c context.Context, summary Summary)

const (
	msgItemAdded      = "itemAdded"
	msgItemRemoved    = "itemRemoved"
	msgCartUpdated    = "cartUpdated"
	msgCartCleared    = "cartCleared"
	msgInvalidProduct = "invalidProduct"
	msgCartSaveFailed = "cartSaveFailed"
)
