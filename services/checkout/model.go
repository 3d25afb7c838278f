package checkout

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	formcodec "github.com/go-playground/form/v4"

	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/services/cart"
)

// CustomerInfo is what the shopper fills in on the checkout form.
type CustomerInfo struct {
	Phone              string `form:"phone" json:"phone" validate:"notblank,max=30"`
	District           string `form:"district" json:"district" validate:"notblank,max=100"`
	City               string `form:"city" json:"city,omitempty" validate:"max=100"`
	PaymentMethodLabel string `form:"paymentMethod" json:"paymentMethod,omitempty" validate:"max=100"`
}

func (ci CustomerInfo) trimmed() CustomerInfo {
	return CustomerInfo{
		Phone:              strings.TrimSpace(ci.Phone),
		District:           strings.TrimSpace(ci.District),
		City:               strings.TrimSpace(ci.City),
		PaymentMethodLabel: strings.TrimSpace(ci.PaymentMethodLabel),
	}
}

func NewCustomerInfoFromRequest(r *http.Request) (CustomerInfo, error) {
	err := r.ParseForm()
	if err != nil {
		return CustomerInfo{}, myerrors.NewInvalidInputError(err)
	}
	return NewCustomerInfoFromValues(r.Form)
}

func NewCustomerInfoFromValues(values url.Values) (CustomerInfo, error) {
	info := CustomerInfo{}
	err := formcodec.NewDecoder().Decode(&info, values)
	if err != nil {
		return info, myerrors.NewInvalidInputError(err)
	}
	return info.trimmed(), nil
}

type MessageOptions struct {
	ShopName       string
	CurrencySymbol string
	Language       string // item names are rendered in this language when available
}

// Cart is the part of the cart the dispatcher works with.
type Cart interface {
	Items() []cart.LineItem
	Clear(c context.Context)
}

// Launcher opens an external URL in the host environment.
//
//go:generate mockgen -source=model.go -package checkout -destination launcher_mock.go Launcher
type Launcher interface {
	Launch(c context.Context, url string) error
}
