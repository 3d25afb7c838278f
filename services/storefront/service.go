// Package storefront serves the shop pages' api: catalog, cart, content and checkout.
package storefront

import (
	"context"

	"github.com/danudara/storefront/lib/mylog"
	"github.com/danudara/storefront/lib/mymetrics"
	"github.com/danudara/storefront/lib/mypubsub"
	"github.com/danudara/storefront/services/cart"
	"github.com/danudara/storefront/services/catalog"
	"github.com/danudara/storefront/services/checkout"
	"github.com/danudara/storefront/services/cms"
	"github.com/danudara/storefront/services/i18n"
)

type Options struct {
	BaseURL        string // where pubsub pushes catalog events to
	Currency       string
	CurrencySymbol string
	AdminToken     string // admin endpoints are off when empty
}

type webService struct {
	opts          Options
	logger        mylog.Logger
	cart          *cart.Cart
	catalog       *catalog.Service
	translator    *i18n.Service
	content       *cms.Client
	dispatcher    *checkout.Dispatcher
	notifications *NotificationSink
	subscriber    mypubsub.PubSub
	metrics       *mymetrics.Metrics
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(opts Options, ct *cart.Cart, catalogService *catalog.Service, translator *i18n.Service, content *cms.Client,
	dispatcher *checkout.Dispatcher, notifications *NotificationSink, subscriber mypubsub.PubSub, metrics *mymetrics.Metrics) *webService {
	s := &webService{
		opts:          opts,
		logger:        mylog.New("storefront"),
		cart:          ct,
		catalog:       catalogService,
		translator:    translator,
		content:       content,
		dispatcher:    dispatcher,
		notifications: notifications,
		subscriber:    subscriber,
		metrics:       metrics,
	}

	ct.OnChange(func(c context.Context, summary cart.Summary) {
		metrics.CartChanged(summary.ItemCount, summary.Subtotal)
	})

	return s
}
