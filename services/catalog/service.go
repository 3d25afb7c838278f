// Package catalog provides the products, categories, delivery charges and payment methods of the shop.
package catalog

import (
	"context"

	"github.com/danudara/storefront/lib/mylog"
	"github.com/danudara/storefront/lib/mypublisher"
	"github.com/danudara/storefront/lib/mystore"
	"github.com/danudara/storefront/lib/mytime"
	"github.com/danudara/storefront/lib/myuuid"
)

type Service struct {
	productStore        mystore.Store[Product]
	categoryStore       mystore.Store[Category]
	deliveryChargeStore mystore.Store[DeliveryCharge]
	paymentMethodStore  mystore.Store[PaymentMethod]
	publisher           mypublisher.Publisher
	nower               mytime.Nower
	uuider              myuuid.UUIDer
	logger              mylog.Logger
}

type Stores struct {
	Products        mystore.Store[Product]
	Categories      mystore.Store[Category]
	DeliveryCharges mystore.Store[DeliveryCharge]
	PaymentMethods  mystore.Store[PaymentMethod]
}

// NewStores opens the catalog stores on the configured backend.
func NewStores(c context.Context) (Stores, func(), error) {
	cleanups := []func(){}
	cleanup := func() {
		for _, f := range cleanups {
			f()
		}
	}

	products, productCleanup, err := mystore.New[Product](c)
	if err != nil {
		return Stores{}, cleanup, err
	}
	cleanups = append(cleanups, productCleanup)

	categories, categoryCleanup, err := mystore.New[Category](c)
	if err != nil {
		return Stores{}, cleanup, err
	}
	cleanups = append(cleanups, categoryCleanup)

	charges, chargeCleanup, err := mystore.New[DeliveryCharge](c)
	if err != nil {
		return Stores{}, cleanup, err
	}
	cleanups = append(cleanups, chargeCleanup)

	methods, methodCleanup, err := mystore.New[PaymentMethod](c)
	if err != nil {
		return Stores{}, cleanup, err
	}
	cleanups = append(cleanups, methodCleanup)

	return Stores{
		Products:        products,
		Categories:      categories,
		DeliveryCharges: charges,
		PaymentMethods:  methods,
	}, cleanup, nil
}

// Use dependency injection to isolate the infrastructure and easy testing
func New(stores Stores, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *Service {
	return &Service{
		productStore:        stores.Products,
		categoryStore:       stores.Categories,
		deliveryChargeStore: stores.DeliveryCharges,
		paymentMethodStore:  stores.PaymentMethods,
		publisher:           pub,
		nower:               nower,
		uuider:              uuider,
		logger:              logger,
	}
}
