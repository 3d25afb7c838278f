package storefront

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danudara/storefront/lib/mycontext"
	"github.com/danudara/storefront/lib/myhttp"
	"github.com/danudara/storefront/lib/mylog"
	"github.com/danudara/storefront/services/catalog/catalogevents"
)

func (s *webService) Subscribe(c context.Context) error {
	err := s.subscriber.Subscribe(c, catalogevents.TopicName, s.opts.BaseURL+"/api/catalog/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", catalogevents.TopicName, err)
	}

	return nil
}

func (s *webService) catalogEventPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := catalogevents.DispatchEvent(c, r.Body, s)
		if err != nil {
			errorWriter.WriteError(c, w, 30, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{})
	}
}

func (s *webService) OnProductCreated(c context.Context, topic string, event catalogevents.ProductCreated) error {
	s.metrics.CatalogEvent("product.created")
	s.logger.Log(c, event.ProductID, mylog.SeverityInfo, "Product %s (%s) added to the catalog", event.ProductID, event.Name)
	return nil
}

// OnProductUpdated leaves the cart alone: cart lines keep the price seen when they were added.
func (s *webService) OnProductUpdated(c context.Context, topic string, event catalogevents.ProductUpdated) error {
	s.metrics.CatalogEvent("product.updated")
	if item, found := s.cart.GetItem(event.ProductID); found {
		s.logger.Log(c, event.ProductID, mylog.SeverityInfo, "Product %s changed; cart keeps price %s", event.ProductID, item.UnitPrice)
	}
	return nil
}

func (s *webService) OnProductDeleted(c context.Context, topic string, event catalogevents.ProductDeleted) error {
	s.metrics.CatalogEvent("product.deleted")
	if s.cart.HasItem(event.ProductID) {
		s.logger.Log(c, event.ProductID, mylog.SeverityWarn, "Product %s was deleted from the catalog but is still in the cart", event.ProductID)
	}
	return nil
}

func (s *webService) OnCategoryChanged(c context.Context, topic string, event catalogevents.CategoryChanged) error {
	s.metrics.CatalogEvent("category." + event.Change)
	s.logger.Log(c, event.CategoryID, mylog.SeverityDebug, "Category %s %s", event.CategoryID, event.Change)
	return nil
}
