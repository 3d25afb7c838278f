package catalogevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/lib/myevents"
)

const (
	TopicName           = "catalog"
	productCreatedName  = TopicName + ".product.created"
	productUpdatedName  = TopicName + ".product.updated"
	productDeletedName  = TopicName + ".product.deleted"
	categoryChangedName = TopicName + ".category.changed"
)

type CatalogEventService interface {
	OnProductCreated(c context.Context, topic string, event ProductCreated) error
	OnProductUpdated(c context.Context, topic string, event ProductUpdated) error
	OnProductDeleted(c context.Context, topic string, event ProductDeleted) error
	OnCategoryChanged(c context.Context, topic string, event CategoryChanged) error
}

func DispatchEvent(c context.Context, reader io.Reader, service CatalogEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case productCreatedName:
		event := ProductCreated{}
		if err := json.Unmarshal([]byte(envelope.EventPayload), &event); err != nil {
			return myerrors.NewInvalidInputError(err)
		}
		return service.OnProductCreated(c, envelope.Topic, event)
	case productUpdatedName:
		event := ProductUpdated{}
		if err := json.Unmarshal([]byte(envelope.EventPayload), &event); err != nil {
			return myerrors.NewInvalidInputError(err)
		}
		return service.OnProductUpdated(c, envelope.Topic, event)
	case productDeletedName:
		event := ProductDeleted{}
		if err := json.Unmarshal([]byte(envelope.EventPayload), &event); err != nil {
			return myerrors.NewInvalidInputError(err)
		}
		return service.OnProductDeleted(c, envelope.Topic, event)
	case categoryChangedName:
		event := CategoryChanged{}
		if err := json.Unmarshal([]byte(envelope.EventPayload), &event); err != nil {
			return myerrors.NewInvalidInputError(err)
		}
		return service.OnCategoryChanged(c, envelope.Topic, event)
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event type %s", envelope.EventTypeName))
	}
}

type ProductCreated struct {
	ProductID  string
	Name       string
	PriceCents int64
	CategoryID string
}

func (e ProductCreated) GetEventTypeName() string {
	return productCreatedName
}

func (e ProductCreated) GetAggregateName() string {
	return e.ProductID
}

type ProductUpdated struct {
	ProductID  string
	Name       string
	PriceCents int64
	IsActive   bool
	Version    int64 // unix nanos of the change, keeps repeated identical updates apart
}

func (e ProductUpdated) GetEventTypeName() string {
	return productUpdatedName
}

func (e ProductUpdated) GetAggregateName() string {
	return e.ProductID
}

type ProductDeleted struct {
	ProductID string
}

func (e ProductDeleted) GetEventTypeName() string {
	return productDeletedName
}

func (e ProductDeleted) GetAggregateName() string {
	return e.ProductID
}

const (
	CategoryCreated = "created"
	CategoryUpdated = "updated"
	CategoryDeleted = "deleted"
)

type CategoryChanged struct {
	CategoryID string
	Change     string
	Version    int64
}

func (e CategoryChanged) GetEventTypeName() string {
	return categoryChangedName
}

func (e CategoryChanged) GetAggregateName() string {
	return e.CategoryID
}
