// Package cart holds the shopper's line items and mirrors them to device-local storage.
package cart

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/lib/mykv"
	"github.com/danudara/storefront/lib/mylog"
)

// Cart is safe for concurrent use; every mutation is written through to storage before it returns.
type Cart struct {
	sync.Mutex
	storageKey string
	storage    mykv.KeyValueStore
	notifier   Notifier
	translator Translator
	logger     mylog.Logger
	items      []LineItem
	listeners  []Listener
	persistErr error
}

// Use dependency injection to isolate the infrastructure and easy testing
func New(storage mykv.KeyValueStore, storageKey string, notifier Notifier, translator Translator, logger mylog.Logger) *Cart {
	return &Cart{
		storageKey: storageKey,
		storage:    storage,
		notifier:   notifier,
		translator: translator,
		logger:     logger,
		items:      []LineItem{},
	}
}

// OnChange registers a listener that is told about every state change.
func (ct *Cart) OnChange(listener Listener) {
	ct.Lock()
	defer ct.Unlock()

	ct.listeners = append(ct.listeners, listener)
}

// Load replaces the in-memory cart with what storage holds; bad data results in an empty or partial cart.
func (ct *Cart) Load(c context.Context) {
	ct.Lock()
	items := []LineItem{}
	stored, found, err := ct.storage.Get(c, ct.storageKey)
	if err != nil {
		ct.logger.Log(c, ct.storageKey, mylog.SeverityWarn, "Starting with empty cart: %s", fmt.Errorf("%w: %s", ErrPersistenceRead, err))
	} else if found {
		decoded, dropped, err := decodeItems(stored)
		if err != nil {
			ct.logger.Log(c, ct.storageKey, mylog.SeverityWarn, "Starting with empty cart: %s", err)
		} else {
			items = decoded
		}
		if dropped > 0 {
			ct.logger.Log(c, ct.storageKey, mylog.SeverityWarn, "Dropped %d invalid cart entries", dropped)
		}
	}
	ct.items = items
	summary := Summarize(ct.items)
	ct.Unlock()

	ct.logger.Log(c, ct.storageKey, mylog.SeverityDebug, "Loaded cart with %d items", summary.UniqueItemCount)
	ct.fireListeners(c, summary)
}

// AddItem adds quantity units of product; a quantity below 1 counts as 1.
func (ct *Cart) AddItem(c context.Context, product Product, quantity int) error {
	if strings.TrimSpace(product.ID) == "" {
		return ct.rejectProduct(c, fmt.Errorf("%w: product %q has no id", ErrInvalidProduct, product.Name))
	}
	if product.Price.IsNegative() {
		return ct.rejectProduct(c, fmt.Errorf("%w: product %s has negative price %s", ErrInvalidProduct, product.ID, product.Price))
	}
	if quantity < 1 {
		quantity = 1
	}

	ct.Lock()
	if pos := ct.indexOf(product.ID); pos >= 0 {
		ct.items[pos].Quantity += quantity
	} else {
		ct.items = append(ct.items, newLineItem(product, quantity))
	}
	summary := ct.persist(c)
	ct.Unlock()

	ct.logger.Log(c, product.ID, mylog.SeverityInfo, "Added %d x %s to cart", quantity, product.ID)
	ct.afterChange(c, msgItemAdded, summary)
	return nil
}

func (ct *Cart) RemoveItem(c context.Context, productID string) error {
	ct.Lock()
	pos := ct.indexOf(productID)
	if pos < 0 {
		ct.Unlock()
		return ct.itemNotFound(c, productID)
	}
	ct.items = append(ct.items[:pos], ct.items[pos+1:]...)
	summary := ct.persist(c)
	ct.Unlock()

	ct.logger.Log(c, productID, mylog.SeverityInfo, "Removed %s from cart", productID)
	ct.afterChange(c, msgItemRemoved, summary)
	return nil
}

// SetQuantity overwrites the quantity of an item; zero or less removes it.
func (ct *Cart) SetQuantity(c context.Context, productID string, quantity int) error {
	ct.Lock()
	pos := ct.indexOf(productID)
	if pos < 0 {
		ct.Unlock()
		return ct.itemNotFound(c, productID)
	}
	if quantity <= 0 {
		ct.Unlock()
		return ct.RemoveItem(c, productID)
	}
	ct.items[pos].Quantity = quantity
	summary := ct.persist(c)
	ct.Unlock()

	ct.logger.Log(c, productID, mylog.SeverityInfo, "Quantity of %s set to %d", productID, quantity)
	ct.afterChange(c, msgCartUpdated, summary)
	return nil
}

func (ct *Cart) Increase(c context.Context, productID string) error {
	return ct.adjust(c, productID, 1)
}

func (ct *Cart) Decrease(c context.Context, productID string) error {
	return ct.adjust(c, productID, -1)
}

func (ct *Cart) adjust(c context.Context, productID string, delta int) error {
	item, found := ct.GetItem(productID)
	if !found {
		return ct.itemNotFound(c, productID)
	}
	return ct.SetQuantity(c, productID, item.Quantity+delta)
}

func (ct *Cart) Clear(c context.Context) {
	ct.Lock()
	ct.items = []LineItem{}
	summary := ct.persist(c)
	ct.Unlock()

	ct.logger.Log(c, ct.storageKey, mylog.SeverityInfo, "Cleared cart")
	ct.afterChange(c, msgCartCleared, summary)
}

func (ct *Cart) IsEmpty() bool {
	ct.Lock()
	defer ct.Unlock()

	return len(ct.items) == 0
}

func (ct *Cart) GetItem(productID string) (LineItem, bool) {
	ct.Lock()
	defer ct.Unlock()

	pos := ct.indexOf(productID)
	if pos < 0 {
		return LineItem{}, false
	}
	return copyItem(ct.items[pos]), true
}

func (ct *Cart) HasItem(productID string) bool {
	_, found := ct.GetItem(productID)
	return found
}

// Items returns a copy of the line items in insertion order.
func (ct *Cart) Items() []LineItem {
	ct.Lock()
	defer ct.Unlock()

	items := make([]LineItem, 0, len(ct.items))
	for _, item := range ct.items {
		items = append(items, copyItem(item))
	}
	return items
}

func (ct *Cart) Summary() Summary {
	ct.Lock()
	defer ct.Unlock()

	return Summarize(ct.items)
}

// PersistError returns the failure of the last write, nil when it succeeded.
func (ct *Cart) PersistError() error {
	ct.Lock()
	defer ct.Unlock()

	return ct.persistErr
}

// persist must be called with the lock held. A failed write keeps the in-memory state.
func (ct *Cart) persist(c context.Context) Summary {
	summary := Summarize(ct.items)

	encoded, err := encodeItems(ct.items)
	if err == nil {
		err = ct.storage.Set(c, ct.storageKey, encoded)
		if err != nil {
			err = fmt.Errorf("%w: %s", ErrPersistenceWrite, err)
		}
	}
	ct.persistErr = err
	if err != nil {
		ct.logger.Log(c, ct.storageKey, mylog.SeverityError, "Error saving cart: %s", err)
	}
	return summary
}

func (ct *Cart) afterChange(c context.Context, successMessage string, summary Summary) {
	if ct.PersistError() != nil {
		ct.notify(c, NotificationError, msgCartSaveFailed)
	} else if successMessage != msgCartCleared {
		ct.notify(c, NotificationSuccess, successMessage)
	}
	ct.fireListeners(c, summary)
}

func (ct *Cart) fireListeners(c context.Context, summary Summary) {
	ct.Lock()
	listeners := append([]Listener{}, ct.listeners...)
	ct.Unlock()

	for _, listener := range listeners {
		listener(c, summary)
	}
}

func (ct *Cart) notify(c context.Context, kind NotificationKind, messageKey string) {
	if ct.notifier == nil {
		return
	}
	message := messageKey
	if ct.translator != nil {
		message = ct.translator.Translate(c, messageKey)
	}
	ct.notifier.Notify(c, kind, message)
}

func (ct *Cart) rejectProduct(c context.Context, err error) error {
	ct.logger.Log(c, "", mylog.SeverityWarn, "Rejected product: %s", err)
	ct.notify(c, NotificationError, msgInvalidProduct)
	return myerrors.NewInvalidInputError(err)
}

func (ct *Cart) itemNotFound(c context.Context, productID string) error {
	ct.logger.Log(c, productID, mylog.SeverityInfo, "Product %s is not in cart", productID)
	return myerrors.NewNotFoundError(fmt.Errorf("%w: %s", ErrItemNotFound, productID))
}

// indexOf must be called with the lock held.
func (ct *Cart) indexOf(productID string) int {
	for i, item := range ct.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func newLineItem(product Product, quantity int) LineItem {
	item := LineItem{
		ProductID:   product.ID,
		DisplayName: product.Name,
		Names:       map[string]string{},
		UnitPrice:   product.Price,
		ImageRef:    product.ImageURL,
		Quantity:    quantity,
	}
	if item.DisplayName == "" {
		item.DisplayName = product.ID
	}
	for lang, name := range product.Names {
		if name != "" {
			item.Names[lang] = name
		}
	}
	if product.OriginalPrice != nil {
		original := *product.OriginalPrice
		item.OriginalUnitPrice = &original
	}
	return item
}

func copyItem(item LineItem) LineItem {
	names := make(map[string]string, len(item.Names))
	for lang, name := range item.Names {
		names[lang] = name
	}
	item.Names = names
	if item.OriginalUnitPrice != nil {
		original := *item.OriginalUnitPrice
		item.OriginalUnitPrice = &original
	}
	return item
}
