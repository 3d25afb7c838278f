// Package checkout turns a cart into an order message and hands it to the shop's messaging app.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danudara/storefront/config"
	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/lib/mylog"
	"github.com/danudara/storefront/lib/mymetrics"
	"github.com/danudara/storefront/lib/myvalidation"
	"github.com/danudara/storefront/services/cart"
)

const deepLinkBase = "https://wa.me/"

const (
	msgEmptyCart              = "emptyCart"
	msgIncompleteCustomerInfo = "incompleteCustomerInfo"
	msgCheckoutUnavailable    = "checkoutUnavailable"
	msgOrderSent              = "orderSent"
)

type Options struct {
	Destination        string // messaging number of the shop
	Production         bool
	ClearAfterDispatch bool
	Message            MessageOptions
}

type Dispatcher struct {
	opts       Options
	launcher   Launcher
	notifier   cart.Notifier
	translator cart.Translator
	metrics    *mymetrics.Metrics
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func New(opts Options, launcher Launcher, notifier cart.Notifier, translator cart.Translator, metrics *mymetrics.Metrics, logger mylog.Logger) *Dispatcher {
	return &Dispatcher{
		opts:       opts,
		launcher:   launcher,
		notifier:   notifier,
		translator: translator,
		metrics:    metrics,
		logger:     logger,
	}
}

// Checkout launches the deep link carrying the order and returns it. The cart is left as is
// unless ClearAfterDispatch is set, so a failed hand-off can be retried.
func (d *Dispatcher) Checkout(c context.Context, ct Cart, delivery decimal.Decimal, info CustomerInfo) (string, error) {
	items := ct.Items()
	if len(items) == 0 {
		d.metrics.CheckoutOutcome(mymetrics.OutcomeEmptyCart)
		d.notify(c, cart.NotificationError, msgEmptyCart)
		return "", myerrors.NewInvalidInputError(ErrEmptyCart)
	}

	info = info.trimmed()
	err := myvalidation.Struct(info)
	if missing := missingFields(err); len(missing) > 0 {
		d.metrics.CheckoutOutcome(mymetrics.OutcomeIncompleteInfo)
		d.notify(c, cart.NotificationError, msgIncompleteCustomerInfo)
		return "", myerrors.NewInvalidInputError(fmt.Errorf("%w: missing %s", ErrIncompleteCustomerInfo, strings.Join(missing, ", ")))
	}
	if err != nil {
		d.metrics.CheckoutOutcome(mymetrics.OutcomeInvalidInfo)
		return "", err
	}

	destination, err := d.destination(c)
	if err != nil {
		d.metrics.CheckoutOutcome(mymetrics.OutcomeNotConfigured)
		d.notify(c, cart.NotificationError, msgCheckoutUnavailable)
		return "", myerrors.NewUnavailableError(err)
	}

	deepLink := deepLinkBase + destination + "?text=" + ComposeOrderMessage(items, delivery, info, d.messageOptions(c))

	err = d.launcher.Launch(c, deepLink)
	if err != nil {
		d.metrics.CheckoutOutcome(mymetrics.OutcomeLaunchFailed)
		d.logger.Log(c, info.Phone, mylog.SeverityError, "Error launching order message: %s", err)
		return "", myerrors.NewInternalError(fmt.Errorf("error launching order message: %w", err))
	}

	d.metrics.CheckoutOutcome(mymetrics.OutcomeDispatched)
	d.logger.Log(c, info.Phone, mylog.SeverityInfo, "Order of %d items for district %s handed off", len(items), info.District)
	d.notify(c, cart.NotificationSuccess, msgOrderSent)

	if d.opts.ClearAfterDispatch {
		ct.Clear(c)
	}

	return deepLink, nil
}

type languageSource interface {
	CurrentLanguage(c context.Context) string
}

// messageOptions names the items in the shopper's language when the translator knows it.
func (d *Dispatcher) messageOptions(c context.Context) MessageOptions {
	opts := d.opts.Message
	if source, ok := d.translator.(languageSource); ok && opts.Language == "" {
		opts.Language = source.CurrentLanguage(c)
	}
	return opts
}

// destination returns the configured number, or the fallback outside production.
func (d *Dispatcher) destination(c context.Context) (string, error) {
	number := config.NormalizeNumber(d.opts.Destination)
	if config.IsUsableNumber(number) {
		return number, nil
	}

	if d.opts.Production {
		d.logger.Log(c, "", mylog.SeverityError, "Refusing checkout: destination number %q is not usable", d.opts.Destination)
		return "", ErrDestinationNotConfigured
	}

	d.metrics.CheckoutOutcome(mymetrics.OutcomeFallbackDestination)
	d.logger.Log(c, "", mylog.SeverityWarn, "Misconfiguration: destination number %q is not usable, falling back to %s",
		d.opts.Destination, config.FallbackWhatsAppNumber)
	return config.FallbackWhatsAppNumber, nil
}

func missingFields(err error) []string {
	var fieldsErr *myvalidation.FieldsError
	if errors.As(err, &fieldsErr) {
		return fieldsErr.Missing
	}
	return nil
}

func (d *Dispatcher) notify(c context.Context, kind cart.NotificationKind, messageKey string) {
	if d.notifier == nil {
		return
	}
	message := messageKey
	if d.translator != nil {
		message = d.translator.Translate(c, messageKey)
	}
	d.notifier.Notify(c, kind, message)
}
