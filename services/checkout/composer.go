package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/danudara/storefront/services/cart"
)

const separator = "━━━━━━━━━━━━━━━━━━"

// RenderOrderMessage writes the plain text order summary; the total is subtotal plus delivery.
func RenderOrderMessage(items []cart.LineItem, delivery decimal.Decimal, info CustomerInfo, opts MessageOptions) string {
	subtotal := cart.Subtotal(items)
	total := subtotal.Add(delivery)

	sb := strings.Builder{}
	fmt.Fprintf(&sb, "🛒 *New Order - %s*\n\n", opts.ShopName)
	fmt.Fprintf(&sb, "📱 *Phone:* %s\n", info.Phone)
	fmt.Fprintf(&sb, "📍 *District:* %s\n", info.District)
	if info.City != "" {
		fmt.Fprintf(&sb, "🏙️ *City:* %s\n", info.City)
	}
	if info.PaymentMethodLabel != "" {
		fmt.Fprintf(&sb, "💳 *Payment:* %s\n", info.PaymentMethodLabel)
	}
	fmt.Fprintf(&sb, "\n%s\n", separator)
	sb.WriteString("📦 *Order Items:*\n\n")

	for i, item := range items {
		fmt.Fprintf(&sb, "%d. *%s*\n", i+1, item.LocalizedName(opts.Language))
		fmt.Fprintf(&sb, "   Qty: %d × %s\n", item.Quantity, formatAmount(opts.CurrencySymbol, item.UnitPrice))
		fmt.Fprintf(&sb, "   = %s\n\n", formatAmount(opts.CurrencySymbol, item.LineTotal()))
	}

	fmt.Fprintf(&sb, "%s\n", separator)
	fmt.Fprintf(&sb, "📋 *Subtotal:* %s\n", formatAmount(opts.CurrencySymbol, subtotal))
	fmt.Fprintf(&sb, "🚚 *Delivery:* %s\n", formatAmount(opts.CurrencySymbol, delivery))
	fmt.Fprintf(&sb, "💰 *Total:* %s\n", formatAmount(opts.CurrencySymbol, total))
	fmt.Fprintf(&sb, "%s\n\n", separator)
	fmt.Fprintf(&sb, "Thank you for shopping with %s! 🙏", opts.ShopName)

	return sb.String()
}

// ComposeOrderMessage returns the order summary encoded for use as a query parameter value.
func ComposeOrderMessage(items []cart.LineItem, delivery decimal.Decimal, info CustomerInfo, opts MessageOptions) string {
	return encodeComponent(RenderOrderMessage(items, delivery, info, opts))
}

// encodeComponent encodes spaces as %20 instead of +, which messaging apps show literally.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// formatAmount groups the whole part and keeps at most two fraction digits, without trailing zeros.
// The digits come from the decimal itself; a float would lose cents on large amounts.
func formatAmount(symbol string, amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	whole := rounded.Truncate(0)
	p := message.NewPrinter(language.English)
	text := p.Sprint(number.Decimal(whole.IntPart()))

	cents := strings.TrimRight(strings.TrimPrefix(rounded.Sub(whole).StringFixed(2), "0."), "0")
	if cents != "" {
		text += "." + cents
	}
	return symbol + sign + text
}
