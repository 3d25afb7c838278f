package cart

import "github.com/shopspring/decimal"

// Subtotal sums unit price times quantity; lines with a negative price or no quantity add nothing.
func Subtotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ItemCount is the number of units in the cart.
func ItemCount(items []LineItem) int {
	count := 0
	for _, item := range items {
		if item.Quantity > 0 {
			count += item.Quantity
		}
	}
	return count
}

func UniqueItemCount(items []LineItem) int {
	return len(items)
}

func Summarize(items []LineItem) Summary {
	return Summary{
		ItemCount:       ItemCount(items),
		UniqueItemCount: UniqueItemCount(items),
		Subtotal:        Subtotal(items),
	}
}
