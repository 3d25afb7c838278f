package cart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const namePrefix = "name_"

// encodeItems writes the device format: one json array, prices as json numbers.
func encodeItems(items []LineItem) (string, error) {
	entries := make([]map[string]any, 0, len(items))
	for _, item := range items {
		entry := map[string]any{
			"id":       item.ProductID,
			"name":     item.DisplayName,
			"price":    json.Number(item.UnitPrice.String()),
			"quantity": item.Quantity,
		}
		for lang, name := range item.Names {
			entry[namePrefix+lang] = name
		}
		if item.OriginalUnitPrice != nil {
			entry["original_price"] = json.Number(item.OriginalUnitPrice.String())
		}
		if item.ImageRef != "" {
			entry["image"] = item.ImageRef
		}
		entries = append(entries, entry)
	}

	asJSON, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrPersistenceWrite, err)
	}
	return string(asJSON), nil
}

// decodeItems keeps the valid entries of a stored cart and reports how many were dropped.
// An unparseable document yields an error and no items.
func decodeItems(stored string) ([]LineItem, int, error) {
	if strings.TrimSpace(stored) == "" {
		return []LineItem{}, 0, nil
	}

	rawEntries := []json.RawMessage{}
	err := json.Unmarshal([]byte(stored), &rawEntries)
	if err != nil {
		return []LineItem{}, 0, fmt.Errorf("%w: %s", ErrPersistenceRead, err)
	}

	items := make([]LineItem, 0, len(rawEntries))
	positions := map[string]int{}
	dropped := 0
	for _, raw := range rawEntries {
		item, ok := decodeItem(raw)
		if !ok {
			dropped++
			continue
		}
		// duplicates can only come from foreign writers; merge them like AddItem would
		if pos, found := positions[item.ProductID]; found {
			items[pos].Quantity += item.Quantity
			continue
		}
		positions[item.ProductID] = len(items)
		items = append(items, item)
	}
	return items, dropped, nil
}

func decodeItem(raw json.RawMessage) (LineItem, bool) {
	fields := map[string]json.RawMessage{}
	err := json.Unmarshal(raw, &fields)
	if err != nil {
		return LineItem{}, false
	}

	id, ok := decodeString(fields["id"])
	if !ok || strings.TrimSpace(id) == "" {
		return LineItem{}, false
	}
	price, ok := decodeDecimal(fields["price"])
	if !ok || price.IsNegative() {
		return LineItem{}, false
	}
	quantity, ok := decodeQuantity(fields["quantity"])
	if !ok {
		return LineItem{}, false
	}

	item := LineItem{
		ProductID: id,
		UnitPrice: price,
		Quantity:  quantity,
		Names:     map[string]string{},
	}
	item.DisplayName, _ = decodeString(fields["name"])
	if item.DisplayName == "" {
		item.DisplayName = id
	}
	item.ImageRef, _ = decodeString(fields["image"])
	if original, ok := decodeDecimal(fields["original_price"]); ok && !original.IsNegative() {
		item.OriginalUnitPrice = &original
	}
	for key, value := range fields {
		lang, found := strings.CutPrefix(key, namePrefix)
		if !found || lang == "" {
			continue
		}
		if name, ok := decodeString(value); ok && name != "" {
			item.Names[lang] = name
		}
	}
	return item, true
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeString(raw json.RawMessage) (string, bool) {
	if isNull(raw) {
		return "", false
	}
	var value string
	err := json.Unmarshal(raw, &value)
	if err != nil {
		return "", false
	}
	return value, true
}

// decodeDecimal accepts a json number or a numeric string.
func decodeDecimal(raw json.RawMessage) (decimal.Decimal, bool) {
	if isNull(raw) {
		return decimal.Zero, false
	}
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, `"`) {
		unquoted, ok := decodeString(raw)
		if !ok {
			return decimal.Zero, false
		}
		text = strings.TrimSpace(unquoted)
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}

func decodeQuantity(raw json.RawMessage) (int, bool) {
	value, ok := decodeDecimal(raw)
	if !ok || !value.IsInteger() || value.LessThan(decimal.NewFromInt(1)) {
		return 0, false
	}
	// any positive quantity the cart accepted must load again; only values beyond int are lost
	if value.GreaterThan(decimal.NewFromInt(int64(math.MaxInt))) {
		return 0, false
	}
	return int(value.IntPart()), true
}
