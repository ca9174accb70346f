package kahuna

import (
	"strconv"
	"strings"
)

// attributePatch computes the changed attribute keys from a read snapshot.
// Patches are pure; the snapshot argument is never mutated. A nil or empty
// result skips the write entirely.
type attributePatch func(snapshot map[string]string) map[string]string

// updateAttributes performs one read-modify-write cycle over the full user
// attribute snapshot. Kahuna has no partial-update call, so the merged
// snapshot is always written back whole.
func (i *Integration) updateAttributes(patch attributePatch) {
	snapshot := i.kahuna.UserAttributes()
	changes := patch(snapshot)
	if len(changes) == 0 {
		return
	}
	for key, value := range changes {
		snapshot[key] = value
	}
	i.kahuna.SetUserAttributes(snapshot)
}

func viewedCategoryPatch(category string) attributePatch {
	return func(snapshot map[string]string) map[string]string {
		if category == "" {
			category = noneValue
		}
		categories := newBoundedRecencySet(maxCategoriesViewedEntries)
		if serialized, ok := snapshot[categoriesViewedKey]; ok {
			categories = parseBoundedRecencySet(serialized, maxCategoriesViewedEntries)
		}
		categories.Add(category)
		return map[string]string{
			categoriesViewedKey:   categories.Serialize(),
			lastViewedCategoryKey: category,
		}
	}
}

func viewedProductPatch(name string) attributePatch {
	return func(map[string]string) map[string]string {
		if name == "" {
			return nil
		}
		return map[string]string{lastProductViewedNameKey: name}
	}
}

func addedProductPatch(name string) attributePatch {
	return func(map[string]string) map[string]string {
		if name == "" {
			return nil
		}
		return map[string]string{lastProductAddedToCartNameKey: name}
	}
}

func addedProductCategoryPatch(category string) attributePatch {
	return func(map[string]string) map[string]string {
		if category == "" {
			return nil
		}
		return map[string]string{lastProductAddedToCartCategoryKey: category}
	}
}

func completedOrderPatch(discount float64) attributePatch {
	return func(map[string]string) map[string]string {
		return map[string]string{
			lastPurchaseDiscountKey: formatDiscount(discount),
		}
	}
}

// Integral discounts keep a trailing ".0"; the attribute has always been
// stored that way.
func formatDiscount(discount float64) string {
	value := strconv.FormatFloat(discount, 'f', -1, 64)
	if !strings.ContainsAny(value, ".eE") {
		value += ".0"
	}
	return value
}
