package kahuna

import "testing"

func TestViewedCategoryPatchExtendsExistingSet(t *testing.T) {
	snapshot := map[string]string{
		categoriesViewedKey: "Footwear,Outerwear",
		"plan":              "gold",
	}

	changes := viewedCategoryPatch("Hats")(snapshot)

	if changes[categoriesViewedKey] != "Footwear,Outerwear,Hats" {
		t.Errorf("Expected the new category appended, got %q", changes[categoriesViewedKey])
	}
	if changes[lastViewedCategoryKey] != "Hats" {
		t.Errorf("Expected last viewed category Hats, got %q", changes[lastViewedCategoryKey])
	}
	if snapshot[categoriesViewedKey] != "Footwear,Outerwear" {
		t.Errorf("Patch mutated the snapshot it was given")
	}
	if _, touched := changes["plan"]; touched {
		t.Errorf("Patch should only return changed keys")
	}
}

func TestViewedCategoryPatchNormalizesEmpty(t *testing.T) {
	changes := viewedCategoryPatch("")(map[string]string{})
	if changes[lastViewedCategoryKey] != noneValue {
		t.Errorf("Expected the None sentinel, got %q", changes[lastViewedCategoryKey])
	}
}

func TestProductPatchesSkipEmptyValues(t *testing.T) {
	if changes := viewedProductPatch("")(map[string]string{}); len(changes) != 0 {
		t.Errorf("Expected no changes for an empty product name")
	}
	if changes := addedProductPatch("")(map[string]string{}); len(changes) != 0 {
		t.Errorf("Expected no changes for an empty cart name")
	}
	if changes := addedProductCategoryPatch("")(map[string]string{}); len(changes) != 0 {
		t.Errorf("Expected no changes for an empty cart category")
	}
}

func TestCompletedOrderPatchFormatsDiscount(t *testing.T) {
	changes := completedOrderPatch(0.15)(map[string]string{})
	if changes[lastPurchaseDiscountKey] != "0.15" {
		t.Errorf("Expected discount 0.15, got %q", changes[lastPurchaseDiscountKey])
	}

	changes = completedOrderPatch(0)(map[string]string{})
	if changes[lastPurchaseDiscountKey] != "0.0" {
		t.Errorf("Expected integral discount rendered as 0.0, got %q", changes[lastPurchaseDiscountKey])
	}

	changes = completedOrderPatch(2)(map[string]string{})
	if changes[lastPurchaseDiscountKey] != "2.0" {
		t.Errorf("Expected integral discount rendered as 2.0, got %q", changes[lastPurchaseDiscountKey])
	}
}
