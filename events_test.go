package kahuna

import "testing"

func TestValueMapAccessors(t *testing.T) {
	properties := ValueMap{
		"category": "Footwear",
		"name":     "Shoe",
		"quantity": 2,
		"revenue":  "19.99",
		"discount": 0.15,
	}

	if properties.Category() != "Footwear" {
		t.Errorf("Category accessor failed")
	}
	if properties.ProductName() != "Shoe" {
		t.Errorf("ProductName accessor failed")
	}
	if properties.Quantity() != 2 {
		t.Errorf("Quantity accessor failed")
	}
	if properties.Revenue() != 19.99 {
		t.Errorf("Revenue accessor should parse numeric strings")
	}
	if properties.Discount() != 0.15 {
		t.Errorf("Discount accessor failed")
	}
}

func TestValueMapFallbacks(t *testing.T) {
	properties := ValueMap{
		"quantity": "not a number",
		"count":    2,
	}

	if properties.Quantity() != -1 {
		t.Errorf("Expected the absent-quantity sentinel for junk values")
	}
	if properties.Category() != "" {
		t.Errorf("Expected empty category fallback")
	}
	if properties.Revenue() != 0 {
		t.Errorf("Expected zero revenue fallback")
	}
	if properties.GetBool("flag", true) != true {
		t.Errorf("Expected bool fallback")
	}
	if properties.GetString("quantity", "fallback") != "not a number" {
		t.Errorf("Expected string values returned as-is")
	}
	if properties.GetString("count", "fallback") != "fallback" {
		t.Errorf("Expected string fallback for non-string values")
	}
}
