package models

import "testing"

func item(sku string, qty int, price float64) CartItem {
	return CartItem{
		ProductSlug: "rubber-gym-mat-pro",
		SKU:         sku,
		Quantity:    qty,
		Price:       price,
		Title:       "Premium Rubber Gym Mat",
	}
}

func TestMergeItemSumsQuantityForSameSKU(t *testing.T) {
	cart := EmptyCart("c1")
	cart.MergeItem(item("MAT10-BLK-100", 2, 49.99))
	cart.MergeItem(item("MAT10-BLK-100", 3, 49.99))

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cart.Items))
	}
	if got := cart.Items[0].Quantity; got != 5 {
		t.Errorf("expected quantity 5, got %d", got)
	}
}

func TestMergeItemKeepsSnapshotFields(t *testing.T) {
	cart := EmptyCart("c1")
	cart.MergeItem(item("MAT10-BLK-100", 1, 49.99))

	// Same SKU arrives again with a changed price; the stored snapshot wins.
	repriced := item("MAT10-BLK-100", 1, 59.99)
	repriced.Title = "Renamed Mat"
	cart.MergeItem(repriced)

	got := cart.Items[0]
	if got.Price != 49.99 {
		t.Errorf("price refreshed on merge: got %v, want 49.99", got.Price)
	}
	if got.Title != "Premium Rubber Gym Mat" {
		t.Errorf("title refreshed on merge: got %q", got.Title)
	}
	if got.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", got.Quantity)
	}
}

func TestMergeItemPreservesAddOrder(t *testing.T) {
	cart := EmptyCart("c1")
	cart.MergeItem(item("MAT10-BLK-100", 2, 49.99))
	cart.MergeItem(item("MAT15-BLK-100", 1, 64.99))
	cart.MergeItem(item("MAT10-BLK-100", 3, 49.99))

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(cart.Items))
	}
	if cart.Items[0].SKU != "MAT10-BLK-100" || cart.Items[1].SKU != "MAT15-BLK-100" {
		t.Errorf("item order changed: %q, %q", cart.Items[0].SKU, cart.Items[1].SKU)
	}
	if cart.Items[0].Quantity != 5 {
		t.Errorf("expected first item quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestMergeItemCountEqualsDistinctSKUs(t *testing.T) {
	cart := EmptyCart("c1")
	for _, sku := range []string{"A", "B", "A", "C", "B", "A"} {
		cart.MergeItem(item(sku, 1, 10))
	}
	if len(cart.Items) != 3 {
		t.Errorf("expected 3 items for 3 distinct SKUs, got %d", len(cart.Items))
	}
}

func TestEmptyCart(t *testing.T) {
	cart := EmptyCart("missing")
	if cart.CartID != "missing" {
		t.Errorf("cart_id = %q", cart.CartID)
	}
	if cart.Currency != "USD" {
		t.Errorf("currency = %q", cart.Currency)
	}
	if cart.Items == nil || len(cart.Items) != 0 {
		t.Errorf("items should be an empty slice, got %#v", cart.Items)
	}
	if cart.ID != nil {
		t.Errorf("unstored cart must have no document id, got %v", cart.ID)
	}
}

func TestVariantBySKU(t *testing.T) {
	p := Product{Variants: []Variant{
		{SKU: "MAT10-BLK-100", Price: 49.99},
		{SKU: "MAT15-BLK-100", Price: 64.99},
	}}

	v := p.VariantBySKU("MAT15-BLK-100")
	if v == nil || v.Price != 64.99 {
		t.Errorf("expected MAT15 variant at 64.99, got %#v", v)
	}
	if p.VariantBySKU("NOPE") != nil {
		t.Error("expected nil for unknown SKU")
	}
}

func TestFirstImageURL(t *testing.T) {
	p := Product{}
	if p.FirstImageURL() != nil {
		t.Error("expected nil for product without images")
	}
	p.Images = []Image{{URL: "/images/mat-1.jpg"}, {URL: "/images/mat-2.jpg"}}
	if got := p.FirstImageURL(); got == nil || *got != "/images/mat-1.jpg" {
		t.Errorf("expected first image URL, got %v", got)
	}
}
