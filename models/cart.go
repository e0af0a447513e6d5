package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a snapshot of the product/variant taken when the item was
// added. Later changes to the product do not touch existing cart items.
type CartItem struct {
	ProductSlug     string            `bson:"product_slug" json:"product_slug"`
	SKU             string            `bson:"sku" json:"sku"`
	Quantity        int               `bson:"quantity" json:"quantity"`
	Price           float64           `bson:"price" json:"price"`
	Title           string            `bson:"title" json:"title"`
	Image           *string           `bson:"image" json:"image"`
	SelectedOptions map[string]string `bson:"selected_options" json:"selected_options"`
}

type Cart struct {
	// ID is a pointer so carts that never touched the store (e.g. the empty
	// cart served for an unknown cart_id) carry no document id on the wire.
	ID       *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CartID   string              `bson:"cart_id" json:"cart_id"` // caller-supplied, e.g. a client session token
	Items    []CartItem          `bson:"items" json:"items"`
	Currency string              `bson:"currency" json:"currency"`
}

// EmptyCart returns the cart value served when no cart exists for an id.
func EmptyCart(cartID string) Cart {
	return Cart{CartID: cartID, Items: []CartItem{}, Currency: "USD"}
}

// MergeItem folds item into the cart's item list. An existing entry with the
// same SKU only gets its quantity increased; its snapshot fields (price,
// title, image, options) stay as they were when first added. A new SKU is
// appended, so item order reflects add history.
func (c *Cart) MergeItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].SKU == item.SKU {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}
