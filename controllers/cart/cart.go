package cartControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymmats-store/gymmats-api/database"
	"github.com/gymmats-store/gymmats-api/models"
)

type AddToCartInput struct {
	CartID      string `json:"cart_id" binding:"required"`
	ProductSlug string `json:"product_slug" binding:"required"`
	SKU         string `json:"sku" binding:"required"`
	// Pointer so an absent quantity (defaults to 1) is distinguishable from
	// an explicit invalid 0, which must be rejected.
	Quantity *int `json:"quantity" binding:"omitempty,min=1"`
}

// AddToCart resolves the product and variant, builds a snapshot line item and
// merges it into the caller's cart, creating the cart on first add.
// POST /api/cart/add
func AddToCart(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		ctx := c.Request.Context()

		// Resolve product, then variant within it
		product, err := store.FindProductBySlug(ctx, input.ProductSlug)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		variant := product.VariantBySKU(input.SKU)
		if variant == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Variant not found"})
			return
		}

		item := models.CartItem{
			ProductSlug: input.ProductSlug,
			SKU:         input.SKU,
			Quantity:    quantity,
			Price:       variant.Price,
			Title:       product.Title,
			Image:       product.FirstImageURL(),
			SelectedOptions: map[string]string{
				"Thickness": fmt.Sprintf("%dmm", variant.ThicknessMM),
				"Size":      variant.Size,
				"Color":     variant.Color,
			},
		}

		cart, err := store.FindCartByID(ctx, input.CartID)
		if err != nil {
			if !errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
				return
			}
			// First add for this cart_id: create the cart lazily
			cart = &models.Cart{
				CartID:   input.CartID,
				Items:    []models.CartItem{item},
				Currency: "USD",
			}
			if err := store.InsertCart(ctx, cart); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}

		// Whole-document replace: two concurrent adds to the same cart can
		// race and the last write wins.
		cart.MergeItem(item)
		if err := store.ReplaceCart(ctx, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// GetCart returns the stored cart for a cart id. An unknown id is not an
// error; callers get an empty cart so the response shape is always valid.
// GET /api/cart/:cart_id
func GetCart(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
			return
		}

		cartID := c.Param("cart_id")
		cart, err := store.FindCartByID(c.Request.Context(), cartID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusOK, models.EmptyCart(cartID))
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			}
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}
