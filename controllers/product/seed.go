package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymmats-store/gymmats-api/database"
	"github.com/gymmats-store/gymmats-api/models"
)

// SeedSlug is the slug of the product inserted by the seed endpoint.
const SeedSlug = "rubber-gym-mat-pro"

// SeedProduct inserts the default rubber gym mat product if it does not
// already exist.
// POST /seed
func SeedProduct(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
			return
		}

		ctx := c.Request.Context()
		_, err := store.FindProductBySlug(ctx, SeedSlug)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"status": "exists"})
			return
		}
		if !errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing product"})
			return
		}

		product := sampleProduct()
		id, err := store.InsertProduct(ctx, product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "seeded", "id": id})
	}
}

func sampleProduct() *models.Product {
	return &models.Product{
		Title:    "Premium Rubber Gym Mat",
		Slug:     SeedSlug,
		Subtitle: "Anti-slip, shock-absorbing flooring for serious lifters",
		Description: "Durable, dense rubber mats engineered to protect your floors and equipment. " +
			"Low odor, easy to clean, and built for heavy use in home or commercial gyms.",
		BasePrice: 49.99,
		Category:  "Gym Mats",
		Images: []models.Image{
			{URL: "/images/mat-1.jpg", Alt: "Gym mat close-up texture"},
			{URL: "/images/mat-2.jpg", Alt: "Mat with barbell on top"},
			{URL: "/images/mat-3.jpg", Alt: "Home gym setup with mats"},
		},
		Variants: []models.Variant{
			{SKU: "MAT10-BLK-100", ThicknessMM: 10, Size: "1m x 1m", Color: "Black", Price: 49.99, Stock: 120},
			{SKU: "MAT15-BLK-100", ThicknessMM: 15, Size: "1m x 1m", Color: "Black", Price: 64.99, Stock: 80},
			{SKU: "MAT20-GRY-100", ThicknessMM: 20, Size: "1m x 1m", Color: "Speckled Grey", Price: 79.99, Stock: 50},
		},
		Specs: map[string]string{
			"Material":    "Recycled vulcanized rubber",
			"Surface":     "Anti-slip fine grain",
			"Hardness":    "60 Shore A",
			"Smell":       "Low-odor",
			"Maintenance": "Mop with mild detergent",
		},
		UVPs: []string{
			"Shock-absorbing protection for floors and equipment",
			"Anti-slip surface with low odor",
			"Precision-cut edges for seamless fit",
			"Easy clean, water-resistant finish",
			"Backed by 2-year commercial warranty",
		},
		FAQs: []models.FAQItem{
			{
				Question: "Can I cut the mats to fit my space?",
				Answer:   "Yes, use a sharp utility knife and straight edge to score and cut.",
			},
			{
				Question: "Do these reduce noise?",
				Answer:   "The dense rubber helps dampen sound from drops and footsteps.",
			},
			{
				Question: "Are they safe for basement floors?",
				Answer:   "Yes, they are water-resistant and safe on concrete.",
			},
		},
		Rating:       4.9,
		ReviewsCount: 312,
		InStock:      true,
	}
}
