package diagnostics

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gymmats-store/gymmats-api/database"
)

const pingTimeout = 5 * time.Second

// Root is the API banner.
// GET /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Gym Mats API"})
}

// TestDatabase reports store connectivity for quick deploy checks. It never
// fails; problems show up as status strings in the body.
// GET /test
func TestDatabase(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      "❌ Not Set",
			"database_name":     "❌ Not Set",
			"connection_status": "Not Connected",
			"collections":       []string{},
		}
		if os.Getenv("DATABASE_URL") != "" {
			response["database_url"] = "✅ Set"
		}
		if os.Getenv("DATABASE_NAME") != "" {
			response["database_name"] = "✅ Set"
		}

		if store != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
			defer cancel()

			if err := store.Ping(ctx); err != nil {
				response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
			} else {
				response["connection_status"] = "Connected"
				if names, err := store.CollectionNames(ctx); err != nil {
					response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
				} else {
					if len(names) > 10 {
						names = names[:10]
					}
					response["collections"] = names
					response["database"] = "✅ Connected & Working"
				}
			}
		}

		c.JSON(http.StatusOK, response)
	}
}

// truncate caps s at n characters, counting runes so a multibyte error
// message is never cut mid-character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
