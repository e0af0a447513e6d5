package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Image struct {
	URL string `bson:"url" json:"url"`
	Alt string `bson:"alt,omitempty" json:"alt,omitempty"`
}

type Variant struct {
	SKU         string  `bson:"sku" json:"sku"`
	ThicknessMM int     `bson:"thickness_mm" json:"thickness_mm"` // Thickness in millimeters
	Size        string  `bson:"size" json:"size"`                 // Size label, e.g. "1m x 1m"
	Color       string  `bson:"color" json:"color"`
	Price       float64 `bson:"price" json:"price"`
	Stock       int     `bson:"stock" json:"stock"`
}

type FAQItem struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Slug         string             `bson:"slug" json:"slug"` // URL-friendly unique identifier
	Subtitle     string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice    float64            `bson:"base_price" json:"base_price"`
	Category     string             `bson:"category" json:"category"`
	Images       []Image            `bson:"images" json:"images"`
	Variants     []Variant          `bson:"variants" json:"variants"`
	Specs        map[string]string  `bson:"specs" json:"specs"`
	UVPs         []string           `bson:"uvps" json:"uvps"` // Unique value propositions
	FAQs         []FAQItem          `bson:"faqs" json:"faqs"`
	Rating       float64            `bson:"rating" json:"rating"`
	ReviewsCount int                `bson:"reviews_count" json:"reviews_count"`
	InStock      bool               `bson:"in_stock" json:"in_stock"`
}

// VariantBySKU returns the variant with the given SKU, or nil if the product
// has no such variant. Variant lists are small, so a linear scan is enough.
func (p *Product) VariantBySKU(sku string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].SKU == sku {
			return &p.Variants[i]
		}
	}
	return nil
}

// FirstImageURL returns the URL of the product's first image, or nil when the
// product has no images.
func (p *Product) FirstImageURL() *string {
	if len(p.Images) == 0 {
		return nil
	}
	return &p.Images[0].URL
}
