package repositories

import (
	"strings"

	"github.com/efeurhobobullish/SwiftBuy/models"
)

// CatalogRepository serves the static product catalog. The catalog is
// immutable after construction and safe for concurrent reads.
type CatalogRepository struct {
	products   []models.Product
	categories []models.Category
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		products:   seedProducts(),
		categories: seedCategories(),
	}
}

func (r *CatalogRepository) GetAll() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *CatalogRepository) GetByID(id string) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, models.ErrProductNotFound
}

func (r *CatalogRepository) GetByCategory(category string) []models.Product {
	out := []models.Product{}
	for _, p := range r.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the query case-insensitively as a substring of the product
// name or description. Results keep catalog order; there is no ranking.
func (r *CatalogRepository) Search(query string) []models.Product {
	q := strings.ToLower(query)
	out := []models.Product{}
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

func (r *CatalogRepository) GetCategories() []models.Category {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "electronics", Name: "Electronics", Icon: "laptop"},
		{ID: "fashion", Name: "Fashion", Icon: "shirt"},
		{ID: "home", Name: "Home & Living", Icon: "home"},
		{ID: "beauty", Name: "Beauty", Icon: "sparkles"},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "iPhone 14 Pro",
			Description: "Latest iPhone with A16 Bionic chip, Dynamic Island, and 48MP camera",
			Price:       850000,
			Image:       "https://via.placeholder.com/300x300/007AFF/FFFFFF?text=iPhone+14+Pro",
			Category:    "electronics",
			InStock:     true,
			Rating:      4.8,
			Reviews:     1250,
			Features:    []string{"6.1\" Super Retina XDR Display", "48MP Main Camera", "A16 Bionic Chip", "All-day Battery Life"},
		},
		{
			ID:          "2",
			Name:        "Samsung Galaxy S23",
			Description: "Premium Android flagship with exceptional camera and performance",
			Price:       750000,
			Image:       "https://via.placeholder.com/300x300/1f77b4/FFFFFF?text=Galaxy+S23",
			Category:    "electronics",
			InStock:     true,
			Rating:      4.6,
			Reviews:     980,
		},
		{
			ID:          "3",
			Name:        "Nike Air Max 270",
			Description: "Comfortable running shoes with Max Air unit for excellent cushioning",
			Price:       45000,
			Image:       "https://via.placeholder.com/300x300/ff7f0e/FFFFFF?text=Nike+Air+Max",
			Category:    "fashion",
			InStock:     true,
			Rating:      4.5,
			Reviews:     340,
		},
		{
			ID:          "4",
			Name:        "Adidas Originals T-Shirt",
			Description: "Classic cotton t-shirt with iconic Adidas branding",
			Price:       8500,
			Image:       "https://via.placeholder.com/300x300/2ca02c/FFFFFF?text=Adidas+T-Shirt",
			Category:    "fashion",
			InStock:     true,
			Rating:      4.3,
			Reviews:     210,
		},
		{
			ID:          "5",
			Name:        "Modern Sofa Set",
			Description: "3-piece living room sofa set with premium fabric finish",
			Price:       250000,
			Image:       "https://via.placeholder.com/300x300/d62728/FFFFFF?text=Modern+Sofa",
			Category:    "home",
			InStock:     true,
			Rating:      4.7,
			Reviews:     156,
		},
		{
			ID:          "6",
			Name:        "Smart LED TV 55\"",
			Description: "4K Ultra HD Smart TV with built-in streaming apps",
			Price:       180000,
			Image:       "https://via.placeholder.com/300x300/9467bd/FFFFFF?text=Smart+TV",
			Category:    "electronics",
			InStock:     true,
			Rating:      4.6,
			Reviews:     440,
		},
		{
			ID:          "7",
			Name:        "Luxury Skincare Set",
			Description: "Complete facial care kit with natural ingredients",
			Price:       25000,
			Image:       "https://via.placeholder.com/300x300/8c564b/FFFFFF?text=Skincare+Set",
			Category:    "beauty",
			InStock:     true,
			Rating:      4.8,
			Reviews:     620,
		},
		{
			ID:          "8",
			Name:        "Premium Headphones",
			Description: "Wireless noise-canceling headphones with premium sound",
			Price:       65000,
			Image:       "https://via.placeholder.com/300x300/e377c2/FFFFFF?text=Headphones",
			Category:    "electronics",
			InStock:     true,
			Rating:      4.7,
			Reviews:     890,
		},
	}
}
