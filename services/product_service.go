package services

import (
	"math"
	"strings"

	"github.com/efeurhobobullish/SwiftBuy/models"
	"github.com/efeurhobobullish/SwiftBuy/repositories"
)

type ProductService struct {
	catalog *repositories.CatalogRepository
}

func NewProductService(catalog *repositories.CatalogRepository) *ProductService {
	return &ProductService{catalog: catalog}
}

func (s *ProductService) GetAllCategories() []models.Category {
	return s.catalog.GetCategories()
}

func (s *ProductService) GetProductByID(id string) (models.Product, error) {
	return s.catalog.GetByID(id)
}

// GetProducts filters by category and/or search query, then paginates.
// Search is the catalog's substring match; results are unranked.
func (s *ProductService) GetProducts(search, category string, page, limit int) *models.PaginationResponse {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	var products []models.Product
	switch {
	case strings.TrimSpace(search) != "":
		products = s.catalog.Search(strings.TrimSpace(search))
		if category != "" {
			filtered := []models.Product{}
			for _, p := range products {
				if strings.EqualFold(p.Category, category) {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}
	case category != "":
		products = s.catalog.GetByCategory(category)
	default:
		products = s.catalog.GetAll()
	}

	total := len(products)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products[start:end],
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}
}
