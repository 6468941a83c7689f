package model

import "errors"

var (
	ErrProductNotFound = errors.New("milk product not found")
	ErrBrandNotFound   = errors.New("milk brand not found")
)

type MilkType string

const (
	MilkCow       MilkType = "cow"
	MilkBuffalo   MilkType = "buffalo"
	MilkToned     MilkType = "toned"
	MilkFullCream MilkType = "full_cream"
	MilkA2        MilkType = "a2"
	MilkVegan     MilkType = "vegan"
)

type MilkBrand struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

type MilkProduct struct {
	ID                 string   `json:"id"`
	BrandID            string   `json:"brandId"`
	Name               string   `json:"name"`
	Type               MilkType `json:"type"`
	PricePerLiterPaise int64    `json:"pricePerLiterPaise"`
	Description        string   `json:"description"`
	Icon               string   `json:"icon"`
}

// CatalogRepository serves the static milk catalog. Brands and products are
// seeded at construction and never mutated.
type CatalogRepository interface {
	Brands() []MilkBrand
	Products() []MilkProduct
	FindProduct(id string) (MilkProduct, error)
}
