package importer

import (
	"errors"
	"fmt"

	"saleschart-backend/internal/models"
)

// Find-or-create semantics shared by every master entity: an empty natural
// key yields no entity at all, a hit returns the existing record untouched
// (first-seen attributes win), a miss creates the record from the row's
// defaults. At most one write per call.

const (
	productCodePrefix    = "GEN_"
	productCodeNameSlice = 20
)

// SynthesizeProductCode derives a stored natural key for a product that only
// has a name: a fixed prefix plus the first 20 characters of the name.
// Deterministic for identical input, so re-runs stay idempotent by name.
func SynthesizeProductCode(name string) string {
	runes := []rune(name)
	if len(runes) > productCodeNameSlice {
		runes = runes[:productCodeNameSlice]
	}
	return productCodePrefix + string(runes)
}

// SynthesizeOrderCode mints a placeholder order code from the row's ordinal
// position within the run. Unique within a run, NOT across runs.
func SynthesizeOrderCode(ordinal int) string {
	return fmt.Sprintf("GEN-%d", ordinal)
}

func (imp *Importer) upsertSegment(code, description string) (*models.CustomerSegment, error) {
	if code == "" {
		return nil, nil
	}
	segment, err := imp.repos.Segments.FindByCode(code)
	if err == nil {
		return segment, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	segment = &models.CustomerSegment{Code: code, Description: description}
	if err := imp.repos.Segments.Create(segment); err != nil {
		return nil, err
	}
	return segment, nil
}

func (imp *Importer) upsertCustomer(code, name string, segment *models.CustomerSegment) (*models.Customer, error) {
	if code == "" {
		return nil, nil
	}
	customer, err := imp.repos.Customers.FindByCode(code)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	customer = &models.Customer{Code: code, Name: name}
	if segment != nil {
		customer.SegmentID = &segment.ID
	}
	if err := imp.repos.Customers.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (imp *Importer) upsertCategory(code, name string) (*models.Category, error) {
	if code == "" {
		return nil, nil
	}
	category, err := imp.repos.Categories.FindByCode(code)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	category = &models.Category{Code: code, Name: name}
	if err := imp.repos.Categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// upsertProduct prefers the product code as natural key. Rows without a code
// but with a name fall back to upsert-by-name, storing a synthesized code so
// the record still carries a usable key.
func (imp *Importer) upsertProduct(code, name string, category *models.Category, importPrice int64) (*models.Product, error) {
	if code != "" {
		product, err := imp.repos.Products.FindByCode(code)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		product = newProduct(code, name, category, importPrice)
		if err := imp.repos.Products.Create(product); err != nil {
			return nil, err
		}
		return product, nil
	}

	if name == "" {
		return nil, nil
	}
	product, err := imp.repos.Products.FindByName(name)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	product = newProduct(SynthesizeProductCode(name), name, category, importPrice)
	if err := imp.repos.Products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func newProduct(code, name string, category *models.Category, importPrice int64) *models.Product {
	product := &models.Product{Code: code, Name: name, ImportPrice: &importPrice}
	if category != nil {
		product.CategoryID = &category.ID
	}
	return product
}
