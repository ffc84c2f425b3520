package importer

import (
	"errors"
	"time"

	"saleschart-backend/internal/models"
)

// resolveOrder finds or creates the order a row belongs to.
//
// With a code the lookup is by code, and an existing order may be back-filled
// with a creation timestamp it was missing - absence wins, then the first
// presence wins. The customer on an existing order is never overwritten.
// Without a code every row gets its own fresh order under a synthetic code.
func (imp *Importer) resolveOrder(code string, createdAt *time.Time, customer *models.Customer, ordinal int) (*models.Order, error) {
	if code == "" {
		order := newOrder(SynthesizeOrderCode(ordinal), createdAt, customer)
		if err := imp.repos.Orders.Create(order); err != nil {
			return nil, err
		}
		return order, nil
	}

	order, err := imp.repos.Orders.FindByCode(code)
	if errors.Is(err, ErrNotFound) {
		order = newOrder(code, createdAt, customer)
		if err := imp.repos.Orders.Create(order); err != nil {
			return nil, err
		}
		return order, nil
	}
	if err != nil {
		return nil, err
	}

	if order.CreatedAt == nil && createdAt != nil {
		if err := imp.repos.Orders.UpdateCreatedAt(order.ID, *createdAt); err != nil {
			return nil, err
		}
		order.CreatedAt = createdAt
	}
	return order, nil
}

func newOrder(code string, createdAt *time.Time, customer *models.Customer) *models.Order {
	order := &models.Order{
		Code:      code,
		CreatedAt: createdAt,
		Status:    models.OrderStatusPending,
	}
	if customer != nil {
		order.CustomerID = &customer.ID
	}
	return order
}

// appendItem attaches one line item to the resolved order. Items are
// append-only: nothing ever updates or deduplicates them afterwards.
func (imp *Importer) appendItem(order *models.Order, product *models.Product, quantity int, unitPrice, totalPrice int64) error {
	item := &models.OrderItem{
		OrderID:    order.ID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: totalPrice,
	}
	if product != nil {
		item.ProductID = &product.ID
	}
	return imp.repos.OrderItems.Create(item)
}
