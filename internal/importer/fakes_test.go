package importer

import (
	"time"

	"saleschart-backend/internal/models"
)

// In-memory repositories so the upsert and order-assembly logic can be tested
// without a database.

type fakeStore struct {
	segments   []*models.CustomerSegment
	customers  []*models.Customer
	categories []*models.Category
	products   []*models.Product
	orders     []*models.Order
	items      []*models.OrderItem
	nextID     uint
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func newFakeRepos() (*Repositories, *fakeStore) {
	store := &fakeStore{}
	return &Repositories{
		Segments:   &fakeSegmentRepo{store: store},
		Customers:  &fakeCustomerRepo{store: store},
		Categories: &fakeCategoryRepo{store: store},
		Products:   &fakeProductRepo{store: store},
		Orders:     &fakeOrderRepo{store: store},
		OrderItems: &fakeOrderItemRepo{store: store},
	}, store
}

type fakeSegmentRepo struct{ store *fakeStore }

func (r *fakeSegmentRepo) FindByCode(code string) (*models.CustomerSegment, error) {
	for _, s := range r.store.segments {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeSegmentRepo) Create(segment *models.CustomerSegment) error {
	segment.ID = r.store.id()
	r.store.segments = append(r.store.segments, segment)
	return nil
}

type fakeCustomerRepo struct{ store *fakeStore }

func (r *fakeCustomerRepo) FindByCode(code string) (*models.Customer, error) {
	for _, c := range r.store.customers {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeCustomerRepo) Create(customer *models.Customer) error {
	customer.ID = r.store.id()
	r.store.customers = append(r.store.customers, customer)
	return nil
}

type fakeCategoryRepo struct{ store *fakeStore }

func (r *fakeCategoryRepo) FindByCode(code string) (*models.Category, error) {
	for _, c := range r.store.categories {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeCategoryRepo) Create(category *models.Category) error {
	category.ID = r.store.id()
	r.store.categories = append(r.store.categories, category)
	return nil
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) FindByCode(code string) (*models.Product, error) {
	for _, p := range r.store.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeProductRepo) FindByName(name string) (*models.Product, error) {
	for _, p := range r.store.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	product.ID = r.store.id()
	r.store.products = append(r.store.products, product)
	return nil
}

type fakeOrderRepo struct{ store *fakeStore }

func (r *fakeOrderRepo) FindByCode(code string) (*models.Order, error) {
	for _, o := range r.store.orders {
		if o.Code == code {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	order.ID = r.store.id()
	r.store.orders = append(r.store.orders, order)
	return nil
}

func (r *fakeOrderRepo) UpdateCreatedAt(id uint, createdAt time.Time) error {
	for _, o := range r.store.orders {
		if o.ID == id {
			t := createdAt
			o.CreatedAt = &t
			return nil
		}
	}
	return ErrNotFound
}

type fakeOrderItemRepo struct{ store *fakeStore }

func (r *fakeOrderItemRepo) Create(item *models.OrderItem) error {
	item.ID = r.store.id()
	r.store.items = append(r.store.items, item)
	return nil
}
