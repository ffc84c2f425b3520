package importer

import (
	"errors"
	"time"

	"saleschart-backend/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned by the Find* methods when no record matches.
var ErrNotFound = errors.New("record not found")

// The pipeline talks to persistence through these small interfaces so the
// upsert and order-assembly logic can run against an in-memory fake in tests.

type SegmentRepository interface {
	FindByCode(code string) (*models.CustomerSegment, error)
	Create(segment *models.CustomerSegment) error
}

type CustomerRepository interface {
	FindByCode(code string) (*models.Customer, error)
	Create(customer *models.Customer) error
}

type CategoryRepository interface {
	FindByCode(code string) (*models.Category, error)
	Create(category *models.Category) error
}

type ProductRepository interface {
	FindByCode(code string) (*models.Product, error)
	FindByName(name string) (*models.Product, error)
	Create(product *models.Product) error
}

type OrderRepository interface {
	// FindByCode returns the oldest order with this code; order codes are
	// not unique in the schema.
	FindByCode(code string) (*models.Order, error)
	Create(order *models.Order) error
	// UpdateCreatedAt back-fills the creation timestamp, the only mutation
	// the pipeline ever performs on an existing record.
	UpdateCreatedAt(id uint, createdAt time.Time) error
}

type OrderItemRepository interface {
	Create(item *models.OrderItem) error
}

type Repositories struct {
	Segments   SegmentRepository
	Customers  CustomerRepository
	Categories CategoryRepository
	Products   ProductRepository
	Orders     OrderRepository
	OrderItems OrderItemRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Segments:   &gormSegmentRepository{db: db},
		Customers:  &gormCustomerRepository{db: db},
		Categories: &gormCategoryRepository{db: db},
		Products:   &gormProductRepository{db: db},
		Orders:     &gormOrderRepository{db: db},
		OrderItems: &gormOrderItemRepository{db: db},
	}
}

type gormSegmentRepository struct {
	db *gorm.DB
}

func (r *gormSegmentRepository) FindByCode(code string) (*models.CustomerSegment, error) {
	var segment models.CustomerSegment
	if err := r.db.Where("code = ?", code).First(&segment).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &segment, nil
}

func (r *gormSegmentRepository) Create(segment *models.CustomerSegment) error {
	return r.db.Create(segment).Error
}

type gormCustomerRepository struct {
	db *gorm.DB
}

func (r *gormCustomerRepository) FindByCode(code string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("code = ?", code).First(&customer).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &customer, nil
}

func (r *gormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

type gormCategoryRepository struct {
	db *gorm.DB
}

func (r *gormCategoryRepository) FindByCode(code string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("code = ?", code).First(&category).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &category, nil
}

func (r *gormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

type gormProductRepository struct {
	db *gorm.DB
}

func (r *gormProductRepository) FindByCode(code string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("code = ?", code).First(&product).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &product, nil
}

func (r *gormProductRepository) FindByName(name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("name = ?", name).First(&product).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &product, nil
}

func (r *gormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

type gormOrderRepository struct {
	db *gorm.DB
}

func (r *gormOrderRepository) FindByCode(code string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Where("code = ?", code).Order("id ASC").First(&order).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &order, nil
}

func (r *gormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *gormOrderRepository) UpdateCreatedAt(id uint, createdAt time.Time) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("created_at", createdAt).Error
}

type gormOrderItemRepository struct {
	db *gorm.DB
}

func (r *gormOrderItemRepository) Create(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
