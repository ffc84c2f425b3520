package charts

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"saleschart-backend/internal/database"
	"saleschart-backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestBuildRowsFullChain(t *testing.T) {
	db := setupTestDB(t)

	segment := &models.CustomerSegment{Code: "PK1", Description: "Khách lẻ"}
	require.NoError(t, db.Create(segment).Error)
	customer := &models.Customer{Code: "KH01", Name: "Nguyễn Văn A", SegmentID: &segment.ID}
	require.NoError(t, db.Create(customer).Error)
	category := &models.Category{Code: "NH1", Name: "Đồ uống"}
	require.NoError(t, db.Create(category).Error)
	price := int64(12000)
	product := &models.Product{Code: "MH1", Name: "Trà sữa", CategoryID: &category.ID, ImportPrice: &price}
	require.NoError(t, db.Create(product).Error)

	ts := time.Date(2023, 6, 1, 9, 30, 0, 0, time.UTC)
	order := &models.Order{Code: "DH001", CreatedAt: &ts, CustomerID: &customer.ID, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(order).Error)
	item := &models.OrderItem{OrderID: order.ID, ProductID: &product.ID, Quantity: 2, UnitPrice: 25000, TotalPrice: 50000}
	require.NoError(t, db.Create(item).Error)

	rows, err := BuildRows(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "01/06/2023 09:30", row["Thời gian tạo đơn"])
	assert.Equal(t, "DH001", row["Mã đơn hàng"])
	assert.Equal(t, "KH01", row["Mã khách hàng"])
	assert.Equal(t, "Nguyễn Văn A", row["Tên khách hàng"])
	assert.Equal(t, "PK1", row["Mã PKKH"])
	assert.Equal(t, "Khách lẻ", row["Mô tả Phân Khúc Khách hàng"])
	assert.Equal(t, "NH1", row["Mã nhóm hàng"])
	assert.Equal(t, "MH1", row["Mã mặt hàng"])
	assert.Equal(t, "Trà sữa", row["Tên mặt hàng"])
	assert.Equal(t, int64(12000), row["Giá Nhập"])
	assert.Equal(t, 2, row["SL"])
	assert.Equal(t, int64(50000), row["Thành tiền"])
}

func TestBuildRowsBrokenChainRendersEmpty(t *testing.T) {
	db := setupTestDB(t)

	// an order with no customer and an item with no product
	order := &models.Order{Code: "GEN-0", Status: models.OrderStatusPending}
	require.NoError(t, db.Create(order).Error)
	item := &models.OrderItem{OrderID: order.ID, Quantity: 0, UnitPrice: 0, TotalPrice: 0}
	require.NoError(t, db.Create(item).Error)

	rows, err := BuildRows(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "", row["Thời gian tạo đơn"])
	assert.Equal(t, "GEN-0", row["Mã đơn hàng"])
	assert.Equal(t, "", row["Mã khách hàng"])
	assert.Equal(t, "", row["Tên khách hàng"])
	assert.Equal(t, "", row["Mã PKKH"])
	assert.Equal(t, "", row["Mã nhóm hàng"])
	assert.Equal(t, "", row["Mã mặt hàng"])
	assert.Equal(t, "", row["Giá Nhập"])
	assert.Equal(t, 0, row["SL"])
}
