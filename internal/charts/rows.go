package charts

import (
	"saleschart-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// displayTimeLayout matches the "Thời gian tạo đơn" format of the source
// spreadsheets, so the chart frontend sees the same shape it was built for.
const displayTimeLayout = "02/01/2006 15:04"

// BuildRows reads every order item back through its relational links and
// reshapes each into a flat record keyed by the original spreadsheet display
// labels. Broken links (no product, no customer, no segment) render as empty
// strings - the frontend must never have to null-check.
func BuildRows(db *gorm.DB) ([]fiber.Map, error) {
	var items []models.OrderItem
	err := db.
		Preload("Order.Customer.Segment").
		Preload("Product.Category").
		Order("order_items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	rows := make([]fiber.Map, 0, len(items))
	for i := range items {
		rows = append(rows, flatten(&items[i]))
	}
	return rows, nil
}

func flatten(item *models.OrderItem) fiber.Map {
	order := &item.Order

	var customer *models.Customer
	var segment *models.CustomerSegment
	if order.Customer != nil {
		customer = order.Customer
		segment = customer.Segment
	}

	product := item.Product
	var category *models.Category
	if product != nil {
		category = product.Category
	}

	createdAt := ""
	if order.CreatedAt != nil {
		createdAt = order.CreatedAt.Format(displayTimeLayout)
	}

	row := fiber.Map{
		"Thời gian tạo đơn":           createdAt,
		"Mã đơn hàng":                 order.Code,
		"Mã khách hàng":               "",
		"Tên khách hàng":              "",
		"Mã PKKH":                     "",
		"Mô tả Phân Khúc Khách hàng":  "",
		"Mã nhóm hàng":                "",
		"Tên nhóm hàng":               "",
		"Mã mặt hàng":                 "",
		"Tên mặt hàng":                "",
		"Giá Nhập":                    "",
		"SL":                          item.Quantity,
		"Đơn giá":                     item.UnitPrice,
		"Thành tiền":                  item.TotalPrice,
	}

	if customer != nil {
		row["Mã khách hàng"] = customer.Code
		row["Tên khách hàng"] = customer.Name
	}
	if segment != nil {
		row["Mã PKKH"] = segment.Code
		row["Mô tả Phân Khúc Khách hàng"] = segment.Description
	}
	if category != nil {
		row["Mã nhóm hàng"] = category.Code
		row["Tên nhóm hàng"] = category.Name
	}
	if product != nil {
		row["Mã mặt hàng"] = product.Code
		row["Tên mặt hàng"] = product.Name
		if product.ImportPrice != nil {
			row["Giá Nhập"] = *product.ImportPrice
		}
	}

	return row
}
