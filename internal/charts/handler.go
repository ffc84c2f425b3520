package charts

import (
	"saleschart-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

// GET /api/charts/data
// The full flat dataset the chart pages render client-side.
func DataHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := BuildRows(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load chart data")
		}
		return c.JSON(rows)
	}
}

type CategorySummary struct {
	CategoryCode string `json:"category_code"`
	CategoryName string `json:"category_name"`
	Quantity     int64  `json:"quantity"`
	Revenue      int64  `json:"revenue"`
}

// GET /api/charts/summary
// Revenue and quantity per product category. Items whose product or category
// link is broken fall into the unnamed bucket instead of disappearing.
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type row struct {
			Code     string `gorm:"column:code"`
			Name     string `gorm:"column:name"`
			Quantity int64  `gorm:"column:quantity"`
			Revenue  int64  `gorm:"column:revenue"`
		}
		var rows []row

		sql := `
			SELECT COALESCE(c.code, '') AS code,
				   COALESCE(c.name, '') AS name,
				   SUM(oi.quantity) AS quantity,
				   SUM(oi.total_price) AS revenue
			FROM order_items oi
			LEFT JOIN products p ON p.id = oi.product_id
			LEFT JOIN categories c ON c.id = p.category_id
			GROUP BY c.code, c.name
			ORDER BY revenue DESC
		`

		if err := database.DB.Raw(sql).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not aggregate chart data")
		}

		out := make([]CategorySummary, 0, len(rows))
		for _, r := range rows {
			out = append(out, CategorySummary{
				CategoryCode: r.Code,
				CategoryName: r.Name,
				Quantity:     r.Quantity,
				Revenue:      r.Revenue,
			})
		}

		return c.JSON(out)
	}
}
