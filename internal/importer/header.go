package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field is a canonical logical column of the sales export.
type Field string

const (
	FieldOrderCreatedAt Field = "order_created_at"
	FieldOrderCode      Field = "order_code"
	FieldCustomerCode   Field = "customer_code"
	FieldCustomerName   Field = "customer_name"
	FieldSegmentCode    Field = "segment_code"
	FieldSegmentDesc    Field = "segment_description"
	FieldCategoryCode   Field = "category_code"
	FieldCategoryName   Field = "category_name"
	FieldProductCode    Field = "product_code"
	FieldProductName    Field = "product_name"
	FieldImportPrice    Field = "import_price"
	FieldQuantity       Field = "quantity"
	FieldUnitPrice      Field = "unit_price"
	FieldTotalPrice     Field = "total_price"
)

// fieldAliases maps each canonical field to the header spellings seen in real
// export files, in priority order. Accented Vietnamese, its transliteration
// and the occasional English export header all occur in the wild; lookup is
// diacritic-folded so the accented and unaccented spellings collapse anyway,
// and the table stays the single place to add new variants.
var fieldAliases = map[Field][]string{
	FieldOrderCreatedAt: {"Thời gian tạo đơn", "Thoi gian tao don", "Thời gian", "time"},
	FieldOrderCode:      {"Mã đơn hàng", "Ma don hang", "Order"},
	FieldCustomerCode:   {"Mã khách hàng", "Ma khach hang"},
	FieldCustomerName:   {"Tên khách hàng", "Ten khach hang"},
	FieldSegmentCode:    {"Mã PKKH", "Ma PKKH", "Mã phân khúc"},
	FieldSegmentDesc:    {"Mô tả Phân Khúc Khách hàng", "Mo ta"},
	FieldCategoryCode:   {"Mã nhóm hàng", "Ma nhom hang"},
	FieldCategoryName:   {"Tên nhóm hàng", "Ten nhom hang"},
	FieldProductCode:    {"Mã mặt hàng", "Ma mat hang"},
	FieldProductName:    {"Tên mặt hàng", "Ten mat hang"},
	FieldImportPrice:    {"Giá Nhập", "Gia Nhap", "ImportPrice"},
	FieldQuantity:       {"SL", "Số lượng", "Qty"},
	FieldUnitPrice:      {"Đơn giá", "Don gia", "UnitPrice"},
	FieldTotalPrice:     {"Thành tiền", "Thanh tien", "Total"},
}

// normalized alias keys, precomputed once
var normalizedAliases = func() map[Field][]string {
	out := make(map[Field][]string, len(fieldAliases))
	for field, aliases := range fieldAliases {
		keys := make([]string, 0, len(aliases))
		seen := make(map[string]bool, len(aliases))
		for _, alias := range aliases {
			key := normalizeHeader(alias)
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
		out[field] = keys
	}
	return out
}()

// normalizeHeader folds a header cell to its lookup key: diacritics stripped
// ("Mã đơn hàng" → "ma don hang"), case and surrounding/internal whitespace
// ignored. đ/Đ are base letters, not combining marks, so they are mapped
// by hand. The transformer chain is stateful, so a fresh one per call.
func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(folder, s); err == nil {
		s = folded
	}
	s = strings.ReplaceAll(s, "đ", "d")
	s = strings.ReplaceAll(s, "Đ", "D")
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// RowLookup resolves canonical fields against one keyed row of the input.
// Pure with respect to the row: no persistence, no mutation.
type RowLookup struct {
	values map[string]string
}

func NewRowLookup(row map[string]string) RowLookup {
	values := make(map[string]string, len(row))
	for header, value := range row {
		key := normalizeHeader(header)
		if key == "" {
			continue
		}
		// on duplicate headers keep the first non-empty value
		if existing, ok := values[key]; ok && strings.TrimSpace(existing) != "" {
			continue
		}
		values[key] = value
	}
	return RowLookup{values: values}
}

// Field returns the trimmed value of the first alias present with non-empty
// content. A field no alias covers resolves to "" - never an error.
func (l RowLookup) Field(f Field) string {
	for _, key := range normalizedAliases[f] {
		if v, ok := l.values[key]; ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}
