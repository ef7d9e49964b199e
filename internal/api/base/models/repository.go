// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang, truy vấn danh sách).
package models

// PaginateResult đại diện cho kết quả phân trang
type PaginateResult[T any] struct {
	// Trang hiện tại
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Số lượng mục trong trang hiện tại
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Danh sách các mục
	Items []T `json:"items" bson:"items"`
	// Tổng số mục
	Total int64 `json:"totalItems" bson:"totalItems"`
	// Tổng số trang
	TotalPage int64 `json:"totalPages" bson:"totalPages"`
}

// NewPaginateResult tính toán các trường dẫn xuất của kết quả phân trang.
// page/limit đã được chuẩn hóa ở tầng trên (xem ParseListQuery).
func NewPaginateResult[T any](items []T, page, limit, total int64) *PaginateResult[T] {
	totalPage := int64(0)
	if limit > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return &PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
	}
}
