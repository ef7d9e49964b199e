// Package videodto - các cấu trúc đầu vào cho domain video.
package videodto

// VideoPublishInput đầu vào đăng video mới (đi kèm multipart file videoFile + thumbnail).
type VideoPublishInput struct {
	Title       string `json:"title" form:"title" validate:"required,no_xss,max=200"`
	Description string `json:"description" form:"description" validate:"required,no_xss,max=5000"`
}

// VideoUpdateInput đầu vào cập nhật thông tin video.
// Các trường rỗng được giữ nguyên giá trị cũ.
type VideoUpdateInput struct {
	Title       string `json:"title" form:"title" validate:"omitempty,no_xss,max=200"`
	Description string `json:"description" form:"description" validate:"omitempty,no_xss,max=5000"`
}

// VideoListFilter phần filter tùy chọn của query danh sách video.
type VideoListFilter struct {
	UserID string `json:"userId" validate:"omitempty,object_id"`
}
