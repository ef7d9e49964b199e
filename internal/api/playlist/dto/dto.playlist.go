// Package playlistdto - các cấu trúc đầu vào cho domain playlist.
package playlistdto

// PlaylistCreateInput đầu vào tạo playlist mới.
type PlaylistCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss,max=100"`
	Description string `json:"description" validate:"omitempty,no_xss,max=1000"`
}

// PlaylistUpdateInput đầu vào cập nhật playlist.
// Các trường rỗng được giữ nguyên giá trị cũ.
type PlaylistUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,no_xss,max=100"`
	Description string `json:"description" validate:"omitempty,no_xss,max=1000"`
}
