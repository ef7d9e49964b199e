// Package commentdto - các cấu trúc đầu vào cho domain comment.
package commentdto

// CommentCreateInput đầu vào thêm bình luận vào video.
type CommentCreateInput struct {
	Content string `json:"content" validate:"required,no_xss,max=2000"`
}

// CommentUpdateInput đầu vào sửa nội dung bình luận.
type CommentUpdateInput struct {
	Content string `json:"content" validate:"required,no_xss,max=2000"`
}
