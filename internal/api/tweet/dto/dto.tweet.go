// Package tweetdto - các cấu trúc đầu vào cho domain tweet.
package tweetdto

// TweetCreateInput đầu vào tạo tweet mới.
type TweetCreateInput struct {
	Content string `json:"content" validate:"required,no_xss,max=500"`
}

// TweetUpdateInput đầu vào sửa nội dung tweet.
type TweetUpdateInput struct {
	Content string `json:"content" validate:"required,no_xss,max=500"`
}
