// Package router đăng ký các route thuộc domain like.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	likehdl "video_tube/internal/api/like/handler"
	"video_tube/internal/api/middleware"
)

// Register đăng ký tất cả route like lên v1. Toàn bộ yêu cầu đăng nhập.
func Register(v1 fiber.Router) error {
	likeHandler, err := likehdl.NewLikeHandler()
	if err != nil {
		return fmt.Errorf("failed to create like handler: %w", err)
	}

	likes := v1.Group("/likes")
	likes.Use(middleware.RequireAuth())

	likes.Post("/toggle/v/:videoId", likeHandler.ToggleVideoLike)
	likes.Post("/toggle/c/:commentId", likeHandler.ToggleCommentLike)
	likes.Post("/toggle/t/:tweetId", likeHandler.ToggleTweetLike)
	likes.Get("/videos", likeHandler.GetLikedVideos)

	return nil
}
