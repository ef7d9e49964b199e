// Package router đăng ký các route thuộc domain tweet.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	tweethdl "video_tube/internal/api/tweet/handler"
)

// Register đăng ký tất cả route tweet lên v1.
// Route GET là public có cá nhân hóa nên cả nhóm dùng OptionalAuth,
// các route ghi tự kiểm tra identity trong handler.
func Register(v1 fiber.Router) error {
	tweetHandler, err := tweethdl.NewTweetHandler()
	if err != nil {
		return fmt.Errorf("failed to create tweet handler: %w", err)
	}

	tweets := v1.Group("/tweets")
	tweets.Use(middleware.OptionalAuth())

	tweets.Post("", tweetHandler.Create)
	tweets.Get("/user/:userId", tweetHandler.ListByUser)
	tweets.Patch("/:tweetId", tweetHandler.Update)
	tweets.Delete("/:tweetId", tweetHandler.Delete)

	return nil
}
