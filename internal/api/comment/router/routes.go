// Package router đăng ký các route thuộc domain comment.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	commenthdl "video_tube/internal/api/comment/handler"
	"video_tube/internal/api/middleware"
)

// Register đăng ký tất cả route comment lên v1.
// Route GET là public có cá nhân hóa nên cả nhóm dùng OptionalAuth,
// các route ghi tự kiểm tra identity trong handler.
func Register(v1 fiber.Router) error {
	commentHandler, err := commenthdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("failed to create comment handler: %w", err)
	}

	comments := v1.Group("/comments")
	comments.Use(middleware.OptionalAuth())

	comments.Get("/:videoId", commentHandler.ListByVideo)
	comments.Post("/:videoId", commentHandler.Add)
	comments.Patch("/c/:commentId", commentHandler.Update)
	comments.Delete("/c/:commentId", commentHandler.Delete)

	return nil
}
