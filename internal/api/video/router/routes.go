// Package router đăng ký các route thuộc domain video.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	videohdl "video_tube/internal/api/video/handler"
)

// Register đăng ký tất cả route video lên v1.
//
// Cả nhóm dùng OptionalAuth vì các route GET là public nhưng có cá nhân hóa
// (isLiked, video chưa publish của chính mình). Các route ghi dữ liệu
// tự kiểm tra identity trong handler và trả 401 khi request ẩn danh —
// không gắn RequireAuth lên cùng prefix vì .Use() áp middleware cho
// toàn bộ prefix, sẽ chặn luôn các route public.
func Register(v1 fiber.Router) error {
	videoHandler, err := videohdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("failed to create video handler: %w", err)
	}

	videos := v1.Group("/videos")
	videos.Use(middleware.OptionalAuth())

	videos.Get("", videoHandler.List)
	videos.Get("/:videoId", videoHandler.GetByID)
	videos.Post("", videoHandler.Publish)
	videos.Patch("/:videoId", videoHandler.Update)
	videos.Delete("/:videoId", videoHandler.Delete)
	videos.Patch("/toggle/publish/:videoId", videoHandler.TogglePublish)

	return nil
}
