// Package router đăng ký các route thuộc domain dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dashboardhdl "video_tube/internal/api/dashboard/handler"
	"video_tube/internal/api/middleware"
)

// Register đăng ký tất cả route dashboard lên v1. Toàn bộ yêu cầu đăng nhập.
func Register(v1 fiber.Router) error {
	dashboardHandler, err := dashboardhdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("failed to create dashboard handler: %w", err)
	}

	dashboard := v1.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth())

	dashboard.Get("/stats", dashboardHandler.GetChannelStats)
	dashboard.Get("/videos", dashboardHandler.GetChannelVideos)

	return nil
}
