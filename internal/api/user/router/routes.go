// Package router đăng ký các route thuộc domain user: kênh công khai, lịch sử xem, healthcheck.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	"video_tube/internal/api/middleware"
	userhdl "video_tube/internal/api/user/handler"
)

// Register đăng ký các route user và healthcheck lên v1.
// Profile kênh là public có cá nhân hóa (isSubscribed), lịch sử xem yêu cầu đăng nhập.
func Register(v1 fiber.Router) error {
	userHandler, err := userhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	systemHandler := basehdl.NewSystemHandler()
	v1.Get("/healthcheck", systemHandler.HandleHealth)

	users := v1.Group("/users")
	users.Use(middleware.OptionalAuth())

	users.Get("/c/:userName", userHandler.GetChannelProfile)
	users.Get("/history", userHandler.GetWatchHistory)

	return nil
}
