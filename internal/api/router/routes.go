// Package router quản lý việc định tuyến cho API.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// QUAN TRỌNG: BUG FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 có bug với cách đăng ký middleware trực tiếp trong route:
//
//	router.Get("/path", middleware.RequireAuth(), handler)
//	→ Middleware sẽ KHÔNG được gọi, request bỏ qua middleware!
//
// Cách đúng: tạo group và gắn middleware qua .Use():
//
//	videos := v1.Group("/videos")
//	videos.Use(middleware.OptionalAuth())
//	videos.Get("/:videoId", handler)
//
// Lưu ý: .Use() áp dụng cho TOÀN BỘ prefix của group, nên mỗi domain group
// chỉ gắn đúng một middleware auth (xem router của từng domain).
// ============================================================================

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	for _, reg := range regs {
		if err := reg(v1); err != nil {
			return err
		}
	}
	return nil
}
