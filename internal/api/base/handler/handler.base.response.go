package basehdl

// Package basehdl - base handlers.
// Package này cung cấp các tiện ích chung để xử lý request/response cho các domain handler.

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"video_tube/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	// Trả về JSON response
	return c.Status(statusCode).JSON(data)
}

// SuccessResponse trả về response thành công theo format thống nhất
func SuccessResponse(c fiber.Ctx, statusCode int, message string, data interface{}) error {
	return JSONResponse(c, statusCode, fiber.Map{
		"statusCode": statusCode,
		"success":    true,
		"message":    message,
		"data":       data,
	})
}

// ErrorResponse trả về response lỗi theo format thống nhất
func ErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"statusCode": customErr.StatusCode,
			"success":    false,
			"message":    customErr.Message,
			"errors":     customErr.Details,
		})
	}
	// Nếu không phải custom error, trả về internal server error
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"statusCode": common.StatusInternalServerError,
		"success":    false,
		"message":    err.Error(),
		"errors":     nil,
	})
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			// Trả về lỗi cho client
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Phương thức này đảm bảo format response thống nhất trong toàn bộ ứng dụng.
//
// Parameters:
// - c: Fiber context
// - data: Dữ liệu trả về cho client (có thể là nil nếu chỉ trả về lỗi)
// - err: Lỗi nếu có (nil nếu không có lỗi)
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, common.StatusOK, common.MsgSuccess, data)
}

// HandleCreated giống HandleResponse nhưng trả về 201 khi thành công
func (h *BaseHandler) HandleCreated(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, common.StatusCreated, common.MsgSuccess, data)
}
