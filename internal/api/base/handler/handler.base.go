package basehdl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/utility"
)

// BaseHandler cung cấp các tiện ích chung cho domain handler:
// parse/validate request body, đọc params, đọc identity từ context.
type BaseHandler struct{}

// ListQuery tham số chung cho các API danh sách có phân trang
type ListQuery struct {
	Page     int64  // Số trang, bắt đầu từ 1
	Limit    int64  // Số item trên một trang
	Query    string // Chuỗi tìm kiếm (có thể rỗng)
	SortBy   string // Trường sắp xếp
	SortType int    // 1 = tăng dần, -1 = giảm dần
	UserID   string // Lọc theo chủ sở hữu (có thể rỗng)
}

// ParseRequestBody parse request body thành struct
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Body(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// ValidateInput validate struct theo các tag validate
func (h *BaseHandler) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			details := make(map[string]interface{})
			for _, fieldErr := range validationErrors {
				details[fieldErr.Field()] = fmt.Sprintf("Không thỏa điều kiện '%s'", fieldErr.Tag())
			}
			return common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationError,
				common.StatusBadRequest,
				details,
			)
		}
		return common.NewError(
			common.ErrCodeValidationInput,
			common.MsgValidationError,
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// ParamObjectID đọc và validate một ObjectID từ URI params
func (h *BaseHandler) ParamObjectID(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := c.Params(name)
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Tham số '%s' không được để trống trong URL", name),
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Tham số '%s' có giá trị '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", name, id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// ActorID đọc identity của request từ context (do middleware auth gắn vào).
// Trả về lỗi 401 nếu request chưa xác thực.
func (h *BaseHandler) ActorID(c fiber.Ctx) (primitive.ObjectID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return userID, nil
}

// ViewerID giống ActorID nhưng dành cho route public: request chưa xác thực
// trả về NilObjectID thay vì lỗi.
func (h *BaseHandler) ViewerID(c fiber.Ctx) primitive.ObjectID {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID
	}
	return userID
}

// ParseListQuery đọc các tham số phân trang/tìm kiếm/sắp xếp từ query string.
// Các giá trị không hợp lệ được đưa về mặc định thay vì báo lỗi.
func (h *BaseHandler) ParseListQuery(c fiber.Ctx) ListQuery {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}
	// Chặn limit quá lớn để tránh query nặng
	if limit > 100 {
		limit = 100
	}

	sortType := -1
	if strings.EqualFold(c.Query("sortType"), "asc") || c.Query("sortType") == "1" {
		sortType = 1
	}

	return ListQuery{
		Page:     page,
		Limit:    limit,
		Query:    strings.TrimSpace(c.Query("query")),
		SortBy:   c.Query("sortBy"),
		SortType: sortType,
		UserID:   c.Query("userId"),
	}
}

// NormalizeSortField trả về field sắp xếp nếu nằm trong whitelist, ngược lại trả về fallback.
// Tránh client sort theo field không có index.
func NormalizeSortField(field string, allowed []string, fallback string) string {
	for _, a := range allowed {
		if field == a {
			return field
		}
	}
	return fallback
}
