// Package middleware - xác thực request bằng JWT Bearer token.
package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	usersvc "video_tube/internal/api/user/service"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
)

// extractBearerToken lấy token từ header Authorization ("Bearer <token>").
// Trả về chuỗi rỗng nếu không có hoặc sai định dạng.
func extractBearerToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// verifyAccessToken verify chữ ký + hạn của token và trả về userID trong claim "_id"
func verifyAccessToken(tokenStr string) (primitive.ObjectID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return primitive.NilObjectID, common.ErrTokenExpired
		}
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	idStr, ok := claims["_id"].(string)
	if !ok || !primitive.IsValidObjectID(idStr) {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	userID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return userID, nil
}

// RequireAuth middleware xác thực bắt buộc cho Fiber.
// Token hợp lệ + user tồn tại => gắn user_id và user vào Locals.
// Thiếu token hoặc token sai => 401, không gọi handler.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenStr := extractBearerToken(c)
		if tokenStr == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}

		userID, err := verifyAccessToken(tokenStr)
		if err != nil {
			return HandleErrorResponse(c, err)
		}

		// Token hợp lệ nhưng user đã bị xóa => vẫn từ chối
		userService, err := usersvc.NewUserService()
		if err != nil {
			return HandleErrorResponse(c, common.ErrConnection)
		}
		user, err := userService.FindOneById(c.Context(), userID)
		if err != nil {
			return HandleErrorResponse(c, common.ErrTokenInvalid)
		}

		c.Locals("user_id", userID.Hex())
		c.Locals("user", user)
		return c.Next()
	}
}

// OptionalAuth middleware xác thực tùy chọn cho các route public có cá nhân hóa
// (isLiked, isSubscribed...). Token sai hoặc thiếu => request vẫn đi tiếp ẩn danh.
func OptionalAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenStr := extractBearerToken(c)
		if tokenStr == "" {
			return c.Next()
		}

		userID, err := verifyAccessToken(tokenStr)
		if err != nil {
			return c.Next()
		}

		c.Locals("user_id", userID.Hex())
		return c.Next()
	}
}
