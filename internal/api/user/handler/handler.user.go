// Package userhdl - handler cho các route người dùng/kênh.
package userhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	usersvc "video_tube/internal/api/user/service"
	"video_tube/internal/common"
)

// UserHandler xử lý các route người dùng/kênh
type UserHandler struct {
	*basehdl.BaseHandler
	userService *usersvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := usersvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &UserHandler{
		BaseHandler: &basehdl.BaseHandler{},
		userService: userService,
	}, nil
}

// GetChannelProfile trả về thông tin công khai của một kênh theo userName
func (h *UserHandler) GetChannelProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userName := c.Params("userName")
		if userName == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Tham số 'userName' không được để trống trong URL",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.userService.GetChannelProfile(c.Context(), userName, h.ViewerID(c))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetWatchHistory trả về lịch sử xem của actor
func (h *UserHandler) GetWatchHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.userService.GetWatchHistory(c.Context(), actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}
