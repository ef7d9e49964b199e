// Package router đăng ký các route thuộc domain playlist.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"video_tube/internal/api/middleware"
	playlisthdl "video_tube/internal/api/playlist/handler"
)

// Register đăng ký tất cả route playlist lên v1. Toàn bộ yêu cầu đăng nhập.
func Register(v1 fiber.Router) error {
	playlistHandler, err := playlisthdl.NewPlaylistHandler()
	if err != nil {
		return fmt.Errorf("failed to create playlist handler: %w", err)
	}

	playlists := v1.Group("/playlists")
	playlists.Use(middleware.RequireAuth())

	playlists.Post("", playlistHandler.Create)
	playlists.Get("/user/:userId", playlistHandler.ListByUser)
	playlists.Get("/:playlistId", playlistHandler.GetByID)
	playlists.Patch("/:playlistId", playlistHandler.Update)
	playlists.Delete("/:playlistId", playlistHandler.Delete)
	playlists.Patch("/add/:videoId/:playlistId", playlistHandler.AddVideo)
	playlists.Patch("/remove/:videoId/:playlistId", playlistHandler.RemoveVideo)

	return nil
}
