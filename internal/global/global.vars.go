package global

import (
	"video_tube/config"
	"video_tube/internal/media"
	"video_tube/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng (kênh)
	Videos        string // Tên collection cho video
	Comments      string // Tên collection cho bình luận
	Tweets        string // Tên collection cho tweet
	Likes         string // Tên collection cho lượt thích
	Subscriptions string // Tên collection cho lượt đăng ký kênh
	Playlists     string // Tên collection cho playlist
}

// Các biến toàn cục
var Validate *validator.Validate                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                          // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                             // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection
var MediaStorage *media.Storage                                            // Kho lưu trữ file media (MinIO)

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
