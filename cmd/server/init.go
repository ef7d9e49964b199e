package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"video_tube/config"
	commentmodels "video_tube/internal/api/comment/models"
	playlistmodels "video_tube/internal/api/playlist/models"
	tweetmodels "video_tube/internal/api/tweet/models"
	usermodels "video_tube/internal/api/user/models"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/database"
	"video_tube/internal/global"
	"video_tube/internal/media"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initMediaStorage()     // Khởi tạo kho lưu trữ media
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Tweets = "tweets"
	global.MongoDB_ColNames.Likes = "likes"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"
	global.MongoDB_ColNames.Playlists = "playlists"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, object_id, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo database và các collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo tag `index` trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), usermodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Videos), videomodels.Video{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Comments), commentmodels.Comment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Tweets), tweetmodels.Tweet{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Playlists), playlistmodels.Playlist{})

	// Unique index cho likes (partial theo loại đích) và subscriptions (cặp subscriber+channel)
	if err := database.CreateEngagementIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create engagement indexes: %v", err)
	}
	logrus.Info("Created collection indexes")
}

// initMediaStorage khởi tạo kết nối tới MinIO và đảm bảo bucket tồn tại
func initMediaStorage() {
	storage, err := media.NewStorage(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize media storage: %v", err)
	}
	global.MediaStorage = storage
	logrus.Info("Initialized media storage")
}
