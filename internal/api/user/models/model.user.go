// Package models - model người dùng (User), mỗi user đồng thời là một kênh (channel).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng.
// Password và RefreshToken không bao giờ trả về qua JSON.
type User struct {
	ID           primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	UserName     string               `json:"userName" bson:"userName" index:"unique"`
	Email        string               `json:"email" bson:"email" index:"unique"`
	FullName     string               `json:"fullName" bson:"fullName" index:"single"`
	Avatar       string               `json:"avatar" bson:"avatar"`
	CoverImage   string               `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	WatchHistory []primitive.ObjectID `json:"-" bson:"watchHistory,omitempty"`
	Password     string               `json:"-" bson:"password,omitempty"`
	RefreshToken string               `json:"-" bson:"refreshToken,omitempty"`
	CreatedAt    int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                `json:"updatedAt" bson:"updatedAt"`
}
