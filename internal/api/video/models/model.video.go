// Package models - model video thuộc domain video.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video định nghĩa mô hình video.
// VideoFile và Thumbnail là URL trỏ tới object đã upload lên kho media.
// Duration tính bằng giây, lấy từ metadata của file khi upload.
type Video struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title" index:"text"`
	Description string             `json:"description" bson:"description" index:"text"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views" index:"single,order:-1"`
	IsPublished bool               `json:"isPublished" bson:"isPublished" index:"single"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner" index:"single"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
