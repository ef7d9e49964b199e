// Package models - model tweet (bài đăng ngắn) thuộc domain tweet.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet định nghĩa mô hình bài đăng ngắn của một kênh
type Tweet struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner" index:"single"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
