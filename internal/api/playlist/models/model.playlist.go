// Package models - model playlist thuộc domain playlist.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist định nghĩa một danh sách phát video của người dùng.
// Videos giữ thứ tự video theo thời điểm thêm vào.
type Playlist struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Videos      []primitive.ObjectID `json:"videos" bson:"videos"`
	Owner       primitive.ObjectID   `json:"owner" bson:"owner" index:"single"`
	CreatedAt   int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                `json:"updatedAt" bson:"updatedAt"`
}
