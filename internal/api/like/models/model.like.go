// Package models - model lượt thích (Like) thuộc domain like.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like định nghĩa một lượt thích của người dùng trên đúng một đối tượng:
// video, comment hoặc tweet. Chỉ một trong ba trường đích được set,
// hai trường còn lại không xuất hiện trong document (omitempty) để
// unique partial index theo từng loại đích hoạt động đúng.
type Like struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	LikedBy   primitive.ObjectID `json:"likedBy" bson:"likedBy"`
	Video     primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty"`
	Comment   primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// ToggleResult kết quả của thao tác toggle like
type ToggleResult struct {
	Liked bool `json:"liked"`
}
