// Package models - model lượt đăng ký kênh (Subscription).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription định nghĩa lượt đăng ký của Subscriber với kênh Channel.
// Cặp (subscriber, channel) là duy nhất nhờ unique compound index của collection.
type Subscription struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// ToggleResult kết quả của thao tác toggle subscription
type ToggleResult struct {
	Subscribed bool `json:"subscribed"`
}
