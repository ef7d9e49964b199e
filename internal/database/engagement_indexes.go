// Package database - Index bổ sung cho likes/subscriptions (partial, compound unique)
// không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"video_tube/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateEngagementIndexes tạo các unique index chống trùng cạnh like/subscribe.
// Like có 3 loại target nên cần partial index theo từng field target:
// sparse compound không dùng được vì document thiếu field target vẫn bị index
// với giá trị null và va chạm unique giữa các target khác loại.
func CreateEngagementIndexes(ctx context.Context, db *mongo.Database) error {
	likes := db.Collection(global.MongoDB_ColNames.Likes)
	likeTargets := []string{"video", "comment", "tweet"}
	for _, target := range likeTargets {
		if _, err := likes.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "likedBy", Value: 1},
				{Key: target, Value: 1},
			},
			Options: options.Index().
				SetName("like_likedby_" + target + "_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{target: bson.M{"$exists": true}}),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	// subscriptions: (subscriber, channel) unique — mỗi cặp chỉ có một cạnh
	subscriptions := db.Collection(global.MongoDB_ColNames.Subscriptions)
	if _, err := subscriptions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "subscriber", Value: 1},
			{Key: "channel", Value: 1},
		},
		Options: options.Index().SetName("subscription_pair_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
