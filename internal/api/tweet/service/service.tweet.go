// Package tweetsvc - service tweet (bài đăng ngắn của kênh).
package tweetsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	models "video_tube/internal/api/tweet/models"
	usermodels "video_tube/internal/api/user/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
)

// TweetService là cấu trúc chứa các phương thức liên quan đến tweet
type TweetService struct {
	*basesvc.BaseServiceMongoImpl[models.Tweet]
	userService *basesvc.BaseServiceMongoImpl[usermodels.User]
}

// NewTweetService tạo mới TweetService
func NewTweetService() (*TweetService, error) {
	tweetCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &TweetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Tweet](tweetCollection),
		userService:          basesvc.NewBaseServiceMongo[usermodels.User](userCollection),
	}, nil
}

// Create tạo tweet mới cho actor
func (s *TweetService) Create(ctx context.Context, actorID primitive.ObjectID, content string) (models.Tweet, error) {
	tweet := models.Tweet{
		Content: content,
		Owner:   actorID,
	}
	return s.InsertOne(ctx, tweet)
}

// ListByUser trả về danh sách tweet của một kênh, mới nhất trước,
// kèm thông tin kênh + likesCount + isLiked theo viewer.
// Kênh không tồn tại => NotFound.
func (s *TweetService) ListByUser(ctx context.Context, userID primitive.ObjectID, viewerID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	// Kiểm tra kênh tồn tại trước khi liệt kê
	if _, err := s.userService.FindOneById(ctx, userID); err != nil {
		return nil, err
	}

	pipeline := basesvc.NewPipelineBuilder().
		MatchOwner(userID).
		LookupOwner("owner", "ownerDetails").
		AddLikeFields("tweet", viewerID).
		Sort("createdAt", -1).
		Build()

	return s.AggregatePaginated(ctx, pipeline, page, limit)
}

// Update sửa nội dung tweet. Chỉ chủ sở hữu được sửa.
func (s *TweetService) Update(ctx context.Context, tweetID primitive.ObjectID, actorID primitive.ObjectID, content string) (models.Tweet, error) {
	var zero models.Tweet

	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return zero, err
	}
	if tweet.Owner != actorID {
		return zero, common.ErrForbidden
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"content": content,
		},
	}
	return s.UpdateOne(ctx, bson.M{"_id": tweetID}, updateData, nil)
}

// Delete xóa tweet cùng các lượt thích của nó. Chỉ chủ sở hữu được xóa.
func (s *TweetService) Delete(ctx context.Context, tweetID primitive.ObjectID, actorID primitive.ObjectID) error {
	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet.Owner != actorID {
		return common.ErrForbidden
	}

	if err := s.DeleteOne(ctx, bson.M{"_id": tweetID}); err != nil {
		return err
	}

	// Dọn lượt thích của tweet, lỗi chỉ log lại
	if likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes); exist {
		if _, err := likeCollection.DeleteMany(ctx, bson.M{"tweet": tweetID}); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"tweetId": tweetID.Hex(),
				"error":   err.Error(),
			}).Error("Lỗi dọn lượt thích khi xóa tweet")
		}
	}

	return nil
}
