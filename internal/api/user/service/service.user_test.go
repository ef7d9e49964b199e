// Package usersvc - Test hồ sơ kênh công khai trên MongoDB mock.
package usersvc

import (
	"context"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"video_tube/internal/global"
)

func newMockUserService(mt *mtest.T) *UserService {
	mt.Helper()

	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"

	_, _ = global.RegistryCollections.Register("users", mt.DB.Collection("users"))
	_, _ = global.RegistryCollections.Register("subscriptions", mt.DB.Collection("subscriptions"))

	svc, err := NewUserService()
	if err != nil {
		mt.Fatalf("không khởi tạo được UserService: %v", err)
	}
	return svc
}

func TestGetChannelProfile_KhongTraVeEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("projection không chứa email", func(mt *mtest.T) {
		svc := newMockUserService(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "videotube.users", mtest.FirstBatch))

		_, _ = svc.GetChannelProfile(context.Background(), "kenh-test", primitive.NilObjectID)

		// Endpoint công khai: pipeline gửi lên MongoDB không được project email
		evt := mt.GetStartedEvent()
		if evt == nil {
			mt.Fatal("phải ghi nhận được command aggregate")
		}
		command := evt.Command.String()
		if !strings.Contains(command, "aggregate") {
			mt.Fatalf("command đầu tiên phải là aggregate, nhận được: %s", evt.CommandName)
		}
		if strings.Contains(command, "email") {
			mt.Error("pipeline hồ sơ kênh công khai không được tham chiếu email")
		}
	})
}
