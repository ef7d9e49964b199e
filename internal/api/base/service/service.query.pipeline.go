// Package basesvc - Xây dựng aggregation pipeline cho các API đọc dữ liệu.
package basesvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"video_tube/internal/global"
)

// OwnerProjection các trường public của chủ sở hữu được join vào kết quả
var OwnerProjection = bson.M{
	"userName": 1,
	"fullName": 1,
	"avatar":   1,
}

// PipelineBuilder gom các stage aggregation theo thứ tự gọi.
// Các stage match/search đặt trước lookup để tận dụng index.
type PipelineBuilder struct {
	stages mongo.Pipeline
}

// NewPipelineBuilder tạo builder rỗng
func NewPipelineBuilder() *PipelineBuilder {
	return &PipelineBuilder{stages: mongo.Pipeline{}}
}

// Match thêm stage $match với filter tùy ý
func (b *PipelineBuilder) Match(filter bson.M) *PipelineBuilder {
	b.stages = append(b.stages, bson.D{{Key: "$match", Value: filter}})
	return b
}

// MatchPublished chỉ lấy các document đã publish.
// viewerID khác rỗng => chủ sở hữu vẫn thấy nội dung chưa publish của chính mình.
func (b *PipelineBuilder) MatchPublished(viewerID primitive.ObjectID) *PipelineBuilder {
	if viewerID == primitive.NilObjectID {
		return b.Match(bson.M{"isPublished": true})
	}
	return b.Match(bson.M{"$or": []bson.M{
		{"isPublished": true},
		{"owner": viewerID},
	}})
}

// MatchOwner lọc theo chủ sở hữu
func (b *PipelineBuilder) MatchOwner(ownerID primitive.ObjectID) *PipelineBuilder {
	return b.Match(bson.M{"owner": ownerID})
}

// Search thêm stage tìm kiếm regex không phân biệt hoa thường trên các trường chỉ định.
// query rỗng => bỏ qua stage.
func (b *PipelineBuilder) Search(query string, fields ...string) *PipelineBuilder {
	if query == "" || len(fields) == 0 {
		return b
	}
	orConditions := make([]bson.M, 0, len(fields))
	for _, field := range fields {
		orConditions = append(orConditions, bson.M{
			field: bson.M{"$regex": query, "$options": "i"},
		})
	}
	return b.Match(bson.M{"$or": orConditions})
}

// LookupOwner join thông tin chủ sở hữu từ collection users.
// localField là trường chứa ObjectID (vd "owner"), as là tên trường kết quả.
// $unwind với preserveNullAndEmptyArrays=false: document mồ côi (owner đã xóa) bị loại.
func (b *PipelineBuilder) LookupOwner(localField, as string) *PipelineBuilder {
	b.stages = append(b.stages,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$project", Value: OwnerProjection}},
			},
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$" + as,
			"preserveNullAndEmptyArrays": false,
		}}},
	)
	return b
}

// AddLikeFields join collection likes theo targetField (vd "video", "comment", "tweet")
// và thêm likesCount + isLiked (theo viewer hiện tại).
// viewerID rỗng => isLiked luôn false.
func (b *PipelineBuilder) AddLikeFields(targetField string, viewerID primitive.ObjectID) *PipelineBuilder {
	b.stages = append(b.stages, bson.D{{Key: "$lookup", Value: bson.M{
		"from":         global.MongoDB_ColNames.Likes,
		"localField":   "_id",
		"foreignField": targetField,
		"as":           "likes",
	}}})

	isLiked := bson.M{"$in": bson.A{viewerID, "$likes.likedBy"}}
	if viewerID == primitive.NilObjectID {
		isLiked = bson.M{"$literal": false}
	}

	b.stages = append(b.stages,
		bson.D{{Key: "$addFields", Value: bson.M{
			"likesCount": bson.M{"$size": "$likes"},
			"isLiked":    isLiked,
		}}},
		bson.D{{Key: "$project", Value: bson.M{"likes": 0}}},
	)
	return b
}

// AddSubscriptionFields join collection subscriptions theo kênh (_id của user)
// và thêm subscribersCount + isSubscribed (theo viewer hiện tại).
func (b *PipelineBuilder) AddSubscriptionFields(viewerID primitive.ObjectID) *PipelineBuilder {
	b.stages = append(b.stages, bson.D{{Key: "$lookup", Value: bson.M{
		"from":         global.MongoDB_ColNames.Subscriptions,
		"localField":   "_id",
		"foreignField": "channel",
		"as":           "subscribers",
	}}})

	isSubscribed := bson.M{"$in": bson.A{viewerID, "$subscribers.subscriber"}}
	if viewerID == primitive.NilObjectID {
		isSubscribed = bson.M{"$literal": false}
	}

	b.stages = append(b.stages,
		bson.D{{Key: "$addFields", Value: bson.M{
			"subscribersCount": bson.M{"$size": "$subscribers"},
			"isSubscribed":     isSubscribed,
		}}},
		bson.D{{Key: "$project", Value: bson.M{"subscribers": 0}}},
	)
	return b
}

// Sort thêm stage $sort theo field và order (1 hoặc -1).
// Luôn kèm _id cùng chiều làm tiebreaker để phân trang ổn định.
func (b *PipelineBuilder) Sort(field string, order int) *PipelineBuilder {
	if order != 1 && order != -1 {
		order = -1
	}
	if field == "" {
		field = "createdAt"
	}
	sortDoc := bson.D{{Key: field, Value: order}}
	if field != "_id" {
		sortDoc = append(sortDoc, bson.E{Key: "_id", Value: order})
	}
	b.stages = append(b.stages, bson.D{{Key: "$sort", Value: sortDoc}})
	return b
}

// Project thêm stage $project
func (b *PipelineBuilder) Project(projection bson.M) *PipelineBuilder {
	b.stages = append(b.stages, bson.D{{Key: "$project", Value: projection}})
	return b
}

// AddStage thêm stage tùy ý (dùng cho $replaceRoot, $group...)
func (b *PipelineBuilder) AddStage(stage bson.D) *PipelineBuilder {
	b.stages = append(b.stages, stage)
	return b
}

// Build trả về pipeline hoàn chỉnh
func (b *PipelineBuilder) Build() mongo.Pipeline {
	return b.stages
}
