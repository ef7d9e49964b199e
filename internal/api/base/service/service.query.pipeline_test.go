// Package basesvc - Test thứ tự stage và nội dung filter của PipelineBuilder.
package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stageValue trả về value của stage thứ i nếu đúng operator, ngược lại fail test.
func stageValue(t *testing.T, p []bson.D, i int, op string) interface{} {
	t.Helper()
	if i >= len(p) {
		t.Fatalf("pipeline chỉ có %d stage, cần stage thứ %d", len(p), i)
	}
	if len(p[i]) != 1 || p[i][0].Key != op {
		t.Fatalf("stage %d phải là %s, nhận được: %v", i, op, p[i])
	}
	return p[i][0].Value
}

func TestMatchPublished_AnonymousChiThayDaPublish(t *testing.T) {
	p := NewPipelineBuilder().MatchPublished(primitive.NilObjectID).Build()
	filter, ok := stageValue(t, p, 0, "$match").(bson.M)
	if !ok {
		t.Fatal("$match value không phải bson.M")
	}
	if v, ok := filter["isPublished"]; !ok || v != true {
		t.Errorf("viewer ẩn danh phải lọc isPublished=true, nhận được: %v", filter)
	}
	if _, ok := filter["$or"]; ok {
		t.Error("viewer ẩn danh không được có nhánh $or owner")
	}
}

func TestMatchPublished_OwnerThayNoiDungChuaPublish(t *testing.T) {
	viewer := primitive.NewObjectID()
	p := NewPipelineBuilder().MatchPublished(viewer).Build()
	filter := stageValue(t, p, 0, "$match").(bson.M)
	branches, ok := filter["$or"].([]bson.M)
	if !ok || len(branches) != 2 {
		t.Fatalf("viewer đăng nhập phải có $or 2 nhánh, nhận được: %v", filter)
	}
	if branches[0]["isPublished"] != true {
		t.Errorf("nhánh 1 phải là isPublished=true: %v", branches[0])
	}
	if branches[1]["owner"] != viewer {
		t.Errorf("nhánh 2 phải là owner=viewer: %v", branches[1])
	}
}

func TestSearch_QueryRongBoQuaStage(t *testing.T) {
	p := NewPipelineBuilder().Search("", "title", "description").Build()
	if len(p) != 0 {
		t.Errorf("query rỗng không được thêm stage, pipeline: %v", p)
	}
}

func TestSearch_RegexKhongPhanBietHoaThuong(t *testing.T) {
	p := NewPipelineBuilder().Search("golang", "title", "description").Build()
	filter := stageValue(t, p, 0, "$match").(bson.M)
	branches, ok := filter["$or"].([]bson.M)
	if !ok || len(branches) != 2 {
		t.Fatalf("phải có một nhánh $or cho mỗi field, nhận được: %v", filter)
	}
	cond, ok := branches[0]["title"].(bson.M)
	if !ok {
		t.Fatalf("điều kiện regex không phải bson.M: %v", branches[0])
	}
	if cond["$regex"] != "golang" || cond["$options"] != "i" {
		t.Errorf("regex phải không phân biệt hoa thường: %v", cond)
	}
}

func TestSort_MacDinhVaTiebreaker(t *testing.T) {
	p := NewPipelineBuilder().Sort("", 0).Build()
	sortDoc, ok := stageValue(t, p, 0, "$sort").(bson.D)
	if !ok {
		t.Fatal("$sort value không phải bson.D")
	}
	if len(sortDoc) != 2 {
		t.Fatalf("$sort phải có field chính + _id tiebreaker, nhận được: %v", sortDoc)
	}
	if sortDoc[0].Key != "createdAt" || sortDoc[0].Value != -1 {
		t.Errorf("field rỗng phải fallback createdAt desc: %v", sortDoc[0])
	}
	if sortDoc[1].Key != "_id" || sortDoc[1].Value != -1 {
		t.Errorf("tiebreaker _id phải cùng chiều với field chính: %v", sortDoc[1])
	}
}

func TestSort_TheoIDKhongLapTiebreaker(t *testing.T) {
	p := NewPipelineBuilder().Sort("_id", 1).Build()
	sortDoc := stageValue(t, p, 0, "$sort").(bson.D)
	if len(sortDoc) != 1 {
		t.Errorf("sort theo _id không được thêm tiebreaker trùng: %v", sortDoc)
	}
	if sortDoc[0].Value != 1 {
		t.Errorf("order 1 phải được giữ nguyên: %v", sortDoc[0])
	}
}

func TestAddLikeFields_AnonymousIsLikedLuonFalse(t *testing.T) {
	p := NewPipelineBuilder().AddLikeFields("video", primitive.NilObjectID).Build()
	// stage 0: $lookup likes, stage 1: $addFields, stage 2: $project loại mảng likes
	stageValue(t, p, 0, "$lookup")
	fields := stageValue(t, p, 1, "$addFields").(bson.M)
	isLiked, ok := fields["isLiked"].(bson.M)
	if !ok {
		t.Fatalf("isLiked không phải bson.M: %v", fields)
	}
	if isLiked["$literal"] != false {
		t.Errorf("viewer ẩn danh phải có isLiked=$literal false: %v", isLiked)
	}
	proj := stageValue(t, p, 2, "$project").(bson.M)
	if proj["likes"] != 0 {
		t.Errorf("mảng likes trung gian phải bị loại khỏi kết quả: %v", proj)
	}
}

func TestAddLikeFields_ViewerDungToanTuIn(t *testing.T) {
	viewer := primitive.NewObjectID()
	p := NewPipelineBuilder().AddLikeFields("comment", viewer).Build()
	fields := stageValue(t, p, 1, "$addFields").(bson.M)
	isLiked := fields["isLiked"].(bson.M)
	inExpr, ok := isLiked["$in"].(bson.A)
	if !ok || len(inExpr) != 2 {
		t.Fatalf("viewer đăng nhập phải dùng $in [viewer, $likes.likedBy]: %v", isLiked)
	}
	if inExpr[0] != viewer {
		t.Errorf("phần tử đầu của $in phải là viewer: %v", inExpr)
	}
	count := fields["likesCount"].(bson.M)
	if count["$size"] != "$likes" {
		t.Errorf("likesCount phải là $size của mảng join: %v", count)
	}
}

func TestLookupOwner_UnwindLoaiDocumentMoCoi(t *testing.T) {
	p := NewPipelineBuilder().LookupOwner("owner", "ownerDetails").Build()
	lookup := stageValue(t, p, 0, "$lookup").(bson.M)
	if lookup["localField"] != "owner" || lookup["as"] != "ownerDetails" {
		t.Errorf("lookup sai field: %v", lookup)
	}
	unwind := stageValue(t, p, 1, "$unwind").(bson.M)
	if unwind["path"] != "$ownerDetails" {
		t.Errorf("unwind sai path: %v", unwind)
	}
	if unwind["preserveNullAndEmptyArrays"] != false {
		t.Error("document mồ côi (owner đã xóa) phải bị loại khỏi kết quả")
	}
}

func TestBuild_GiuThuTuGoiStage(t *testing.T) {
	viewer := primitive.NewObjectID()
	p := NewPipelineBuilder().
		MatchPublished(viewer).
		Search("demo", "title").
		LookupOwner("owner", "ownerDetails").
		AddLikeFields("video", viewer).
		Sort("views", -1).
		Build()

	wantOps := []string{"$match", "$match", "$lookup", "$unwind", "$lookup", "$addFields", "$project", "$sort"}
	if len(p) != len(wantOps) {
		t.Fatalf("pipeline phải có %d stage, nhận được %d: %v", len(wantOps), len(p), p)
	}
	for i, op := range wantOps {
		if p[i][0].Key != op {
			t.Errorf("stage %d phải là %s, nhận được %s", i, op, p[i][0].Key)
		}
	}
}
