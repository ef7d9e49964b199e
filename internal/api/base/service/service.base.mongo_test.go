// Package basesvc - Test chuyển đổi dữ liệu partial update.
package basesvc

import (
	"testing"
)

func TestToUpdateData_GiuNguyenUpdateDataCoSan(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"title": "demo"}}
	got, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if got != original {
		t.Error("con trỏ UpdateData phải được trả về nguyên vẹn")
	}
}

func TestToUpdateData_NhanGiaTriUpdateData(t *testing.T) {
	got, err := ToUpdateData(UpdateData{Inc: map[string]interface{}{"views": 1}})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if got.Inc["views"] != 1 {
		t.Errorf("giá trị UpdateData phải được giữ, nhận được: %v", got)
	}
}

func TestToUpdateData_StructThuongBocTrongSet(t *testing.T) {
	type input struct {
		Title       string `bson:"title"`
		Description string `bson:"description"`
	}
	got, err := ToUpdateData(input{Title: "video mới", Description: "mô tả"})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if got.Set == nil {
		t.Fatal("struct thường phải được bọc trong $set")
	}
	if got.Set["title"] != "video mới" || got.Set["description"] != "mô tả" {
		t.Errorf("key phải theo bson tag, nhận được: %v", got.Set)
	}
	if got.Unset != nil || got.Push != nil || got.Inc != nil {
		t.Errorf("các operator khác phải rỗng: %+v", got)
	}
}
