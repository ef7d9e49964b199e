package utility

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(id.Hex()); got != id {
		t.Errorf("chuyển đổi hex hợp lệ sai: %s != %s", got.Hex(), id.Hex())
	}
	if got := String2ObjectID("khong-hop-le"); got != primitive.NilObjectID {
		t.Errorf("chuỗi không hợp lệ phải trả về NilObjectID, nhận được %s", got.Hex())
	}
}

func TestObjectID2String_RoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(ObjectID2String(id)); got != id {
		t.Errorf("round trip sai: %s", got.Hex())
	}
}

func TestToMap_TonTrongBsonTag(t *testing.T) {
	type doc struct {
		Title string             `bson:"title"`
		Owner primitive.ObjectID `bson:"owner"`
	}
	owner := primitive.NewObjectID()
	m, err := ToMap(doc{Title: "demo", Owner: owner})
	if err != nil {
		t.Fatalf("ToMap lỗi: %v", err)
	}
	if m["title"] != "demo" {
		t.Errorf("key phải theo bson tag, nhận được: %v", m)
	}
	if m["owner"] != owner {
		t.Errorf("ObjectID phải được giữ nguyên kiểu, nhận được: %T", m["owner"])
	}
}

func TestGoProtect_BatPanic(t *testing.T) {
	done := false
	GoProtect(func() {
		done = true
		panic("panic trong goroutine")
	})
	if !done {
		t.Error("hàm được bọc phải được gọi")
	}
	// Không panic lan ra ngoài là pass
}

func TestUnixMilli(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	if got := UnixMilli(ts); got != ts.UnixMilli() {
		t.Errorf("UnixMilli sai: %d != %d", got, ts.UnixMilli())
	}
}
