// Package common - Test mapping lỗi MongoDB sang taxonomy lỗi nội bộ.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_NilGiuNguyen(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("nil phải trả về nil, nhận được: %v", got)
	}
}

func TestConvertMongoError_KhongConvertLaiLoiNoiBo(t *testing.T) {
	// Lỗi đã thuộc taxonomy (vd ErrForbidden từ check ownership) phải đi qua nguyên vẹn,
	// không bị bọc thành lỗi database
	got := ConvertMongoError(ErrForbidden)
	if !errors.Is(got, ErrForbidden) {
		t.Errorf("lỗi nội bộ phải được giữ nguyên, nhận được: %v", got)
	}
	var appErr *Error
	if !errors.As(got, &appErr) || appErr.StatusCode != StatusForbidden {
		t.Errorf("status code phải là 403, nhận được: %v", got)
	}
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	got := ConvertMongoError(mongo.ErrNoDocuments)
	if !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNoDocuments phải thành ErrNotFound, nhận được: %v", got)
	}
	var appErr *Error
	errors.As(got, &appErr)
	if appErr.StatusCode != StatusNotFound {
		t.Errorf("status code phải là 404, nhận được %d", appErr.StatusCode)
	}
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	// WriteException với code 11000 là lỗi trùng unique index
	dupErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
	got := ConvertMongoError(dupErr)
	if !errors.Is(got, ErrMongoDuplicate) {
		t.Errorf("duplicate key phải thành ErrMongoDuplicate, nhận được: %v", got)
	}
	var appErr *Error
	errors.As(got, &appErr)
	if appErr.StatusCode != StatusConflict {
		t.Errorf("status code phải là 409, nhận được %d", appErr.StatusCode)
	}
}

func TestConvertMongoError_LoiKhongXacDinh(t *testing.T) {
	got := ConvertMongoError(errors.New("lỗi lạ"))
	var appErr *Error
	if !errors.As(got, &appErr) {
		t.Fatalf("lỗi không xác định vẫn phải được bọc thành *Error: %v", got)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("status code phải là 500, nhận được %d", appErr.StatusCode)
	}
	if appErr.Details != "lỗi lạ" {
		t.Errorf("details phải giữ message gốc để debug, nhận được: %v", appErr.Details)
	}
}

func TestErrorIs_SoSanhTheoCodeVaMessage(t *testing.T) {
	clone := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	if !errors.Is(clone, ErrNotFound) {
		t.Error("hai lỗi cùng code và message phải Is nhau")
	}
	if errors.Is(ErrNotFound, ErrDuplicate) {
		t.Error("hai lỗi khác nhau không được Is nhau")
	}
}
