// Package dto はcatalogフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"yoga_storefront/internal/feature/catalog/domain/entity"
	"yoga_storefront/internal/shared/notice"
)

// InstanceRes はクラスインスタンスのレスポンスDTOです。
type InstanceRes struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Teacher string `json:"teacher"`
	Comment string `json:"comment,omitempty"`
}

// ClassRes はクラス一覧の1件分です。inCartはカート追加済みかどうかを示します。
type ClassRes struct {
	ID          int64         `json:"id"`
	Day         string        `json:"day"`
	Time        string        `json:"time"`
	Capacity    int           `json:"capacity"`
	Duration    string        `json:"duration"`
	Price       float64       `json:"price"`
	Type        string        `json:"type"`
	Description string        `json:"description,omitempty"`
	Instances   []InstanceRes `json:"instances"`
	InCart      bool          `json:"inCart"`
}

// ClassListRes は GET /classes と POST /classes/refresh のレスポンスです。
type ClassListRes struct {
	Query   string     `json:"query"`
	Classes []ClassRes `json:"classes"`
}

// ToggleRes は POST /classes/:id/toggle のレスポンスです。
type ToggleRes struct {
	ClassID int64         `json:"classId"`
	InCart  bool          `json:"inCart"`
	Notice  notice.Notice `json:"notice"`
}

// NewClassRes converts a class to its response form.
func NewClassRes(c entity.YogaClass, inCart bool) ClassRes {
	instances := make([]InstanceRes, 0, len(c.Instances))
	for _, i := range c.Instances {
		instances = append(instances, InstanceRes{ID: i.ID, Date: i.Date, Teacher: i.Teacher, Comment: i.Comment})
	}
	return ClassRes{
		ID:          c.ID,
		Day:         c.Day,
		Time:        c.Time,
		Capacity:    c.Capacity,
		Duration:    c.Duration,
		Price:       c.Price,
		Type:        c.Type,
		Description: c.Description,
		Instances:   instances,
		InCart:      inCart,
	}
}
