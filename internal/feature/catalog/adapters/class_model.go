package adapters

import "yoga_storefront/internal/feature/catalog/domain/entity"

// ClassModel is the GORM model for the `classes` collection.
type ClassModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement:false"`
	Day         string  `gorm:"size:20;not null"`
	Time        string  `gorm:"size:10;not null"`
	Capacity    int     `gorm:"not null"`
	Duration    string  `gorm:"size:20"`
	Price       float64 `gorm:"not null"`
	Type        string  `gorm:"size:50;not null"`
	Description string  `gorm:"type:text"`
}

// TableName returns the table name for GORM.
func (ClassModel) TableName() string {
	return "classes"
}

// ToEntity converts the GORM model to a domain class without instances.
func (m *ClassModel) ToEntity() entity.YogaClass {
	return entity.YogaClass{
		ID:          m.ID,
		Day:         m.Day,
		Time:        m.Time,
		Capacity:    m.Capacity,
		Duration:    m.Duration,
		Price:       m.Price,
		Type:        m.Type,
		Description: m.Description,
	}
}

// ClassModelFromEntity converts a domain class to a GORM model. Instances are ignored.
func ClassModelFromEntity(c entity.YogaClass) *ClassModel {
	return &ClassModel{
		ID:          c.ID,
		Day:         c.Day,
		Time:        c.Time,
		Capacity:    c.Capacity,
		Duration:    c.Duration,
		Price:       c.Price,
		Type:        c.Type,
		Description: c.Description,
	}
}

// ClassInstanceModel is the GORM model for the `instances` sub-collection of a class.
type ClassInstanceModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement:false"`
	ClassID int64  `gorm:"not null;index:idx_class_instances_class_id"`
	Date    string `gorm:"size:20;not null"`
	Teacher string `gorm:"size:100;not null"`
	Comment string `gorm:"type:text"`
}

// TableName returns the table name for GORM.
func (ClassInstanceModel) TableName() string {
	return "class_instances"
}

// ToEntity converts the GORM model to a domain class instance.
func (m *ClassInstanceModel) ToEntity() entity.ClassInstance {
	return entity.ClassInstance{
		ID:      m.ID,
		Date:    m.Date,
		Teacher: m.Teacher,
		Comment: m.Comment,
	}
}

// ClassInstanceModelFromEntity converts a domain instance owned by classID to a GORM model.
func ClassInstanceModelFromEntity(classID int64, i entity.ClassInstance) *ClassInstanceModel {
	return &ClassInstanceModel{
		ID:      i.ID,
		ClassID: classID,
		Date:    i.Date,
		Teacher: i.Teacher,
		Comment: i.Comment,
	}
}
