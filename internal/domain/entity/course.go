package entity

import "time"

// Course is a published course owned by a teacher within a category.
type Course struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"not null" json:"description"`
	CategoryID  uint            `gorm:"not null;index" json:"categoryId"`
	Category    *Category       `json:"category,omitempty"`
	TeacherID   uint            `gorm:"not null;index" json:"teacherId"`
	Teacher     *User           `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Price       float64         `gorm:"not null" json:"price"`
	PublishedAt time.Time       `json:"publishedAt"`
	IsFeatured  bool            `gorm:"not null;default:false" json:"isFeatured"`
	Sections    []CourseSection `gorm:"foreignKey:CourseID" json:"sections,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
