package entity

import "time"

// CourseSection is an ordered unit of a course. OrderIndex is assigned as
// max(existing)+1 at creation and is unique and increasing per course.
type CourseSection struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CourseID    uint      `gorm:"not null;index" json:"courseId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `json:"description,omitempty"`
	OrderIndex  int       `gorm:"not null" json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
