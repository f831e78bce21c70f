package entity

import "time"

// Review is a student's rating of a course.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  uint      `gorm:"not null;index" json:"courseId"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Rating    float64   `gorm:"not null" json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
