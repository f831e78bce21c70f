package entity

import "time"

// Enrollment links a student to a course.
type Enrollment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CourseID   uint      `gorm:"not null;index" json:"courseId"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	EnrolledAt time.Time `gorm:"not null;index" json:"enrolledAt"`
}
