// Package adapters provides the GORM repository for dashboard statistics.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/overview/usecase"
)

type statsGorm struct {
	db *gorm.DB
}

var _ usecase.StatsRepository = (*statsGorm)(nil)

// NewStatsGorm creates the GORM-backed statistics repository.
func NewStatsGorm(db *gorm.DB) *statsGorm {
	return &statsGorm{db: db}
}

func (r *statsGorm) CountUsersByRole(ctx context.Context, roleID uint, activeOnly bool) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&entity.User{}).Where("role_id = ?", roleID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *statsGorm) SumPayments(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&entity.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *statsGorm) SumPaymentsBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&entity.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("paid_at BETWEEN ? AND ?", from, to).
		Scan(&sum).Error
	return sum, err
}

func (r *statsGorm) CountCourses(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Course{}).Count(&count).Error
	return count, err
}

func (r *statsGorm) AverageRating(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *statsGorm) CountEnrollments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Enrollment{}).Count(&count).Error
	return count, err
}

func (r *statsGorm) TopCoursesByEnrollments(ctx context.Context, limit int) ([]usecase.CourseCount, error) {
	var rows []usecase.CourseCount
	err := r.db.WithContext(ctx).
		Model(&entity.Enrollment{}).
		Select("course_id, COUNT(id) AS cnt").
		Group("course_id").
		Order("cnt DESC, course_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *statsGorm) TopCoursesByReviews(ctx context.Context, limit int) ([]usecase.CourseCount, error) {
	var rows []usecase.CourseCount
	err := r.db.WithContext(ctx).
		Model(&entity.Review{}).
		Select("course_id, COUNT(id) AS cnt").
		Group("course_id").
		Order("cnt DESC, course_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *statsGorm) CourseTitles(ctx context.Context, ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	var rows []struct {
		ID    uint
		Title string
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Course{}).
		Select("id, title").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	titles := make(map[uint]string, len(rows))
	for _, row := range rows {
		titles[row.ID] = row.Title
	}
	return titles, nil
}

// EnrollmentCountsByMonth buckets enrollments by calendar month in the
// database. The month expression differs per dialect; everything else is
// shared SQL.
func (r *statsGorm) EnrollmentCountsByMonth(ctx context.Context, from, to time.Time) (map[int]int64, error) {
	monthExpr := "EXTRACT(MONTH FROM enrolled_at)::int"
	if r.db.Dialector.Name() == "sqlite" {
		monthExpr = "CAST(strftime('%m', enrolled_at) AS INTEGER)"
	}

	var rows []struct {
		Month int   `gorm:"column:month"`
		Cnt   int64 `gorm:"column:cnt"`
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Enrollment{}).
		Select(monthExpr + " AS month, COUNT(id) AS cnt").
		Where("enrolled_at BETWEEN ? AND ?", from, to).
		Group(monthExpr).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.Month] = row.Cnt
	}
	return counts, nil
}
