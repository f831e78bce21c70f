// Package usecase implements the dashboard statistics aggregations.
package usecase

import (
	"context"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
)

// CourseCount is one row of a per-course count aggregation.
type CourseCount struct {
	CourseID uint  `gorm:"column:course_id"`
	Count    int64 `gorm:"column:cnt"`
}

// StatsRepository abstracts the read-only aggregation queries. All methods
// return zero values, not errors, for empty tables.
type StatsRepository interface {
	CountUsersByRole(ctx context.Context, roleID uint, activeOnly bool) (int64, error)
	SumPayments(ctx context.Context) (float64, error)
	SumPaymentsBetween(ctx context.Context, from, to time.Time) (float64, error)
	CountCourses(ctx context.Context) (int64, error)
	AverageRating(ctx context.Context) (float64, error)
	CountEnrollments(ctx context.Context) (int64, error)
	TopCoursesByEnrollments(ctx context.Context, limit int) ([]CourseCount, error)
	TopCoursesByReviews(ctx context.Context, limit int) ([]CourseCount, error)
	CourseTitles(ctx context.Context, ids []uint) (map[uint]string, error)
	EnrollmentCountsByMonth(ctx context.Context, from, to time.Time) (map[int]int64, error)
}

// OverviewStats is the dashboard summary. Field names follow the dashboard
// API contract.
type OverviewStats struct {
	Teachers                 int64   `json:"teachers"`
	ActiveTeachers           int64   `json:"active_teachers"`
	InactiveTeachers         int64   `json:"inactive_teachers"`
	Students                 int64   `json:"students"`
	ActiveStudents           int64   `json:"active_students"`
	InactiveStudents         int64   `json:"inactive_students"`
	TotalRevenue             float64 `json:"total_revenue"`
	TotalRevenueCurrentMonth float64 `json:"total_revenue_current_month"`
	TotalCourses             int64   `json:"total_courses"`
	AvgCourseRating          float64 `json:"avg_course_rating"`
	TotalEnrollments         int64   `json:"total_enrollments"`
}

// PopularCourse ranks a course by enrollment count.
type PopularCourse struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	EnrollmentCount int64  `json:"enrollment_count"`
}

// RatedCourse ranks a course by review count.
type RatedCourse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	ReviewCount int64  `json:"review_count"`
}

// TopCourses holds both course rankings.
type TopCourses struct {
	MostPopular []PopularCourse `json:"most_popular"`
	TopRated    []RatedCourse   `json:"top_rated"`
}

// MonthlyGrowth is one month of enrollment growth.
type MonthlyGrowth struct {
	Month        int   `json:"month"`
	Year         int   `json:"year"`
	StudentCount int64 `json:"studentCount"`
}

const topCoursesLimit = 5

// unknownTitle stands in for a ranked course ID with no matching course
// row, so a dangling reference never fails the whole aggregation.
const unknownTitle = "Unknown"

// OverviewUsecase runs the read-only dashboard aggregations.
type OverviewUsecase struct {
	stats StatsRepository
	now   func() time.Time
}

// NewOverviewUsecase wires the usecase with its repository.
func NewOverviewUsecase(stats StatsRepository) *OverviewUsecase {
	return &OverviewUsecase{stats: stats, now: time.Now}
}

// GetOverviewStats fans out nine independent aggregation queries and joins
// them into the dashboard summary. The inactive counts are derived locally
// from the total and active counts.
func (u *OverviewUsecase) GetOverviewStats(ctx context.Context) (*OverviewStats, error) {
	now := u.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		teachers, activeTeachers       int64
		students, activeStudents       int64
		totalRevenue, monthRevenue     float64
		totalCourses, totalEnrollments int64
		avgRating                      float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		teachers, err = u.stats.CountUsersByRole(gctx, entity.RoleTeacher, false)
		return err
	})
	g.Go(func() (err error) {
		activeTeachers, err = u.stats.CountUsersByRole(gctx, entity.RoleTeacher, true)
		return err
	})
	g.Go(func() (err error) {
		students, err = u.stats.CountUsersByRole(gctx, entity.RoleStudent, false)
		return err
	})
	g.Go(func() (err error) {
		activeStudents, err = u.stats.CountUsersByRole(gctx, entity.RoleStudent, true)
		return err
	})
	g.Go(func() (err error) {
		totalRevenue, err = u.stats.SumPayments(gctx)
		return err
	})
	g.Go(func() (err error) {
		monthRevenue, err = u.stats.SumPaymentsBetween(gctx, monthStart, now)
		return err
	})
	g.Go(func() (err error) {
		totalCourses, err = u.stats.CountCourses(gctx)
		return err
	})
	g.Go(func() (err error) {
		avgRating, err = u.stats.AverageRating(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalEnrollments, err = u.stats.CountEnrollments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("overview stats aggregation failed", "error", err)
		return nil, apperr.Internal(err)
	}

	return &OverviewStats{
		Teachers:              teachers,
		ActiveTeachers:        activeTeachers,
		InactiveTeachers:      teachers - activeTeachers,
		Students:              students,
		ActiveStudents:        activeStudents,
		InactiveStudents:      students - activeStudents,
		TotalRevenue:             totalRevenue,
		TotalRevenueCurrentMonth: monthRevenue,
		TotalCourses:             totalCourses,
		AvgCourseRating:          math.Round(avgRating*10) / 10,
		TotalEnrollments:         totalEnrollments,
	}, nil
}

// GetTopCourses runs the enrollment and review ranking pipelines
// concurrently. Each pipeline groups, takes the top five, then resolves the
// course titles; fewer than five qualifying courses yields a shorter list.
func (u *OverviewUsecase) GetTopCourses(ctx context.Context) (*TopCourses, error) {
	top := &TopCourses{
		MostPopular: []PopularCourse{},
		TopRated:    []RatedCourse{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := u.stats.TopCoursesByEnrollments(gctx, topCoursesLimit)
		if err != nil {
			return err
		}
		titles, err := u.resolveTitles(gctx, rows)
		if err != nil {
			return err
		}
		for _, row := range rows {
			top.MostPopular = append(top.MostPopular, PopularCourse{
				ID:              row.CourseID,
				Title:           titles[row.CourseID],
				EnrollmentCount: row.Count,
			})
		}
		return nil
	})
	g.Go(func() error {
		rows, err := u.stats.TopCoursesByReviews(gctx, topCoursesLimit)
		if err != nil {
			return err
		}
		titles, err := u.resolveTitles(gctx, rows)
		if err != nil {
			return err
		}
		for _, row := range rows {
			top.TopRated = append(top.TopRated, RatedCourse{
				ID:          row.CourseID,
				Title:       titles[row.CourseID],
				ReviewCount: row.Count,
			})
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Error("top courses aggregation failed", "error", err)
		return nil, apperr.Internal(err)
	}
	return top, nil
}

// GetUserGrowthStats returns per-month enrollment counts for the current
// year, January through the current month inclusive. The bucketing happens
// in the database; months with no enrollments stay at zero.
func (u *OverviewUsecase) GetUserGrowthStats(ctx context.Context) ([]MonthlyGrowth, error) {
	now := u.now()
	year := now.Year()
	currentMonth := int(now.Month())
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())

	counts, err := u.stats.EnrollmentCountsByMonth(ctx, yearStart, now)
	if err != nil {
		slog.Error("user growth aggregation failed", "error", err)
		return nil, apperr.Internal(err)
	}

	growth := make([]MonthlyGrowth, currentMonth)
	for i := range growth {
		month := i + 1
		growth[i] = MonthlyGrowth{
			Month:        month,
			Year:         year,
			StudentCount: counts[month],
		}
	}
	return growth, nil
}

// resolveTitles maps the ranked course IDs to titles, substituting a
// placeholder for IDs with no matching course.
func (u *OverviewUsecase) resolveTitles(ctx context.Context, rows []CourseCount) (map[uint]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.CourseID)
	}
	titles, err := u.stats.CourseTitles(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := titles[id]; !ok {
			if titles == nil {
				titles = make(map[uint]string, len(ids))
			}
			titles[id] = unknownTitle
		}
	}
	return titles, nil
}
