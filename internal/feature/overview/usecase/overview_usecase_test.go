package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
)

type mockStatsRepo struct {
	CountUsersByRoleFunc        func(ctx context.Context, roleID uint, activeOnly bool) (int64, error)
	SumPaymentsFunc             func(ctx context.Context) (float64, error)
	SumPaymentsBetweenFunc      func(ctx context.Context, from, to time.Time) (float64, error)
	CountCoursesFunc            func(ctx context.Context) (int64, error)
	AverageRatingFunc           func(ctx context.Context) (float64, error)
	CountEnrollmentsFunc        func(ctx context.Context) (int64, error)
	TopCoursesByEnrollmentsFunc func(ctx context.Context, limit int) ([]CourseCount, error)
	TopCoursesByReviewsFunc     func(ctx context.Context, limit int) ([]CourseCount, error)
	CourseTitlesFunc            func(ctx context.Context, ids []uint) (map[uint]string, error)
	EnrollmentCountsByMonthFunc func(ctx context.Context, from, to time.Time) (map[int]int64, error)
}

func (m *mockStatsRepo) CountUsersByRole(ctx context.Context, roleID uint, activeOnly bool) (int64, error) {
	if m.CountUsersByRoleFunc != nil {
		return m.CountUsersByRoleFunc(ctx, roleID, activeOnly)
	}
	return 0, nil
}

func (m *mockStatsRepo) SumPayments(ctx context.Context) (float64, error) {
	if m.SumPaymentsFunc != nil {
		return m.SumPaymentsFunc(ctx)
	}
	return 0, nil
}

func (m *mockStatsRepo) SumPaymentsBetween(ctx context.Context, from, to time.Time) (float64, error) {
	if m.SumPaymentsBetweenFunc != nil {
		return m.SumPaymentsBetweenFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *mockStatsRepo) CountCourses(ctx context.Context) (int64, error) {
	if m.CountCoursesFunc != nil {
		return m.CountCoursesFunc(ctx)
	}
	return 0, nil
}

func (m *mockStatsRepo) AverageRating(ctx context.Context) (float64, error) {
	if m.AverageRatingFunc != nil {
		return m.AverageRatingFunc(ctx)
	}
	return 0, nil
}

func (m *mockStatsRepo) CountEnrollments(ctx context.Context) (int64, error) {
	if m.CountEnrollmentsFunc != nil {
		return m.CountEnrollmentsFunc(ctx)
	}
	return 0, nil
}

func (m *mockStatsRepo) TopCoursesByEnrollments(ctx context.Context, limit int) ([]CourseCount, error) {
	if m.TopCoursesByEnrollmentsFunc != nil {
		return m.TopCoursesByEnrollmentsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockStatsRepo) TopCoursesByReviews(ctx context.Context, limit int) ([]CourseCount, error) {
	if m.TopCoursesByReviewsFunc != nil {
		return m.TopCoursesByReviewsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockStatsRepo) CourseTitles(ctx context.Context, ids []uint) (map[uint]string, error) {
	if m.CourseTitlesFunc != nil {
		return m.CourseTitlesFunc(ctx, ids)
	}
	return map[uint]string{}, nil
}

func (m *mockStatsRepo) EnrollmentCountsByMonth(ctx context.Context, from, to time.Time) (map[int]int64, error) {
	if m.EnrollmentCountsByMonthFunc != nil {
		return m.EnrollmentCountsByMonthFunc(ctx, from, to)
	}
	return map[int]int64{}, nil
}

func TestOverviewUsecase_GetOverviewStats(t *testing.T) {
	t.Run("derives inactive counts", func(t *testing.T) {
		uc := NewOverviewUsecase(&mockStatsRepo{
			CountUsersByRoleFunc: func(ctx context.Context, roleID uint, activeOnly bool) (int64, error) {
				switch {
				case roleID == entity.RoleTeacher && !activeOnly:
					return 10, nil
				case roleID == entity.RoleTeacher && activeOnly:
					return 6, nil
				case roleID == entity.RoleStudent && !activeOnly:
					return 100, nil
				default:
					return 90, nil
				}
			},
		})

		stats, err := uc.GetOverviewStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(10), stats.Teachers)
		assert.Equal(t, int64(4), stats.InactiveTeachers)
		assert.Equal(t, int64(10), stats.InactiveStudents)
	})

	t.Run("zero reviews yield a zero rating", func(t *testing.T) {
		uc := NewOverviewUsecase(&mockStatsRepo{})

		stats, err := uc.GetOverviewStats(context.Background())

		require.NoError(t, err)
		assert.Zero(t, stats.AvgCourseRating)
		assert.Zero(t, stats.TotalRevenue)
	})

	t.Run("rating rounds to one decimal", func(t *testing.T) {
		uc := NewOverviewUsecase(&mockStatsRepo{
			AverageRatingFunc: func(ctx context.Context) (float64, error) { return 4.26, nil },
		})

		stats, err := uc.GetOverviewStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 4.3, stats.AvgCourseRating)
	})

	t.Run("month revenue window starts at the first of the month", func(t *testing.T) {
		var gotFrom time.Time
		uc := NewOverviewUsecase(&mockStatsRepo{
			SumPaymentsBetweenFunc: func(ctx context.Context, from, to time.Time) (float64, error) {
				gotFrom = from
				return 120.50, nil
			},
		})
		uc.now = func() time.Time {
			return time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)
		}

		stats, err := uc.GetOverviewStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), gotFrom)
		assert.Equal(t, 120.50, stats.TotalRevenueCurrentMonth)
	})

	t.Run("any sub-query failure is internal", func(t *testing.T) {
		uc := NewOverviewUsecase(&mockStatsRepo{
			CountCoursesFunc: func(ctx context.Context) (int64, error) {
				return 0, errors.New("connection reset")
			},
		})

		_, err := uc.GetOverviewStats(context.Background())

		var ae *apperr.Error
		require.True(t, errors.As(err, &ae))
		assert.Equal(t, apperr.KindInternal, ae.Kind)
	})
}

func TestOverviewUsecase_GetTopCourses(t *testing.T) {
	t.Run("resolves titles with placeholder for missing courses", func(t *testing.T) {
		uc := NewOverviewUsecase(&mockStatsRepo{
			TopCoursesByEnrollmentsFunc: func(ctx context.Context, limit int) ([]CourseCount, error) {
				assert.Equal(t, 5, limit)
				return []CourseCount{{CourseID: 1, Count: 30}, {CourseID: 9, Count: 12}}, nil
			},
			TopCoursesByReviewsFunc: func(ctx context.Context, limit int) ([]CourseCount, error) {
				return []CourseCount{{CourseID: 1, Count: 8}}, nil
			},
			CourseTitlesFunc: func(ctx context.Context, ids []uint) (map[uint]string, error) {
				return map[uint]string{1: "Go Basics"}, nil
			},
		})

		top, err := uc.GetTopCourses(context.Background())

		require.NoError(t, err)
		require.Len(t, top.MostPopular, 2)
		assert.Equal(t, "Go Basics", top.MostPopular[0].Title)
		assert.Equal(t, int64(30), top.MostPopular[0].EnrollmentCount)
		assert.Equal(t, "Unknown", top.MostPopular[1].Title)
		require.Len(t, top.TopRated, 1)
		assert.Equal(t, int64(8), top.TopRated[0].ReviewCount)
	})

	t.Run("no qualifying courses yields empty lists", func(t *testing.T) {
		uc := NewOverviewUsecase(&mockStatsRepo{})

		top, err := uc.GetTopCourses(context.Background())

		require.NoError(t, err)
		assert.Empty(t, top.MostPopular)
		assert.Empty(t, top.TopRated)
		assert.NotNil(t, top.MostPopular, "serializes as an empty array")
	})

	t.Run("pipeline failure is internal", func(t *testing.T) {
		uc := NewOverviewUsecase(&mockStatsRepo{
			TopCoursesByReviewsFunc: func(ctx context.Context, limit int) ([]CourseCount, error) {
				return nil, errors.New("bad query")
			},
		})

		_, err := uc.GetTopCourses(context.Background())

		var ae *apperr.Error
		require.True(t, errors.As(err, &ae))
		assert.Equal(t, apperr.KindInternal, ae.Kind)
	})
}

func TestOverviewUsecase_GetUserGrowthStats(t *testing.T) {
	t.Run("one entry per elapsed month", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		uc := NewOverviewUsecase(&mockStatsRepo{
			EnrollmentCountsByMonthFunc: func(ctx context.Context, from, to time.Time) (map[int]int64, error) {
				gotFrom, gotTo = from, to
				return map[int]int64{1: 4, 3: 9}, nil
			},
		})
		now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		growth, err := uc.GetUserGrowthStats(context.Background())

		require.NoError(t, err)
		require.Len(t, growth, 3)
		assert.Equal(t, MonthlyGrowth{Month: 1, Year: 2025, StudentCount: 4}, growth[0])
		assert.Equal(t, MonthlyGrowth{Month: 2, Year: 2025, StudentCount: 0}, growth[1])
		assert.Equal(t, MonthlyGrowth{Month: 3, Year: 2025, StudentCount: 9}, growth[2])
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), gotFrom)
		assert.Equal(t, now, gotTo)
	})

	t.Run("january has exactly one entry", func(t *testing.T) {
		uc := NewOverviewUsecase(&mockStatsRepo{})
		uc.now = func() time.Time {
			return time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
		}

		growth, err := uc.GetUserGrowthStats(context.Background())

		require.NoError(t, err)
		require.Len(t, growth, 1)
		assert.Equal(t, 1, growth[0].Month)
	})

	t.Run("query failure is internal", func(t *testing.T) {
		uc := NewOverviewUsecase(&mockStatsRepo{
			EnrollmentCountsByMonthFunc: func(ctx context.Context, from, to time.Time) (map[int]int64, error) {
				return nil, errors.New("bad query")
			},
		})

		_, err := uc.GetUserGrowthStats(context.Background())

		var ae *apperr.Error
		require.True(t, errors.As(err, &ae))
		assert.Equal(t, apperr.KindInternal, ae.Kind)
	})
}
