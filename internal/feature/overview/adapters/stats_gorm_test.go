package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"academy_backend/internal/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(
		&entity.Role{}, &entity.User{}, &entity.Category{}, &entity.Course{},
		&entity.Enrollment{}, &entity.Review{}, &entity.Payment{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, roleID uint, active bool) {
	t.Helper()
	require.NoError(t, db.Create(&entity.User{
		Email: email, PasswordHash: "x", RoleID: roleID, Active: active,
	}).Error)
}

func TestStatsGorm_CountUsersByRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsGorm(db)
	ctx := context.Background()

	seedUser(t, db, "t1@example.com", entity.RoleTeacher, true)
	seedUser(t, db, "t2@example.com", entity.RoleTeacher, false)
	seedUser(t, db, "s1@example.com", entity.RoleStudent, true)

	teachers, err := repo.CountUsersByRole(ctx, entity.RoleTeacher, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), teachers)

	active, err := repo.CountUsersByRole(ctx, entity.RoleTeacher, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)
}

func TestStatsGorm_PaymentSums(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsGorm(db)
	ctx := context.Background()

	t.Run("empty table sums to zero", func(t *testing.T) {
		sum, err := repo.SumPayments(ctx)
		require.NoError(t, err)
		assert.Zero(t, sum)
	})

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&entity.Payment{Amount: 100, PaidAt: now.AddDate(0, -2, 0)}).Error)
	require.NoError(t, db.Create(&entity.Payment{Amount: 40, PaidAt: now.AddDate(0, 0, -5)}).Error)
	require.NoError(t, db.Create(&entity.Payment{Amount: 60, PaidAt: now.AddDate(0, 0, -1)}).Error)

	total, err := repo.SumPayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200.0, total)

	monthStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	month, err := repo.SumPaymentsBetween(ctx, monthStart, now)
	require.NoError(t, err)
	assert.Equal(t, 100.0, month)
}

func TestStatsGorm_AverageRating(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsGorm(db)
	ctx := context.Background()

	avg, err := repo.AverageRating(ctx)
	require.NoError(t, err)
	assert.Zero(t, avg, "no reviews means zero, not an error")

	require.NoError(t, db.Create(&entity.Review{CourseID: 1, UserID: 1, Rating: 4}).Error)
	require.NoError(t, db.Create(&entity.Review{CourseID: 1, UserID: 2, Rating: 5}).Error)

	avg, err = repo.AverageRating(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)
}

func TestStatsGorm_TopCoursesByEnrollments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsGorm(db)
	ctx := context.Background()

	// Course 2 has 3 enrollments, course 1 has 2, courses 3 and 4 have 1 each.
	now := time.Now()
	for _, courseID := range []uint{2, 2, 2, 1, 1, 3, 4} {
		require.NoError(t, db.Create(&entity.Enrollment{CourseID: courseID, UserID: 1, EnrolledAt: now}).Error)
	}

	rows, err := repo.TopCoursesByEnrollments(ctx, 5)
	require.NoError(t, err)
	require.Len(t, rows, 4, "no padding to the limit")
	assert.Equal(t, uint(2), rows[0].CourseID)
	assert.Equal(t, int64(3), rows[0].Count)
	assert.Equal(t, uint(1), rows[1].CourseID)
	assert.Equal(t, uint(3), rows[2].CourseID, "ties break on course id ascending")
	assert.Equal(t, uint(4), rows[3].CourseID)
}

func TestStatsGorm_CourseTitles(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsGorm(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&entity.Category{ID: 1, Name: "Programming"}).Error)
	seedUser(t, db, "t@example.com", entity.RoleTeacher, true)
	require.NoError(t, db.Create(&entity.Course{ID: 1, Title: "Go Basics", Description: "intro", CategoryID: 1, TeacherID: 1, PublishedAt: time.Now()}).Error)

	titles, err := repo.CourseTitles(ctx, []uint{1, 99})
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{1: "Go Basics"}, titles)

	empty, err := repo.CourseTitles(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStatsGorm_EnrollmentCountsByMonth(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsGorm(db)
	ctx := context.Background()

	enroll := func(ts time.Time) {
		require.NoError(t, db.Create(&entity.Enrollment{CourseID: 1, UserID: 1, EnrolledAt: ts}).Error)
	}
	enroll(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
	enroll(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	enroll(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))
	// Outside the window, must not be counted.
	enroll(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC))

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	counts, err := repo.EnrollmentCountsByMonth(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{1: 2, 3: 1}, counts)
}
