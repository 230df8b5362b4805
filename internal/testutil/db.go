package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/supermanager/interview-eval/database"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/scoring"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database with foreign keys on.
// The pool is pinned to one connection so the in-memory database lives as
// long as the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// NewStore returns a Store over a fresh NewDB.
func NewStore(t testing.TB) *repository.Store {
	t.Helper()
	return repository.NewStore(NewDB(t))
}

// Fixtures creates rubric and evaluation rows directly through a Store.
type Fixtures struct {
	T     testing.TB
	Store *repository.Store
}

func (f Fixtures) Category(name string) *model.Category {
	f.T.Helper()
	c := &model.Category{ID: uuid.NewString(), Name: name, Weight: 20, MaxScore: scoring.MaxCategoryScore, Order: 1}
	require.NoError(f.T, f.Store.Categories.Create(context.Background(), c))
	return c
}

func (f Fixtures) Question(categoryID, text string, order int) *model.Question {
	f.T.Helper()
	q := &model.Question{ID: uuid.NewString(), CategoryID: categoryID, QuestionText: text, Order: order}
	require.NoError(f.T, f.Store.Questions.Create(context.Background(), q))
	return q
}

func (f Fixtures) Checkpoint(categoryID, text string, order int) *model.Checkpoint {
	f.T.Helper()
	cp := &model.Checkpoint{ID: uuid.NewString(), CategoryID: categoryID, CheckpointText: text, Order: order}
	require.NoError(f.T, f.Store.Checkpoints.Create(context.Background(), cp))
	return cp
}

func (f Fixtures) RedFlag(categoryID, text string, order int) *model.RedFlag {
	f.T.Helper()
	rf := &model.RedFlag{ID: uuid.NewString(), CategoryID: categoryID, FlagText: text, Severity: scoring.SeverityMedium, Order: order}
	require.NoError(f.T, f.Store.RedFlags.Create(context.Background(), rf))
	return rf
}

func (f Fixtures) Freelancer(email string) *model.Freelancer {
	f.T.Helper()
	fr := &model.Freelancer{ID: uuid.NewString(), Name: "Kim Dev", Email: email, Phone: "010-1234-5678"}
	require.NoError(f.T, f.Store.Freelancers.Create(context.Background(), fr))
	return fr
}

func (f Fixtures) Evaluation(freelancerID string) *model.Evaluation {
	f.T.Helper()
	e := &model.Evaluation{ID: uuid.NewString(), FreelancerID: freelancerID, EvaluatedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(f.T, f.Store.Evaluations.Create(context.Background(), e))
	return e
}
