package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups every repository over a single *gorm.DB. A Store built inside
// Transaction is the unit of work for one request: all repositories it hands
// out share the same transaction.
type Store struct {
	db *gorm.DB

	Categories        CategoryRepository
	Questions         QuestionRepository
	Checkpoints       CheckpointRepository
	RedFlags          RedFlagRepository
	Freelancers       FreelancerRepository
	Evaluations       EvaluationRepository
	CategoryScores    CategoryScoreRepository
	CheckpointResults CheckpointResultRepository
	RedFlagFindings   RedFlagFindingRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:                db,
		Categories:        NewCategoryRepository(db),
		Questions:         NewQuestionRepository(db),
		Checkpoints:       NewCheckpointRepository(db),
		RedFlags:          NewRedFlagRepository(db),
		Freelancers:       NewFreelancerRepository(db),
		Evaluations:       NewEvaluationRepository(db),
		CategoryScores:    NewCategoryScoreRepository(db),
		CheckpointResults: NewCheckpointResultRepository(db),
		RedFlagFindings:   NewRedFlagFindingRepository(db),
	}
}

// Transaction runs fn with a Store bound to a new transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
