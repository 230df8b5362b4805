package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"github.com/supermanager/interview-eval/internal/cache"
	"github.com/supermanager/interview-eval/internal/cache/mocks"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/metrics"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/scoring"
	"github.com/supermanager/interview-eval/internal/service"
	"github.com/supermanager/interview-eval/internal/testutil"
	"go.uber.org/mock/gomock"
)

type RubricServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *repository.Store
	fx      testutil.Fixtures
	metrics *metrics.Metrics
	svc     service.RubricService
}

func TestRubricServiceSuite(t *testing.T) {
	suite.Run(t, new(RubricServiceSuite))
}

func (s *RubricServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = testutil.NewStore(s.T())
	s.fx = testutil.Fixtures{T: s.T(), Store: s.store}
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.svc = service.NewRubricService(s.store, nil, s.metrics)
}

func ptr[T any](v T) *T { return &v }

func (s *RubricServiceSuite) TestCreateCategory() {
	s.Run("applies defaults", func() {
		got, err := s.svc.CreateCategory(s.ctx, dto.CreateCategoryRequest{Name: "  Communication "})
		s.Require().NoError(err)
		s.Equal("Communication", got.Name)
		s.Equal(1, got.Weight)
		s.Equal(scoring.MaxCategoryScore, got.MaxScore)
		s.Equal(0, got.Order)
	})

	s.Run("duplicate name", func() {
		_, err := s.svc.CreateCategory(s.ctx, dto.CreateCategoryRequest{Name: "Communication"})
		s.ErrorIs(err, service.ErrDuplicateName)
	})

	s.Run("blank name", func() {
		_, err := s.svc.CreateCategory(s.ctx, dto.CreateCategoryRequest{Name: "   "})
		s.ErrorIs(err, service.ErrValidation)
	})

	s.Run("explicit values", func() {
		got, err := s.svc.CreateCategory(s.ctx, dto.CreateCategoryRequest{
			Name: "Delivery", Description: ptr("일정 준수"), Weight: ptr(20), MaxScore: ptr(5.0), Order: ptr(3),
		})
		s.Require().NoError(err)
		s.Equal(20, got.Weight)
		s.Equal(3, got.Order)
		s.Equal("일정 준수", *got.Description)
	})
}

func (s *RubricServiceSuite) TestUpdateCategory() {
	a := s.fx.Category("Alpha")
	s.fx.Category("Bravo")

	got, err := s.svc.UpdateCategory(s.ctx, a.ID, dto.UpdateCategoryRequest{Weight: ptr(30)})
	s.Require().NoError(err)
	s.Equal("Alpha", got.Name)
	s.Equal(30, got.Weight)

	_, err = s.svc.UpdateCategory(s.ctx, a.ID, dto.UpdateCategoryRequest{Name: ptr("Bravo")})
	s.ErrorIs(err, service.ErrDuplicateName)

	got, err = s.svc.UpdateCategory(s.ctx, a.ID, dto.UpdateCategoryRequest{Name: ptr("Alpha")})
	s.Require().NoError(err, "keeping the current name is not a collision")
	s.Equal("Alpha", got.Name)

	_, err = s.svc.UpdateCategory(s.ctx, uuid.NewString(), dto.UpdateCategoryRequest{Weight: ptr(1)})
	s.ErrorIs(err, service.ErrNotFound)
}

func (s *RubricServiceSuite) TestListCategories() {
	for _, name := range []string{"Technical", "Communication", "Teamwork"} {
		s.fx.Category(name)
	}

	page, err := s.svc.ListCategories(s.ctx, dto.CategoryListQuery{Search: "te", SortBy: "name"})
	s.Require().NoError(err)
	s.EqualValues(2, page.Total)
	s.Equal(repository.DefaultPageLimit, page.Limit)
	s.Equal(1, page.TotalPages)
	s.Equal("Teamwork", page.Data[0].Name)

	empty, err := s.svc.ListCategories(s.ctx, dto.CategoryListQuery{Search: "nothing matches"})
	s.Require().NoError(err)
	s.NotNil(empty.Data)
	s.Zero(empty.TotalPages)
}

func (s *RubricServiceSuite) TestDeleteCategoryNeedsConfirmation() {
	c := s.fx.Category("Technical")
	s.fx.Question(c.ID, "q", 1)
	cp := s.fx.Checkpoint(c.ID, "cp", 1)
	e := s.fx.Evaluation(s.fx.Freelancer("confirm@example.com").ID)
	s.Require().NoError(s.store.CheckpointResults.Create(s.ctx, &model.CheckpointResult{
		ID: uuid.NewString(), EvaluationID: e.ID, CheckpointID: cp.ID, IsChecked: true,
	}))

	impact, err := s.svc.DeleteCategory(s.ctx, c.ID, false)
	s.Require().NoError(err)
	s.False(impact.Deleted)
	s.EqualValues(1, impact.Questions)
	s.EqualValues(1, impact.Checkpoints)
	s.EqualValues(1, impact.CheckpointResults)

	_, err = s.svc.GetCategory(s.ctx, c.ID)
	s.Require().NoError(err, "unconfirmed delete leaves the category in place")

	impact, err = s.svc.DeleteCategory(s.ctx, c.ID, true)
	s.Require().NoError(err)
	s.True(impact.Deleted)
	s.EqualValues(1, impact.CheckpointResults)

	_, err = s.svc.GetCategory(s.ctx, c.ID)
	s.ErrorIs(err, service.ErrNotFound)
	_, err = s.store.CheckpointResults.FindByPair(s.ctx, e.ID, cp.ID)
	s.ErrorIs(err, repository.ErrNotFound)

	_, err = s.svc.DeleteCategory(s.ctx, c.ID, true)
	s.ErrorIs(err, service.ErrNotFound)

	s.Equal(1.0, promtest.ToFloat64(s.metrics.RubricDeletes.WithLabelValues("category")))
}

func (s *RubricServiceSuite) TestRubricItems() {
	c := s.fx.Category("Technical")

	s.Run("questions", func() {
		q, err := s.svc.CreateQuestion(s.ctx, dto.CreateQuestionRequest{CategoryID: c.ID, QuestionText: "Hardest bug?", Order: 1})
		s.Require().NoError(err)
		s.Equal(c.ID, q.CategoryID)

		q, err = s.svc.UpdateQuestion(s.ctx, q.ID, dto.UpdateQuestionRequest{QuestionText: ptr("Hardest outage?")})
		s.Require().NoError(err)
		s.Equal("Hardest outage?", q.QuestionText)
		s.Equal(1, q.Order)

		page, err := s.svc.ListQuestions(s.ctx, c.ID, dto.PageQuery{})
		s.Require().NoError(err)
		s.EqualValues(1, page.Total)

		s.Require().NoError(s.svc.DeleteQuestion(s.ctx, q.ID))
		s.ErrorIs(s.svc.DeleteQuestion(s.ctx, q.ID), service.ErrNotFound)

		_, err = s.svc.CreateQuestion(s.ctx, dto.CreateQuestionRequest{CategoryID: uuid.NewString(), QuestionText: "orphan"})
		s.ErrorIs(err, service.ErrNotFound)
		_, err = s.svc.ListQuestions(s.ctx, uuid.NewString(), dto.PageQuery{})
		s.ErrorIs(err, service.ErrNotFound)
	})

	s.Run("checkpoints", func() {
		cp, err := s.svc.CreateCheckpoint(s.ctx, dto.CreateCheckpointRequest{CategoryID: c.ID, CheckpointText: "Explains trade-offs"})
		s.Require().NoError(err)

		cp, err = s.svc.UpdateCheckpoint(s.ctx, cp.ID, dto.UpdateCheckpointRequest{Order: ptr(4)})
		s.Require().NoError(err)
		s.Equal(4, cp.Order)
		s.Equal("Explains trade-offs", cp.CheckpointText)

		_, err = s.svc.UpdateCheckpoint(s.ctx, cp.ID, dto.UpdateCheckpointRequest{CheckpointText: ptr("  ")})
		s.ErrorIs(err, service.ErrValidation)

		impact, err := s.svc.DeleteCheckpoint(s.ctx, cp.ID, false)
		s.Require().NoError(err)
		s.False(impact.Deleted)
		s.EqualValues(1, impact.Checkpoints)

		impact, err = s.svc.DeleteCheckpoint(s.ctx, cp.ID, true)
		s.Require().NoError(err)
		s.True(impact.Deleted)
	})

	s.Run("red flags", func() {
		rf, err := s.svc.CreateRedFlag(s.ctx, dto.CreateRedFlagRequest{CategoryID: c.ID, FlagText: "Vague answers"})
		s.Require().NoError(err)
		s.Equal(scoring.SeverityMedium, rf.Severity)

		_, err = s.svc.CreateRedFlag(s.ctx, dto.CreateRedFlagRequest{CategoryID: c.ID, FlagText: "x", Severity: ptr("extreme")})
		s.ErrorIs(err, service.ErrInvalidEnum)

		rf, err = s.svc.UpdateRedFlag(s.ctx, rf.ID, dto.UpdateRedFlagRequest{Severity: ptr("critical")})
		s.Require().NoError(err)
		s.Equal(scoring.SeverityCritical, rf.Severity)

		page, err := s.svc.ListRedFlags(s.ctx, c.ID, dto.PageQuery{})
		s.Require().NoError(err)
		s.Require().Len(page.Data, 1)

		impact, err := s.svc.DeleteRedFlag(s.ctx, rf.ID, true)
		s.Require().NoError(err)
		s.True(impact.Deleted)
		s.EqualValues(1, impact.RedFlags)
	})
}

func (s *RubricServiceSuite) TestGetRubricAssemblesTree() {
	c := s.fx.Category("Technical")
	s.fx.Question(c.ID, "q2", 2)
	s.fx.Question(c.ID, "q1", 1)
	s.fx.Checkpoint(c.ID, "cp", 1)

	rubric, err := s.svc.GetRubric(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rubric.Categories, 1)
	cat := rubric.Categories[0]
	s.Equal("Technical", cat.Name)
	s.Require().Len(cat.Questions, 2)
	s.Equal("q1", cat.Questions[0].QuestionText)
	s.Len(cat.Checkpoints, 1)
	s.NotNil(cat.RedFlags)
	s.Empty(cat.RedFlags)
}

func (s *RubricServiceSuite) TestGetRubricUsesCache() {
	ctrl := gomock.NewController(s.T())
	rubricCache := mocks.NewMockRubricCache(ctrl)
	svc := service.NewRubricService(s.store, rubricCache, s.metrics)
	s.fx.Category("Technical")

	s.Run("miss loads and stores", func() {
		rubricCache.EXPECT().Get(gomock.Any()).Return(cache.Snapshot{Generation: 3}, nil)
		rubricCache.EXPECT().Set(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, r *dto.RubricResponse) (bool, error) {
			s.Len(r.Categories, 1)
			return true, nil
		})

		got, err := svc.GetRubric(s.ctx)
		s.Require().NoError(err)
		s.Len(got.Categories, 1)
	})

	s.Run("invalidated while loading still serves the tree", func() {
		rubricCache.EXPECT().Get(gomock.Any()).Return(cache.Snapshot{Generation: 7}, nil)
		rubricCache.EXPECT().Set(gomock.Any(), int64(7), gomock.Any()).Return(false, nil)

		got, err := svc.GetRubric(s.ctx)
		s.Require().NoError(err)
		s.Equal("Technical", got.Categories[0].Name)
	})

	s.Run("hit skips the database", func() {
		cached := &dto.RubricResponse{Categories: []dto.RubricCategoryResponse{{Name: "from cache"}}}
		rubricCache.EXPECT().Get(gomock.Any()).Return(cache.Snapshot{Rubric: cached, Generation: 3}, nil)

		got, err := svc.GetRubric(s.ctx)
		s.Require().NoError(err)
		s.Same(cached, got)
	})

	s.Run("backend error falls back to the database without writing", func() {
		rubricCache.EXPECT().Get(gomock.Any()).Return(cache.Snapshot{}, errors.New("connection refused"))

		got, err := svc.GetRubric(s.ctx)
		s.Require().NoError(err)
		s.Equal("Technical", got.Categories[0].Name)
	})

	s.Run("mutations invalidate", func() {
		rubricCache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		_, err := svc.CreateCategory(s.ctx, dto.CreateCategoryRequest{Name: "Communication"})
		s.Require().NoError(err)
	})

	s.Run("failed mutation does not invalidate", func() {
		_, err := svc.CreateCategory(s.ctx, dto.CreateCategoryRequest{Name: "Communication"})
		s.ErrorIs(err, service.ErrDuplicateName)
	})

	s.Run("unconfirmed delete does not invalidate", func() {
		c := s.fx.Category("Soft skills")
		_, err := svc.DeleteCategory(s.ctx, c.ID, false)
		s.Require().NoError(err)
	})

	s.Equal(1.0, promtest.ToFloat64(s.metrics.RubricCacheLookups.WithLabelValues("hit")))
	s.Equal(2.0, promtest.ToFloat64(s.metrics.RubricCacheLookups.WithLabelValues("miss")))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.RubricCacheLookups.WithLabelValues("error")))
}
