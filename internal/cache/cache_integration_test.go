//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/supermanager/interview-eval/internal/cache"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisRubricCacheSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcredis.RedisContainer
	client    *redis.Client
	cache     *cache.RedisRubricCache
}

func TestRedisRubricCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisRubricCacheSuite))
}

func (s *RedisRubricCacheSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcredis.Run(s.ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	uri, err := container.ConnectionString(s.ctx)
	s.Require().NoError(err)
	opts, err := redis.ParseURL(uri)
	s.Require().NoError(err)

	s.client, err = cache.NewRedisClient(s.ctx, opts.Addr, "", 0)
	s.Require().NoError(err)
	s.cache = cache.NewRedisRubricCache(s.client, time.Minute)
}

func (s *RedisRubricCacheSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if err := testcontainers.TerminateContainer(s.container); err != nil {
		s.T().Logf("terminate container: %v", err)
	}
}

func (s *RedisRubricCacheSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(s.ctx).Err())
}

func (s *RedisRubricCacheSuite) TestRoundTrip() {
	snap, err := s.cache.Get(s.ctx)
	s.Require().NoError(err)
	s.Nil(snap.Rubric, "empty cache is a miss, not an error")
	s.Zero(snap.Generation)

	desc := "설계·테스트·배포"
	rubric := &dto.RubricResponse{Categories: []dto.RubricCategoryResponse{{
		ID:          "c1",
		Name:        "기술 역량 & 문제해결",
		Description: &desc,
		MaxScore:    5,
		Questions:   []dto.QuestionResponse{{ID: "q1", CategoryID: "c1", QuestionText: "최근 프로젝트?"}},
		Checkpoints: []dto.CheckpointResponse{},
		RedFlags:    []dto.RedFlagResponse{},
	}}}
	stored, err := s.cache.Set(s.ctx, snap.Generation, rubric)
	s.Require().NoError(err)
	s.True(stored)

	snap, err = s.cache.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(snap.Rubric)
	s.Equal(rubric.Categories[0].Name, snap.Rubric.Categories[0].Name)
	s.Equal(desc, *snap.Rubric.Categories[0].Description)
	s.Len(snap.Rubric.Categories[0].Questions, 1)

	ttl, err := s.client.TTL(s.ctx, "interview-eval:rubric").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))

	s.Require().NoError(s.cache.Invalidate(s.ctx))
	snap, err = s.cache.Get(s.ctx)
	s.Require().NoError(err)
	s.Nil(snap.Rubric)
	s.Equal(int64(1), snap.Generation)
}

func (s *RedisRubricCacheSuite) TestSetAfterInvalidateIsDropped() {
	rubric := &dto.RubricResponse{Categories: []dto.RubricCategoryResponse{{ID: "c1", Name: "stale"}}}

	loaded, err := s.cache.Get(s.ctx)
	s.Require().NoError(err)

	// A mutation commits between the database load and the write.
	s.Require().NoError(s.cache.Invalidate(s.ctx))

	stored, err := s.cache.Set(s.ctx, loaded.Generation, rubric)
	s.Require().NoError(err)
	s.False(stored)

	snap, err := s.cache.Get(s.ctx)
	s.Require().NoError(err)
	s.Nil(snap.Rubric, "stale tree must not be cached")

	stored, err = s.cache.Set(s.ctx, snap.Generation, rubric)
	s.Require().NoError(err)
	s.True(stored, "a reader that saw the new generation may fill the cache")
}

func (s *RedisRubricCacheSuite) TestCorruptValueIsAnError() {
	s.Require().NoError(s.client.Set(s.ctx, "interview-eval:rubric", "{not json", time.Minute).Err())
	snap, err := s.cache.Get(s.ctx)
	s.Error(err)
	s.Nil(snap.Rubric)
}
