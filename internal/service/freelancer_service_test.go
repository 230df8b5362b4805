package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/service"
	"github.com/supermanager/interview-eval/internal/testutil"
)

func TestFreelancerService(t *testing.T) {
	ctx := context.Background()
	svc := service.NewFreelancerService(testutil.NewStore(t))

	created, err := svc.CreateFreelancer(ctx, dto.CreateFreelancerRequest{
		Name:  "Park Ji-won",
		Email: " Park@Example.com ",
		Phone: "010-2222-3333",
	})
	require.NoError(t, err)
	assert.Equal(t, "park@example.com", created.Email)

	got, err := svc.GetFreelancer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	_, err = svc.CreateFreelancer(ctx, dto.CreateFreelancerRequest{Name: "Other", Email: "PARK@example.com", Phone: "010"})
	assert.ErrorIs(t, err, service.ErrAlreadyExists)

	_, err = svc.CreateFreelancer(ctx, dto.CreateFreelancerRequest{Name: " ", Email: "x@example.com", Phone: "010"})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.GetFreelancer(ctx, uuid.NewString())
	assert.ErrorIs(t, err, service.ErrNotFound)
}
