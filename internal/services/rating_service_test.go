package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"climate-repair/internal/authz"
	"climate-repair/internal/dto"
	"climate-repair/internal/entities"
	apperrors "climate-repair/pkg/errors"
)

type fakeRequestRepo struct {
	details map[uint64]*entities.RequestDetails
}

func (f *fakeRequestRepo) GetRequests(context.Context, authz.DataFilter, dto.RequestListFilterDTO) ([]entities.RequestDetails, error) {
	return nil, nil
}

func (f *fakeRequestRepo) FindRequest(_ context.Context, id uint64) (*entities.RequestDetails, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return d, nil
}

func (f *fakeRequestRepo) CreateRequest(context.Context, uint64, dto.CreateRequestDTO) (uint64, error) {
	return 0, nil
}

func (f *fakeRequestRepo) AssignMaster(context.Context, uint64, uint64) error { return nil }

func (f *fakeRequestRepo) UpdateStatus(context.Context, uint64, uint64, bool) error { return nil }

type fakeRatingRepo struct {
	ratings map[uint64]*entities.QualityRating
	created []entities.QualityRating
}

func (f *fakeRatingRepo) FindByRequestID(_ context.Context, requestID uint64) (*entities.QualityRating, error) {
	r, ok := f.ratings[requestID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return r, nil
}

func (f *fakeRatingRepo) Create(_ context.Context, requestID uint64, rating, comment string) error {
	f.created = append(f.created, entities.QualityRating{RequestID: requestID, Rating: rating, Comment: comment})
	return nil
}

func requestInStatus(id, statusID uint64) *entities.RequestDetails {
	d := &entities.RequestDetails{}
	d.ID = id
	d.StatusID = statusID
	return d
}

func TestRateRequest_OnlyCompleted(t *testing.T) {
	requests := &fakeRequestRepo{details: map[uint64]*entities.RequestDetails{
		1: requestInStatus(1, entities.StatusInProgress),
	}}
	ratings := &fakeRatingRepo{ratings: map[uint64]*entities.QualityRating{}}
	svc := NewRatingService(ratings, requests, zap.NewNop())

	err := svc.RateRequest(context.Background(), 1, dto.RateQualityDTO{Rating: entities.RatingGood})
	require.Error(t, err)

	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Empty(t, ratings.created)
}

func TestRateRequest_OncePerRequest(t *testing.T) {
	requests := &fakeRequestRepo{details: map[uint64]*entities.RequestDetails{
		1: requestInStatus(1, entities.StatusCompleted),
	}}
	ratings := &fakeRatingRepo{ratings: map[uint64]*entities.QualityRating{
		1: {RequestID: 1, Rating: entities.RatingNormal},
	}}
	svc := NewRatingService(ratings, requests, zap.NewNop())

	err := svc.RateRequest(context.Background(), 1, dto.RateQualityDTO{Rating: entities.RatingGood})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Empty(t, ratings.created)
}

func TestRateRequest_Success(t *testing.T) {
	requests := &fakeRequestRepo{details: map[uint64]*entities.RequestDetails{
		1: requestInStatus(1, entities.StatusCompleted),
	}}
	ratings := &fakeRatingRepo{ratings: map[uint64]*entities.QualityRating{}}
	svc := NewRatingService(ratings, requests, zap.NewNop())

	err := svc.RateRequest(context.Background(), 1, dto.RateQualityDTO{Rating: entities.RatingGood, Comment: "Быстро починили"})
	require.NoError(t, err)
	require.Len(t, ratings.created, 1)
	assert.Equal(t, entities.RatingGood, ratings.created[0].Rating)
}

func TestRateRequest_UnknownRequest(t *testing.T) {
	svc := NewRatingService(
		&fakeRatingRepo{ratings: map[uint64]*entities.QualityRating{}},
		&fakeRequestRepo{details: map[uint64]*entities.RequestDetails{}},
		zap.NewNop(),
	)

	err := svc.RateRequest(context.Background(), 99, dto.RateQualityDTO{Rating: entities.RatingBad})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
