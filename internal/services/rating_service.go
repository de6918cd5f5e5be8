package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"climate-repair/internal/dto"
	"climate-repair/internal/entities"
	"climate-repair/internal/repositories"
	apperrors "climate-repair/pkg/errors"
)

type RatingServiceInterface interface {
	GetRating(ctx context.Context, requestID uint64) (*entities.QualityRating, error)
	RateRequest(ctx context.Context, requestID uint64, payload dto.RateQualityDTO) error
}

type ratingService struct {
	ratingRepo  repositories.RatingRepositoryInterface
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewRatingService(
	ratingRepo repositories.RatingRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	logger *zap.Logger,
) RatingServiceInterface {
	return &ratingService{ratingRepo: ratingRepo, requestRepo: requestRepo, logger: logger}
}

func (s *ratingService) GetRating(ctx context.Context, requestID uint64) (*entities.QualityRating, error) {
	return s.ratingRepo.FindByRequestID(ctx, requestID)
}

// RateRequest принимает оценку качества по завершённой заявке.
// Оценить заявку можно ровно один раз.
func (s *ratingService) RateRequest(ctx context.Context, requestID uint64, payload dto.RateQualityDTO) error {
	details, err := s.requestRepo.FindRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if details.StatusID != entities.StatusCompleted {
		return apperrors.NewInvalidInputError("оценить можно только завершённую заявку")
	}

	if _, err := s.ratingRepo.FindByRequestID(ctx, requestID); err == nil {
		return apperrors.ErrConflict
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if err := s.ratingRepo.Create(ctx, requestID, payload.Rating, payload.Comment); err != nil {
		return err
	}
	s.logger.Info("Получена оценка качества",
		zap.Uint64("request_id", requestID),
		zap.String("rating", payload.Rating))
	return nil
}
