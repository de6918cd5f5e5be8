package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"climate-repair/internal/dto"
	"climate-repair/internal/repositories"
	apperrors "climate-repair/pkg/errors"
)

type DictionaryServiceInterface interface {
	GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error)
	GetEquipmentModels(ctx context.Context, typeID uint64) ([]dto.EquipmentModelDTO, error)
	GetStatuses(ctx context.Context) ([]dto.StatusDTO, error)
}

// dictionaryService читает справочники сквозь Redis-кэш: промах идёт в
// Postgres и кладёт результат в кэш. Сбой Redis не роняет запрос,
// данные просто читаются из базы.
type dictionaryService struct {
	dictRepo  repositories.DictionaryRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
}

func NewDictionaryService(
	dictRepo repositories.DictionaryRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) DictionaryServiceInterface {
	return &dictionaryService{dictRepo: dictRepo, cacheRepo: cacheRepo, logger: logger}
}

func (s *dictionaryService) GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error) {
	var cached []dto.EquipmentTypeDTO
	if err := s.cacheRepo.Get(ctx, repositories.CacheKeyEquipmentTypes, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("Кэш справочника недоступен", zap.Error(err))
	}

	types, err := s.dictRepo.GetEquipmentTypes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquipmentTypeDTO, 0, len(types))
	for _, t := range types {
		out = append(out, dto.EquipmentTypeDTO{ID: t.ID, Name: t.Name})
	}
	if err := s.cacheRepo.Set(ctx, repositories.CacheKeyEquipmentTypes, out, repositories.DictionaryCacheTTL); err != nil {
		s.logger.Warn("Не удалось записать справочник в кэш", zap.Error(err))
	}
	return out, nil
}

// Модели не кэшируются: выборка зависит от typeID и сама по себе дешёвая.
func (s *dictionaryService) GetEquipmentModels(ctx context.Context, typeID uint64) ([]dto.EquipmentModelDTO, error) {
	models, err := s.dictRepo.GetEquipmentModels(ctx, typeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquipmentModelDTO, 0, len(models))
	for _, m := range models {
		out = append(out, dto.EquipmentModelDTO{ID: m.ID, Name: m.Name, TypeID: m.TypeID, Manufacturer: m.Manufacturer})
	}
	return out, nil
}

func (s *dictionaryService) GetStatuses(ctx context.Context) ([]dto.StatusDTO, error) {
	var cached []dto.StatusDTO
	if err := s.cacheRepo.Get(ctx, repositories.CacheKeyStatuses, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("Кэш справочника недоступен", zap.Error(err))
	}

	statuses, err := s.dictRepo.GetStatuses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StatusDTO, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, dto.StatusDTO{ID: st.ID, Name: st.Name, Color: st.Color})
	}
	if err := s.cacheRepo.Set(ctx, repositories.CacheKeyStatuses, out, repositories.DictionaryCacheTTL); err != nil {
		s.logger.Warn("Не удалось записать справочник в кэш", zap.Error(err))
	}
	return out, nil
}
