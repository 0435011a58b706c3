package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/model"
	"tecnico-hr/internal/repository"
)

// ── 专长模块业务错误 ──

var (
	ErrSpecialtyNotFound   = errors.New("专长不存在")
	ErrSpecialtyNameExists = errors.New("专长名称已存在")
)

// SpecialtyService 专长业务接口
type SpecialtyService interface {
	Create(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SpecialtyResponse, error)
	// List 默认只返回启用的专长；includeInactive 为 true 时返回全部
	List(ctx context.Context, includeInactive bool) ([]dto.SpecialtyResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	Delete(ctx context.Context, id string) error
}

type specialtyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSpecialtyService 创建 SpecialtyService 实例
func NewSpecialtyService(repo *repository.Repository, logger *zap.Logger) SpecialtyService {
	return &specialtyService{repo: repo, logger: logger}
}

func (s *specialtyService) Create(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	specialty := &model.Specialty{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.repo.Specialty.Create(ctx, specialty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSpecialtyNameExists
		}
		s.logger.Error("创建专长失败", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return toSpecialtyResponse(specialty), nil
}

func (s *specialtyService) GetByID(ctx context.Context, id string) (*dto.SpecialtyResponse, error) {
	specialty, err := s.repo.Specialty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialtyNotFound
		}
		return nil, err
	}
	return toSpecialtyResponse(specialty), nil
}

func (s *specialtyService) List(ctx context.Context, includeInactive bool) ([]dto.SpecialtyResponse, error) {
	var (
		specialties []model.Specialty
		err         error
	)
	if includeInactive {
		specialties, err = s.repo.Specialty.ListAll(ctx)
	} else {
		specialties, err = s.repo.Specialty.List(ctx)
	}
	if err != nil {
		s.logger.Error("查询专长列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SpecialtyResponse, 0, len(specialties))
	for i := range specialties {
		result = append(result, *toSpecialtyResponse(&specialties[i]))
	}
	return result, nil
}

func (s *specialtyService) Update(ctx context.Context, id string, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	specialty, err := s.repo.Specialty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialtyNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		specialty.Name = *req.Name
	}
	if req.Description != nil {
		specialty.Description = *req.Description
	}
	if req.IsActive != nil {
		specialty.IsActive = *req.IsActive
	}

	if err := s.repo.Specialty.Update(ctx, specialty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSpecialtyNameExists
		}
		s.logger.Error("更新专长失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toSpecialtyResponse(specialty), nil
}

func (s *specialtyService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Specialty.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpecialtyNotFound
		}
		return err
	}
	if err := s.repo.Specialty.Delete(ctx, id); err != nil {
		s.logger.Error("删除专长失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toSpecialtyResponse(sp *model.Specialty) *dto.SpecialtyResponse {
	return &dto.SpecialtyResponse{
		ID:          sp.SpecialtyID,
		Name:        sp.Name,
		Description: sp.Description,
		IsActive:    sp.IsActive,
	}
}
