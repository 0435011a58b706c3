package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"tecnico-hr/internal/dto"
	"tecnico-hr/internal/model"
)

func setupTestSpecialtyService() (SpecialtyService, *testRepos) {
	repos := newTestRepos()
	svc := NewSpecialtyService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestSpecialtyService_Create_Success(t *testing.T) {
	svc, _ := setupTestSpecialtyService()

	result, err := svc.Create(context.Background(), &dto.CreateSpecialtyRequest{
		Name:        "Refrigeración",
		Description: "Equipos de frío industrial",
	})
	if err != nil {
		t.Fatalf("Create 应成功，但返回错误: %v", err)
	}
	if result.Name != "Refrigeración" {
		t.Errorf("期望 Refrigeración，实际 %s", result.Name)
	}
	if !result.IsActive {
		t.Error("新专长应默认启用")
	}
}

func TestSpecialtyService_Create_NameExists(t *testing.T) {
	svc, _ := setupTestSpecialtyService()

	if _, err := svc.Create(context.Background(), &dto.CreateSpecialtyRequest{Name: "Electricidad"}); err != nil {
		t.Fatalf("首次创建应成功: %v", err)
	}
	_, err := svc.Create(context.Background(), &dto.CreateSpecialtyRequest{Name: "Electricidad"})
	if !errors.Is(err, ErrSpecialtyNameExists) {
		t.Fatalf("期望 ErrSpecialtyNameExists，实际 %v", err)
	}
}

func TestSpecialtyService_List_ActiveOnly(t *testing.T) {
	svc, repos := setupTestSpecialtyService()
	_ = repos.specialty.Create(context.Background(), &model.Specialty{Name: "Electricidad", IsActive: true})
	_ = repos.specialty.Create(context.Background(), &model.Specialty{Name: "Gasfitería", IsActive: false})

	result, err := svc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 1 || result[0].Name != "Electricidad" {
		t.Errorf("默认只应返回启用的专长，实际 %v", result)
	}

	all, err := svc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("includeInactive 应返回全部，实际 %d 条", len(all))
	}
}

func TestSpecialtyService_Update_Deactivate(t *testing.T) {
	svc, repos := setupTestSpecialtyService()
	sp := &model.Specialty{Name: "Soldadura", IsActive: true}
	_ = repos.specialty.Create(context.Background(), sp)

	inactive := false
	result, err := svc.Update(context.Background(), sp.SpecialtyID, &dto.UpdateSpecialtyRequest{
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.IsActive {
		t.Error("专长应已停用")
	}
}

func TestSpecialtyService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestSpecialtyService()

	name := "Otra"
	_, err := svc.Update(context.Background(), "no-such-id", &dto.UpdateSpecialtyRequest{Name: &name})
	if !errors.Is(err, ErrSpecialtyNotFound) {
		t.Fatalf("期望 ErrSpecialtyNotFound，实际 %v", err)
	}
}

func TestSpecialtyService_Delete_Success(t *testing.T) {
	svc, repos := setupTestSpecialtyService()
	sp := &model.Specialty{Name: "Soldadura", IsActive: true}
	_ = repos.specialty.Create(context.Background(), sp)

	if err := svc.Delete(context.Background(), sp.SpecialtyID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := repos.specialty.GetByID(context.Background(), sp.SpecialtyID); err == nil {
		t.Error("专长应已删除")
	}
}

func TestSpecialtyService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestSpecialtyService()

	if err := svc.Delete(context.Background(), "no-such-id"); !errors.Is(err, ErrSpecialtyNotFound) {
		t.Fatalf("期望 ErrSpecialtyNotFound，实际 %v", err)
	}
}
