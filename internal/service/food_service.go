package service

import (
	"context"
	"errors"

	"sugarsense/internal/model"
	"sugarsense/internal/repository"
)

var (
	ErrFoodNotFound = errors.New("food not found")
	ErrInvalidFood  = errors.New("food needs a name and a non-negative brix value")
)

// FoodService handles reference food CRUD operations
type FoodService struct {
	foodRepo repository.FoodRepo
}

// NewFoodService creates a new food service
func NewFoodService(foodRepo repository.FoodRepo) *FoodService {
	return &FoodService{
		foodRepo: foodRepo,
	}
}

// Create creates a new reference food
func (s *FoodService) Create(ctx context.Context, food *model.Food) error {
	if err := validateFood(food); err != nil {
		return err
	}
	return s.foodRepo.Create(ctx, food)
}

// GetByID retrieves a food by ID
func (s *FoodService) GetByID(ctx context.Context, id string) (*model.Food, error) {
	return s.foodRepo.GetByID(ctx, id)
}

// List retrieves all foods in display order
func (s *FoodService) List(ctx context.Context) ([]model.Food, error) {
	return s.foodRepo.List(ctx)
}

// Update updates an existing food
func (s *FoodService) Update(ctx context.Context, food *model.Food) error {
	if err := validateFood(food); err != nil {
		return err
	}
	existing, err := s.foodRepo.GetByID(ctx, food.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrFoodNotFound
	}
	return s.foodRepo.Update(ctx, food)
}

// Delete deletes a food
func (s *FoodService) Delete(ctx context.Context, id string) error {
	existing, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrFoodNotFound
	}
	return s.foodRepo.Delete(ctx, id)
}

func validateFood(food *model.Food) error {
	if (food.NameIT == "" && food.NameEN == "") || food.Brix < 0 {
		return ErrInvalidFood
	}
	return nil
}
