package services

import (
	"context"
	"errors"
	"strings"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/models"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/storage"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/validation"
)

type itemService struct {
	repo storage.ItemRepository
}

// NewItemService creates a new instance of ItemService.
func NewItemService(repo storage.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return s.repo.FindAll(ctx)
}

func (s *itemService) GetItemByID(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, NewNotFoundError("Item")
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) CreateItem(ctx context.Context, input models.CreateItemInput) (*models.Item, error) {
	// Both checks run; name error first, then price.
	var fieldErrs []validation.FieldError
	if fe := validation.ValidateName(input.Name); fe != nil {
		fieldErrs = append(fieldErrs, *fe)
	}
	if fe := validation.ValidatePrice(input.Price); fe != nil {
		fieldErrs = append(fieldErrs, *fe)
	}
	if len(fieldErrs) > 0 {
		return nil, NewValidationError(fieldErrs)
	}

	return s.repo.Create(ctx, input)
}

func (s *itemService) UpdateItem(ctx context.Context, id int64, input models.UpdateItemInput) (*models.Item, error) {
	// Existence is checked before validation: a PUT on a missing id returns
	// not-found even when the payload is invalid.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, NewNotFoundError("Item")
		}
		return nil, err
	}

	var name string
	if input.Name != nil {
		name = *input.Name
	}

	var fieldErrs []validation.FieldError
	if fe := validation.ValidateName(name); fe != nil {
		fieldErrs = append(fieldErrs, *fe)
	}
	if fe := validation.ValidatePrice(input.Price); fe != nil {
		fieldErrs = append(fieldErrs, *fe)
	}
	if len(fieldErrs) > 0 {
		return nil, NewValidationError(fieldErrs)
	}

	trimmed := strings.TrimSpace(name)
	return s.repo.Update(ctx, id, models.UpdateItemInput{Name: &trimmed, Price: input.Price})
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) (bool, error) {
	// Check-then-act on purpose: existence is confirmed first, so a false
	// result from Delete means the row vanished in between.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, NewNotFoundError("Item")
		}
		return false, err
	}

	return s.repo.Delete(ctx, id)
}

func (s *itemService) GetItemsByPriceRange(ctx context.Context, min, max float64) ([]models.Item, error) {
	return s.repo.FindByPriceRange(ctx, min, max)
}
