package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/models"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/services"
	"github.com/davidpincheira/coding-interview-backend-level-3/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockItemRepository is a mock type for the storage.ItemRepository interface
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, input models.CreateItemInput) (*models.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) FindAll(ctx context.Context) ([]models.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, id int64, input models.UpdateItemInput) (*models.Item, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) FindByPriceRange(ctx context.Context, min, max float64) ([]models.Item, error) {
	args := m.Called(ctx, min, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

// Ensure mock implements the interface
var _ storage.ItemRepository = (*MockItemRepository)(nil)

func ptr(s string) *string { return &s }

func TestItemService_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("valid input delegates to repository", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		input := models.CreateItemInput{Name: "Widget", Price: 9.99}
		created := &models.Item{ID: 1, Name: "Widget", Price: 9.99}
		mockRepo.On("Create", ctx, input).Return(created, nil).Once()

		item, err := svc.CreateItem(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, created, item)
		mockRepo.AssertExpectations(t)
	})

	t.Run("negative price never reaches repository", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		_, err := svc.CreateItem(ctx, models.CreateItemInput{Name: "Widget", Price: -10})

		var svcErr *services.Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, services.KindValidation, svcErr.Kind)
		require.Len(t, svcErr.Fields, 1)
		assert.Equal(t, "price", svcErr.Fields[0].Field)
		assert.Equal(t, `Field "price" cannot be negative`, svcErr.Fields[0].Message)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing price reported as required", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		_, err := svc.CreateItem(ctx, models.CreateItemInput{Name: "Widget", Price: math.NaN()})

		var svcErr *services.Error
		require.ErrorAs(t, err, &svcErr)
		require.Len(t, svcErr.Fields, 1)
		assert.Equal(t, `Field "price" is required`, svcErr.Fields[0].Message)
	})

	t.Run("both errors accumulate, name first", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		_, err := svc.CreateItem(ctx, models.CreateItemInput{Name: "  ", Price: -1})

		var svcErr *services.Error
		require.ErrorAs(t, err, &svcErr)
		require.Len(t, svcErr.Fields, 2)
		assert.Equal(t, "name", svcErr.Fields[0].Field)
		assert.Equal(t, "price", svcErr.Fields[1].Field)
	})
}

func TestItemService_UpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("not found wins over invalid payload", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		mockRepo.On("FindByID", ctx, int64(99)).Return(nil, storage.ErrNotFound).Once()

		// Payload is invalid too, but existence is checked first.
		_, err := svc.UpdateItem(ctx, 99, models.UpdateItemInput{Name: ptr(""), Price: -5})

		var svcErr *services.Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, services.KindNotFound, svcErr.Kind)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("existing item with invalid price is rejected without update", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		existing := &models.Item{ID: 1, Name: "Widget", Price: 10}
		mockRepo.On("FindByID", ctx, int64(1)).Return(existing, nil).Once()

		_, err := svc.UpdateItem(ctx, 1, models.UpdateItemInput{Name: ptr("Widget"), Price: -20})

		var svcErr *services.Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, services.KindValidation, svcErr.Kind)
		require.Len(t, svcErr.Fields, 1)
		assert.Equal(t, `Field "price" cannot be negative`, svcErr.Fields[0].Message)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing name on update is required", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		existing := &models.Item{ID: 1, Name: "Widget", Price: 10}
		mockRepo.On("FindByID", ctx, int64(1)).Return(existing, nil).Once()

		_, err := svc.UpdateItem(ctx, 1, models.UpdateItemInput{Name: nil, Price: 5})

		var svcErr *services.Error
		require.ErrorAs(t, err, &svcErr)
		require.Len(t, svcErr.Fields, 1)
		assert.Equal(t, `Field "name" is required`, svcErr.Fields[0].Message)
	})

	t.Run("name is trimmed before persisting", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		existing := &models.Item{ID: 1, Name: "Widget", Price: 10}
		updated := &models.Item{ID: 1, Name: "Gadget", Price: 15}
		mockRepo.On("FindByID", ctx, int64(1)).Return(existing, nil).Once()
		mockRepo.On("Update", ctx, int64(1), mock.MatchedBy(func(in models.UpdateItemInput) bool {
			return in.Name != nil && *in.Name == "Gadget" && in.Price == 15
		})).Return(updated, nil).Once()

		item, err := svc.UpdateItem(ctx, 1, models.UpdateItemInput{Name: ptr("  Gadget  "), Price: 15})

		require.NoError(t, err)
		assert.Equal(t, updated, item)
		mockRepo.AssertExpectations(t)
	})
}

func TestItemService_DeleteItem(t *testing.T) {
	ctx := context.Background()

	t.Run("not found before delete", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		mockRepo.On("FindByID", ctx, int64(42)).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.DeleteItem(ctx, 42)

		var svcErr *services.Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, services.KindNotFound, svcErr.Kind)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("existing item is deleted", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		existing := &models.Item{ID: 42, Name: "Widget", Price: 1}
		mockRepo.On("FindByID", ctx, int64(42)).Return(existing, nil).Once()
		mockRepo.On("Delete", ctx, int64(42)).Return(true, nil).Once()

		deleted, err := svc.DeleteItem(ctx, 42)

		require.NoError(t, err)
		assert.True(t, deleted)
		mockRepo.AssertExpectations(t)
	})

	t.Run("delete race reports false without error", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		existing := &models.Item{ID: 42, Name: "Widget", Price: 1}
		mockRepo.On("FindByID", ctx, int64(42)).Return(existing, nil).Once()
		mockRepo.On("Delete", ctx, int64(42)).Return(false, nil).Once()

		deleted, err := svc.DeleteItem(ctx, 42)

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestItemService_PassThroughs(t *testing.T) {
	ctx := context.Background()

	t.Run("GetAllItems", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		items := []models.Item{{ID: 1, Name: "a", Price: 1}}
		mockRepo.On("FindAll", ctx).Return(items, nil).Once()

		got, err := svc.GetAllItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("GetItemByID maps storage not-found", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		mockRepo.On("FindByID", ctx, int64(7)).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.GetItemByID(ctx, 7)
		var svcErr *services.Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, services.KindNotFound, svcErr.Kind)
	})

	t.Run("storage errors propagate unmodified", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		dbErr := errors.New("connection refused")
		mockRepo.On("FindAll", ctx).Return(nil, dbErr).Once()

		_, err := svc.GetAllItems(ctx)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("GetItemsByPriceRange", func(t *testing.T) {
		mockRepo := new(MockItemRepository)
		svc := services.NewItemService(mockRepo)

		items := []models.Item{{ID: 1, Name: "a", Price: 5}}
		mockRepo.On("FindByPriceRange", ctx, 1.0, 10.0).Return(items, nil).Once()

		got, err := svc.GetItemsByPriceRange(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})
}
