package branch

import (
	"context"
	"testing"

	"coachbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) Create(ctx context.Context, b *domain.Branch) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999
	}
	return args.Error(0)
}

func (m *MockBranchRepository) Update(ctx context.Context, b *domain.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepository) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchRepository) List(ctx context.Context, activeOnly bool) ([]domain.Branch, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

func (m *MockBranchRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate_DefaultsToActive(t *testing.T) {
	repo := new(MockBranchRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Branch) bool {
		return b.IsActive && b.Name == "Downtown"
	})).Return(nil)

	service := NewService(repo)

	b, err := service.Create(context.Background(), CreateBranchRequest{Name: "  Downtown ", Address: "12 Abay Ave"})

	require.NoError(t, err)
	assert.True(t, b.IsActive)
	repo.AssertExpectations(t)
}

func TestCreate_EmptyName(t *testing.T) {
	service := NewService(new(MockBranchRepository))

	_, err := service.Create(context.Background(), CreateBranchRequest{Name: "   "})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestDelete_SoftDeletes(t *testing.T) {
	repo := new(MockBranchRepository)
	repo.On("Deactivate", mock.Anything, int64(1)).Return(nil)

	service := NewService(repo)

	assert.NoError(t, service.Delete(context.Background(), 1))
	repo.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockBranchRepository)
	repo.On("Deactivate", mock.Anything, int64(99)).Return(gorm.ErrRecordNotFound)

	service := NewService(repo)

	assert.ErrorIs(t, service.Delete(context.Background(), 99), ErrNotFound)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := new(MockBranchRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Branch{
		ID: 1, Name: "Downtown", Address: "12 Abay Ave", IsActive: true,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Branch) bool {
		return b.Name == "Downtown" && !b.IsActive
	})).Return(nil)

	service := NewService(repo)

	inactive := false
	b, err := service.Update(context.Background(), 1, UpdateBranchRequest{IsActive: &inactive})

	require.NoError(t, err)
	assert.False(t, b.IsActive)
	repo.AssertExpectations(t)
}
