package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage/repository"
)

// MockRepo реализует интерфейс ProductRepository
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) CreateProduct(ctx context.Context, req models.DummyProduct) (*models.Product, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) ReadProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) UpdateProduct(ctx context.Context, id string, req models.DummyProduct) (int, error) {
	args := m.Called(ctx, id, req)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) RemoveProduct(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	args := m.Called(ctx, filter)
	if res := args.Get(0); res != nil {
		return res.([]*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) CountProducts(ctx context.Context, category *string) (int, error) {
	args := m.Called(ctx, category)
	return args.Int(0), args.Error(1)
}

// fakeCache — кеш-заглушка: всегда промах, запись и инвалидация без ошибок.
type fakeCache struct{}

func (fakeCache) Get(_ string, _ any) (bool, error)          { return false, nil }
func (fakeCache) Set(_ string, _ any, _ time.Duration) error { return nil }
func (fakeCache) Invalidate(_ string) error                  { return nil }

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		limit    string
		category string
		sort     string
		want     models.ProductFilter
	}{
		{
			name: "all params absent",
			want: models.ProductFilter{Sort: models.SortCreatedDesc, Page: 1},
		},
		{
			name: "sort asc maps to price ascending",
			sort: "asc",
			want: models.ProductFilter{Sort: models.SortPriceAsc, Page: 1},
		},
		{
			name: "sort desc maps to price descending",
			sort: "desc",
			want: models.ProductFilter{Sort: models.SortPriceDesc, Page: 1},
		},
		{
			name: "any other sort value maps to price descending",
			sort: "garbage",
			want: models.ProductFilter{Sort: models.SortPriceDesc, Page: 1},
		},
		{
			name:     "category becomes exact match filter",
			category: "laptops",
			want:     models.ProductFilter{Category: strPtr("laptops"), Sort: models.SortCreatedDesc, Page: 1},
		},
		{
			name:  "limit with default page",
			limit: "10",
			want:  models.ProductFilter{Sort: models.SortCreatedDesc, Limit: intPtr(10), Offset: 0, Page: 1},
		},
		{
			name:  "limit with page computes offset",
			page:  "3",
			limit: "10",
			want:  models.ProductFilter{Sort: models.SortCreatedDesc, Limit: intPtr(10), Offset: 20, Page: 3},
		},
		{
			name:  "unparseable limit disables pagination",
			page:  "2",
			limit: "abc",
			want:  models.ProductFilter{Sort: models.SortCreatedDesc, Page: 2},
		},
		{
			name:  "non-positive limit disables pagination",
			limit: "0",
			want:  models.ProductFilter{Sort: models.SortCreatedDesc, Page: 1},
		},
		{
			name: "non-positive page clamps to 1",
			page: "-5",
			want: models.ProductFilter{Sort: models.SortCreatedDesc, Page: 1},
		},
		{
			name: "unparseable page clamps to 1",
			page: "abc",
			want: models.ProductFilter{Sort: models.SortCreatedDesc, Page: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFilter(tt.page, tt.limit, tt.category, tt.sort)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogService_List_Paginated(t *testing.T) {
	mockRepo := new(MockRepo)
	service := NewCatalogService(mockRepo, fakeCache{}, newNoopLogger())

	filter := models.ProductFilter{
		Category: strPtr("laptops"),
		Sort:     models.SortPriceAsc,
		Limit:    intPtr(10),
		Offset:   10,
		Page:     2,
	}
	products := []*models.Product{
		{ID: "p1", Title: "first", Category: "laptops"},
		{ID: "p2", Title: "second", Category: "laptops"},
	}
	mockRepo.On("ListProducts", mock.Anything, filter).Return(products, nil)
	// Счётчик должен вызываться с тем же фильтром по категории
	mockRepo.On("CountProducts", mock.Anything, filter.Category).Return(25, nil)

	page, err := service.List(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, products, page.Products)
	assert.Equal(t, 25, page.TotalProducts)
	assert.Equal(t, 3, page.TotalPages) // ceil(25/10)
	assert.Equal(t, 2, page.CurrentPage)

	mockRepo.AssertExpectations(t)
}

func TestCatalogService_List_NoLimit(t *testing.T) {
	mockRepo := new(MockRepo)
	service := NewCatalogService(mockRepo, fakeCache{}, newNoopLogger())

	filter := models.ProductFilter{Sort: models.SortCreatedDesc, Page: 1}
	products := []*models.Product{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}
	mockRepo.On("ListProducts", mock.Anything, filter).Return(products, nil)
	mockRepo.On("CountProducts", mock.Anything, (*string)(nil)).Return(3, nil)

	page, err := service.List(context.Background(), filter)
	require.NoError(t, err)

	assert.Len(t, page.Products, 3)
	assert.Equal(t, 3, page.TotalProducts)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestCatalogService_List_EmptyResult(t *testing.T) {
	mockRepo := new(MockRepo)
	service := NewCatalogService(mockRepo, fakeCache{}, newNoopLogger())

	filter := models.ProductFilter{Sort: models.SortCreatedDesc, Limit: intPtr(10), Page: 1}
	mockRepo.On("ListProducts", mock.Anything, filter).Return(nil, nil)
	mockRepo.On("CountProducts", mock.Anything, (*string)(nil)).Return(0, nil)

	page, err := service.List(context.Background(), filter)
	require.NoError(t, err)

	assert.NotNil(t, page.Products)
	assert.Empty(t, page.Products)
	assert.Equal(t, 0, page.TotalProducts)
	assert.Equal(t, 0, page.TotalPages)
}

func TestCatalogService_List_CountError(t *testing.T) {
	mockRepo := new(MockRepo)
	service := NewCatalogService(mockRepo, fakeCache{}, newNoopLogger())

	filter := models.ProductFilter{Sort: models.SortCreatedDesc, Page: 1}
	mockRepo.On("ListProducts", mock.Anything, filter).Return([]*models.Product{{ID: "p1"}}, nil)
	mockRepo.On("CountProducts", mock.Anything, (*string)(nil)).Return(0, errors.New("db error"))

	page, err := service.List(context.Background(), filter)
	assert.Error(t, err)
	assert.Nil(t, page)
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRepo)
	service := NewCatalogService(mockRepo, fakeCache{}, newNoopLogger())

	req := models.DummyProduct{Title: "updated"}
	mockRepo.On("UpdateProduct", mock.Anything, "missing-id", req).Return(0, nil)

	err := service.Update(context.Background(), "missing-id", req)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalogService_Remove_NotFound(t *testing.T) {
	mockRepo := new(MockRepo)
	service := NewCatalogService(mockRepo, fakeCache{}, newNoopLogger())

	mockRepo.On("RemoveProduct", mock.Anything, "missing-id").Return(0, nil)

	err := service.Remove(context.Background(), "missing-id")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalogService_Read_RepoError(t *testing.T) {
	mockRepo := new(MockRepo)
	service := NewCatalogService(mockRepo, fakeCache{}, newNoopLogger())

	mockRepo.On("ReadProduct", mock.Anything, "missing-id").Return(nil, repository.ErrProductNotFound)

	product, err := service.Read(context.Background(), "missing-id")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.Nil(t, product)
}
