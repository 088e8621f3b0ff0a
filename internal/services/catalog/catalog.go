// Package services содержит бизнес-логику каталога товаров: построение
// фильтра выборки из параметров запроса, сборку страницы выдачи
// и CRUD-операции с кешированием одиночных чтений.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage/repository"
)

// ProductRepository определяет методы для работы с товарами в хранилище.
type ProductRepository interface {
	// CreateProduct добавляет новый товар и возвращает созданную запись.
	CreateProduct(ctx context.Context, req models.DummyProduct) (*models.Product, error)
	// ReadProduct возвращает товар по ID.
	ReadProduct(ctx context.Context, id string) (*models.Product, error)
	// UpdateProduct перезаписывает поля товара по ID.
	UpdateProduct(ctx context.Context, id string, req models.DummyProduct) (int, error)
	// RemoveProduct удаляет товар по ID и возвращает количество удалённых записей.
	RemoveProduct(ctx context.Context, id string) (int, error)
	// ListProducts возвращает товары по фильтру.
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
	// CountProducts подсчитывает товары под тем же фильтром по категории.
	CountProducts(ctx context.Context, category *string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// CatalogService реализует бизнес-логику каталога, включая кеширование.
type CatalogService struct {
	repo  ProductRepository
	cache Cache
	log   *slog.Logger
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(repo ProductRepository, cache Cache, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// BuildFilter переводит сырые параметры запроса в фильтр хранилища.
//
// Контракт выборки:
//   - category пустая — фильтра нет, иначе точное совпадение;
//   - sort=asc — по возрастанию цены, любое другое непустое значение —
//     по убыванию цены, отсутствие sort — сначала новые записи;
//   - limit отсутствует или не парсится в положительное число — пагинации
//     нет, возвращается вся выборка;
//   - page по умолчанию 1, значения меньше 1 приводятся к 1.
func BuildFilter(pageStr, limitStr, category, sort string) models.ProductFilter {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	filter := models.ProductFilter{
		Page: page,
	}

	if category != "" {
		filter.Category = &category
	}

	switch {
	case sort == "":
		filter.Sort = models.SortCreatedDesc
	case sort == "asc":
		filter.Sort = models.SortPriceAsc
	default:
		filter.Sort = models.SortPriceDesc
	}

	if limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = &limit
			filter.Offset = (page - 1) * limit
		}
	}

	return filter
}

// List возвращает страницу товаров по фильтру. Общее количество считается
// под тем же фильтром по категории, что и выборка, независимо от окна
// пагинации. Без limit возвращается вся выборка и одна страница.
func (s *CatalogService) List(ctx context.Context, filter models.ProductFilter) (*models.ProductPage, error) {
	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*models.Product{}
	}

	total, err := s.repo.CountProducts(ctx, filter.Category)
	if err != nil {
		return nil, err
	}

	totalPages := 1
	if filter.Limit != nil {
		totalPages = (total + *filter.Limit - 1) / *filter.Limit
	}

	return &models.ProductPage{
		Products:      products,
		TotalProducts: total,
		TotalPages:    totalPages,
		CurrentPage:   filter.Page,
	}, nil
}

// Create создает новый товар, кеширует его и возвращает созданную запись.
func (s *CatalogService) Create(ctx context.Context, req models.DummyProduct) (*models.Product, error) {
	product, err := s.repo.CreateProduct(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new product", slog.String("id", product.ID))

	cacheKey := fmt.Sprintf("product:%s", product.ID)
	if err := s.cache.Set(cacheKey, product, time.Hour); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return product, nil
}

// Read возвращает товар по ID, используя кеш или репозиторий.
func (s *CatalogService) Read(ctx context.Context, id string) (*models.Product, error) {
	var result *models.Product
	cacheKey := fmt.Sprintf("product:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ReadProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update перезаписывает поля товара и инвалидирует кеш.
// Возвращает ErrProductNotFound, если товара с таким ID нет.
func (s *CatalogService) Update(ctx context.Context, id string, req models.DummyProduct) error {
	count, err := s.repo.UpdateProduct(ctx, id, req)
	if err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrProductNotFound
	}

	cacheKey := fmt.Sprintf("product:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	s.log.Info("updated product", slog.String("id", id))
	return nil
}

// Remove удаляет товар по ID и инвалидирует кеш.
// Возвращает ErrProductNotFound, если товара с таким ID нет.
func (s *CatalogService) Remove(ctx context.Context, id string) error {
	cacheKey := fmt.Sprintf("product:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.RemoveProduct(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrProductNotFound
	}

	s.log.Info("removed product", slog.String("id", id))
	return nil
}
