package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// CreateProduct вставляет новый товар и возвращает созданную запись
// вместе с назначенным идентификатором и таймстемпами.
func (s *Storage) CreateProduct(ctx context.Context, req models.DummyProduct) (*models.Product, error) {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO products (image, title, price, ratings, category, description)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	product := &models.Product{
		Image:       req.Image,
		Title:       req.Title,
		Price:       req.Price,
		Ratings:     req.Ratings,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := s.DB.QueryRowContext(ctx, query,
		req.Image, req.Title, req.Price, req.Ratings, req.Category, req.Description).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return product, nil
}

// ReadProduct возвращает данные товара по его ID.
// Если записи нет, возвращает ErrProductNotFound.
func (s *Storage) ReadProduct(ctx context.Context, id string) (*models.Product, error) {
	const op = "storage.ReadProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, image, title, price, ratings, category, description, created_at, updated_at
			  FROM products WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Product
	if err := row.Scan(&result.ID, &result.Image, &result.Title, &result.Price,
		&result.Ratings, &result.Category, &result.Description,
		&result.CreatedAt, &result.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrProductNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateProduct перезаписывает все шесть полей товара по его ID
// и возвращает количество изменённых строк. Поля, отсутствовавшие
// в запросе, записываются нулевыми значениями.
func (s *Storage) UpdateProduct(ctx context.Context, id string, req models.DummyProduct) (int, error) {
	const op = "storage.UpdateProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE products
			  SET image = $1, title = $2, price = $3, ratings = $4,
			      category = $5, description = $6, updated_at = now()
			  WHERE id = $7`
	result, err := s.DB.ExecContext(ctx, query,
		req.Image, req.Title, req.Price, req.Ratings, req.Category, req.Description, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveProduct удаляет товар по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveProduct(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM products WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListProducts возвращает товары по фильтру: необязательная категория,
// порядок сортировки и необязательное окно пагинации.
func (s *Storage) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, image, title, price, ratings, category, description, created_at, updated_at
			  FROM products`
	var args []any
	if filter.Category != nil {
		query += ` WHERE category = $1`
		args = append(args, *filter.Category)
	}

	switch filter.Sort {
	case models.SortPriceAsc:
		query += ` ORDER BY price ASC`
	case models.SortPriceDesc:
		query += ` ORDER BY price DESC`
	default:
		query += ` ORDER BY created_at DESC`
	}

	if filter.Limit != nil {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, *filter.Limit, filter.Offset)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.ID, &item.Image, &item.Title, &item.Price,
			&item.Ratings, &item.Category, &item.Description,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountProducts подсчитывает товары под тем же фильтром по категории,
// что и ListProducts, независимо от окна пагинации.
func (s *Storage) CountProducts(ctx context.Context, category *string) (int, error) {
	const op = "storage.CountProducts"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*) FROM products`
	var args []any
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, *category)
	}

	var total int
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
