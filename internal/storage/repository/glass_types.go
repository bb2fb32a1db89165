package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/glass-quote/internal/models"
)

// ListGlassTypes возвращает весь каталог, отсортированный по названию.
func (s *Storage) ListGlassTypes(ctx context.Context) ([]models.GlassType, error) {
	const op = "storage.ListGlassTypes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, thickness, price_m2
			  FROM glass_types
			  ORDER BY name, created_at`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.GlassType, 0)
	for rows.Next() {
		var g models.GlassType
		if err := rows.Scan(&g.ID, &g.Name, &g.Thickness, &g.PriceM2); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetGlassType возвращает тип стекла по ID.
func (s *Storage) GetGlassType(ctx context.Context, id string) (*models.GlassType, error) {
	const op = "storage.GetGlassType"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	gid, err := parseID(op, id)
	if err != nil {
		return nil, err
	}
	query := `SELECT id, name, thickness, price_m2
			  FROM glass_types
			  WHERE id = $1`
	var g models.GlassType
	if err := s.DB.QueryRowContext(ctx, query, gid).Scan(&g.ID, &g.Name, &g.Thickness, &g.PriceM2); err != nil {
		return nil, mapError(op, err)
	}
	return &g, nil
}

// CreateGlassType добавляет тип стекла в каталог и возвращает сохранённую запись.
func (s *Storage) CreateGlassType(ctx context.Context, req models.GlassTypeRequest) (*models.GlassType, error) {
	const op = "storage.CreateGlassType"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	g := models.GlassType{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Thickness: req.Thickness,
		PriceM2:   req.PriceM2,
	}
	query := `INSERT INTO glass_types (id, name, thickness, price_m2)
			  VALUES ($1, $2, $3, $4)`
	if _, err := s.DB.ExecContext(ctx, query, g.ID, g.Name, g.Thickness, g.PriceM2); err != nil {
		return nil, mapError(op, err)
	}
	return &g, nil
}

// UpdateGlassType перезаписывает название, толщину и цену типа стекла.
// Уже сохранённые расчёты не меняются: у них своя копия данных.
func (s *Storage) UpdateGlassType(ctx context.Context, id string, req models.GlassTypeRequest) (*models.GlassType, error) {
	const op = "storage.UpdateGlassType"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	gid, err := parseID(op, id)
	if err != nil {
		return nil, err
	}
	query := `UPDATE glass_types
			  SET name = $1, thickness = $2, price_m2 = $3, updated_at = now()
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query, req.Name, req.Thickness, req.PriceM2, gid)
	if err != nil {
		return nil, mapError(op, err)
	}
	if err := checkAffected(op, result); err != nil {
		return nil, err
	}
	return &models.GlassType{
		ID:        gid.String(),
		Name:      req.Name,
		Thickness: req.Thickness,
		PriceM2:   req.PriceM2,
	}, nil
}

// RemoveGlassType удаляет тип стекла. Расчёты, ссылавшиеся на него,
// теряют ссылку, но сохраняют снимок.
func (s *Storage) RemoveGlassType(ctx context.Context, id string) error {
	const op = "storage.RemoveGlassType"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	gid, err := parseID(op, id)
	if err != nil {
		return err
	}
	result, err := s.DB.ExecContext(ctx, `DELETE FROM glass_types WHERE id = $1`, gid)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return checkAffected(op, result)
}
