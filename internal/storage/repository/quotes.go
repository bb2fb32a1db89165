package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/glass-quote/internal/models"
)

const quoteColumns = `id, created_at, glass_type_id, glass_name, glass_thickness, glass_price_m2,
			      height, width, area, markup, cost_price, client_price, note`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (models.Quote, error) {
	var q models.Quote
	var glassID sql.NullString
	err := row.Scan(&q.ID, &q.CreatedAt, &glassID, &q.Glass.Name, &q.Glass.Thickness, &q.Glass.PriceM2,
		&q.Height, &q.Width, &q.Area, &q.Markup, &q.CostPrice, &q.ClientPrice, &q.Note)
	if err != nil {
		return models.Quote{}, err
	}
	if glassID.Valid {
		q.Glass.ID = glassID.String
	}
	return q, nil
}

// ListQuotes возвращает все сохранённые расчёты, новые первыми.
func (s *Storage) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	const op = "storage.ListQuotes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + quoteColumns + `
			  FROM quotes
			  ORDER BY created_at DESC, id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetQuote возвращает расчёт по ID.
func (s *Storage) GetQuote(ctx context.Context, id string) (*models.Quote, error) {
	const op = "storage.GetQuote"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	qid, err := parseID(op, id)
	if err != nil {
		return nil, err
	}
	q, err := scanQuote(s.DB.QueryRowContext(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, qid))
	if err != nil {
		return nil, mapError(op, err)
	}
	return &q, nil
}

// CreateQuote сохраняет расчёт. ID и дата назначаются здесь; остальные
// поля, включая снимок типа стекла, должны быть уже заполнены.
func (s *Storage) CreateQuote(ctx context.Context, q models.Quote) (*models.Quote, error) {
	const op = "storage.CreateQuote"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	q.ID = uuid.New().String()
	q.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	var glassID any
	if q.Glass.ID != "" {
		gid, err := parseID(op, q.Glass.ID)
		if err != nil {
			return nil, err
		}
		glassID = gid
	}

	query := `INSERT INTO quotes (` + quoteColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := s.DB.ExecContext(ctx, query,
		q.ID, q.CreatedAt, glassID, q.Glass.Name, q.Glass.Thickness, q.Glass.PriceM2,
		q.Height, q.Width, q.Area, q.Markup, q.CostPrice, q.ClientPrice, q.Note)
	if err != nil {
		return nil, mapError(op, err)
	}
	return &q, nil
}

// RemoveQuote удаляет расчёт по ID.
func (s *Storage) RemoveQuote(ctx context.Context, id string) error {
	const op = "storage.RemoveQuote"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	qid, err := parseID(op, id)
	if err != nil {
		return err
	}
	result, err := s.DB.ExecContext(ctx, `DELETE FROM quotes WHERE id = $1`, qid)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return checkAffected(op, result)
}
