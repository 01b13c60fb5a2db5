package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, tier *PriceTier) error
	GetByID(ctx context.Context, id string) (*PriceTier, error)
	ListByField(ctx context.Context, fieldID string) ([]*PriceTier, error)
	Update(ctx context.Context, tier *PriceTier) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, t *PriceTier) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.price_tiers").
		Columns("field_id", "day_type", "start_time", "end_time", "price_per_hour").
		Values(t.FieldID, t.DayType, t.StartTime, t.EndTime, t.PricePerHour).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create price tier query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&t.ID, &t.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*PriceTier, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "field_id", "day_type",
		"start_time::text", "end_time::text",
		"price_per_hour", "created_at",
	).
		From("public.price_tiers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get price tier query failed: %w", err)
	}

	var t PriceTier
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.FieldID, &t.DayType,
		&t.StartTime, &t.EndTime,
		&t.PricePerHour, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get price tier failed: %w", err)
	}
	return &t, nil
}

func (r *pgxRepository) ListByField(ctx context.Context, fieldID string) ([]*PriceTier, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "field_id", "day_type",
		"start_time::text", "end_time::text",
		"price_per_hour", "created_at",
	).
		From("public.price_tiers").
		Where(squirrel.Eq{"field_id": fieldID}).
		OrderBy("day_type", "start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list price tiers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list price tiers failed: %w", err)
	}
	defer rows.Close()

	var tiers []*PriceTier
	for rows.Next() {
		var t PriceTier
		if err := rows.Scan(
			&t.ID, &t.FieldID, &t.DayType,
			&t.StartTime, &t.EndTime,
			&t.PricePerHour, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan price tier failed: %w", err)
		}
		tiers = append(tiers, &t)
	}

	return tiers, nil
}

func (r *pgxRepository) Update(ctx context.Context, t *PriceTier) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.price_tiers").
		Set("day_type", t.DayType).
		Set("start_time", t.StartTime).
		Set("end_time", t.EndTime).
		Set("price_per_hour", t.PricePerHour).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update price tier query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update price tier failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.price_tiers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete price tier query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete price tier failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
