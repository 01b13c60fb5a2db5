package field

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Field) error
	GetByID(ctx context.Context, id string) (*Field, error)
	List(ctx context.Context, filter Filter) ([]*Field, int, error)
	Update(ctx context.Context, f *Field) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, f *Field) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.fields").
		Columns("venue_id", "name", "sport_type", "open_time", "close_time").
		Values(f.VenueID, f.Name, f.SportType, f.OpenTime, f.CloseTime).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create field query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&f.ID, &f.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Field, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"f.id", "f.venue_id", "v.name", "f.name", "f.sport_type",
		"f.open_time::text", "f.close_time::text", "f.created_at",
	).
		From("public.fields f").
		Join("public.venues v ON f.venue_id = v.id").
		Where(squirrel.Eq{"f.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get field query failed: %w", err)
	}

	var f Field
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&f.ID, &f.VenueID, &f.VenueName, &f.Name, &f.SportType,
		&f.OpenTime, &f.CloseTime, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get field failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Field, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"f.id", "f.venue_id", "v.name", "f.name", "f.sport_type",
		"f.open_time::text", "f.close_time::text", "f.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.fields f").
		Join("public.venues v ON f.venue_id = v.id")

	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"f.venue_id": filter.VenueID})
	}
	if filter.SportType != "" {
		query = query.Where(squirrel.Eq{"f.sport_type": filter.SportType})
	}

	query = query.OrderBy("f.created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list fields query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list fields failed: %w", err)
	}
	defer rows.Close()

	var fields []*Field
	var total int

	for rows.Next() {
		var f Field
		if err := rows.Scan(
			&f.ID, &f.VenueID, &f.VenueName, &f.Name, &f.SportType,
			&f.OpenTime, &f.CloseTime, &f.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan field failed: %w", err)
		}
		fields = append(fields, &f)
	}

	return fields, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, f *Field) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.fields").
		Set("name", f.Name).
		Set("sport_type", f.SportType).
		Set("open_time", f.OpenTime).
		Set("close_time", f.CloseTime).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update field query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update field failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete field query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete field failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
