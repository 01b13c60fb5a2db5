package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// sortColumns maps accepted sort keys to qualified columns. Sort input ends
// up concatenated into ORDER BY, so anything outside this list falls back to
// the default instead of reaching the SQL.
var sortColumns = map[string]string{
	"start_time":  "b.start_time",
	"created_at":  "b.created_at",
	"total_price": "b.total_price",
	"status":      "b.status",
}

func sortClause(filter Filter) string {
	col, ok := sortColumns[filter.SortBy]
	if !ok {
		col = "b.start_time"
	}
	dir := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}

type Repository interface {
	// CreateWithConflictCheck inserts the booking inside a transaction that
	// holds a per-field advisory lock and re-checks overlaps on freshly read
	// rows. Returns ErrTimeConflict if a concurrent booking won the race.
	CreateWithConflictCheck(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	// ListActiveByFieldAndDay returns pending/confirmed bookings for the
	// field that intersect the given day, for availability grids and
	// advisory conflict checks.
	ListActiveByFieldAndDay(ctx context.Context, fieldID string, dayStart, dayEnd time.Time) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// overlapExistsSQL builds the EXISTS query for the in-transaction overlap
// check. Overlap predicate: NewStart < ExistingEnd AND NewEnd > ExistingStart,
// active statuses only.
func overlapExistsSQL(fieldID string, start, end time.Time) (string, []interface{}, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"field_id": fieldID}).
		Where(squirrel.Eq{"status": ActiveStatuses}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build check overlap query failed: %w", err)
	}
	return "SELECT EXISTS (" + sql + ")", args, nil
}

func (r *pgxRepository) CreateWithConflictCheck(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent creations per field. Overlapping-but-unequal
	// intervals cannot be expressed as a uniqueness constraint, so the
	// read-check-write sequence must run under the lock.
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", b.FieldID); err != nil {
		return fmt.Errorf("acquire field lock failed: %w", err)
	}

	query, args, err := overlapExistsSQL(b.FieldID, b.StartTime, b.EndTime)
	if err != nil {
		return err
	}
	var exists bool
	if err := tx.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return fmt.Errorf("check overlap failed: %w", err)
	}
	if exists {
		return ErrTimeConflict
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	insert, insertArgs, err := psql.Insert("public.bookings").
		Columns("field_id", "user_id", "start_time", "end_time", "status", "total_price").
		Values(b.FieldID, b.UserID, b.StartTime, b.EndTime, b.Status, b.TotalPrice).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, insert, insertArgs...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.field_id", "f.name", "b.user_id", "COALESCE(u.display_name, u.email)",
		"v.id", "v.name",
		"b.start_time", "b.end_time", "b.status", "b.total_price", "b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.fields f ON b.field_id = f.id").
		Join("public.users u ON b.user_id = u.id").
		Join("public.venues v ON f.venue_id = v.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := row.Scan(
		&b.ID, &b.FieldID, &b.FieldName, &b.UserID, &b.UserName,
		&b.VenueID, &b.VenueName,
		&b.StartTime, &b.EndTime, &b.Status, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.field_id", "f.name", "b.user_id", "COALESCE(u.display_name, u.email)",
		"v.id", "v.name",
		"b.start_time", "b.end_time", "b.status", "b.total_price", "b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.fields f ON b.field_id = f.id").
		Join("public.users u ON b.user_id = u.id").
		Join("public.venues v ON f.venue_id = v.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.FieldID != "" {
		query = query.Where(squirrel.Eq{"b.field_id": filter.FieldID})
	}
	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"v.id": filter.VenueID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	// Date range filtering (intersection logic)
	if filter.StartTime != nil {
		query = query.Where(squirrel.GtOrEq{"b.end_time": filter.StartTime})
	}
	if filter.EndTime != nil {
		query = query.Where(squirrel.LtOrEq{"b.start_time": filter.EndTime})
	}

	query = query.OrderBy(sortClause(filter))

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.FieldID, &b.FieldName, &b.UserID, &b.UserName,
			&b.VenueID, &b.VenueName,
			&b.StartTime, &b.EndTime, &b.Status, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListActiveByFieldAndDay(ctx context.Context, fieldID string, dayStart, dayEnd time.Time) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "field_id", "user_id", "start_time", "end_time", "status", "total_price", "created_at", "updated_at",
	).
		From("public.bookings").
		Where(squirrel.Eq{"field_id": fieldID}).
		Where(squirrel.Eq{"status": ActiveStatuses}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		Where(squirrel.Gt{"end_time": dayStart}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list active bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.FieldID, &b.UserID, &b.StartTime, &b.EndTime, &b.Status, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}
