package walkin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicore/clinicore/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const cols = `id, service_type, patient_name, amount, payment_method, payment_status, created_at`

func (r *repoPG) scanService(row pgx.Row) (*WalkInService, error) {
	var ws WalkInService
	err := row.Scan(&ws.ID, &ws.ServiceType, &ws.PatientName, &ws.Amount,
		&ws.PaymentMethod, &ws.PaymentStatus, &ws.CreatedAt)
	return &ws, err
}

func (r *repoPG) Create(ctx context.Context, ws *WalkInService) error {
	ws.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO walk_in_services (id, service_type, patient_name, amount, payment_method, payment_status)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		ws.ID, ws.ServiceType, ws.PatientName, ws.Amount, ws.PaymentMethod, ws.PaymentStatus)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*WalkInService, error) {
	return r.scanService(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM walk_in_services WHERE id = $1`, id))
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.conn(ctx).Exec(ctx, `UPDATE walk_in_services SET payment_status = $2 WHERE id = $1`, id, status)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM walk_in_services WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*WalkInService, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM walk_in_services`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM walk_in_services ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*WalkInService
	for rows.Next() {
		ws, err := r.scanService(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, ws)
	}
	return items, total, nil
}

func (r *repoPG) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*WalkInService, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM walk_in_services WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*WalkInService
	for rows.Next() {
		ws, err := r.scanService(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, ws)
	}
	return items, rows.Err()
}
