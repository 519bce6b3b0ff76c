package labresult

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

const cols = `id, patient_id, test_type, status, result, requested_at, completed_at`

func (r *repoPG) scanLabResult(row pgx.Row) (*LabResult, error) {
	var lr LabResult
	err := row.Scan(&lr.ID, &lr.PatientID, &lr.TestType, &lr.Status, &lr.Result,
		&lr.RequestedAt, &lr.CompletedAt)
	return &lr, err
}

func (r *repoPG) Create(ctx context.Context, lr *LabResult) error {
	lr.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO lab_results (id, patient_id, test_type, status, result, requested_at, completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		lr.ID, lr.PatientID, lr.TestType, lr.Status, lr.Result, lr.RequestedAt, lr.CompletedAt)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*LabResult, error) {
	return r.scanLabResult(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM lab_results WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, lr *LabResult) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE lab_results SET test_type=$2, status=$3, result=$4, completed_at=$5
		WHERE id = $1`,
		lr.ID, lr.TestType, lr.Status, lr.Result, lr.CompletedAt)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM lab_results WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*LabResult, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM lab_results`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM lab_results ORDER BY requested_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*LabResult
	for rows.Next() {
		lr, err := r.scanLabResult(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, lr)
	}
	return items, total, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*LabResult, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM lab_results WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM lab_results WHERE patient_id = $1 ORDER BY requested_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*LabResult
	for rows.Next() {
		lr, err := r.scanLabResult(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, lr)
	}
	return items, total, nil
}

func (r *repoPG) ListRequestedBetween(ctx context.Context, start, end time.Time) ([]*LabResult, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM lab_results WHERE requested_at >= $1 AND requested_at <= $2 ORDER BY requested_at`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*LabResult
	for rows.Next() {
		lr, err := r.scanLabResult(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, lr)
	}
	return items, rows.Err()
}
