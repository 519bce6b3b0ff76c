package drug

import (
	"context"
	"fmt"

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

const cols = `id, name, category, manufacturer, stock_quantity, selling_price, expiry_date, created_at, updated_at`

func (r *repoPG) scanDrug(row pgx.Row) (*Drug, error) {
	var d Drug
	err := row.Scan(&d.ID, &d.Name, &d.Category, &d.Manufacturer, &d.StockQuantity,
		&d.SellingPrice, &d.ExpiryDate, &d.CreatedAt, &d.UpdatedAt)
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, d *Drug) error {
	d.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO drugs (id, name, category, manufacturer, stock_quantity, selling_price, expiry_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		d.ID, d.Name, d.Category, d.Manufacturer, d.StockQuantity, d.SellingPrice, d.ExpiryDate)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Drug, error) {
	return r.scanDrug(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM drugs WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, d *Drug) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE drugs SET name=$2, category=$3, manufacturer=$4, stock_quantity=$5,
			selling_price=$6, expiry_date=$7, updated_at=NOW()
		WHERE id = $1`,
		d.ID, d.Name, d.Category, d.Manufacturer, d.StockQuantity, d.SellingPrice, d.ExpiryDate)
	return err
}

// AdjustStock applies a relative stock change, refusing to go negative.
func (r *repoPG) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE drugs SET stock_quantity = stock_quantity + $2, updated_at=NOW()
		WHERE id = $1 AND stock_quantity + $2 >= 0`, id, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stock adjustment rejected for drug %s", id)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM drugs WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Drug, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM drugs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM drugs ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Drug
	for rows.Next() {
		d, err := r.scanDrug(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Drug, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM drugs ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Drug
	for rows.Next() {
		d, err := r.scanDrug(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
