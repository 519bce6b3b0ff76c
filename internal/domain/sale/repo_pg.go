package sale

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

const saleCols = `id, total, payment_method, payment_status, created_at`
const itemCols = `id, sale_id, drug_name, quantity, unit_price, total_price`

func (r *repoPG) scanSale(row pgx.Row) (*Sale, error) {
	var s Sale
	err := row.Scan(&s.ID, &s.Total, &s.PaymentMethod, &s.PaymentStatus, &s.CreatedAt)
	return &s, err
}

// Create inserts the sale and its line items in one transaction.
func (r *repoPG) Create(ctx context.Context, s *Sale) error {
	s.ID = uuid.New()
	return db.WithTx(ctx, r.pool, func(txCtx context.Context) error {
		if _, err := r.conn(txCtx).Exec(txCtx, `
			INSERT INTO sales (id, total, payment_method, payment_status)
			VALUES ($1,$2,$3,$4)`,
			s.ID, s.Total, s.PaymentMethod, s.PaymentStatus); err != nil {
			return err
		}
		for _, item := range s.Items {
			item.ID = uuid.New()
			item.SaleID = s.ID
			if _, err := r.conn(txCtx).Exec(txCtx, `
				INSERT INTO sale_items (id, sale_id, drug_name, quantity, unit_price, total_price)
				VALUES ($1,$2,$3,$4,$5,$6)`,
				item.ID, item.SaleID, item.DrugName, item.Quantity, item.UnitPrice, item.TotalPrice); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Sale, error) {
	s, err := r.scanSale(r.conn(ctx).QueryRow(ctx, `SELECT `+saleCols+` FROM sales WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+itemCols+` FROM sale_items WHERE sale_id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var it SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.DrugName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		s.Items = append(s.Items, &it)
	}
	return s, rows.Err()
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return db.WithTx(ctx, r.pool, func(txCtx context.Context) error {
		if _, err := r.conn(txCtx).Exec(txCtx, `DELETE FROM sale_items WHERE sale_id = $1`, id); err != nil {
			return err
		}
		_, err := r.conn(txCtx).Exec(txCtx, `DELETE FROM sales WHERE id = $1`, id)
		return err
	})
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Sale, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+saleCols+` FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	sales, err := r.collectWithItems(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

func (r *repoPG) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*Sale, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+saleCols+` FROM sales WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at`, start, end)
	if err != nil {
		return nil, err
	}
	return r.collectWithItems(ctx, rows)
}

func (r *repoPG) collectWithItems(ctx context.Context, rows pgx.Rows) ([]*Sale, error) {
	var sales []*Sale
	byID := make(map[uuid.UUID]*Sale)
	for rows.Next() {
		s, err := r.scanSale(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		sales = append(sales, s)
		byID[s.ID] = s
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return sales, nil
	}

	ids := make([]uuid.UUID, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}
	itemRows, err := r.conn(ctx).Query(ctx, `SELECT `+itemCols+` FROM sale_items WHERE sale_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it SaleItem
		if err := itemRows.Scan(&it.ID, &it.SaleID, &it.DrugName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		if s, ok := byID[it.SaleID]; ok {
			s.Items = append(s.Items, &it)
		}
	}
	return sales, itemRows.Err()
}
