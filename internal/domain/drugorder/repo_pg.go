package drugorder

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

const orderCols = `id, status, ordered_at`
const itemCols = `id, order_id, drug_name, quantity, unit_price, total_price`

func (r *repoPG) scanOrder(row pgx.Row) (*DrugOrder, error) {
	var o DrugOrder
	err := row.Scan(&o.ID, &o.Status, &o.OrderedAt)
	return &o, err
}

// Create inserts the order and its line items in one transaction.
func (r *repoPG) Create(ctx context.Context, o *DrugOrder) error {
	o.ID = uuid.New()
	return db.WithTx(ctx, r.pool, func(txCtx context.Context) error {
		if _, err := r.conn(txCtx).Exec(txCtx, `
			INSERT INTO drug_orders (id, status, ordered_at)
			VALUES ($1,$2,$3)`,
			o.ID, o.Status, o.OrderedAt); err != nil {
			return err
		}
		for _, item := range o.Items {
			item.ID = uuid.New()
			item.OrderID = o.ID
			if _, err := r.conn(txCtx).Exec(txCtx, `
				INSERT INTO drug_order_items (id, order_id, drug_name, quantity, unit_price, total_price)
				VALUES ($1,$2,$3,$4,$5,$6)`,
				item.ID, item.OrderID, item.DrugName, item.Quantity, item.UnitPrice, item.TotalPrice); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*DrugOrder, error) {
	o, err := r.scanOrder(r.conn(ctx).QueryRow(ctx, `SELECT `+orderCols+` FROM drug_orders WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	o.Items, err = r.itemsFor(ctx, id)
	return o, err
}

func (r *repoPG) itemsFor(ctx context.Context, orderID uuid.UUID) ([]*OrderItem, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+itemCols+` FROM drug_order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.DrugName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.conn(ctx).Exec(ctx, `UPDATE drug_orders SET status = $2 WHERE id = $1`, id, status)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return db.WithTx(ctx, r.pool, func(txCtx context.Context) error {
		if _, err := r.conn(txCtx).Exec(txCtx, `DELETE FROM drug_order_items WHERE order_id = $1`, id); err != nil {
			return err
		}
		_, err := r.conn(txCtx).Exec(txCtx, `DELETE FROM drug_orders WHERE id = $1`, id)
		return err
	})
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*DrugOrder, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM drug_orders`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+orderCols+` FROM drug_orders ORDER BY ordered_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	orders, err := r.collectWithItems(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *repoPG) ListOrderedBetween(ctx context.Context, start, end time.Time) ([]*DrugOrder, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+orderCols+` FROM drug_orders WHERE ordered_at >= $1 AND ordered_at <= $2 ORDER BY ordered_at`, start, end)
	if err != nil {
		return nil, err
	}
	return r.collectWithItems(ctx, rows)
}

// collectWithItems drains rows into orders, then attaches line items with a
// single follow-up query.
func (r *repoPG) collectWithItems(ctx context.Context, rows pgx.Rows) ([]*DrugOrder, error) {
	var orders []*DrugOrder
	byID := make(map[uuid.UUID]*DrugOrder)
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		orders = append(orders, o)
		byID[o.ID] = o
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	itemRows, err := r.conn(ctx).Query(ctx, `SELECT `+itemCols+` FROM drug_order_items WHERE order_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it OrderItem
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.DrugName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, &it)
		}
	}
	return orders, itemRows.Err()
}
