package storage

import (
	"database/sql"
	"fmt"

	"github.com/phi-h-nguyen/modernfi-take-home/internal/domain/models"
)

// ordersSchema mirrors the validation done at the API boundary so bad
// rows cannot sneak in through other clients of the same database.
const ordersSchema = `
CREATE TABLE IF NOT EXISTS orders (
	id            SERIAL PRIMARY KEY,
	side          TEXT NOT NULL CHECK (side IN ('Buy', 'Sell')),
	tenor         TEXT NOT NULL CHECK (tenor IN ('1M', '1.5M', '2M', '3M', '4M', '6M', '1Y', '2Y', '3Y', '5Y', '7Y', '10Y', '20Y', '30Y')),
	issuance_type TEXT NOT NULL CHECK (issuance_type IN ('WI', 'OTR', 'OFTR')),
	quantity      NUMERIC NOT NULL CHECK (quantity > 0),
	yield         NUMERIC NOT NULL CHECK (yield > 0),
	notes         TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// OrdersRepository defines the contract for order persistence.
type OrdersRepository interface {
	InitSchema() error
	InsertOrder(order models.Order) (int64, error)
	ListOrders() ([]models.Order, error)
}

type ordersRepository struct {
	db *sql.DB
}

// NewOrdersRepository builds an OrdersRepository on the given database
// handle (safe for concurrent use).
func NewOrdersRepository(db *sql.DB) OrdersRepository {
	return &ordersRepository{db: db}
}

// InitSchema creates the orders table if it does not exist yet. Called
// once at startup.
func (r *ordersRepository) InitSchema() error {
	if _, err := r.db.Exec(ordersSchema); err != nil {
		return fmt.Errorf("init orders schema: %w", err)
	}
	return nil
}

// InsertOrder persists a new order and returns its generated id.
func (r *ordersRepository) InsertOrder(order models.Order) (int64, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO orders (side, tenor, issuance_type, quantity, yield, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, order.Side, order.Tenor, order.IssuanceType, order.Quantity, order.Yield, order.Notes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// ListOrders returns all orders, newest first.
func (r *ordersRepository) ListOrders() ([]models.Order, error) {
	rows, err := r.db.Query(`
		SELECT id, side, tenor, issuance_type, quantity, yield, COALESCE(notes, ''), created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Side, &o.Tenor, &o.IssuanceType, &o.Quantity, &o.Yield, &o.Notes, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}
