package repositories

import (
	"context"
	"database/sql"

	"coderrBack/internal/models"
)

type OrderRepository struct {
	DB *sql.DB
}

// CreateOrder snapshots the referenced offer detail into a new order row. The
// INSERT ... SELECT copies the detail fields in the same statement, so the
// snapshot cannot interleave with a concurrent detail edit.
func (r *OrderRepository) CreateOrder(ctx context.Context, customerUserID, offerDetailID int) (models.Order, error) {
	query := `
		INSERT INTO orders
			(customer_user_id, business_user_id, offer_detail_id, title, revisions,
			 delivery_time_in_days, price, features, offer_type, status, created_at, updated_at)
		SELECT ?, o.user_id, d.id, d.title, d.revisions,
		       d.delivery_time_in_days, d.price, d.features, d.offer_type, ?, NOW(), NOW()
		FROM offer_details d
		JOIN offers o ON d.offer_id = o.id
		WHERE d.id = ?
	`
	result, err := r.DB.ExecContext(ctx, query, customerUserID, models.OrderStatusInProgress, offerDetailID)
	if err != nil {
		return models.Order{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Order{}, err
	}
	if rowsAffected == 0 {
		return models.Order{}, models.ErrOfferDetailNotFound
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Order{}, err
	}
	return r.GetOrderByID(ctx, int(id))
}

const orderSelect = `
	SELECT id, customer_user_id, business_user_id, offer_detail_id, title, revisions,
	       delivery_time_in_days, price, features, offer_type, status, created_at, updated_at
	FROM orders
`

func scanOrder(scan func(dest ...interface{}) error) (models.Order, error) {
	var o models.Order
	var features string
	err := scan(
		&o.ID, &o.CustomerUserID, &o.BusinessUserID, &o.OfferDetailID, &o.Title, &o.Revisions,
		&o.DeliveryTimeInDays, &o.Price, &features, &o.OfferType, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return models.Order{}, err
	}
	if o.Features, err = unmarshalFeatures(features); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (models.Order, error) {
	row := r.DB.QueryRowContext(ctx, orderSelect+` WHERE id = ?`, id)
	order, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return models.Order{}, models.ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// GetOrdersForUser returns orders where the user is either side of the deal,
// newest first.
func (r *OrderRepository) GetOrdersForUser(ctx context.Context, userID int) ([]models.Order, error) {
	query := orderSelect + `
		WHERE customer_user_id = ? OR business_user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateStatus applies the transition with a conditional update scoped to the
// current status, so two concurrent requests cannot both succeed.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int, fromStatus, toStatus string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ? AND status = ?`,
		toStatus, orderID, fromStatus,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		// Either the order is gone or it already left fromStatus.
		var count int
		if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE id = ?`, orderID).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			return models.ErrOrderNotFound
		}
		return models.ErrInvalidStatusTransition
	}
	return nil
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

// CountOrdersByStatus returns how many orders a business user has in the given
// status.
func (r *OrderRepository) CountOrdersByStatus(ctx context.Context, businessUserID int, status string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE business_user_id = ? AND status = ?`,
		businessUserID, status,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
