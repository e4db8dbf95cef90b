package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"coderrBack/internal/models"
)

type OfferRepository struct {
	DB *sql.DB
}

// Features are persisted as a JSON text column.
func marshalFeatures(features []string) (string, error) {
	data, err := json.Marshal(features)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalFeatures(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var features []string
	if err := json.Unmarshal([]byte(raw), &features); err != nil {
		return nil, fmt.Errorf("failed to decode features: %w", err)
	}
	return features, nil
}

// detailOrder keeps the basic/standard/premium order stable in responses.
const detailOrder = `FIELD(offer_type, 'basic', 'standard', 'premium')`

func (r *OfferRepository) insertDetailTx(ctx context.Context, tx *sql.Tx, offerID int, d models.OfferDetail) (int, error) {
	features, err := marshalFeatures(d.Features)
	if err != nil {
		return 0, err
	}
	result, err := tx.ExecContext(ctx, `
		INSERT INTO offer_details (offer_id, title, revisions, delivery_time_in_days, price, features, offer_type)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, offerID, d.Title, d.Revisions, d.DeliveryTimeInDays, d.Price, features, d.OfferType)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// CreateOffer persists the offer together with its three details in a single
// transaction so a partial aggregate is never visible to readers.
func (r *OfferRepository) CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Offer{}, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO offers (user_id, title, image, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`, offer.UserID, offer.Title, offer.Image, offer.Description)
	if err != nil {
		return models.Offer{}, err
	}
	offerID, err := result.LastInsertId()
	if err != nil {
		return models.Offer{}, err
	}
	offer.ID = int(offerID)

	for i := range offer.Details {
		detailID, err := r.insertDetailTx(ctx, tx, offer.ID, offer.Details[i])
		if err != nil {
			return models.Offer{}, err
		}
		offer.Details[i].ID = detailID
		offer.Details[i].OfferID = offer.ID
	}

	if err := tx.Commit(); err != nil {
		return models.Offer{}, err
	}
	return r.GetOfferByID(ctx, offer.ID)
}

func (r *OfferRepository) GetOfferByID(ctx context.Context, id int) (models.Offer, error) {
	query := `
		SELECT id, user_id, title, image, description, created_at, updated_at
		FROM offers
		WHERE id = ?
	`
	var offer models.Offer
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&offer.ID, &offer.UserID, &offer.Title, &offer.Image,
		&offer.Description, &offer.CreatedAt, &offer.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Offer{}, models.ErrOfferNotFound
	}
	if err != nil {
		return models.Offer{}, err
	}

	details, err := r.GetDetailsByOfferID(ctx, id)
	if err != nil {
		return models.Offer{}, err
	}
	offer.Details = details
	return offer, nil
}

func (r *OfferRepository) GetDetailsByOfferID(ctx context.Context, offerID int) ([]models.OfferDetail, error) {
	query := `
		SELECT id, offer_id, title, revisions, delivery_time_in_days, price, features, offer_type
		FROM offer_details
		WHERE offer_id = ?
		ORDER BY ` + detailOrder
	rows, err := r.DB.QueryContext(ctx, query, offerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []models.OfferDetail{}
	for rows.Next() {
		var d models.OfferDetail
		var features string
		err := rows.Scan(&d.ID, &d.OfferID, &d.Title, &d.Revisions, &d.DeliveryTimeInDays, &d.Price, &features, &d.OfferType)
		if err != nil {
			return nil, err
		}
		if d.Features, err = unmarshalFeatures(features); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *OfferRepository) GetOfferDetailByID(ctx context.Context, id int) (models.OfferDetail, error) {
	query := `
		SELECT id, offer_id, title, revisions, delivery_time_in_days, price, features, offer_type
		FROM offer_details
		WHERE id = ?
	`
	var d models.OfferDetail
	var features string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.OfferID, &d.Title, &d.Revisions, &d.DeliveryTimeInDays, &d.Price, &features, &d.OfferType,
	)
	if err == sql.ErrNoRows {
		return models.OfferDetail{}, models.ErrOfferDetailNotFound
	}
	if err != nil {
		return models.OfferDetail{}, err
	}
	if d.Features, err = unmarshalFeatures(features); err != nil {
		return models.OfferDetail{}, err
	}
	return d, nil
}

// GetOfferOwner returns the business user owning the offer.
func (r *OfferRepository) GetOfferOwner(ctx context.Context, offerID int) (int, error) {
	var ownerID int
	err := r.DB.QueryRowContext(ctx, `SELECT user_id FROM offers WHERE id = ?`, offerID).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return 0, models.ErrOfferNotFound
	}
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}

// UpdateOffer applies a partial update. When req.Details is set the children
// are fully replaced; the delete and the three inserts share one transaction
// so concurrent readers never observe a 0-detail or duplicate-tier aggregate.
func (r *OfferRepository) UpdateOffer(ctx context.Context, offerID int, req models.OfferUpdateRequest) (models.Offer, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Offer{}, err
	}
	defer tx.Rollback()

	updatedAt := time.Now()
	result, err := tx.ExecContext(ctx, `
		UPDATE offers
		SET title = COALESCE(?, title),
		    description = COALESCE(?, description),
		    image = COALESCE(?, image),
		    updated_at = ?
		WHERE id = ?
	`, req.Title, req.Description, req.Image, updatedAt, offerID)
	if err != nil {
		return models.Offer{}, err
	}
	if _, err := result.RowsAffected(); err != nil {
		return models.Offer{}, err
	}
	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM offers WHERE id = ?`, offerID).Scan(&count); err != nil {
		return models.Offer{}, err
	}
	if count == 0 {
		return models.Offer{}, models.ErrOfferNotFound
	}

	if req.Details != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM offer_details WHERE offer_id = ?`, offerID); err != nil {
			return models.Offer{}, err
		}
		for _, d := range *req.Details {
			if _, err := r.insertDetailTx(ctx, tx, offerID, d); err != nil {
				return models.Offer{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Offer{}, err
	}
	return r.GetOfferByID(ctx, offerID)
}

// DeleteOffer removes the offer; details go with it via the cascade.
func (r *OfferRepository) DeleteOffer(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM offers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrOfferNotFound
	}
	return nil
}

const offerAggregateSelect = `
	SELECT o.id, o.user_id, o.title, o.image, o.description, o.created_at, o.updated_at,
	       MIN(d.price) AS min_price, MIN(d.delivery_time_in_days) AS min_delivery_time
	FROM offers o
	JOIN offer_details d ON d.offer_id = o.id
`

const offerGroupBy = ` GROUP BY o.id, o.user_id, o.title, o.image, o.description, o.created_at, o.updated_at`

// GetOfferReadViewByID returns the read-context shape with query-time
// aggregates and lightweight detail references.
func (r *OfferRepository) GetOfferReadViewByID(ctx context.Context, id int) (models.OfferReadView, error) {
	query := offerAggregateSelect + ` WHERE o.id = ?` + offerGroupBy

	var view models.OfferReadView
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&view.ID, &view.UserID, &view.Title, &view.Image, &view.Description,
		&view.CreatedAt, &view.UpdatedAt, &view.MinPrice, &view.MinDeliveryTime,
	)
	if err == sql.ErrNoRows {
		return models.OfferReadView{}, models.ErrOfferNotFound
	}
	if err != nil {
		return models.OfferReadView{}, err
	}

	refs, err := r.getDetailRefs(ctx, []int{view.ID})
	if err != nil {
		return models.OfferReadView{}, err
	}
	view.Details = refs[view.ID]
	return view, nil
}

// GetOffersWithFilters lists offers in the read-context shape. The aggregate
// fields are computed per request, never from stored columns, so they always
// reflect live detail data.
func (r *OfferRepository) GetOffersWithFilters(ctx context.Context, f models.OfferFilterRequest) ([]models.OfferReadView, int, error) {
	var (
		conditions []string
		havings    []string
		params     []interface{}
	)

	if f.CreatorID > 0 {
		conditions = append(conditions, "o.user_id = ?")
		params = append(params, f.CreatorID)
	}
	if f.Search != "" {
		conditions = append(conditions, "(o.title LIKE ? OR o.description LIKE ?)")
		like := "%" + f.Search + "%"
		params = append(params, like, like)
	}
	if f.HasMinPrice {
		// An offer matches when its cheapest tier is at most the threshold.
		havings = append(havings, "MIN(d.price) <= ?")
		params = append(params, f.MinPrice)
	}
	if f.HasMaxDelivery {
		havings = append(havings, "MIN(d.delivery_time_in_days) <= ?")
		params = append(params, f.MaxDeliveryTime)
	}

	baseQuery := offerAggregateSelect
	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	baseQuery += offerGroupBy
	if len(havings) > 0 {
		baseQuery += " HAVING " + strings.Join(havings, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM (` + baseQuery + `) AS filtered`
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return nil, 0, err
	}

	switch f.Ordering {
	case models.OfferOrderingUpdatedAt:
		baseQuery += ` ORDER BY o.updated_at ASC`
	case models.OfferOrderingMinPrice:
		baseQuery += ` ORDER BY min_price ASC`
	case models.OfferOrderingMinPriceDesc:
		baseQuery += ` ORDER BY min_price DESC`
	default:
		baseQuery += ` ORDER BY o.updated_at DESC`
	}
	baseQuery += ` LIMIT ? OFFSET ?`
	params = append(params, f.PageSize, (f.Page-1)*f.PageSize)

	rows, err := r.DB.QueryContext(ctx, baseQuery, params...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	views := []models.OfferReadView{}
	offerIDs := []int{}
	for rows.Next() {
		var view models.OfferReadView
		err := rows.Scan(
			&view.ID, &view.UserID, &view.Title, &view.Image, &view.Description,
			&view.CreatedAt, &view.UpdatedAt, &view.MinPrice, &view.MinDeliveryTime,
		)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, view)
		offerIDs = append(offerIDs, view.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	refs, err := r.getDetailRefs(ctx, offerIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range views {
		views[i].Details = refs[views[i].ID]
	}
	return views, total, nil
}

func (r *OfferRepository) getDetailRefs(ctx context.Context, offerIDs []int) (map[int][]models.OfferDetailRef, error) {
	refs := make(map[int][]models.OfferDetailRef, len(offerIDs))
	if len(offerIDs) == 0 {
		return refs, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(offerIDs)), ",")
	params := make([]interface{}, len(offerIDs))
	for i, id := range offerIDs {
		params[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, offer_id
		FROM offer_details
		WHERE offer_id IN (%s)
		ORDER BY offer_id, `+detailOrder, placeholders)
	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var detailID, offerID int
		if err := rows.Scan(&detailID, &offerID); err != nil {
			return nil, err
		}
		refs[offerID] = append(refs[offerID], models.OfferDetailRef{
			ID:  detailID,
			URL: fmt.Sprintf("/offerdetails/%d/", detailID),
		})
	}
	return refs, rows.Err()
}
