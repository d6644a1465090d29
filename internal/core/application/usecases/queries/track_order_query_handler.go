package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads order status by tracking id with a raw SQL query.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no order carries the tracking id.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var (
		status   string
		messages pq.StringArray
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			failure_messages
		FROM orders
		WHERE tracking_id = ?
	`, query.TrackingID().Bytes()).Row()
	if err := row.Scan(&status, &messages); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.TrackingID().String())
		}
		return TrackOrderQueryResponse{}, err
	}

	response := TrackOrderQueryResponse{
		TrackingID: query.TrackingID(),
		Status:     status,
	}
	if messages != nil {
		response.FailureMessages = []string(messages)
	}

	return response, nil
}
