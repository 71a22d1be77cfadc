package postgresql

import (
	"context"

	"github.com/bidhuripriyanshu/transport-scheduler/internal/db"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/storage"
)

type FeedbackRepo struct {
	db db.DB
}

func NewFeedbackRepo(db db.DB) storage.FeedbackRepository {
	return &FeedbackRepo{db: db}
}

func (r *FeedbackRepo) Create(ctx context.Context, fb *repository.Feedback) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO feedback (
            shipment_id, ride_no, rating, comments, created_at
        ) VALUES ($1, $2, $3, $4, $5)
    `, fb.ShipmentID, fb.RideNo, fb.Rating, fb.Comments, fb.CreatedAt)
	return err
}

func (r *FeedbackRepo) GetAll(ctx context.Context) ([]*repository.Feedback, error) {
	var feedback []*repository.Feedback
	err := r.db.Select(ctx, &feedback, `
        SELECT * FROM feedback
        ORDER BY created_at DESC
    `)
	return feedback, err
}
