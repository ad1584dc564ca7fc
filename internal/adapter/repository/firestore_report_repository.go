package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vialidades/internal/domain/entity"
	"vialidades/internal/domain/repository"
	"vialidades/pkg/errors"

	"github.com/google/uuid"
)

type firestoreReportRepository struct {
	client *firestore.Client
}

func NewFirestoreReportRepository(client *firestore.Client) repository.ReportRepository {
	return &firestoreReportRepository{
		client: client,
	}
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	_, err := r.client.Collection("reports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to create report", err)
	}

	return nil
}

func (r *firestoreReportRepository) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	doc, err := r.client.Collection("reports").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Report", err)
		}
		return nil, errors.Internal("Failed to get report", err)
	}

	var report entity.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, errors.Internal("Failed to parse report data", err)
	}

	return &report, nil
}

func (r *firestoreReportRepository) Update(ctx context.Context, report *entity.Report) error {
	report.UpdatedAt = time.Now()

	_, err := r.client.Collection("reports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to update report", err)
	}

	return nil
}

func (r *firestoreReportRepository) List(ctx context.Context, filter repository.ReportFilter, limit, offset int) ([]*entity.Report, int64, error) {
	query := r.client.Collection("reports").Query

	if filter.AuthorID != "" {
		query = query.Where("userId", "==", filter.AuthorID)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}
	if filter.Sanctioned != nil {
		query = query.Where("wasSanctioned", "==", *filter.Sanctioned)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count reports", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var reports []*entity.Report

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list reports", err)
		}

		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, 0, errors.Internal("Failed to parse report data", err)
		}
		reports = append(reports, &report)
	}

	return reports, total, nil
}

// CommitModeration writes the moderated report, the author's new
// standing and the outcome notification in a single transaction. The
// in-transaction status check makes concurrent moderation of the same
// report a CONFLICT instead of a lost update.
func (r *firestoreReportRepository) CommitModeration(ctx context.Context, report *entity.Report, author *entity.User, notification *entity.Notification) error {
	if notification != nil {
		if notification.ID == "" {
			notification.ID = uuid.New().String()
		}
		notification.CreatedAt = time.Now()
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		reportRef := r.client.Collection("reports").Doc(report.ID)
		doc, err := tx.Get(reportRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Report", err)
			}
			return err
		}

		var current entity.Report
		if err := doc.DataTo(&current); err != nil {
			return err
		}

		if current.Status != entity.ReportStatusPending {
			return errors.Conflict("Report has already been moderated")
		}

		report.UpdatedAt = time.Now()
		if err := tx.Set(reportRef, report); err != nil {
			return err
		}

		if author != nil {
			author.UpdatedAt = time.Now()
			if err := tx.Set(r.client.Collection("users").Doc(author.ID), author); err != nil {
				return err
			}
		}

		if notification != nil {
			if err := tx.Set(r.client.Collection("notifications").Doc(notification.ID), notification); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return err
		}
		return errors.Internal("Failed to commit moderation", err)
	}

	return nil
}
