package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gyomutime/internal/domain/entity"
	"gyomutime/internal/domain/repository"
	"gyomutime/pkg/errors"
	"gyomutime/pkg/logger"
)

const submissionCollection = "submissions"

type firestoreSubmissionRepository struct {
	client *firestore.Client
}

func NewFirestoreSubmissionRepository(client *firestore.Client) repository.SubmissionRepository {
	return &firestoreSubmissionRepository{
		client: client,
	}
}

func (r *firestoreSubmissionRepository) NewID() string {
	return r.client.Collection(submissionCollection).NewDoc().ID
}

func (r *firestoreSubmissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	if submission.ID == "" {
		submission.ID = r.NewID()
	}
	_, err := r.client.Collection(submissionCollection).Doc(submission.ID).Set(ctx, submission)
	if err != nil {
		return errors.Internal("Failed to create submission", err)
	}
	return nil
}

func (r *firestoreSubmissionRepository) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	doc, err := r.client.Collection(submissionCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Submission", err)
		}
		return nil, errors.Internal("Failed to get submission", err)
	}

	var submission entity.Submission
	if err := doc.DataTo(&submission); err != nil {
		return nil, errors.Internal("Failed to parse submission", err)
	}

	return &submission, nil
}

func (r *firestoreSubmissionRepository) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Submission, error) {
	query := r.client.Collection(submissionCollection).
		Where("ownerUid", "==", ownerUID).
		OrderBy("createdAt", firestore.Desc)
	return r.list(ctx, query.Documents(ctx))
}

func (r *firestoreSubmissionRepository) ListAll(ctx context.Context) ([]*entity.Submission, error) {
	query := r.client.Collection(submissionCollection).
		OrderBy("createdAt", firestore.Desc)
	return r.list(ctx, query.Documents(ctx))
}

func (r *firestoreSubmissionRepository) list(ctx context.Context, iter *firestore.DocumentIterator) ([]*entity.Submission, error) {
	defer iter.Stop()

	var submissions []*entity.Submission
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate submissions", err)
		}

		var submission entity.Submission
		if err := doc.DataTo(&submission); err != nil {
			logger.Error("Failed to parse submission: %v", err)
			continue
		}
		submissions = append(submissions, &submission)
	}

	return submissions, nil
}

func (r *firestoreSubmissionRepository) UpdateStatus(ctx context.Context, id, status_ string) error {
	_, err := r.client.Collection(submissionCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status_},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Submission", err)
		}
		return errors.Internal("Failed to update submission status", err)
	}
	return nil
}

// AppendResult uses ArrayUnion so concurrent appends cannot lose entries.
func (r *firestoreSubmissionRepository) AppendResult(ctx context.Context, id string, result entity.FileMeta) error {
	_, err := r.client.Collection(submissionCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "results", Value: firestore.ArrayUnion(result)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Submission", err)
		}
		return errors.Internal("Failed to append result", err)
	}
	return nil
}

func (r *firestoreSubmissionRepository) AppendMessage(ctx context.Context, id string, message entity.Message) error {
	_, err := r.client.Collection(submissionCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "messages", Value: firestore.ArrayUnion(message)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Submission", err)
		}
		return errors.Internal("Failed to append message", err)
	}
	return nil
}
