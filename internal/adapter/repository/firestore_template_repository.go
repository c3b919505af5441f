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

const templateCollection = "templates"

type firestoreTemplateRepository struct {
	client *firestore.Client
}

func NewFirestoreTemplateRepository(client *firestore.Client) repository.TemplateRepository {
	return &firestoreTemplateRepository{
		client: client,
	}
}

func (r *firestoreTemplateRepository) NewID() string {
	return r.client.Collection(templateCollection).NewDoc().ID
}

func (r *firestoreTemplateRepository) Create(ctx context.Context, template *entity.Template) error {
	if template.ID == "" {
		template.ID = r.NewID()
	}
	_, err := r.client.Collection(templateCollection).Doc(template.ID).Set(ctx, template)
	if err != nil {
		return errors.Internal("Failed to create template", err)
	}
	return nil
}

func (r *firestoreTemplateRepository) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	doc, err := r.client.Collection(templateCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Template", err)
		}
		return nil, errors.Internal("Failed to get template", err)
	}

	var template entity.Template
	if err := doc.DataTo(&template); err != nil {
		return nil, errors.Internal("Failed to parse template", err)
	}

	return &template, nil
}

func (r *firestoreTemplateRepository) List(ctx context.Context) ([]*entity.Template, error) {
	iter := r.client.Collection(templateCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var templates []*entity.Template
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate templates", err)
		}

		var template entity.Template
		if err := doc.DataTo(&template); err != nil {
			logger.Error("Failed to parse template: %v", err)
			continue
		}
		templates = append(templates, &template)
	}

	return templates, nil
}

func (r *firestoreTemplateRepository) Update(ctx context.Context, template *entity.Template) error {
	template.UpdatedAt = time.Now()
	_, err := r.client.Collection(templateCollection).Doc(template.ID).Set(ctx, template)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Template", err)
		}
		return errors.Internal("Failed to update template", err)
	}
	return nil
}

func (r *firestoreTemplateRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(templateCollection).Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Template", err)
		}
		return errors.Internal("Failed to delete template", err)
	}
	return nil
}
