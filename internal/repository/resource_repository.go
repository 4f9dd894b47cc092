package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"integraservicios/internal/db"
	"integraservicios/internal/model"
)

// ResourceRepository defines persistence operations for resources and their types.
type ResourceRepository interface {
	ListAvailableByType(ctx context.Context, typeID uint) ([]model.Resource, error)
	List(ctx context.Context, filter model.ResourceFilter) ([]model.ResourceView, error)
	ListAvailable(ctx context.Context) ([]model.ResourceView, error)
	UpsertType(ctx context.Context, resourceType *model.ResourceType) error
	UpsertResource(ctx context.Context, resource *model.Resource) error
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository builds a GORM-backed repository.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

// ListAvailableByType returns available resources of a type in storage order.
func (r *resourceRepository) ListAvailableByType(ctx context.Context, typeID uint) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.db.WithContext(ctx).
		Where("id_tipo_recurso = ? AND estado = ?", typeID, model.ResourceStatusAvailable).
		Order("id_recurso").
		Find(&resources).Error
	if err != nil {
		return nil, errors.Wrap(db.TranslateError(err), "list resources by type")
	}
	return resources, nil
}

func (r *resourceRepository) List(ctx context.Context, filter model.ResourceFilter) ([]model.ResourceView, error) {
	query, args, err := buildResourceQuery(filter)
	if err != nil {
		return nil, err
	}
	var views []model.ResourceView
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&views).Error; err != nil {
		return nil, errors.Wrap(db.TranslateError(err), "list resources")
	}
	return views, nil
}

func (r *resourceRepository) ListAvailable(ctx context.Context) ([]model.ResourceView, error) {
	return r.List(ctx, model.ResourceFilter{Status: model.ResourceStatusAvailable})
}

// UpsertType inserts the type or refreshes the existing row with the same name.
func (r *resourceRepository) UpsertType(ctx context.Context, resourceType *model.ResourceType) error {
	err := r.db.WithContext(ctx).
		Where(model.ResourceType{Name: resourceType.Name}).
		FirstOrCreate(resourceType).Error
	return errors.Wrap(db.TranslateError(err), "upsert resource type")
}

// UpsertResource inserts the resource or updates it in place when its id exists.
func (r *resourceRepository) UpsertResource(ctx context.Context, resource *model.Resource) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id_recurso"}},
			DoUpdates: clause.AssignmentColumns([]string{"nombre", "id_tipo_recurso", "horario_disponibilidad", "estado"}),
		}).
		Create(resource).Error
	return errors.Wrap(db.TranslateError(err), "upsert resource")
}
