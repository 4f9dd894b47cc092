package service

import (
	"context"
	"time"

	"integraservicios/internal/cache"
	"integraservicios/internal/model"
	"integraservicios/internal/repository"
	"integraservicios/internal/schedule"
)

const (
	availableResourcesKey = "resources:available"
	availableResourcesTTL = time.Minute
)

// ResourceService exposes catalogue queries.
type ResourceService interface {
	ListResources(ctx context.Context, filter model.ResourceFilter) ([]model.ResourceView, error)
	ListAvailableResources(ctx context.Context) ([]model.AvailableResource, error)
}

type resourceService struct {
	repo  repository.ResourceRepository
	cache *cache.Client
}

// NewResourceService builds a ResourceService with repository and cache.
func NewResourceService(repo repository.ResourceRepository, cache *cache.Client) ResourceService {
	return &resourceService{repo: repo, cache: cache}
}

func (s *resourceService) ListResources(ctx context.Context, filter model.ResourceFilter) ([]model.ResourceView, error) {
	views, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []model.ResourceView{}
	}
	return views, nil
}

// ListAvailableResources returns available resources with their schedule expanded per day.
func (s *resourceService) ListAvailableResources(ctx context.Context) ([]model.AvailableResource, error) {
	var cached []model.AvailableResource
	if s.cache.GetJSON(ctx, availableResourcesKey, &cached) {
		return cached, nil
	}

	views, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.AvailableResource, 0, len(views))
	for _, v := range views {
		windows := schedule.ExpandToDailyWindows(v.Schedule)
		days := make([]string, 0, len(windows))
		for _, w := range windows {
			days = append(days, w.String())
		}
		out = append(out, model.AvailableResource{
			ID:           v.ID,
			Name:         v.Name,
			ResourceType: v.ResourceType,
			Schedule:     days,
		})
	}

	s.cache.SetJSON(ctx, availableResourcesKey, out, availableResourcesTTL)
	return out, nil
}
