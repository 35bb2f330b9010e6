package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ResourceService is the generic CRUD wrapper behind the dashboard
// resources. Reads go through the response cache; every mutation clears the
// resource's prefix.
type ResourceService[T any] struct {
	c        *Client
	resource string
}

func (s *ResourceService[T]) path() string {
	return "/api/" + s.resource
}

func (s *ResourceService[T]) orgQuery(organizationId string) url.Values {
	query := url.Values{}
	query.Set("organization_id", organizationId)
	return query
}

func (s *ResourceService[T]) GetAll(ctx context.Context, organizationId string) ([]T, error) {

	key := s.resource + ":" + organizationId
	if cached, ok := s.c.GetCached(key); ok {
		if result, ok := cached.([]T); ok {
			return result, nil
		}
	}

	var result []T
	if err := s.c.do(ctx, http.MethodGet, s.path(), s.orgQuery(organizationId), nil, &result); err != nil {
		return nil, err
	}
	s.c.SetCached(key, result)
	return result, nil
}

func (s *ResourceService[T]) GetByID(ctx context.Context, organizationId string, id int) (*T, error) {

	key := fmt.Sprintf("%s:%s:%d", s.resource, organizationId, id)
	if cached, ok := s.c.GetCached(key); ok {
		if result, ok := cached.(*T); ok {
			return result, nil
		}
	}

	var result T
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", s.path(), id), s.orgQuery(organizationId), nil, &result); err != nil {
		return nil, err
	}
	s.c.SetCached(key, &result)
	return &result, nil
}

func (s *ResourceService[T]) Create(ctx context.Context, organizationId string, payload map[string]interface{}) (*T, error) {
	var result T
	if err := s.c.do(ctx, http.MethodPost, s.path(), s.orgQuery(organizationId), payload, &result); err != nil {
		return nil, err
	}
	s.c.ClearCache(s.resource)
	return &result, nil
}

func (s *ResourceService[T]) Update(ctx context.Context, organizationId string, id int, payload map[string]interface{}) (*T, error) {
	var result T
	if err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", s.path(), id), s.orgQuery(organizationId), payload, &result); err != nil {
		return nil, err
	}
	s.c.ClearCache(s.resource)
	return &result, nil
}

func (s *ResourceService[T]) Delete(ctx context.Context, organizationId string, id int) error {
	if err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", s.path(), id), s.orgQuery(organizationId), nil, nil); err != nil {
		return err
	}
	s.c.ClearCache(s.resource)
	return nil
}
