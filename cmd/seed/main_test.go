package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integraservicios/internal/model"
)

type fakeResources struct {
	types     map[string]uint
	resources []model.Resource
}

func (f *fakeResources) ListAvailableByType(context.Context, uint) ([]model.Resource, error) {
	return nil, nil
}

func (f *fakeResources) List(context.Context, model.ResourceFilter) ([]model.ResourceView, error) {
	return nil, nil
}

func (f *fakeResources) ListAvailable(context.Context) ([]model.ResourceView, error) {
	return nil, nil
}

func (f *fakeResources) UpsertType(_ context.Context, rt *model.ResourceType) error {
	if id, ok := f.types[rt.Name]; ok {
		rt.ID = id
		return nil
	}
	rt.ID = uint(len(f.types) + 1)
	f.types[rt.Name] = rt.ID
	return nil
}

func (f *fakeResources) UpsertResource(_ context.Context, r *model.Resource) error {
	f.resources = append(f.resources, *r)
	return nil
}

type fakeEmployees struct {
	employees []model.Employee
}

func (f *fakeEmployees) Exists(context.Context, uint) (bool, error) { return false, nil }

func (f *fakeEmployees) Upsert(_ context.Context, e *model.Employee) error {
	f.employees = append(f.employees, *e)
	return nil
}

func TestSeed_DefaultCatalog(t *testing.T) {
	var cat catalog
	require.NoError(t, json.Unmarshal(defaultCatalog, &cat))

	resources := &fakeResources{types: map[string]uint{}}
	employees := &fakeEmployees{}

	res, err := seed(context.Background(), resources, employees, cat)
	require.NoError(t, err)

	assert.Equal(t, len(cat.Types), res.types)
	assert.Equal(t, len(cat.Resources), res.resources)
	assert.Equal(t, len(cat.Employees), res.employees)

	for _, r := range resources.resources {
		assert.NotZero(t, r.ResourceTypeID, r.Name)
		assert.NotEmpty(t, r.Status, r.Name)
	}
}

func TestSeed_UnknownType(t *testing.T) {
	raw := `{"tipos_recurso":["Sala"],"recursos":[{"id_recurso":1,"nombre":"Dron","tipo_recurso":"Aéreo"}]}`
	var cat catalog
	require.NoError(t, json.Unmarshal([]byte(raw), &cat))

	_, err := seed(context.Background(), &fakeResources{types: map[string]uint{}}, &fakeEmployees{}, cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "Aéreo"`)
}

func TestSeed_DefaultsStatus(t *testing.T) {
	raw := `{"tipos_recurso":["Sala"],"recursos":[{"id_recurso":1,"nombre":"Sala 1","tipo_recurso":"Sala"}]}`
	var cat catalog
	require.NoError(t, json.Unmarshal([]byte(raw), &cat))

	resources := &fakeResources{types: map[string]uint{}}
	_, err := seed(context.Background(), resources, &fakeEmployees{}, cat)
	require.NoError(t, err)
	require.Len(t, resources.resources, 1)
	assert.Equal(t, model.ResourceStatusAvailable, resources.resources[0].Status)
}
