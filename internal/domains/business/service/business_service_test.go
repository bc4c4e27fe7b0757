package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	b "studio-backend/internal/domains/business"
)

type fakeBusinessRepo struct {
	businesses []*b.Business
	listErr    error
}

func (f *fakeBusinessRepo) List(ctx context.Context) ([]*b.Business, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.businesses, nil
}

func (f *fakeBusinessRepo) Create(ctx context.Context, biz *b.Business) (*b.Business, error) {
	f.businesses = append(f.businesses, biz)
	return biz, nil
}

func (f *fakeBusinessRepo) Update(ctx context.Context, id uuid.UUID, req *b.UpdateRequest) (*b.Business, error) {
	for _, biz := range f.businesses {
		if biz.ID == id {
			if req.Name != nil {
				biz.Name = *req.Name
			}
			if req.Logo != nil {
				biz.Logo = *req.Logo
			}
			return biz, nil
		}
	}
	return nil, b.ErrBusinessNotFound
}

func (f *fakeBusinessRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, biz := range f.businesses {
		if biz.ID == id {
			f.businesses = append(f.businesses[:i], f.businesses[i+1:]...)
			return nil
		}
	}
	return b.ErrBusinessNotFound
}

func TestCreate_AssignsIDAndReturnsRecord(t *testing.T) {
	svc := NewBusinessService(&fakeBusinessRepo{})

	created, err := svc.Create(context.Background(), &b.CreateRequest{
		Name:     "Grace Bakery",
		Category: "Food",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Grace Bakery", created.Name)
	assert.False(t, created.IsNew)
}

func TestCreate_RequiresNameAndCategory(t *testing.T) {
	svc := NewBusinessService(&fakeBusinessRepo{})

	_, err := svc.Create(context.Background(), &b.CreateRequest{Name: "Grace Bakery"})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), &b.CreateRequest{Category: "Food"})
	assert.Error(t, err)
}

func TestList_ReadFailureDegradesToEmpty(t *testing.T) {
	svc := NewBusinessService(&fakeBusinessRepo{listErr: errors.New("connection refused")})

	businesses, degraded := svc.List(context.Background())

	assert.Empty(t, businesses)
	assert.True(t, degraded)
}

func TestList_EmptyCollectionIsNotDegraded(t *testing.T) {
	svc := NewBusinessService(&fakeBusinessRepo{})

	businesses, degraded := svc.List(context.Background())

	assert.NotNil(t, businesses)
	assert.Empty(t, businesses)
	assert.False(t, degraded)
}

func TestUpdate_PartialFieldsOnly(t *testing.T) {
	repo := &fakeBusinessRepo{}
	svc := NewBusinessService(repo)

	created, err := svc.Create(context.Background(), &b.CreateRequest{
		Name:     "Grace Bakery",
		Category: "Food",
		Logo:     "http://localhost:9000/studio-media/blog_images/logo.png",
	})
	require.NoError(t, err)

	newName := "Grace Bakery & Cafe"
	updated, err := svc.Update(context.Background(), created.ID, &b.UpdateRequest{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Grace Bakery & Cafe", updated.Name)
	assert.Equal(t, created.Logo, updated.Logo)
}

func TestUpdate_UnknownIDNotFound(t *testing.T) {
	svc := NewBusinessService(&fakeBusinessRepo{})

	name := "x"
	_, err := svc.Update(context.Background(), uuid.New(), &b.UpdateRequest{Name: &name})

	assert.ErrorIs(t, err, b.ErrBusinessNotFound)
}

func TestDelete_UnknownIDNotFound(t *testing.T) {
	svc := NewBusinessService(&fakeBusinessRepo{})

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, b.ErrBusinessNotFound)
}
