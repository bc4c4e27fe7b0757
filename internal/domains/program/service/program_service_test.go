package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	p "studio-backend/internal/domains/program"
)

type fakeProgramRepo struct {
	programs []*p.Program
	listErr  error
	creates  int
}

func (f *fakeProgramRepo) List(ctx context.Context) ([]*p.Program, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.programs, nil
}

func (f *fakeProgramRepo) Create(ctx context.Context, prog *p.Program) (*p.Program, error) {
	f.creates++
	f.programs = append(f.programs, prog)
	return prog, nil
}

func (f *fakeProgramRepo) Update(ctx context.Context, id string, req *p.UpdateRequest) (*p.Program, error) {
	for _, prog := range f.programs {
		if prog.ID == id {
			if req.Name != nil {
				prog.Name = *req.Name
			}
			return prog, nil
		}
	}
	return nil, p.ErrProgramNotFound
}

func (f *fakeProgramRepo) Delete(ctx context.Context, id string) error {
	for i, prog := range f.programs {
		if prog.ID == id {
			f.programs = append(f.programs[:i], f.programs[i+1:]...)
			return nil
		}
	}
	return p.ErrProgramNotFound
}

func TestList_EmptyCollectionAnswersDefaults(t *testing.T) {
	repo := &fakeProgramRepo{}
	svc := NewProgramService(repo)

	programs, degraded := svc.List(context.Background())

	require.Len(t, programs, 3)
	assert.False(t, degraded)
	assert.Equal(t, "kingdom-entrepreneur", programs[0].ID)
	assert.Equal(t, "faith-based-leadership", programs[1].ID)
	assert.Equal(t, "kingdom-finance", programs[2].ID)

	// Fallback must not write anything back.
	assert.Equal(t, 0, repo.creates)
}

func TestList_ReadFailureAnswersDefaultsDegraded(t *testing.T) {
	repo := &fakeProgramRepo{listErr: errors.New("connection refused")}
	svc := NewProgramService(repo)

	programs, degraded := svc.List(context.Background())

	require.Len(t, programs, 3)
	assert.True(t, degraded)
}

func TestList_StoredProgramsWinOverDefaults(t *testing.T) {
	repo := &fakeProgramRepo{programs: []*p.Program{{ID: "custom", Name: "Custom"}}}
	svc := NewProgramService(repo)

	programs, degraded := svc.List(context.Background())

	require.Len(t, programs, 1)
	assert.False(t, degraded)
	assert.Equal(t, "custom", programs[0].ID)
}

func TestSeed_PersistsDefaultsOnce(t *testing.T) {
	repo := &fakeProgramRepo{}
	svc := NewProgramService(repo)

	seeded, err := svc.Seed(context.Background())

	require.NoError(t, err)
	assert.Len(t, seeded, 3)
	assert.Equal(t, 3, repo.creates)

	_, err = svc.Seed(context.Background())
	assert.ErrorIs(t, err, p.ErrAlreadySeeded)
}

func TestSeed_RefusesNonEmptyCollection(t *testing.T) {
	repo := &fakeProgramRepo{programs: []*p.Program{{ID: "custom"}}}
	svc := NewProgramService(repo)

	_, err := svc.Seed(context.Background())

	assert.ErrorIs(t, err, p.ErrAlreadySeeded)
	assert.Equal(t, 0, repo.creates)
}

func TestCreate_AssignsIDAndDefaultsSlices(t *testing.T) {
	repo := &fakeProgramRepo{}
	svc := NewProgramService(repo)

	created, err := svc.Create(context.Background(), &p.CreateRequest{
		Name:        "New Track",
		Description: "desc",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.AccentColors)
	assert.NotNil(t, created.Features)
}

func TestCreate_RejectsMissingName(t *testing.T) {
	svc := NewProgramService(&fakeProgramRepo{})

	_, err := svc.Create(context.Background(), &p.CreateRequest{Description: "desc"})

	assert.Error(t, err)
}

func TestDefaults_ArePure(t *testing.T) {
	svc := NewProgramService(&fakeProgramRepo{})

	first := svc.Defaults()
	first[0].Name = "mutated"

	second := svc.Defaults()
	assert.Equal(t, "Kingdom Entrepreneur", second[0].Name)
}
