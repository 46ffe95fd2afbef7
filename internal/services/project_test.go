package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"portfolio/internal/apperrors"
	"portfolio/internal/models"
)

type fakeProjectRepo struct {
	projects map[int64]*models.Project
	nextID   int64
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[int64]*models.Project{}, nextID: 1}
}

func (r *fakeProjectRepo) Create(_ context.Context, p *models.Project) (*models.Project, error) {
	cp := *p
	cp.ID = r.nextID
	r.nextID++
	r.projects[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeProjectRepo) GetAll(_ context.Context) ([]*models.Project, error) {
	out := make([]*models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id int64) (*models.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *models.Project) (*models.Project, error) {
	if _, ok := r.projects[p.ID]; !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *p
	r.projects[p.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.projects[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func validProjectRequest() models.ProjectRequest {
	return models.ProjectRequest{
		Title:            "Portfolio site",
		Description:      "A personal portfolio backend.",
		ShortDescription: "Portfolio backend",
	}
}

func TestProjectCreateDefaultsAndTechnologies(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())
	ctx := context.Background()

	req := validProjectRequest()
	req.Technologies = " Go , Postgres,,React , "

	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Category != models.ProjectCategoryWeb {
		t.Errorf("category = %q, want default %q", created.Category, models.ProjectCategoryWeb)
	}
	if created.Status != models.ProjectStatusCompleted {
		t.Errorf("status = %q, want default %q", created.Status, models.ProjectStatusCompleted)
	}

	want := []string{"Go", "Postgres", "React"}
	if !reflect.DeepEqual(created.Technologies, want) {
		t.Errorf("technologies = %v, want %v", created.Technologies, want)
	}
}

func TestProjectCreateValidation(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.ProjectRequest)
	}{
		{"missing title", func(r *models.ProjectRequest) { r.Title = "  " }},
		{"missing description", func(r *models.ProjectRequest) { r.Description = "" }},
		{"missing short description", func(r *models.ProjectRequest) { r.ShortDescription = "" }},
		{"unknown category", func(r *models.ProjectRequest) { r.Category = "desktop" }},
		{"unknown status", func(r *models.ProjectRequest) { r.Status = "abandoned" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validProjectRequest()
			tc.mutate(&req)
			if _, err := svc.Create(ctx, req); !apperrors.IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}
}

func TestProjectShortDescriptionLimit(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())
	ctx := context.Background()

	req := validProjectRequest()
	long := make([]rune, 201)
	for i := range long {
		long[i] = 'x'
	}
	req.ShortDescription = string(long)

	if _, err := svc.Create(ctx, req); !apperrors.IsValidation(err) {
		t.Errorf("201-rune shortDescription: got %v, want validation error", err)
	}

	req.ShortDescription = string(long[:200])
	if _, err := svc.Create(ctx, req); err != nil {
		t.Errorf("200-rune shortDescription rejected: %v", err)
	}
}

func TestProjectUpdateNotFound(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())
	ctx := context.Background()

	if _, err := svc.Update(ctx, 99, validProjectRequest()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, 99); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("delete: got %v, want ErrNotFound", err)
	}
}
