package services

import (
	"context"
	"errors"
	"testing"

	"portfolio/internal/apperrors"
	"portfolio/internal/models"
)

type fakeSkillRepo struct {
	skills map[int64]*models.Skill
	nextID int64
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[int64]*models.Skill{}, nextID: 1}
}

func (r *fakeSkillRepo) nameTaken(name string, excludeID int64) bool {
	for _, s := range r.skills {
		if s.Name == name && s.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *fakeSkillRepo) Create(_ context.Context, s *models.Skill) (*models.Skill, error) {
	if r.nameTaken(s.Name, 0) {
		return nil, apperrors.ErrConflict
	}
	cp := *s
	cp.ID = r.nextID
	r.nextID++
	r.skills[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeSkillRepo) GetAll(_ context.Context, onlyFeatured bool) ([]*models.Skill, error) {
	out := make([]*models.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		if onlyFeatured && !s.Featured {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSkillRepo) GetByID(_ context.Context, id int64) (*models.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSkillRepo) Update(_ context.Context, s *models.Skill) (*models.Skill, error) {
	if _, ok := r.skills[s.ID]; !ok {
		return nil, apperrors.ErrNotFound
	}
	if r.nameTaken(s.Name, s.ID) {
		return nil, apperrors.ErrConflict
	}
	cp := *s
	r.skills[s.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.skills[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.skills, id)
	return nil
}

func TestSkillCreateDuplicateName(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())
	ctx := context.Background()

	req := models.SkillRequest{Name: "Go", Category: models.SkillCategoryProgramming, Proficiency: 8}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("first create: %v", err)
	}

	if _, err := svc.Create(ctx, req); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("duplicate name: got %v, want ErrConflict", err)
	}
}

func TestSkillProficiencyClamp(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())
	ctx := context.Background()

	cases := []struct {
		in   int
		want int
	}{
		{0, 5},
		{-3, 1},
		{1, 1},
		{10, 10},
		{15, 10},
		{7, 7},
	}

	for i, tc := range cases {
		req := models.SkillRequest{
			Name:        "Skill" + string(rune('A'+i)),
			Category:    models.SkillCategoryTool,
			Proficiency: tc.in,
		}
		created, err := svc.Create(ctx, req)
		if err != nil {
			t.Fatalf("create (proficiency %d): %v", tc.in, err)
		}
		if created.Proficiency != tc.want {
			t.Errorf("proficiency %d stored as %d, want %d", tc.in, created.Proficiency, tc.want)
		}
	}
}

func TestSkillValidation(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, models.SkillRequest{Name: " ", Category: models.SkillCategoryTool}); !apperrors.IsValidation(err) {
		t.Errorf("blank name: got %v, want validation error", err)
	}
	if _, err := svc.Create(ctx, models.SkillRequest{Name: "Go", Category: "sport"}); !apperrors.IsValidation(err) {
		t.Errorf("unknown category: got %v, want validation error", err)
	}
}

func TestSkillFeaturedListing(t *testing.T) {
	repo := newFakeSkillRepo()
	svc := NewSkillService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, models.SkillRequest{Name: "Go", Category: models.SkillCategoryProgramming, Featured: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, models.SkillRequest{Name: "Vim", Category: models.SkillCategoryTool}); err != nil {
		t.Fatalf("create: %v", err)
	}

	featured, err := svc.GetFeatured(ctx)
	if err != nil {
		t.Fatalf("featured listing: %v", err)
	}
	if len(featured) != 1 || featured[0].Name != "Go" {
		t.Errorf("featured listing = %v, want just Go", featured)
	}

	all, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("full listing: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("full listing has %d skills, want 2", len(all))
	}
}
