package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"portfolio/internal/apperrors"
	"portfolio/internal/models"
)

type fakeBlogRepo struct {
	posts  map[int64]*models.BlogPost
	nextID int64
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: map[int64]*models.BlogPost{}, nextID: 1}
}

func (r *fakeBlogRepo) slugTaken(slug string, excludeID int64) bool {
	for _, p := range r.posts {
		if p.Slug == slug && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *fakeBlogRepo) Create(_ context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	if r.slugTaken(p.Slug, 0) {
		return nil, apperrors.ErrConflict
	}
	cp := *p
	cp.ID = r.nextID
	r.nextID++
	if cp.Published {
		now := time.Now()
		cp.PublishedAt = &now
	}
	r.posts[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeBlogRepo) GetAll(_ context.Context, onlyPublished bool) ([]*models.BlogPost, error) {
	out := make([]*models.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		if onlyPublished && !p.Published {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeBlogRepo) GetByID(_ context.Context, id int64) (*models.BlogPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeBlogRepo) GetBySlug(_ context.Context, slug string, onlyPublished bool) (*models.BlogPost, error) {
	for _, p := range r.posts {
		if p.Slug == slug && (!onlyPublished || p.Published) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeBlogRepo) Update(_ context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	cur, ok := r.posts[p.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if r.slugTaken(p.Slug, p.ID) {
		return nil, apperrors.ErrConflict
	}
	cp := *p
	// Stamped once on first publish, retained afterwards.
	cp.PublishedAt = cur.PublishedAt
	if cp.Published && cp.PublishedAt == nil {
		now := time.Now()
		cp.PublishedAt = &now
	}
	r.posts[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeBlogRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakeBlogRepo) SetPublished(_ context.Context, id int64, published bool) error {
	p, ok := r.posts[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.Published = published
	if published && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	return nil
}

func validBlogRequest() models.BlogPostRequest {
	return models.BlogPostRequest{
		Title:   "Hello, World! 2024",
		Content: "<p>Body text.</p>",
		Excerpt: "Short summary.",
	}
}

func TestBlogCreateDerivesSlug(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validBlogRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "hello-world-2024" {
		t.Errorf("slug = %q, want %q", created.Slug, "hello-world-2024")
	}
}

func TestBlogUpdateRecomputesSlug(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validBlogRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := validBlogRequest()
	req.Title = "A Brand New Title"
	updated, err := svc.Update(ctx, created.ID, req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Slug != "a-brand-new-title" {
		t.Errorf("slug = %q, want %q", updated.Slug, "a-brand-new-title")
	}
}

func TestBlogSlugConflict(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, validBlogRequest()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, validBlogRequest()); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("same title twice: got %v, want ErrConflict", err)
	}
}

func TestBlogContentSanitized(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	req := validBlogRequest()
	req.Content = `<p>ok</p><script>alert("x")</script><img src="a.png" alt="a">`

	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if strings.Contains(created.Content, "<script>") {
		t.Errorf("script tag survived sanitizing: %q", created.Content)
	}
	if !strings.Contains(created.Content, "<img") {
		t.Errorf("img tag stripped: %q", created.Content)
	}
	if !strings.Contains(created.Content, "<p>ok</p>") {
		t.Errorf("benign markup lost: %q", created.Content)
	}
}

func TestBlogTagsNormalized(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	req := validBlogRequest()
	req.Tags = []string{" go ", "", "backend", "go", "  "}

	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := []string{"go", "backend"}
	if !reflect.DeepEqual(created.Tags, want) {
		t.Errorf("tags = %v, want %v", created.Tags, want)
	}
}

func TestBlogPublishedAtLifecycle(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validBlogRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Published || created.PublishedAt != nil {
		t.Fatalf("draft should start unpublished with no timestamp: %+v", created)
	}

	published, err := svc.TogglePublish(ctx, created.ID)
	if err != nil {
		t.Fatalf("first publish: %v", err)
	}
	if !published.Published || published.PublishedAt == nil {
		t.Fatal("first publish must set published and stamp publishedAt")
	}
	stamp := *published.PublishedAt

	unpublished, err := svc.TogglePublish(ctx, created.ID)
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if unpublished.Published {
		t.Error("post still published after toggle")
	}
	if unpublished.PublishedAt == nil || !unpublished.PublishedAt.Equal(stamp) {
		t.Error("unpublish must retain the original publishedAt")
	}

	republished, err := svc.TogglePublish(ctx, created.ID)
	if err != nil {
		t.Fatalf("re-publish: %v", err)
	}
	if republished.PublishedAt == nil || !republished.PublishedAt.Equal(stamp) {
		t.Error("re-publish must not move publishedAt")
	}
}

func TestBlogPublicListingAndSlugLookup(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	draft := validBlogRequest()
	if _, err := svc.Create(ctx, draft); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	live := validBlogRequest()
	live.Title = "Published Post"
	live.Published = true
	if _, err := svc.Create(ctx, live); err != nil {
		t.Fatalf("create published: %v", err)
	}

	posts, err := svc.GetPublished(ctx)
	if err != nil {
		t.Fatalf("published listing: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "published-post" {
		t.Errorf("published listing = %v, want just published-post", posts)
	}

	if _, err := svc.GetPublishedBySlug(ctx, "hello-world-2024"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("draft reachable by public slug lookup: %v", err)
	}
	if _, err := svc.GetPublishedBySlug(ctx, "published-post"); err != nil {
		t.Errorf("published slug lookup failed: %v", err)
	}
}

func TestBlogValidation(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.BlogPostRequest)
	}{
		{"missing title", func(r *models.BlogPostRequest) { r.Title = "" }},
		{"missing content", func(r *models.BlogPostRequest) { r.Content = " " }},
		{"missing excerpt", func(r *models.BlogPostRequest) { r.Excerpt = "" }},
		{"unsluggable title", func(r *models.BlogPostRequest) { r.Title = "!!!" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBlogRequest()
			tc.mutate(&req)
			if _, err := svc.Create(ctx, req); !apperrors.IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}
}
