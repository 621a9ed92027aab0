package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

// fakePrincipalRepo is an in-memory IPrincipalRepository with versioned writes.
type fakePrincipalRepo struct {
	mu   sync.Mutex
	docs map[string]entity.Principal
	// conflicts makes the next n Replace calls lose the version race.
	conflicts int
	failWith  error
}

func newFakePrincipalRepo() *fakePrincipalRepo {
	return &fakePrincipalRepo{docs: map[string]entity.Principal{}}
}

func clonePrincipal(p entity.Principal) entity.Principal {
	p.SavedPosts = append([]string(nil), p.SavedPosts...)
	if p.PasswordReset != nil {
		r := *p.PasswordReset
		p.PasswordReset = &r
	}
	return p
}

func (r *fakePrincipalRepo) Create(_ context.Context, p *entity.Principal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.docs {
		if d.Email == p.Email || d.Mobile == p.Mobile {
			return contract.ErrDuplicateKey
		}
	}
	r.docs[p.ID] = clonePrincipal(*p)
	return nil
}

func (r *fakePrincipalRepo) find(match func(entity.Principal) bool) (*entity.Principal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, d := range r.docs {
		if match(d) {
			c := clonePrincipal(d)
			return &c, nil
		}
	}
	return nil, contract.ErrNotFound
}

func (r *fakePrincipalRepo) GetByID(_ context.Context, id string) (*entity.Principal, error) {
	return r.find(func(p entity.Principal) bool { return p.ID == id })
}

func (r *fakePrincipalRepo) GetByEmail(_ context.Context, email string) (*entity.Principal, error) {
	return r.find(func(p entity.Principal) bool { return p.Email == email })
}

func (r *fakePrincipalRepo) GetByMobile(_ context.Context, mobile string) (*entity.Principal, error) {
	return r.find(func(p entity.Principal) bool { return p.Mobile == mobile })
}

func (r *fakePrincipalRepo) GetByResetTokenHash(_ context.Context, hash string, now time.Time) (*entity.Principal, error) {
	return r.find(func(p entity.Principal) bool {
		return p.PasswordReset != nil && p.PasswordReset.TokenHash == hash && p.PasswordReset.ExpiresAt.After(now)
	})
}

func (r *fakePrincipalRepo) List(_ context.Context, opts contract.ListOptions) ([]entity.Principal, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, 0, r.failWith
	}
	all := []entity.Principal{}
	for _, d := range r.docs {
		if opts.Search == "" || strings.Contains(strings.ToLower(d.UserName), strings.ToLower(opts.Search)) {
			all = append(all, clonePrincipal(d))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if opts.Limit <= 0 {
		return all, int64(len(all)), nil
	}
	start := opts.Skip()
	if start > len(all) {
		start = len(all)
	}
	end := start + opts.Limit
	if end > len(all) {
		end = len(all)
	}
	return append([]entity.Principal{}, all[start:end]...), int64(len(all)), nil
}

func (r *fakePrincipalRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.docs)), nil
}

func (r *fakePrincipalRepo) Replace(_ context.Context, p *entity.Principal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.docs[p.ID]
	if !ok {
		return contract.ErrNotFound
	}
	if r.conflicts > 0 {
		r.conflicts--
		return contract.ErrVersionConflict
	}
	if stored.Version != p.Version {
		return contract.ErrVersionConflict
	}
	for id, d := range r.docs {
		if id != p.ID && d.Mobile == p.Mobile {
			return contract.ErrDuplicateKey
		}
	}
	p.Version++
	r.docs[p.ID] = clonePrincipal(*p)
	return nil
}

func (r *fakePrincipalRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return contract.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

// fakePostRepo is an in-memory IPostRepository with versioned writes.
type fakePostRepo struct {
	mu        sync.Mutex
	docs      map[string]entity.Post
	conflicts int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{docs: map[string]entity.Post{}}
}

func clonePost(p entity.Post) entity.Post {
	p.Images = append([]string(nil), p.Images...)
	p.LikedUsers = append([]string(nil), p.LikedUsers...)
	p.DislikedUsers = append([]string(nil), p.DislikedUsers...)
	p.Comments = append([]entity.Comment(nil), p.Comments...)
	return p
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.docs {
		if d.Title == p.Title || d.Slug == p.Slug {
			return contract.ErrDuplicateKey
		}
	}
	r.docs[p.ID] = clonePost(*p)
	return nil
}

func (r *fakePostRepo) find(match func(entity.Post) bool) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.docs {
		if match(d) {
			c := clonePost(d)
			return &c, nil
		}
	}
	return nil, contract.ErrNotFound
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	return r.find(func(p entity.Post) bool { return p.ID == id })
}

func (r *fakePostRepo) GetByTitle(_ context.Context, title string) (*entity.Post, error) {
	return r.find(func(p entity.Post) bool { return p.Title == title })
}

func (r *fakePostRepo) GetBySlug(_ context.Context, slug string) (*entity.Post, error) {
	return r.find(func(p entity.Post) bool { return p.Slug == slug })
}

func (r *fakePostRepo) GetByIDs(_ context.Context, ids []string) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Post{}
	for _, id := range ids {
		if d, ok := r.docs[id]; ok {
			out = append(out, clonePost(d))
		}
	}
	return out, nil
}

func (r *fakePostRepo) List(_ context.Context, opts contract.ListOptions) ([]entity.Post, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []entity.Post
	for _, d := range r.docs {
		if opts.Search == "" || strings.Contains(strings.ToLower(d.Title), strings.ToLower(opts.Search)) {
			all = append(all, clonePost(d))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	start := opts.Skip()
	if start > len(all) {
		start = len(all)
	}
	end := start + opts.Limit
	if end > len(all) {
		end = len(all)
	}
	return append([]entity.Post{}, all[start:end]...), int64(len(all)), nil
}

func (r *fakePostRepo) IncrementViews(_ context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	d.NumberOfView++
	d.Version++
	r.docs[id] = d
	c := clonePost(d)
	return &c, nil
}

func (r *fakePostRepo) Replace(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.docs[p.ID]
	if !ok {
		return contract.ErrNotFound
	}
	if r.conflicts > 0 {
		r.conflicts--
		return contract.ErrVersionConflict
	}
	if stored.Version != p.Version {
		return contract.ErrVersionConflict
	}
	p.Version++
	r.docs[p.ID] = clonePost(*p)
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return contract.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

type fakeCategoryRepo struct {
	docs map[string]entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{docs: map[string]entity.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, d := range r.docs {
		if d.Title == c.Title {
			return contract.ErrDuplicateKey
		}
	}
	r.docs[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if d, ok := r.docs[id]; ok {
		return &d, nil
	}
	return nil, contract.ErrNotFound
}

func (r *fakeCategoryRepo) GetByTitle(_ context.Context, title string) (*entity.Category, error) {
	for _, d := range r.docs {
		if d.Title == title {
			c := d
			return &c, nil
		}
	}
	return nil, contract.ErrNotFound
}

func (r *fakeCategoryRepo) List(_ context.Context, opts contract.ListOptions) ([]entity.Category, int64, error) {
	out := []entity.Category{}
	for _, d := range r.docs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	total := int64(len(out))
	if len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, total, nil
}

func (r *fakeCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.docs)), nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if _, ok := r.docs[c.ID]; !ok {
		return contract.ErrNotFound
	}
	r.docs[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.docs[id]; !ok {
		return contract.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

// fakeListCache is an in-memory IListCache.
type fakeListCache struct {
	pages map[string]contract.CachedPage
	gets  int
	hits  int
}

func newFakeListCache() *fakeListCache {
	return &fakeListCache{pages: map[string]contract.CachedPage{}}
}

func (c *fakeListCache) GetPage(_ context.Context, key string) (*contract.CachedPage, bool, error) {
	c.gets++
	p, ok := c.pages[key]
	if !ok {
		return nil, false, nil
	}
	c.hits++
	return &p, true, nil
}

func (c *fakeListCache) SetPage(_ context.Context, key string, page *contract.CachedPage) error {
	c.pages[key] = *page
	return nil
}

func (c *fakeListCache) InvalidatePrefix(_ context.Context, prefix string) error {
	for k := range c.pages {
		if strings.HasPrefix(k, prefix) {
			delete(c.pages, k)
		}
	}
	return nil
}

type fakeJWT struct{}

func (fakeJWT) GenerateAccessToken(id string, role entity.Role) (string, error) {
	return "token-" + string(role) + "-" + id, nil
}

func (fakeJWT) ParseAccessToken(string) (*entity.Claims, error) {
	return nil, errors.New("not used")
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendEmail(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

type fakeRandom struct {
	token string
}

func (r fakeRandom) GenerateRandomToken(int) (string, error) {
	return r.token, nil
}

type fakeConfig struct{}

func (fakeConfig) GetAppBaseURL() string                      { return "http://quill.test" }
func (fakeConfig) GetPasswordResetTokenExpiry() time.Duration { return 10 * time.Minute }
