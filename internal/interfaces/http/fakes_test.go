package http_test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de puertos y repositorios (sin servicios reales)
// ──────────────────────────────────────────────────────────────────────────────

type fakeVerifier struct {
	mu         sync.Mutex
	identities map[string]*entity.Identity
	calls      int
}

func (f *fakeVerifier) VerifyToken(_ context.Context, token string) (*entity.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	id, ok := f.identities[token]
	if !ok {
		return nil, domain.Unauthorized("token inválido o expirado")
	}
	return id, nil
}

type fakeProfiles struct {
	mu       sync.Mutex
	profiles map[string]*entity.Profile
	calls    int
}

func (f *fakeProfiles) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.profiles[userID], nil
}

func (f *fakeProfiles) Upsert(_ context.Context, p *entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profiles == nil {
		f.profiles = map[string]*entity.Profile{}
	}
	f.profiles[p.IDUsuario] = p
	return nil
}

type fakeBusinesses struct {
	owners map[int64]string
	info   map[int64]*entity.BusinessInfo
	found  []*entity.BusinessSummary
}

func (f *fakeBusinesses) Create(_ context.Context, b *entity.Business) error {
	b.IDNegocio = 99
	return nil
}

func (f *fakeBusinesses) GetByOwner(context.Context, string) (*entity.Business, error) {
	return nil, nil
}

func (f *fakeBusinesses) GetInfo(_ context.Context, id int64) (*entity.BusinessInfo, error) {
	return f.info[id], nil
}

func (f *fakeBusinesses) GetOwnerID(_ context.Context, id int64) (string, error) {
	return f.owners[id], nil
}

func (f *fakeBusinesses) SearchByName(_ context.Context, _ string, limit, offset int) ([]*entity.BusinessSummary, error) {
	return window(f.found, limit, offset), nil
}

type fakeProducts struct {
	catalog  map[int64][]*entity.ProductWithCategory
	found    []*entity.ProductListing
	featured []*entity.ProductListing
	created  []*entity.Product
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	p.IDProducto = int64(len(f.created) + 1)
	p.FechaCreacion = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProducts) ListActiveByBusiness(_ context.Context, id int64) ([]*entity.ProductWithCategory, error) {
	return f.catalog[id], nil
}

func (f *fakeProducts) SearchByName(_ context.Context, _ string, limit, offset int) ([]*entity.ProductListing, error) {
	return window(f.found, limit, offset), nil
}

func (f *fakeProducts) ListFeatured(_ context.Context, _ time.Time, limit, offset int) ([]*entity.ProductListing, error) {
	return window(f.featured, limit, offset), nil
}

type fakePosts struct {
	byUser  map[string][]*entity.Post
	active  []*entity.PostListing
	created []*entity.Post
}

func (f *fakePosts) Create(_ context.Context, p *entity.Post) error {
	p.IDPost = int64(len(f.created) + 1)
	f.created = append(f.created, p)
	return nil
}

func (f *fakePosts) ListActiveByUser(_ context.Context, userID string) ([]*entity.Post, error) {
	return f.byUser[userID], nil
}

func (f *fakePosts) ListActive(_ context.Context, limit, offset int) ([]*entity.PostListing, error) {
	return window(f.active, limit, offset), nil
}

type fakeCategories struct {
	list []*entity.BusinessCategory
}

func (f *fakeCategories) ListActiveBusinessCategories(context.Context) ([]*entity.BusinessCategory, error) {
	return f.list, nil
}

// fakeTx ejecuta fn con los mismos repos, sin transacción real.
type fakeTx struct {
	businesses *fakeBusinesses
	products   *fakeProducts
	posts      *fakePosts
	callers    []entity.Caller
}

var _ ports.CallerTxRunner = (*fakeTx)(nil)

func (f *fakeTx) RunAsCaller(_ context.Context, caller entity.Caller, fn func(
	repository.BusinessRepository, repository.ProductRepository, repository.PostRepository,
) error) error {
	f.callers = append(f.callers, caller)
	return fn(f.businesses, f.products, f.posts)
}

type fakeIdP struct {
	signedUp map[string]string // email -> password
	deleted  []string
}

func (f *fakeIdP) SignUp(_ context.Context, email, password string, _ map[string]any) (*entity.Identity, *entity.Session, error) {
	if f.signedUp == nil {
		f.signedUp = map[string]string{}
	}
	f.signedUp[email] = password
	return &entity.Identity{ID: "new-user", Email: email}, nil, nil
}

func (f *fakeIdP) SignInWithPassword(_ context.Context, email, password string) (*entity.Identity, *entity.Session, error) {
	if pw, ok := f.signedUp[email]; !ok || pw != password {
		return nil, nil, domain.Unauthorized("credenciales inválidas")
	}
	return &entity.Identity{ID: "new-user", Email: email}, &entity.Session{AccessToken: "at", TokenType: "bearer"}, nil
}

func (f *fakeIdP) DeleteUser(_ context.Context, userID string) error {
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeStorage struct {
	uploads map[string][]byte
}

func (f *fakeStorage) Upload(_ context.Context, bucket, path string, r io.Reader, _ int64, _ string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if f.uploads == nil {
		f.uploads = map[string][]byte{}
	}
	f.uploads[bucket+"/"+path] = b
	return nil
}

func (f *fakeStorage) Remove(context.Context, string, string) error { return nil }

func (f *fakeStorage) PublicURL(bucket, path string) string {
	return "https://cdn.test/" + bucket + "/" + path
}

func window[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end]
}
