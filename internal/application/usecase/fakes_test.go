package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// fakeTx ejecuta fn con los repos en memoria y registra el caller.
type fakeTx struct {
	businesses *fakeBusinesses
	products   *fakeProducts
	posts      *fakePosts
	callers    []entity.Caller
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		businesses: &fakeBusinesses{owners: map[int64]string{}},
		products:   &fakeProducts{},
		posts:      &fakePosts{},
	}
}

func (f *fakeTx) RunAsCaller(_ context.Context, caller entity.Caller, fn func(
	repository.BusinessRepository, repository.ProductRepository, repository.PostRepository,
) error) error {
	f.callers = append(f.callers, caller)
	return fn(f.businesses, f.products, f.posts)
}

type fakeBusinesses struct {
	owners  map[int64]string
	info    *entity.BusinessInfo
	err     error
	lookups int
}

func (f *fakeBusinesses) Create(context.Context, *entity.Business) error { return nil }

func (f *fakeBusinesses) GetByOwner(context.Context, string) (*entity.Business, error) {
	return nil, nil
}

func (f *fakeBusinesses) GetInfo(context.Context, int64) (*entity.BusinessInfo, error) {
	return f.info, f.err
}

func (f *fakeBusinesses) GetOwnerID(_ context.Context, id int64) (string, error) {
	f.lookups++
	return f.owners[id], f.err
}

func (f *fakeBusinesses) SearchByName(context.Context, string, int, int) ([]*entity.BusinessSummary, error) {
	return nil, nil
}

type fakeProducts struct {
	created []*entity.Product
	err     error
	list    []*entity.ProductWithCategory
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	p.IDProducto = int64(len(f.created) + 1)
	p.FechaCreacion = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProducts) ListActiveByBusiness(context.Context, int64) ([]*entity.ProductWithCategory, error) {
	return f.list, f.err
}

func (f *fakeProducts) SearchByName(context.Context, string, int, int) ([]*entity.ProductListing, error) {
	return nil, nil
}

func (f *fakeProducts) ListFeatured(context.Context, time.Time, int, int) ([]*entity.ProductListing, error) {
	return nil, nil
}

type fakePosts struct {
	created []*entity.Post
	byUser  map[string][]*entity.Post
	err     error
	asked   []string
}

func (f *fakePosts) Create(_ context.Context, p *entity.Post) error {
	if f.err != nil {
		return f.err
	}
	p.IDPost = int64(len(f.created) + 1)
	f.created = append(f.created, p)
	return nil
}

func (f *fakePosts) ListActiveByUser(_ context.Context, userID string) ([]*entity.Post, error) {
	f.asked = append(f.asked, userID)
	return f.byUser[userID], f.err
}

func (f *fakePosts) ListActive(context.Context, int, int) ([]*entity.PostListing, error) {
	return nil, nil
}
