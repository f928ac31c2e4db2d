package auth

import (
	"context"
	"io"
	"sync"

	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

type fakeIdP struct {
	signUpUser  *entity.Identity
	signUpSess  *entity.Session
	signUpErr   error
	signInUser  *entity.Identity
	signInErr   error
	deleteErr   error
	signUpCalls int
	deleted     []string
	metadata    map[string]any
}

func (f *fakeIdP) SignUp(_ context.Context, _, _ string, md map[string]any) (*entity.Identity, *entity.Session, error) {
	f.signUpCalls++
	f.metadata = md
	return f.signUpUser, f.signUpSess, f.signUpErr
}

func (f *fakeIdP) SignInWithPassword(_ context.Context, _, _ string) (*entity.Identity, *entity.Session, error) {
	if f.signInErr != nil {
		return nil, nil, f.signInErr
	}
	return f.signInUser, &entity.Session{AccessToken: "at"}, nil
}

func (f *fakeIdP) DeleteUser(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

type fakeVerifier struct {
	identity *entity.Identity
	err      error
	calls    int
}

func (f *fakeVerifier) VerifyToken(_ context.Context, _ string) (*entity.Identity, error) {
	f.calls++
	return f.identity, f.err
}

type fakeProfiles struct {
	profile   *entity.Profile
	getErr    error
	upsertErr error
	gets      int
	upserted  []*entity.Profile
}

func (f *fakeProfiles) GetByUserID(_ context.Context, _ string) (*entity.Profile, error) {
	f.gets++
	return f.profile, f.getErr
}

func (f *fakeProfiles) Upsert(_ context.Context, p *entity.Profile) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, p)
	return nil
}

type fakeBusinesses struct {
	owned     *entity.Business
	createErr error
	created   []*entity.Business
	ownerGets int
}

func (f *fakeBusinesses) Create(_ context.Context, b *entity.Business) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.IDNegocio = int64(len(f.created) + 1)
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBusinesses) GetByOwner(_ context.Context, _ string) (*entity.Business, error) {
	f.ownerGets++
	return f.owned, nil
}

func (f *fakeBusinesses) GetInfo(context.Context, int64) (*entity.BusinessInfo, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeBusinesses) GetOwnerID(context.Context, int64) (string, error) { return "", nil }

func (f *fakeBusinesses) SearchByName(context.Context, string, int, int) ([]*entity.BusinessSummary, error) {
	return nil, nil
}

type fakeStorage struct {
	mu        sync.Mutex
	uploadErr map[string]error // por bucket
	objects   map[string]string
	removed   []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string]string{}, uploadErr: map[string]error{}}
}

func (f *fakeStorage) Upload(_ context.Context, bucket, p string, r io.Reader, _ int64, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.uploadErr[bucket]; err != nil {
		return err
	}
	b, _ := io.ReadAll(r)
	f.objects[bucket+"/"+p] = string(b)
	return nil
}

func (f *fakeStorage) Remove(_ context.Context, bucket, p string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, bucket+"/"+p)
	f.removed = append(f.removed, bucket+"/"+p)
	return nil
}

func (f *fakeStorage) PublicURL(bucket, p string) string {
	return "https://cdn.test/" + bucket + "/" + p
}
