package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/dbx"
	"github.com/dmitrijs2005/chirpy/internal/server/models"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/chirps"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/chirpy/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// --- users ---

type fakeUsersRepo struct {
	byID  map[uuid.UUID]*models.User
	err   error
	calls []string
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[uuid.UUID]*models.User{}}
}

func (f *fakeUsersRepo) add(email, hashed string) *models.User {
	now := time.Now().UTC()
	u := &models.User{ID: uuid.New(), Email: email, HashedPassword: hashed, CreatedAt: now, UpdatedAt: now}
	f.byID[u.ID] = u
	return u
}

func (f *fakeUsersRepo) Create(_ context.Context, email, hashed string) (*models.User, error) {
	f.calls = append(f.calls, "Create")
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return nil, common.ErrorAlreadyExists
		}
	}
	return f.add(email, hashed), nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.calls = append(f.calls, "GetByEmail")
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.calls = append(f.calls, "GetByID")
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) Update(_ context.Context, id uuid.UUID, email, hashed string) (*models.User, error) {
	f.calls = append(f.calls, "Update")
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	for _, other := range f.byID {
		if other.ID != id && other.Email == email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.Email = email
	u.HashedPassword = hashed
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) UpgradeToChirpyRed(_ context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "UpgradeToChirpyRed")
	if f.err != nil {
		return f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.IsChirpyRed = true
	return nil
}

func (f *fakeUsersRepo) DeleteAll(context.Context) error {
	f.calls = append(f.calls, "DeleteAll")
	if f.err != nil {
		return f.err
	}
	f.byID = map[uuid.UUID]*models.User{}
	return nil
}

// --- chirps ---

type fakeChirpsRepo struct {
	byID      map[uuid.UUID]*models.Chirp
	err       error
	deleteErr error
	seq       int
}

func newFakeChirpsRepo() *fakeChirpsRepo {
	return &fakeChirpsRepo{byID: map[uuid.UUID]*models.Chirp{}}
}

func (f *fakeChirpsRepo) Create(_ context.Context, userID uuid.UUID, body string) (*models.Chirp, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	at := time.Date(2025, 1, 1, 0, 0, f.seq, 0, time.UTC)
	c := &models.Chirp{ID: uuid.New(), Body: body, UserID: userID, CreatedAt: at, UpdatedAt: at}
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeChirpsRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Chirp, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeChirpsRepo) List(_ context.Context, filter chirps.ListFilter) ([]models.Chirp, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Chirp{}
	for _, c := range f.byID {
		if filter.AuthorID != nil && c.UserID != *filter.AuthorID {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if filter.Desc {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeChirpsRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

// --- refresh tokens ---

type fakeRefreshRepo struct {
	rows      map[string]*models.RefreshToken
	users     *fakeUsersRepo
	createErr error
	findErr   error
	revokeErr error
}

func newFakeRefreshRepo(u *fakeUsersRepo) *fakeRefreshRepo {
	return &fakeRefreshRepo{rows: map[string]*models.RefreshToken{}, users: u}
}

func (f *fakeRefreshRepo) Create(_ context.Context, rt *models.RefreshToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *rt
	f.rows[rt.Token] = &cp
	return nil
}

func (f *fakeRefreshRepo) FindWithUser(ctx context.Context, token string) (*models.RefreshToken, *models.User, error) {
	if f.findErr != nil {
		return nil, nil, f.findErr
	}
	rt, ok := f.rows[token]
	if !ok {
		return nil, nil, common.ErrorNotFound
	}
	u, err := f.users.GetByID(ctx, rt.UserID)
	if err != nil {
		return nil, nil, err
	}
	cp := *rt
	return &cp, u, nil
}

func (f *fakeRefreshRepo) Revoke(_ context.Context, token string, at time.Time) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	if rt, ok := f.rows[token]; ok && rt.RevokedAt == nil {
		rt.RevokedAt = &at
		rt.UpdatedAt = at
	}
	return nil
}

// --- manager ---

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeChirpsRepo
	r *fakeRefreshRepo
}

func newFakeRepoManager() *fakeRepoManager {
	u := newFakeUsersRepo()
	return &fakeRepoManager{u: u, c: newFakeChirpsRepo(), r: newFakeRefreshRepo(u)}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) Chirps(dbx.DBTX) chirps.Repository               { return m.c }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }

// plainHasher keeps tests fast and lets them count Verify calls.
type plainHasher struct {
	verifies int
	hashErr  error
}

func (h *plainHasher) Hash(pw string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + pw, nil
}

func (h *plainHasher) Verify(pw, hashed string) bool {
	h.verifies++
	return hashed == "hashed:"+pw
}

func isKind(err, kind error) bool {
	return err != nil && errors.Is(err, kind)
}
