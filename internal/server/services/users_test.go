package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/chirpy/internal/common"
)

func TestRegister(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewUserService(nil, rm, &plainHasher{})

	u, err := s.Register(context.Background(), "saul@bettercall.com", "pw")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "hashed:pw", u.HashedPassword)
	assert.False(t, u.IsChirpyRed)

	_, err = s.Register(context.Background(), "saul@bettercall.com", "other")
	assert.True(t, isKind(err, common.ErrBadRequest), "duplicate email")
}

func TestRegister_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		hasher   *plainHasher
		kind     error
	}{
		{"missing email", "", "pw", &plainHasher{}, common.ErrBadRequest},
		{"missing password", "a@b.c", "", &plainHasher{}, common.ErrBadRequest},
		{"hash rejected", "a@b.c", "pw", &plainHasher{hashErr: errBoom{}}, common.ErrBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := newFakeRepoManager()
			s := NewUserService(nil, rm, tt.hasher)
			_, err := s.Register(context.Background(), tt.email, tt.password)
			assert.True(t, isKind(err, tt.kind))
			assert.NotContains(t, rm.u.calls, "Create")
		})
	}
}

func TestRegister_StoreFailure(t *testing.T) {
	rm := newFakeRepoManager()
	rm.u.err = errBoom{}
	s := NewUserService(nil, rm, &plainHasher{})

	_, err := s.Register(context.Background(), "a@b.c", "pw")
	assert.True(t, isKind(err, common.ErrInternal))
	assert.Equal(t, "Internal server error", common.Message(err))
}

func TestUpdate_EmailAndPassword(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	u := rm.u.add("old@jmp.com", "hashed:old")
	s := NewUserService(db, rm, &plainHasher{})

	got, err := s.Update(context.Background(), u.ID, "new@jmp.com", "new")
	require.NoError(t, err)
	assert.Equal(t, "new@jmp.com", got.Email)
	assert.Equal(t, "hashed:new", got.HashedPassword)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_PartialKeepsOtherField(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	u := rm.u.add("old@jmp.com", "hashed:old")
	s := NewUserService(db, rm, &plainHasher{})

	got, err := s.Update(context.Background(), u.ID, "", "new")
	require.NoError(t, err)
	assert.Equal(t, "old@jmp.com", got.Email)
	assert.Equal(t, "hashed:new", got.HashedPassword)

	got, err = s.Update(context.Background(), u.ID, "new@jmp.com", "")
	require.NoError(t, err)
	assert.Equal(t, "new@jmp.com", got.Email)
	assert.Equal(t, "hashed:new", got.HashedPassword)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_Errors(t *testing.T) {
	t.Run("nothing to change", func(t *testing.T) {
		s := NewUserService(nil, newFakeRepoManager(), &plainHasher{})
		_, err := s.Update(context.Background(), uuid.New(), "", "")
		assert.True(t, isKind(err, common.ErrBadRequest))
	})

	t.Run("user gone", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		s := NewUserService(db, newFakeRepoManager(), &plainHasher{})
		_, err := s.Update(context.Background(), uuid.New(), "x@y.z", "")
		assert.True(t, isKind(err, common.ErrNotFound))
		assert.Equal(t, "User not found", common.Message(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("email taken", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		rm := newFakeRepoManager()
		rm.u.add("taken@jmp.com", "hashed:a")
		u := rm.u.add("me@jmp.com", "hashed:b")
		s := NewUserService(db, rm, &plainHasher{})

		_, err := s.Update(context.Background(), u.ID, "taken@jmp.com", "")
		assert.True(t, isKind(err, common.ErrBadRequest))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin().WillReturnError(errBoom{})

		s := NewUserService(db, newFakeRepoManager(), &plainHasher{})
		_, err := s.Update(context.Background(), uuid.New(), "x@y.z", "")
		assert.True(t, isKind(err, common.ErrInternal))
	})
}
