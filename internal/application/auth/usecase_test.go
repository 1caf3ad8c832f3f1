package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
)

type userRepoStub struct {
	byID       *entity.User
	byEmail    *entity.User
	byEmailErr error
	created    *entity.User
}

func (r *userRepoStub) Create(_ context.Context, u *entity.User) error {
	r.created = u
	return nil
}

func (r *userRepoStub) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.byID, nil
}

func (r *userRepoStub) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail, r.byEmailErr
}

func (r *userRepoStub) List(_ context.Context) ([]*entity.User, error) { return nil, nil }

func (r *userRepoStub) Update(_ context.Context, u *entity.User) error { return nil }

func (r *userRepoStub) Delete(_ context.Context, id string) error { return nil }

func newAuthFixture(repo *userRepoStub) *AuthUseCase {
	return NewAuthUseCase(repo, JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"})
}

func TestCreateUserCollectsFieldErrors(t *testing.T) {
	uc := newAuthFixture(&userRepoStub{})

	_, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 3)
	assert.Equal(t, "name", ve.Fields[0].Field)
	assert.Equal(t, "email", ve.Fields[1].Field)
	assert.Equal(t, "password", ve.Fields[2].Field)
}

func TestCreateUserPropagatesEmailLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")
	repo := &userRepoStub{byEmailErr: lookupErr}
	uc := newAuthFixture(repo)

	_, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "s3cret",
	})

	require.ErrorIs(t, err, lookupErr)
	assert.Nil(t, repo.created, "a failed lookup must not fall through to the insert")
}

func TestUpdateUserPropagatesEmailLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")
	repo := &userRepoStub{
		byID:       &entity.User{ID: "u1", Name: "Admin", Email: "admin@example.com"},
		byEmailErr: lookupErr,
	}
	uc := newAuthFixture(repo)

	_, err := uc.UpdateUser(context.Background(), "u1", dto.UpdateUserRequest{Email: "other@example.com"})

	require.ErrorIs(t, err, lookupErr)
}
