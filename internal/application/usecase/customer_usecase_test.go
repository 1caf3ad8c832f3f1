package usecase

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

// customerRepoStub returns canned values; byEmailErr simulates a failing
// uniqueness lookup.
type customerRepoStub struct {
	byID       *entity.Customer
	byEmail    *entity.Customer
	byEmailErr error
	created    *entity.Customer
}

func (r *customerRepoStub) Create(_ context.Context, c *entity.Customer) error {
	r.created = c
	return nil
}

func (r *customerRepoStub) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.byID, nil
}

func (r *customerRepoStub) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	return r.byEmail, r.byEmailErr
}

func (r *customerRepoStub) List(_ context.Context, keyword string, limit, offset int) ([]*entity.Customer, int, error) {
	return nil, 0, nil
}

func (r *customerRepoStub) Search(_ context.Context, keyword string, limit int) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *customerRepoStub) Update(_ context.Context, c *entity.Customer) error { return nil }

func (r *customerRepoStub) Delete(_ context.Context, id string) error { return nil }

func validCustomerRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:          "Acme Traders",
		Email:         "acme@example.com",
		PlaceOfSupply: "Maharashtra",
	}
}

func TestCreateCustomerCollectsFieldErrors(t *testing.T) {
	uc := NewCustomerUseCase(&customerRepoStub{})

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 3)
	assert.Equal(t, "name", ve.Fields[0].Field)
	assert.Equal(t, "email", ve.Fields[1].Field)
	assert.Equal(t, "placeOfSupply", ve.Fields[2].Field)
}

func TestCreateCustomerPropagatesEmailLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")
	repo := &customerRepoStub{byEmailErr: lookupErr}
	uc := NewCustomerUseCase(repo)

	_, err := uc.Create(context.Background(), validCustomerRequest())

	require.ErrorIs(t, err, lookupErr)
	assert.Nil(t, repo.created, "a failed lookup must not fall through to the insert")
}

func TestUpdateCustomerPropagatesEmailLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")
	repo := &customerRepoStub{
		byID:       &entity.Customer{ID: "c1", Name: "Acme Traders", Email: "acme@example.com"},
		byEmailErr: lookupErr,
	}
	uc := NewCustomerUseCase(repo)

	_, err := uc.Update(context.Background(), "c1", dto.CreateCustomerRequest{Email: "new@example.com"})

	require.ErrorIs(t, err, lookupErr)
}

func TestFindOrCreateByEmailPropagatesLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")
	repo := &customerRepoStub{byEmailErr: lookupErr}
	uc := NewCustomerUseCase(repo)

	_, err := uc.FindOrCreateByEmail(context.Background(), validCustomerRequest())

	require.ErrorIs(t, err, lookupErr)
	assert.Nil(t, repo.created)
}
