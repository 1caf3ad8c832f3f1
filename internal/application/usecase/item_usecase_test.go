package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
)

type itemRepoStub struct {
	byID         *entity.Item
	byCompany    *entity.Item
	byCompanyErr error
	created      *entity.Item
}

func (r *itemRepoStub) Create(_ context.Context, item *entity.Item) error {
	r.created = item
	return nil
}

func (r *itemRepoStub) GetByID(_ context.Context, kind, id string) (*entity.Item, error) {
	return r.byID, nil
}

func (r *itemRepoStub) GetByCompanyName(_ context.Context, kind, companyName string) (*entity.Item, error) {
	return r.byCompany, r.byCompanyErr
}

func (r *itemRepoStub) List(_ context.Context, kind, keyword string, limit, offset int) ([]*entity.Item, int, error) {
	return nil, 0, nil
}

func (r *itemRepoStub) Search(_ context.Context, kind, keyword string, limit int) ([]*entity.Item, error) {
	return nil, nil
}

func (r *itemRepoStub) Update(_ context.Context, item *entity.Item) error { return nil }

func (r *itemRepoStub) Delete(_ context.Context, kind, id string) error { return nil }

func TestCreateItemCollectsFieldErrors(t *testing.T) {
	uc := NewItemUseCase(&itemRepoStub{})

	_, err := uc.Create(context.Background(), entity.ItemKindPurchase, dto.CreateItemRequest{
		GSTSlab: decimal.NewFromInt(200),
	})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 4)
	assert.Equal(t, "name", ve.Fields[0].Field)
	assert.Equal(t, "rate", ve.Fields[1].Field)
	assert.Equal(t, "gstSlab", ve.Fields[2].Field)
	assert.Equal(t, "companyName", ve.Fields[3].Field)
}

func TestCreateItemPropagatesCompanyLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")
	repo := &itemRepoStub{byCompanyErr: lookupErr}
	uc := NewItemUseCase(repo)

	_, err := uc.Create(context.Background(), entity.ItemKindPurchase, dto.CreateItemRequest{
		Name:        "Steel Rods",
		CompanyName: "Bharat Steel",
		Rate:        decimal.NewFromInt(100),
		GSTSlab:     decimal.NewFromInt(18),
	})

	require.ErrorIs(t, err, lookupErr)
	assert.Nil(t, repo.created)
}

func TestUpdateItemPropagatesCompanyLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset")
	repo := &itemRepoStub{
		byID: &entity.Item{
			ID:          "i1",
			Kind:        entity.ItemKindPurchase,
			Name:        "Steel Rods",
			CompanyName: "Bharat Steel",
			Rate:        decimal.NewFromInt(100),
			GSTSlab:     decimal.NewFromInt(18),
		},
		byCompanyErr: lookupErr,
	}
	uc := NewItemUseCase(repo)

	_, err := uc.Update(context.Background(), entity.ItemKindPurchase, "i1", dto.CreateItemRequest{
		CompanyName: "New Steel",
	})

	require.ErrorIs(t, err, lookupErr)
}
