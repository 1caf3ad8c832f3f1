package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

// CustomerUseCase customer master data.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create adds a customer. Email is the uniqueness key.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	var fields []domain.FieldError
	if in.Name == "" {
		fields = append(fields, domain.FieldError{Field: "name", Reason: "required"})
	}
	if in.Email == "" {
		fields = append(fields, domain.FieldError{Field: "email", Reason: "required"})
	}
	if in.PlaceOfSupply == "" {
		fields = append(fields, domain.FieldError{Field: "placeOfSupply", Reason: "required"})
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	custType := in.Type
	if custType == "" {
		custType = entity.CustomerTypeIndividual
	}
	customer := &entity.Customer{
		ID:              uuid.New().String(),
		Type:            custType,
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		GSTNumber:       in.GSTNumber,
		PlaceOfSupply:   in.PlaceOfSupply,
		BillingAddress:  in.BillingAddress,
		ShippingAddress: in.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// FindOrCreateByEmail resolves the customer for webhook intake: an existing
// email wins, otherwise a new customer is created from the payload.
func (uc *CustomerUseCase) FindOrCreateByEmail(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if in.Email == "" {
		return nil, domain.Invalid("email", "required")
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	created, err := uc.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, created.ID)
}

// GetByID fetches one customer.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(c), nil
}

// List returns a keyword-filtered page.
func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) (dto.Paged[*dto.CustomerResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Keyword, page.PageSize, page.Offset())
	if err != nil {
		return dto.Paged[*dto.CustomerResponse]{}, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return dto.NewPaged(out, page.PageNumber, page.PageSize, total), nil
}

// Search unpaginated typeahead lookup.
func (uc *CustomerUseCase) Search(ctx context.Context, keyword string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.Search(ctx, keyword, 25)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Export returns the full filtered set, for the Excel/PDF download
// endpoints.
func (uc *CustomerUseCase) Export(ctx context.Context, keyword string) ([]*dto.CustomerResponse, error) {
	list, _, err := uc.repo.List(ctx, keyword, 10000, 0)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update mutates a customer; an email change re-checks uniqueness.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != "" && in.Email != c.Email {
		existing, err := uc.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		c.Email = in.Email
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Type != "" {
		c.Type = in.Type
	}
	if in.Phone != "" {
		c.Phone = in.Phone
	}
	if in.GSTNumber != "" {
		c.GSTNumber = in.GSTNumber
	}
	if in.PlaceOfSupply != "" {
		c.PlaceOfSupply = in.PlaceOfSupply
	}
	if in.BillingAddress != "" {
		c.BillingAddress = in.BillingAddress
	}
	if in.ShippingAddress != "" {
		c.ShippingAddress = in.ShippingAddress
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Delete removes a customer.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:              c.ID,
		Type:            c.Type,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		GSTNumber:       c.GSTNumber,
		PlaceOfSupply:   c.PlaceOfSupply,
		BillingAddress:  c.BillingAddress,
		ShippingAddress: c.ShippingAddress,
	}
}
