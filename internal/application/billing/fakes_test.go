package billing

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/gst"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

// In-memory fakes for the billing ports and repositories. No locking: the
// tests are single-goroutine.

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	for _, s := range r.sales {
		if s.Series == sale.Series && s.InvoiceNumber == sale.InvoiceNumber {
			return domain.ErrDuplicateInvoiceNo
		}
	}
	r.sales = append(r.sales, sale)
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, series, id string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.Series == series && s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) ExistsInvoiceNumber(_ context.Context, series, invoiceNumber string) (bool, error) {
	for _, s := range r.sales {
		if s.Series == series && s.InvoiceNumber == invoiceNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSaleRepo) List(_ context.Context, series, keyword string, limit, offset int) ([]*entity.Sale, int, error) {
	var matched []*entity.Sale
	for _, s := range r.sales {
		if s.Series != series {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(s.BuyerName+s.InvoiceNumber), strings.ToLower(keyword)) {
			continue
		}
		matched = append(matched, s)
	}
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *fakeSaleRepo) Search(ctx context.Context, series, keyword string, limit int) ([]*entity.Sale, error) {
	list, _, err := r.List(ctx, series, keyword, limit, 0)
	return list, err
}

func (r *fakeSaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	for i, s := range r.sales {
		if s.ID == sale.ID {
			r.sales[i] = sale
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSaleRepo) Delete(_ context.Context, series, id string) error {
	for i, s := range r.sales {
		if s.Series == series && s.ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSeqRepo struct {
	counters map[string]int64
}

func newFakeSeqRepo() *fakeSeqRepo { return &fakeSeqRepo{counters: map[string]int64{}} }

func (r *fakeSeqRepo) Next(_ context.Context, series string) (int64, error) {
	n, ok := r.counters[series]
	if !ok {
		n = gst.SeedNumber
	}
	n++
	r.counters[series] = n
	return n, nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item // id -> item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: map[string]*entity.Item{}}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, kind, id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok || it.Kind != kind {
		return nil, nil
	}
	return it, nil
}

func (r *fakeItemRepo) GetByCompanyName(_ context.Context, kind, companyName string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.Kind == kind && it.CompanyName == companyName {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) List(_ context.Context, kind, keyword string, limit, offset int) ([]*entity.Item, int, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out, len(out), nil
}

func (r *fakeItemRepo) Search(_ context.Context, kind, keyword string, limit int) ([]*entity.Item, error) {
	list, _, err := r.List(nil, kind, keyword, limit, 0)
	return list, err
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, kind, id string) error {
	delete(r.items, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(_ context.Context, keyword string, limit, offset int) ([]*entity.Customer, int, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (r *fakeCustomerRepo) Search(_ context.Context, keyword string, limit int) ([]*entity.Customer, error) {
	list, _, err := r.List(nil, keyword, limit, 0)
	return list, err
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	delete(r.customers, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.WebhookOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.WebhookOrder{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.WebhookOrder) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.WebhookOrder, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) List(_ context.Context, kind string) ([]*entity.WebhookOrder, error) {
	var out []*entity.WebhookOrder
	for _, o := range r.orders {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

// fakeTxRunner hands the same fakes to the callback; there is no real
// transaction, which is fine because the rejection paths under test fail
// before any write.
type fakeTxRunner struct {
	sales  *fakeSaleRepo
	seqs   *fakeSeqRepo
	orders *fakeOrderRepo
}

func (t *fakeTxRunner) RunSale(ctx context.Context, fn func(repository.SaleRepository, repository.SequenceRepository) error) error {
	return fn(t.sales, t.seqs)
}

func (t *fakeTxRunner) RunConfirm(ctx context.Context, fn func(repository.SaleRepository, repository.SequenceRepository, repository.WebhookOrderRepository) error) error {
	return fn(t.sales, t.seqs, t.orders)
}

type fakeRenderer struct {
	fail bool
}

func (r *fakeRenderer) RenderInvoice(sale *entity.Sale, customer *entity.Customer) ([]byte, error) {
	if r.fail {
		return nil, errors.New("render failed")
	}
	return []byte("%PDF-1.7 " + sale.InvoiceNumber), nil
}

type fakeMailer struct {
	sent []string // recipients
	fail bool
}

func (m *fakeMailer) SendInvoice(to, subject, body string, pdf []byte, filename string) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, to)
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func gstItem(id, name, rate, slab string) *entity.Item {
	return &entity.Item{ID: id, Kind: entity.ItemKindGST, Name: name, HSNCode: "9983", Rate: dec(rate), GSTSlab: dec(slab)}
}

func cashItem(id, name, rate, slab string) *entity.Item {
	return &entity.Item{ID: id, Kind: entity.ItemKindCash, Name: name, Rate: dec(rate), GSTSlab: dec(slab)}
}
