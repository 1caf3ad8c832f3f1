package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implements ExpenseRepository (usable with pool or tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository builds the adapter.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, item_id, item_name, date, quantity, price, total, payment_method,
	created_at, updated_at`

func scanExpenses(rows pgx.Rows) ([]*entity.Expense, error) {
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.ItemID, &e.ItemName, &e.Date, &e.Quantity, &e.Price, &e.Total,
			&e.PaymentMethod, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Create persists a new expense.
func (r *ExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		expense.ID, expense.ItemID, expense.ItemName, expense.Date, expense.Quantity,
		expense.Price, expense.Total, expense.PaymentMethod, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID fetches an expense by ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	var e entity.Expense
	err := r.q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id).Scan(
		&e.ID, &e.ItemID, &e.ItemName, &e.Date, &e.Quantity, &e.Price, &e.Total,
		&e.PaymentMethod, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// List returns a keyword-filtered page, newest first, plus the total match
// count.
func (r *ExpenseRepo) List(ctx context.Context, keyword string, limit, offset int) ([]*entity.Expense, int, error) {
	pattern := likePattern(keyword)

	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM expenses WHERE item_name ILIKE $1`, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count expenses: %w", err)
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses WHERE item_name ILIKE $1
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}
	list, err := scanExpenses(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search is the capped unpaginated typeahead variant.
func (r *ExpenseRepo) Search(ctx context.Context, keyword string, limit int) ([]*entity.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses WHERE item_name ILIKE $1
		ORDER BY date DESC, created_at DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, likePattern(keyword), limit)
	if err != nil {
		return nil, fmt.Errorf("search expenses: %w", err)
	}
	return scanExpenses(rows)
}

// Update persists changed expense fields.
func (r *ExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	query := `
		UPDATE expenses SET date = $2, quantity = $3, price = $4, total = $5,
			payment_method = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		expense.ID, expense.Date, expense.Quantity, expense.Price, expense.Total,
		expense.PaymentMethod, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// Delete removes an expense by ID.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
