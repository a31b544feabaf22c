package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со счетами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория счетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый счёт
func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invoices").
		Columns(
			"invoice_number",
			"quotation_id",
			"customer_name",
			"customer_email",
			"currency",
			"total_amount",
			"deposit_amount",
			"remaining_amount",
			"due_date",
			"status",
		).
		Values(
			inv.InvoiceNumber,
			inv.QuotationID,
			inv.CustomerName,
			inv.CustomerEmail,
			inv.Currency,
			inv.TotalAmount,
			inv.DepositAmount,
			inv.RemainingAmount,
			inv.DueDate,
			string(inv.Status),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&inv.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	inv.CreatedAt = createdAt.Time

	return inv, nil
}

// GetIssuedByQuotationID получает последний выставленный (неоплаченный и неотменённый) счёт по котировке
func (r *Repository) GetIssuedByQuotationID(ctx context.Context, quotationID int64) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"invoice_number",
		"quotation_id",
		"customer_name",
		"customer_email",
		"currency",
		"total_amount",
		"deposit_amount",
		"remaining_amount",
		"due_date",
		"status",
		"created_at",
	).
		From("invoices").
		Where(squirrel.Eq{"quotation_id": quotationID, "status": string(domain.InvoiceIssued)}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetIssuedByQuotationID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		inv       domain.Invoice
		status    string
		createdAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.QuotationID,
		&inv.CustomerName,
		&inv.CustomerEmail,
		&inv.Currency,
		&inv.TotalAmount,
		&inv.DepositAmount,
		&inv.RemainingAmount,
		&inv.DueDate,
		&status,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetIssuedByQuotationID - scan invoice: %v", ErrScanRow, err)
	}

	inv.Status = domain.InvoiceStatus(status)
	inv.CreatedAt = createdAt.Time

	return &inv, nil
}
