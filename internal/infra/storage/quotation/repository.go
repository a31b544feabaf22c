package quotation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/pricing"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/psqlbuilder"
)

const table = "quotations"

var columns = []string{
	"id",
	"quotation_number",
	"customer_name",
	"customer_email",
	"customer_phone",
	"service_type",
	"item_id",
	"item_name",
	"rental_type",
	"start_date",
	"end_date",
	"days",
	"num_adults",
	"num_children",
	"num_infants",
	"num_rooms",
	"currency",
	"base_price",
	"subtotal",
	"deposit_percentage",
	"deposit_amount",
	"remaining_amount",
	"valid_until",
	"status",
	"notes",
	"created_by",
	"sent_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с котировками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория котировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую котировку
// Если в контексте есть транзакция, использует её
func (r *Repository) Create(ctx context.Context, q *domain.Quotation) (*domain.Quotation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var rentalType *string
	if q.RentalType != nil {
		rt := string(*q.RentalType)
		rentalType = &rt
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"quotation_number",
			"customer_name",
			"customer_email",
			"customer_phone",
			"service_type",
			"item_id",
			"item_name",
			"rental_type",
			"start_date",
			"end_date",
			"days",
			"num_adults",
			"num_children",
			"num_infants",
			"num_rooms",
			"currency",
			"base_price",
			"subtotal",
			"deposit_percentage",
			"deposit_amount",
			"remaining_amount",
			"valid_until",
			"status",
			"notes",
			"created_by",
		).
		Values(
			q.QuotationNumber,
			q.CustomerName,
			q.CustomerEmail,
			q.CustomerPhone,
			string(q.ServiceType),
			q.ItemID,
			q.ItemName,
			rentalType,
			q.StartDate,
			q.EndDate,
			q.Days,
			q.NumAdults,
			q.NumChildren,
			q.NumInfants,
			q.NumRooms,
			q.Currency,
			q.BasePrice,
			q.Subtotal,
			q.DepositPercentage,
			q.DepositAmount,
			q.RemainingAmount,
			q.ValidUntil,
			string(q.Status),
			q.Notes,
			q.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&q.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	q.CreatedAt = createdAt.Time
	q.UpdatedAt = updatedAt.Time

	return q, nil
}

// GetByID получает котировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Quotation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку, чтобы смена статуса не потерялась
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	q, err := scanQuotation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrQuotationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan quotation: %v", ErrScanRow, err)
	}

	return q, nil
}

// List получает список котировок по фильтру, сначала новые
func (r *Repository) List(ctx context.Context, filter domain.QuotationsFilter) ([]*domain.Quotation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC, id DESC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.ServiceType != nil {
		builder = builder.Where(squirrel.Eq{"service_type": string(*filter.ServiceType)})
	}
	if filter.CustomerEmail != nil {
		builder = builder.Where(squirrel.Eq{"customer_email": *filter.CustomerEmail})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	quotations := make([]*domain.Quotation, 0)
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		quotations = append(quotations, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return quotations, nil
}

// UpdateStatus переводит котировку в статус to, только если текущий статус входит в from
// Если строка не обновилась (котировки нет или статус уже сменили), возвращается ErrStatusConflict
// При переводе в sent также проставляется sent_at
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from []domain.QuotationStatus, to domain.QuotationStatus, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateStatusQuery(id, from, to, at)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

func updateStatusQuery(id int64, from []domain.QuotationStatus, to domain.QuotationStatus, at time.Time) (string, []interface{}, error) {
	if len(from) == 0 {
		return "", nil, fmt.Errorf("no source statuses for quotation id=%d", id)
	}

	fromValues := make([]string, 0, len(from))
	for _, st := range from {
		fromValues = append(fromValues, string(st))
	}

	builder := psqlbuilder.Update(table).
		Set("status", string(to)).
		Set("updated_at", at)

	if to == domain.QuotationSent {
		builder = builder.Set("sent_at", at)
	}

	return builder.
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": fromValues}).
		ToSql()
}

func scanQuotation(row scanner) (*domain.Quotation, error) {
	var (
		q                    domain.Quotation
		serviceType, status  string
		rentalType           sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&q.ID,
		&q.QuotationNumber,
		&q.CustomerName,
		&q.CustomerEmail,
		&q.CustomerPhone,
		&serviceType,
		&q.ItemID,
		&q.ItemName,
		&rentalType,
		&q.StartDate,
		&q.EndDate,
		&q.Days,
		&q.NumAdults,
		&q.NumChildren,
		&q.NumInfants,
		&q.NumRooms,
		&q.Currency,
		&q.BasePrice,
		&q.Subtotal,
		&q.DepositPercentage,
		&q.DepositAmount,
		&q.RemainingAmount,
		&q.ValidUntil,
		&status,
		&q.Notes,
		&q.CreatedBy,
		&q.SentAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	q.ServiceType = pricing.ServiceType(serviceType)
	q.Status = domain.QuotationStatus(status)
	if rentalType.Valid {
		rt := pricing.RentalType(rentalType.String)
		q.RentalType = &rt
	}
	q.CreatedAt = createdAt.Time
	q.UpdatedAt = updatedAt.Time

	return &q, nil
}
