package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cable-billing/internal/domain/connection"
	"cable-billing/internal/domain/customer"
	"cable-billing/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const customerColumns = `id, area_id, customer_number, first_name, last_name, phone_number, address, identity_no,
            has_digital_box, offer_power_intake, under_repair, connection_start_date, created_at, updated_at`

type CustomerRepository struct {
	txHelper
}

var _ customer.Repository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	return &CustomerRepository{txHelper{db: db, logger: defaultLogger("CustomerRepository", logger)}}
}

func (r *CustomerRepository) CreateWithConnection(ctx context.Context, cust *customer.Customer, conn *connection.Connection) (err error) {
	if cust == nil || conn == nil {
		return fmt.Errorf("%w: customer and connection are required", apperrors.ErrInvalidArgument)
	}
	start := time.Now()
	defer func() { observe("OnboardCustomer", start, err) }()

	tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.RollbackTx(ctx, tx)
		}
	}()

	if cust.CustomerNumber, err = r.nextCustomerNumber(ctx, tx, cust.AreaID); err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `
        INSERT INTO customers (area_id, customer_number, first_name, last_name, phone_number, address, identity_no,
            has_digital_box, offer_power_intake, under_repair, connection_start_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
        RETURNING id, created_at, updated_at`,
		cust.AreaID, cust.CustomerNumber, cust.FirstName, cust.LastName, cust.PhoneNumber, cust.Address,
		cust.IdentityNo, cust.HasDigitalBox, cust.OfferPowerIntake, cust.UnderRepair, cust.ConnectionStartDate,
	).Scan(&cust.ID, &cust.CreatedAt, &cust.UpdatedAt)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}

	conn.CustomerID = cust.ID
	err = tx.QueryRow(ctx, `
        INSERT INTO connections (customer_id, active, start_date, box_number, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
        RETURNING id, created_at, updated_at`,
		conn.CustomerID, conn.Active, conn.StartDate, conn.BoxNumber,
	).Scan(&conn.ID, &conn.CreatedAt, &conn.UpdatedAt)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert first connection", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}

	if err = r.CommitTx(ctx, tx); err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "Customer inserted successfully",
		slog.Int64("customerID", cust.ID), slog.String("customerNumber", cust.CustomerNumber))
	return nil
}

// Update saves the customer. Moving to another area issues a customer number from the new area.
func (r *CustomerRepository) Update(ctx context.Context, cust *customer.Customer) (err error) {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	start := time.Now()
	defer func() { observe("UpdateCustomer", start, err) }()

	tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.RollbackTx(ctx, tx)
		}
	}()

	var currentArea int64
	var number string
	err = tx.QueryRow(ctx, `SELECT area_id, customer_number FROM customers WHERE id = $1 FOR UPDATE`, cust.ID).
		Scan(&currentArea, &number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found for update", slog.Int64("customerID", cust.ID))
			return apperrors.ErrNotFound
		}
		return translateDBError(err, r.logger)
	}
	if currentArea != cust.AreaID {
		if number, err = r.nextCustomerNumber(ctx, tx, cust.AreaID); err != nil {
			return err
		}
		r.logger.InfoContext(ctx, "Customer moved to another area", slog.Int64("customerID", cust.ID),
			slog.Int64("fromAreaID", currentArea), slog.Int64("toAreaID", cust.AreaID), slog.String("customerNumber", number))
	}

	err = tx.QueryRow(ctx, `
        UPDATE customers
        SET area_id = $1,
            customer_number = $2,
            first_name = $3,
            last_name = $4,
            phone_number = $5,
            address = $6,
            identity_no = $7,
            has_digital_box = $8,
            offer_power_intake = $9,
            under_repair = $10,
            updated_at = NOW()
        WHERE id = $11
        RETURNING updated_at`,
		cust.AreaID, number, cust.FirstName, cust.LastName, cust.PhoneNumber, cust.Address, cust.IdentityNo,
		cust.HasDigitalBox, cust.OfferPowerIntake, cust.UnderRepair, cust.ID,
	).Scan(&cust.UpdatedAt)
	if err != nil {
		return translateDBError(err, r.logger)
	}
	if err = r.CommitTx(ctx, tx); err != nil {
		return err
	}
	cust.CustomerNumber = number
	return nil
}

// nextCustomerNumber locks the area row so concurrent onboarding into one area is serialized.
func (r *CustomerRepository) nextCustomerNumber(ctx context.Context, tx pgx.Tx, areaID int64) (string, error) {
	var areaName string
	err := tx.QueryRow(ctx, `SELECT name FROM areas WHERE id = $1 FOR UPDATE`, areaID).Scan(&areaName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Area not found for customer", slog.Int64("areaID", areaID))
			return "", apperrors.NewValidationError("areaId", "area does not exist")
		}
		return "", translateDBError(err, r.logger)
	}

	var count int
	if err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE area_id = $1`, areaID).Scan(&count); err != nil {
		return "", translateDBError(err, r.logger)
	}
	return customer.GenerateCustomerNumber(areaName, count), nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	start := time.Now()
	cust, err := scanCustomer(r.db.QueryRow(ctx, query, customerID))
	observe("GetCustomerByID", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found", slog.Int64("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrDatabase, err)
	}
	return cust, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context, areaID int64) ([]*customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []any{}
	if areaID != 0 {
		query += " WHERE area_id = $1"
		args = append(args, areaID)
	}
	query += " ORDER BY id ASC"

	start := time.Now()
	rows, err := r.db.Query(ctx, query, args...)
	observe("ListCustomers", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		cust, err := scanCustomer(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, err)
		}
		customers = append(customers, cust)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}
	return customers, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) error {
	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, customerID)
	observe("DeleteCustomer", start, err)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to execute delete customer", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Customer deleted successfully", slog.Int64("customerID", customerID))
	return nil
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(
		&c.ID, &c.AreaID, &c.CustomerNumber, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Address, &c.IdentityNo,
		&c.HasDigitalBox, &c.OfferPowerIntake, &c.UnderRepair, &c.ConnectionStartDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
