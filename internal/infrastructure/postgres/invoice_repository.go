package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación PostgreSQL de InvoiceRepository.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador con el pool.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// NextIdentity genera un UUID v7: único y ordenable en el tiempo.
func (r *InvoiceRepo) NextIdentity() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// FindByID reconstruye el agregado completo: cabecera + todas sus líneas.
// Devuelve (nil, nil) si la factura no existe.
func (r *InvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	const headQuery = `
		SELECT customer_name, customer_email, status
		FROM invoices WHERE id = $1`
	var customerName, customerEmail, rawStatus string
	err := r.pool.QueryRow(ctx, headQuery, id).Scan(&customerName, &customerEmail, &rawStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	status, err := statusFromRow(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("get invoice %s: %w", id, err)
	}

	// UUID v7 es ordenable en el tiempo: ORDER BY id preserva el orden de inserción.
	const linesQuery = `
		SELECT id, name, quantity, unit_price_minor, currency
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.InvoiceLine
	for rows.Next() {
		var (
			lineID     uuid.UUID
			name       string
			quantity   int
			priceMinor int64
			currency   string
		)
		if err := rows.Scan(&lineID, &name, &quantity, &priceMinor, &currency); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		unitPrice, err := moneyFromRow(priceMinor, currency)
		if err != nil {
			return nil, fmt.Errorf("línea %s: %w", lineID, err)
		}
		line, err := entity.NewInvoiceLine(lineID, name, quantity, unitPrice)
		if err != nil {
			return nil, fmt.Errorf("reconstruir línea %s: %w", lineID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}

	return entity.Reconstruct(id, customerName, customerEmail, status, lines), nil
}

// Save persiste cabecera y líneas como una unidad atómica dentro de una
// transacción. Si falla la escritura de cualquier línea (ej. colisión de
// identidad), el Rollback diferido revierte todo sin dejar estado parcial.
func (r *InvoiceRepo) Save(ctx context.Context, invoice *entity.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now()
	const invoiceQuery = `
		INSERT INTO invoices (id, customer_name, customer_email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, invoiceQuery,
		invoice.ID(), invoice.CustomerName(), invoice.CustomerEmail(), string(invoice.Status()),
		now, now,
	); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice id already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	const lineQuery = `
		INSERT INTO invoice_lines (id, invoice_id, name, quantity, unit_price_minor, currency)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, line := range invoice.Lines() {
		priceMinor, currency := moneyToRow(line.UnitPrice())
		if _, err := tx.Exec(ctx, lineQuery,
			line.ID(), invoice.ID(), line.Name(), line.Quantity(), priceMinor, currency,
		); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("invoice line id already exists: %w", err)
			}
			return fmt.Errorf("insert invoice line: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Update persiste los campos escalares de una factura existente. Las líneas
// son inmutables tras la creación y no se reescriben. Actualizar una factura
// inexistente es una violación de invariante y falla ruidosamente.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	const query = `
		UPDATE invoices
		SET customer_name  = $2,
		    customer_email = $3,
		    status         = $4,
		    updated_at     = $5
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		invoice.ID(), invoice.CustomerName(), invoice.CustomerEmail(), string(invoice.Status()),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update invoice %s: la factura no existe", invoice.ID())
	}
	return nil
}

// isUniqueViolation true si err es una violación de unicidad de Postgres
// (23505), la señal de una colisión de identidad en cabecera o líneas.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
