package repository

import (
	"context"
	"errors"

	"corral-store/internal/domain/sale"
	"corral-store/internal/infra"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SaleRepository struct {
	db *pgxpool.Pool
}

func NewSaleRepository(db *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) CreateHeader(ctx context.Context, s *sale.Sale) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sales (id, customer_id, total_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID(), s.CustomerID(), s.Total().Cents(), s.Status().String(), s.CreatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return infra.WrapRepoErr("sale references a missing customer", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create sale header", err)
	}
	return nil
}

func (r *SaleRepository) CreateDetails(ctx context.Context, saleID uuid.UUID, lines []sale.Line) error {
	rows := make([][]any, len(lines))
	for i, l := range lines {
		rows[i] = []any{saleID, l.ItemID, l.UnitPrice.Cents()}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"sale_details"},
		[]string{"sale_id", "animal_id", "unit_price_cents"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create sale details", err)
	}
	return nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.SaleRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, customer_id, total_cents, status, created_at
		FROM sales
		WHERE id = $1`, id)

	var rm readmodel.SaleRM
	if err := row.Scan(&rm.ID, &rm.CustomerID, &rm.TotalCents, &rm.Status, &rm.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find sale", err)
	}

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return nil, err
	}
	rm.Lines = lines
	return &rm, nil
}

func (r *SaleRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*readmodel.SaleRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer_id, total_cents, status, created_at
		FROM sales
		WHERE customer_id = $1
		ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales", err)
	}
	defer rows.Close()

	sales := []*readmodel.SaleRM{}
	for rows.Next() {
		var rm readmodel.SaleRM
		if err := rows.Scan(&rm.ID, &rm.CustomerID, &rm.TotalCents, &rm.Status, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale row", err)
		}
		sales = append(sales, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sale rows", err)
	}

	for _, rm := range sales {
		lines, err := r.findLines(ctx, rm.ID)
		if err != nil {
			return nil, err
		}
		rm.Lines = lines
	}
	return sales, nil
}

func (r *SaleRepository) findLines(ctx context.Context, saleID uuid.UUID) ([]readmodel.SaleLineRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT animal_id, unit_price_cents
		FROM sale_details
		WHERE sale_id = $1`, saleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sale details", err)
	}
	defer rows.Close()

	lines := []readmodel.SaleLineRM{}
	for rows.Next() {
		var line readmodel.SaleLineRM
		if err := rows.Scan(&line.ItemID, &line.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale detail row", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sale detail rows", err)
	}
	return lines, nil
}
