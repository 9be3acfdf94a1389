package repository

import (
	"context"
	"errors"

	"corral-store/internal/domain/customer"
	"corral-store/internal/infra"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) FindByDocID(ctx context.Context, docID string) (*readmodel.CustomerRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, full_name, doc_id, phone, email, created_at
		FROM customers
		WHERE doc_id = $1`, docID)

	rm, err := scanCustomerRM(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return rm, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CustomerRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, full_name, doc_id, phone, email, created_at
		FROM customers
		WHERE id = $1`, id)

	rm, err := scanCustomerRM(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return rm, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) (uuid.UUID, error) {
	// Empty document ids are stored as NULL so the unique index never
	// collides two anonymous buyers.
	var docID *string
	if c.DocID() != "" {
		v := c.DocID()
		docID = &v
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO customers (id, full_name, doc_id, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID(), c.FullName(), docID, c.Phone(), c.Email(), c.CreatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("customer already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return c.ID(), nil
}

func scanCustomerRM(row pgx.Row) (*readmodel.CustomerRM, error) {
	var (
		rm    readmodel.CustomerRM
		docID *string
	)
	if err := row.Scan(&rm.ID, &rm.FullName, &docID, &rm.Phone, &rm.Email, &rm.CreatedAt); err != nil {
		return nil, err
	}
	if docID != nil {
		rm.DocID = *docID
	}
	return &rm, nil
}
