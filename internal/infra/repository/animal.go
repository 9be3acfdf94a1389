package repository

import (
	"context"
	"errors"
	"time"

	"corral-store/internal/domain/animal"
	"corral-store/internal/infra"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const animalSelectColumns = `
	a.id, a.name, a.plate, a.sex, a.birth_date, a.price_cents, a.status,
	a.father_id, a.mother_id, f.name, m.name, a.created_at, a.updated_at`

const animalJoinParents = `
	FROM animals a
	LEFT JOIN animals f ON f.id = a.father_id
	LEFT JOIN animals m ON m.id = a.mother_id`

type AnimalRepository struct {
	db *pgxpool.Pool
}

func NewAnimalRepository(db *pgxpool.Pool) *AnimalRepository {
	return &AnimalRepository{db: db}
}

func (r *AnimalRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AnimalRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT`+animalSelectColumns+animalJoinParents+`
		WHERE a.id = $1 AND a.deleted_at IS NULL`, id)

	rm, err := scanAnimalRM(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("animal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find animal", err)
	}
	return rm, nil
}

func (r *AnimalRepository) ListAvailable(ctx context.Context) ([]*readmodel.AnimalRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT`+animalSelectColumns+animalJoinParents+`
		WHERE a.status = 'available' AND a.deleted_at IS NULL
		ORDER BY a.created_at DESC, a.id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list animals", err)
	}
	defer rows.Close()

	items := []*readmodel.AnimalRM{}
	for rows.Next() {
		rm, scanErr := scanAnimalRM(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan animal row", scanErr)
		}
		items = append(items, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read animal rows", err)
	}
	return items, nil
}

func (r *AnimalRepository) FindPedigree(ctx context.Context, id uuid.UUID) (*readmodel.PedigreeRM, error) {
	root, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pedigree := &readmodel.PedigreeRM{Animal: *root}
	if root.FatherID != nil {
		pedigree.Father, err = r.findAncestor(ctx, *root.FatherID)
		if err != nil {
			return nil, err
		}
	}
	if root.MotherID != nil {
		pedigree.Mother, err = r.findAncestor(ctx, *root.MotherID)
		if err != nil {
			return nil, err
		}
	}
	return pedigree, nil
}

func (r *AnimalRepository) findAncestor(ctx context.Context, id uuid.UUID) (*readmodel.AncestorRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT a.id, a.name, f.name, m.name`+animalJoinParents+`
		WHERE a.id = $1`, id)

	var rm readmodel.AncestorRM
	if err := row.Scan(&rm.ID, &rm.Name, &rm.FatherName, &rm.MotherName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A dangling parent reference is not worth failing the whole
			// pedigree over.
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find ancestor", err)
	}
	return &rm, nil
}

func (r *AnimalRepository) Create(ctx context.Context, a *animal.Animal) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO animals (id, name, plate, sex, birth_date, price_cents, status,
		                     father_id, mother_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID(), a.Name(), a.Plate().String(), a.Sex().String(), a.BirthDate(),
		a.Price().Cents(), a.Status().String(), a.FatherID(), a.MotherID(),
		a.CreatedAt(), a.UpdatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapAnimalWriteErr("failed to create animal", err)
	}
	return a.ID(), nil
}

func (r *AnimalRepository) Update(ctx context.Context, a *animal.Animal) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE animals
		SET name = $2, plate = $3, sex = $4, birth_date = $5, price_cents = $6,
		    father_id = $7, mother_id = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL`,
		a.ID(), a.Name(), a.Plate().String(), a.Sex().String(), a.BirthDate(),
		a.Price().Cents(), a.FatherID(), a.MotherID(), a.UpdatedAt(),
	)
	if err != nil {
		return wrapAnimalWriteErr("failed to update animal", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("animal not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AnimalRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE animals
		SET status = 'deleted', deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, id, deletedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to delete animal", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("animal not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AnimalRepository) BulkMarkSold(ctx context.Context, ids []uuid.UUID, soldAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE animals
		SET status = 'sold', updated_at = $2
		WHERE id = ANY($1) AND status = 'available' AND deleted_at IS NULL`,
		ids, soldAt)
	if err != nil {
		return infra.WrapRepoErr("failed to mark animals sold", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return infra.WrapRepoErr("some animals were no longer available", nil, infra.KindNotFound)
	}
	return nil
}

func wrapAnimalWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}

func scanAnimalRM(row pgx.Row) (*readmodel.AnimalRM, error) {
	var rm readmodel.AnimalRM
	err := row.Scan(
		&rm.ID, &rm.Name, &rm.Plate, &rm.Sex, &rm.BirthDate, &rm.PriceCents,
		&rm.Status, &rm.FatherID, &rm.MotherID, &rm.FatherName, &rm.MotherName,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
