package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/backoffice-go/internal/domain/branch"
	"github.com/staffdesk/backoffice-go/internal/pkg/database"
)

type branchRepository struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepository{db: db}
}

// Create implements branch.BranchRepository.
func (b *branchRepository) Create(ctx context.Context, newBranch branch.Branch) (branch.Branch, error) {
	q := GetQuerier(ctx, b.db)

	newBranch.ID = uuid.NewString()

	query := `
		INSERT INTO branches (id, name, latitude, longitude, radius_meters, allowed_ips)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newBranch.ID, newBranch.Name,
		newBranch.Latitude, newBranch.Longitude, newBranch.RadiusMeters,
		newBranch.AllowedIPs,
	).Scan(&newBranch.CreatedAt, &newBranch.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return branch.Branch{}, branch.ErrBranchNameExists
		}
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return newBranch, nil
}

// GetByID implements branch.BranchRepository.
func (b *branchRepository) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, name, latitude, longitude, radius_meters, allowed_ips, created_at, updated_at
		FROM branches
		WHERE id = $1
	`

	var br branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(
		&br.ID, &br.Name, &br.Latitude, &br.Longitude, &br.RadiusMeters,
		&br.AllowedIPs, &br.CreatedAt, &br.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return br, nil
}

// List implements branch.BranchRepository.
func (b *branchRepository) List(ctx context.Context) ([]branch.Branch, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, name, latitude, longitude, radius_meters, allowed_ips, created_at, updated_at
		FROM branches
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var br branch.Branch
		err := rows.Scan(
			&br.ID, &br.Name, &br.Latitude, &br.Longitude, &br.RadiusMeters,
			&br.AllowedIPs, &br.CreatedAt, &br.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, br)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return branches, nil
}

// Update implements branch.BranchRepository.
func (b *branchRepository) Update(ctx context.Context, updated branch.Branch) error {
	q := GetQuerier(ctx, b.db)

	query := `
		UPDATE branches SET
			name = $2, latitude = $3, longitude = $4,
			radius_meters = $5, allowed_ips = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		updated.ID, updated.Name,
		updated.Latitude, updated.Longitude, updated.RadiusMeters,
		updated.AllowedIPs,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return branch.ErrBranchNameExists
		}
		return fmt.Errorf("failed to update branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}

// Delete implements branch.BranchRepository.
func (b *branchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, b.db)

	tag, err := q.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}
