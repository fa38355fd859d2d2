package branch

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffdesk/backoffice-go/internal/domain/branch"
)

type BranchServiceImpl struct {
	branch.BranchRepository
}

func NewBranchService(branchRepo branch.BranchRepository) branch.BranchService {
	return &BranchServiceImpl{BranchRepository: branchRepo}
}

// Create implements branch.BranchService.
func (b *BranchServiceImpl) Create(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	created, err := b.BranchRepository.Create(ctx, branch.Branch{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		AllowedIPs:   req.AllowedIPs,
	})
	if err != nil {
		if errors.Is(err, branch.ErrBranchNameExists) {
			return branch.BranchResponse{}, branch.ErrBranchNameExists
		}
		return branch.BranchResponse{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return mapBranchToResponse(created), nil
}

// Get implements branch.BranchService.
func (b *BranchServiceImpl) Get(ctx context.Context, id string) (branch.BranchResponse, error) {
	found, err := b.BranchRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, branch.ErrBranchNotFound) {
			return branch.BranchResponse{}, branch.ErrBranchNotFound
		}
		return branch.BranchResponse{}, fmt.Errorf("failed to get branch: %w", err)
	}
	return mapBranchToResponse(found), nil
}

// List implements branch.BranchService.
func (b *BranchServiceImpl) List(ctx context.Context) ([]branch.BranchResponse, error) {
	branches, err := b.BranchRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	responses := make([]branch.BranchResponse, 0, len(branches))
	for _, br := range branches {
		responses = append(responses, mapBranchToResponse(br))
	}
	return responses, nil
}

// Update implements branch.BranchService.
func (b *BranchServiceImpl) Update(ctx context.Context, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	found, err := b.BranchRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, branch.ErrBranchNotFound) {
			return branch.BranchResponse{}, branch.ErrBranchNotFound
		}
		return branch.BranchResponse{}, fmt.Errorf("failed to get branch: %w", err)
	}

	if req.Name != nil {
		found.Name = *req.Name
	}
	if req.Latitude != nil {
		found.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		found.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		found.RadiusMeters = *req.RadiusMeters
	}
	if req.AllowedIPs != nil {
		found.AllowedIPs = *req.AllowedIPs
	}

	if err := b.BranchRepository.Update(ctx, found); err != nil {
		if errors.Is(err, branch.ErrBranchNameExists) {
			return branch.BranchResponse{}, branch.ErrBranchNameExists
		}
		return branch.BranchResponse{}, fmt.Errorf("failed to update branch: %w", err)
	}

	return mapBranchToResponse(found), nil
}

// Delete implements branch.BranchService.
// Attendance records keep their branch reference as a nullable link;
// deleting a branch only removes it as a geofence source.
func (b *BranchServiceImpl) Delete(ctx context.Context, id string) error {
	if err := b.BranchRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, branch.ErrBranchNotFound) {
			return branch.ErrBranchNotFound
		}
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	return nil
}

func mapBranchToResponse(b branch.Branch) branch.BranchResponse {
	return branch.BranchResponse{
		ID:           b.ID,
		Name:         b.Name,
		Latitude:     b.Latitude,
		Longitude:    b.Longitude,
		RadiusMeters: b.RadiusMeters,
		AllowedIPs:   b.AllowedIPs,
	}
}
