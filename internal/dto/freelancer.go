package dto

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// FreelancerDTO represents a freelancer profile in API responses
type FreelancerDTO struct {
	ID           uint64   `json:"id"`
	UserID       uint64   `json:"user_id"`
	Bio          string   `json:"bio"`
	HourlyRate   *float64 `json:"hourly_rate"`
	PortfolioURL string   `json:"portfolio_url"`
}

// FreelancerListResponse represents a paginated list of freelancer profiles
type FreelancerListResponse struct {
	Freelancers []FreelancerDTO          `json:"freelancers"`
	Pagination  utils.PaginationResponse `json:"pagination"`
}

// ToFreelancerDTO converts a FreelancerProfile model to FreelancerDTO
func ToFreelancerDTO(profile models.FreelancerProfile) FreelancerDTO {
	return FreelancerDTO{
		ID:           profile.ID,
		UserID:       profile.UserID,
		Bio:          profile.Bio,
		HourlyRate:   profile.HourlyRate,
		PortfolioURL: profile.PortfolioURL,
	}
}

// ToFreelancerListResponse converts profiles to a FreelancerListResponse
func ToFreelancerListResponse(profiles []models.FreelancerProfile, params utils.PaginationParams, total int64) FreelancerListResponse {
	items := make([]FreelancerDTO, len(profiles))
	for i, profile := range profiles {
		items[i] = ToFreelancerDTO(profile)
	}

	return FreelancerListResponse{
		Freelancers: items,
		Pagination: utils.PaginationResponse{
			Skip:  params.Skip,
			Limit: params.Limit,
			Total: total,
		},
	}
}
