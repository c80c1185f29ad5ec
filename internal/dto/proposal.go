package dto

import (
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// ProposalDTO represents a proposal in API responses
type ProposalDTO struct {
	ID            uint64                `json:"id"`
	CoverMessage  string                `json:"cover_message"`
	ProposedPrice float64               `json:"proposed_price"`
	Status        models.ProposalStatus `json:"status"`
	ProjectID     uint64                `json:"project_id"`
	FreelancerID  uint64                `json:"freelancer_id"`
	SubmittedAt   time.Time             `json:"submitted_at"`
}

// ProposalListResponse represents a paginated list of proposals
type ProposalListResponse struct {
	Proposals  []ProposalDTO            `json:"proposals"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToProposalDTO converts a Proposal model to ProposalDTO
func ToProposalDTO(proposal models.Proposal) ProposalDTO {
	return ProposalDTO{
		ID:            proposal.ID,
		CoverMessage:  proposal.CoverMessage,
		ProposedPrice: proposal.ProposedPrice,
		Status:        proposal.Status,
		ProjectID:     proposal.ProjectID,
		FreelancerID:  proposal.FreelancerID,
		SubmittedAt:   proposal.SubmittedAt,
	}
}

// ToProposalListResponse converts proposals to a ProposalListResponse
func ToProposalListResponse(proposals []models.Proposal, params utils.PaginationParams, total int64) ProposalListResponse {
	items := make([]ProposalDTO, len(proposals))
	for i, proposal := range proposals {
		items[i] = ToProposalDTO(proposal)
	}

	return ProposalListResponse{
		Proposals: items,
		Pagination: utils.PaginationResponse{
			Skip:  params.Skip,
			Limit: params.Limit,
			Total: total,
		},
	}
}
