package dto

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// SkillDTO represents a skill in API responses
type SkillDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// SkillListResponse represents a paginated list of skills
type SkillListResponse struct {
	Skills     []SkillDTO               `json:"skills"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// FreelancerSkillDTO represents a freelancer-skill link in API responses
type FreelancerSkillDTO struct {
	FreelancerID uint64 `json:"freelancer_id"`
	SkillID      uint64 `json:"skill_id"`
}

// ToSkillDTO converts a Skill model to SkillDTO
func ToSkillDTO(skill models.Skill) SkillDTO {
	return SkillDTO{
		ID:   skill.ID,
		Name: skill.Name,
	}
}

// ToSkillListResponse converts skills to a SkillListResponse
func ToSkillListResponse(skills []models.Skill, params utils.PaginationParams, total int64) SkillListResponse {
	items := make([]SkillDTO, len(skills))
	for i, skill := range skills {
		items[i] = ToSkillDTO(skill)
	}

	return SkillListResponse{
		Skills: items,
		Pagination: utils.PaginationResponse{
			Skip:  params.Skip,
			Limit: params.Limit,
			Total: total,
		},
	}
}

// ToFreelancerSkillDTO converts a FreelancerSkill model to FreelancerSkillDTO
func ToFreelancerSkillDTO(link models.FreelancerSkill) FreelancerSkillDTO {
	return FreelancerSkillDTO{
		FreelancerID: link.FreelancerID,
		SkillID:      link.SkillID,
	}
}

// ToFreelancerSkillDTOs converts a slice of links
func ToFreelancerSkillDTOs(links []models.FreelancerSkill) []FreelancerSkillDTO {
	items := make([]FreelancerSkillDTO, len(links))
	for i, link := range links {
		items[i] = ToFreelancerSkillDTO(link)
	}
	return items
}
