package repository

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// UserFilter holds filtering options for listing users
type UserFilter struct {
	RoleID *uint64
	Search string
}

// UserRepository defines the interface for user and role data access
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint64) (*models.User, error)
	FindByEmail(email string) (*models.User, error)

	// List retrieves users ordered by id with filtering and pagination
	List(filter UserFilter, params utils.PaginationParams) ([]models.User, int64, error)

	Update(user *models.User) error
	Delete(id uint64) error

	// Count returns the total number of users
	Count() (int64, error)

	FindRoleByID(id uint64) (*models.Role, error)
	FindRoleByName(name string) (*models.Role, error)
}

// FreelancerFilter holds filtering options for listing freelancer profiles
type FreelancerFilter struct {
	MinRate *float64
	MaxRate *float64
	Search  string
}

// FreelancerRepository defines the interface for freelancer profile data access
type FreelancerRepository interface {
	Create(profile *models.FreelancerProfile) error
	FindByID(id uint64) (*models.FreelancerProfile, error)

	// FindByUserID finds the profile owned by a user, if any
	FindByUserID(userID uint64) (*models.FreelancerProfile, error)

	List(filter FreelancerFilter, params utils.PaginationParams) ([]models.FreelancerProfile, int64, error)
	Update(profile *models.FreelancerProfile) error
	Delete(id uint64) error
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	Status   *models.ProjectStatus
	ClientID *uint64
	Search   string
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id uint64) (*models.Project, error)

	// List retrieves projects newest-first with filtering and pagination
	List(filter ProjectFilter, params utils.PaginationParams) ([]models.Project, int64, error)

	Update(project *models.Project) error
	Delete(id uint64) error
}

// ProposalFilter holds filtering options for listing proposals
type ProposalFilter struct {
	Status       *models.ProposalStatus
	ProjectID    *uint64
	FreelancerID *uint64
}

// ProposalRepository defines the interface for proposal data access
type ProposalRepository interface {
	Create(proposal *models.Proposal) error
	FindByID(id uint64) (*models.Proposal, error)

	// FindByProjectAndFreelancer finds the proposal for a (project, freelancer) pair
	FindByProjectAndFreelancer(projectID, freelancerID uint64) (*models.Proposal, error)

	// List retrieves proposals ordered by submission time, newest first
	List(filter ProposalFilter, params utils.PaginationParams) ([]models.Proposal, int64, error)

	Update(proposal *models.Proposal) error
	Delete(id uint64) error
}

// PaymentFilter holds filtering options for listing payments
type PaymentFilter struct {
	Status     *models.PaymentStatus
	ProposalID *uint64
}

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByID(id uint64) (*models.Payment, error)
	List(filter PaymentFilter, params utils.PaginationParams) ([]models.Payment, int64, error)
	Update(payment *models.Payment) error
	Delete(id uint64) error
}

// ReviewFilter holds filtering options for listing reviews
type ReviewFilter struct {
	ProjectID    *uint64
	FreelancerID *uint64
	MinRating    *int
}

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id uint64) (*models.Review, error)

	// FindByProjectAndReviewer finds the review for a (project, reviewer) pair
	FindByProjectAndReviewer(projectID, reviewerID uint64) (*models.Review, error)

	// List retrieves reviews ordered by creation time, newest first
	List(filter ReviewFilter, params utils.PaginationParams) ([]models.Review, int64, error)

	Update(review *models.Review) error
	Delete(id uint64) error
}

// MessageFilter holds filtering options for listing messages. UserID is the
// caller; the participant predicate on it is always applied first.
type MessageFilter struct {
	UserID      uint64
	SenderID    *uint64
	RecipientID *uint64
	UnreadOnly  bool
}

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id uint64) (*models.Message, error)

	// List retrieves the caller's messages ordered by timestamp, newest first
	List(filter MessageFilter, params utils.PaginationParams) ([]models.Message, int64, error)

	Update(message *models.Message) error
	Delete(id uint64) error
}

// SkillFilter holds filtering options for listing skills
type SkillFilter struct {
	Search string
}

// FreelancerSkillFilter holds filtering options for listing freelancer-skill links
type FreelancerSkillFilter struct {
	FreelancerID *uint64
	SkillID      *uint64
}

// SkillRepository defines the interface for skill and freelancer-skill data access
type SkillRepository interface {
	Create(skill *models.Skill) error
	FindByID(id uint64) (*models.Skill, error)
	FindByName(name string) (*models.Skill, error)

	// List retrieves skills ordered by name
	List(filter SkillFilter, params utils.PaginationParams) ([]models.Skill, int64, error)

	Update(skill *models.Skill) error
	Delete(id uint64) error

	CreateLink(link *models.FreelancerSkill) error
	FindLink(freelancerID, skillID uint64) (*models.FreelancerSkill, error)
	ListLinks(filter FreelancerSkillFilter) ([]models.FreelancerSkill, error)
	DeleteLink(freelancerID, skillID uint64) error
}
