package domain

import "time"

// Role governs which write operations a caller may perform.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
	RoleUser  Role = "user"
)

// ValidRole reports whether the value is one of the enumerated roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleUser:
		return true
	}
	return false
}

// DefaultProfileImage is assigned when a user registers without an avatar.
const DefaultProfileImage = "/images/default-avatar.jpg"

// SocialLinks holds an agent's public social profiles.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// AgentInfo carries listing-agent metadata, present only for role=agent.
type AgentInfo struct {
	LicenseNumber   string      `json:"licenseNumber,omitempty"`
	ExperienceYears int         `json:"experienceYears,omitempty"`
	Specializations []string    `json:"specializations,omitempty"`
	Languages       []string    `json:"languages,omitempty"`
	SocialLinks     SocialLinks `json:"socialLinks"`
	Featured        bool        `json:"featured"`
}

// User is the identity record for admins, agents and site visitors.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Role         Role
	ProfileImage string
	Bio          string
	AgentInfo    *AgentInfo
	Active       bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsAgent reports whether the user holds the agent role.
func (u *User) IsAgent() bool {
	return u.Role == RoleAgent
}
