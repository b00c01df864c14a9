package dto

import "agenthub_backend/internal/models"

// UpdateProfileRequest carries the free-form profile upsert. Pointer
// fields distinguish "not provided" from zero values; unknown roles
// never reach the service (route is auth-gated).
type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty"`

	// Agent fields
	Title      *string           `json:"title,omitempty"`
	Bio        *string           `json:"bio,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	HourlyRate *float64          `json:"hourly_rate,omitempty"`
	Image      *string           `json:"image,omitempty"`
	CV         *string           `json:"cv,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`

	// Employer fields
	CompanyName *string `json:"company_name,omitempty"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Website     *string `json:"website,omitempty"`

	// Common
	Location *string `json:"location,omitempty"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// MyProfileResponse wraps the role-matched profile; Profile is null
// until the first update creates it.
type MyProfileResponse struct {
	User    UserDTO     `json:"user"`
	Profile interface{} `json:"profile"`
}

// AgentListEntry is one row of the public agent directory. Users with
// role agent but no profile yet appear as placeholders.
type AgentListEntry struct {
	ID            string   `json:"id"`
	User          UserDTO  `json:"user"`
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	Bio           string   `json:"bio"`
	Skills        []string `json:"skills"`
	HourlyRate    float64  `json:"hourly_rate"`
	Location      string   `json:"location"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	IsPlaceholder bool     `json:"is_placeholder,omitempty"`
}

func AgentEntryFromProfile(p *models.AgentProfile) *AgentListEntry {
	entry := &AgentListEntry{
		ID:         p.ID,
		Name:       p.Name,
		Title:      p.Title,
		Bio:        p.Bio,
		Skills:     p.Skills,
		HourlyRate: p.HourlyRate,
		Location:   p.Location,
		Image:      p.Image,
		Rating:     p.Rating,
		Reviews:    p.Reviews,
	}
	if p.User != nil {
		entry.User = UserDTO{
			ID:    p.User.ID,
			Name:  p.User.Name,
			Email: p.User.Email,
			Role:  p.User.Role,
		}
		if entry.Name == "" {
			entry.Name = p.User.Name
		}
	}
	return entry
}
