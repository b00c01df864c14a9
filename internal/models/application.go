package models

// Application links an agent to a job posting. The composite unique
// index on (job_id, agent_id) enforces at most one application per
// pair; a violation on insert is the authoritative Conflict signal,
// not just the pre-check.
type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_agent" json:"job_id"`
	AgentID     string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_agent" json:"agent_id"`
	CoverLetter string            `json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Job   *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Agent *User `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
}
