package dto

type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Company     string   `json:"company"`
	Type        string   `json:"type"`
	Budget      string   `json:"budget"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Location    string   `json:"location"`
}
