package models

import "time"

const (
	ProjectCategoryWeb    = "web"
	ProjectCategoryMobile = "mobile"
	ProjectCategoryAIML   = "ai-ml"
	ProjectCategoryOther  = "other"

	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusPlanned    = "planned"
)

type Project struct {
	ID               int64     `db:"id"                json:"id"`
	Title            string    `db:"title"             json:"title"`
	Description      string    `db:"description"       json:"description"`
	ShortDescription string    `db:"short_description" json:"shortDescription"`
	Technologies     []string  `db:"-"                 json:"technologies"`
	ImageURL         *string   `db:"image_url"         json:"imageUrl,omitempty"`
	GithubURL        *string   `db:"github_url"        json:"githubUrl,omitempty"`
	LiveURL          *string   `db:"live_url"          json:"liveUrl,omitempty"`
	Featured         bool      `db:"featured"          json:"featured"`
	DisplayOrder     int       `db:"display_order"     json:"order"`
	Category         string    `db:"category"          json:"category"`
	Status           string    `db:"status"            json:"status"`
	CreatedAt        time.Time `db:"created_at"        json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at"        json:"updatedAt"`
}

// ProjectRequest is the admin payload. Technologies arrive as free text and
// are split on commas before persisting.
type ProjectRequest struct {
	Title            string `json:"title" example:"Portfolio site"`
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription"`
	Technologies     string `json:"technologies" example:"Go, Postgres, React"`
	ImageURL         string `json:"imageUrl"`
	GithubURL        string `json:"githubUrl"`
	LiveURL          string `json:"liveUrl"`
	Featured         bool   `json:"featured"`
	Order            int    `json:"order"`
	Category         string `json:"category" example:"web"`
	Status           string `json:"status" example:"completed"`
}
