package models

import "time"

const (
	SkillCategoryProgramming = "programming"
	SkillCategoryFramework   = "framework"
	SkillCategoryDatabase    = "database"
	SkillCategoryTool        = "tool"
	SkillCategoryOther       = "other"
)

type Skill struct {
	ID           int64     `db:"id"            json:"id"`
	Name         string    `db:"name"          json:"name"`
	Category     string    `db:"category"      json:"category"`
	Proficiency  int       `db:"proficiency"   json:"proficiency"`
	Icon         *string   `db:"icon"          json:"icon,omitempty"`
	Description  *string   `db:"description"   json:"description,omitempty"`
	DisplayOrder int       `db:"display_order" json:"order"`
	Featured     bool      `db:"featured"      json:"featured"`
	CreatedAt    time.Time `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updatedAt"`
}

type SkillRequest struct {
	Name        string `json:"name" example:"Go"`
	Category    string `json:"category" example:"programming"`
	Proficiency int    `json:"proficiency" example:"8"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	Featured    bool   `json:"featured"`
}
