package models

import "time"

type BlogPost struct {
	ID           int64      `db:"id"            json:"id"`
	Title        string     `db:"title"         json:"title"`
	Slug         string     `db:"slug"          json:"slug"`
	Content      string     `db:"content"       json:"content"`
	Excerpt      string     `db:"excerpt"       json:"excerpt"`
	Tags         []string   `db:"-"             json:"tags"`
	ImageURL     *string    `db:"image_url"     json:"imageUrl,omitempty"`
	Published    bool       `db:"published"     json:"published"`
	PublishedAt  *time.Time `db:"published_at"  json:"publishedAt,omitempty"`
	Featured     bool       `db:"featured"      json:"featured"`
	DisplayOrder int        `db:"display_order" json:"order"`
	CreatedAt    time.Time  `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at"    json:"updatedAt"`
}

type BlogPostRequest struct {
	Title     string   `json:"title" example:"Writing middleware in Go"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt"`
	Tags      []string `json:"tags" example:"go,backend"`
	ImageURL  string   `json:"imageUrl"`
	Published bool     `json:"published"`
	Featured  bool     `json:"featured"`
	Order     int      `json:"order"`
}
