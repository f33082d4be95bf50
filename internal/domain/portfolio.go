package domain

import "time"

// Project is one portfolio entry. The catalog is fixed at startup; there
// is no write path for projects.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Link         string   `json:"link,omitempty"`
	Featured     bool     `json:"featured"`
}

// BlogPost is one published article, newest first in the seeded catalog.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
}
