package models

import "time"

// Post is the stable item shape the client consumes from the remote content
// API, independent of whether the feed arrived as Atom or JSON.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published time.Time `json:"published"`
	Updated   time.Time `json:"updated"`
	Link      string    `json:"link"`
	Author    string    `json:"author"`
	Labels    []string  `json:"labels"`
}
