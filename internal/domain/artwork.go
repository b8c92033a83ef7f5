package domain

import "time"

// Artwork represents one purchasable digital illustration listing.
// HighResURL points at the deliverable full-resolution file and is only
// surfaced on admin views; public projections must drop it.
type Artwork struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Year        string    `json:"year"`
	Category    string    `json:"category"`
	Technique   string    `json:"technique,omitempty"`
	Price       float64   `json:"price"`
	PreviewURL  string    `json:"preview_url"`
	HighResURL  string    `json:"high_res_url,omitempty"`
	FileType    string    `json:"file_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Profile holds the artist data rendered on the catalog home view.
type Profile struct {
	Handle       string `json:"handle"`
	Tagline      string `json:"tagline"`
	AvatarURL    string `json:"avatar_url"`
	ContactEmail string `json:"contact_email"`
	Location     string `json:"location"`
}
