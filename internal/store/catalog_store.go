package store

import (
	"math"
	"strconv"
	"sync"
	"time"

	"amy-custom/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const artworkIDLength = 12

// Defaults applied when an add request omits a field.
const (
	DefaultTitle       = "Sin título"
	DefaultDescription = "Ilustración de alta calidad."
	DefaultCategory    = "Varios"
)

// AddParams carries the caller-supplied fields for a new listing. Any
// zero-value field is replaced by a default; Add never rejects input.
type AddParams struct {
	Title       string
	Description string
	Year        string
	Category    string
	Technique   string
	Price       float64
	PreviewURL  string
	HighResURL  string
	FileType    string
}

// CatalogStore owns the ordered collection of artwork listings and is the
// single source of truth for every view.
type CatalogStore interface {
	List() []domain.Artwork
	Add(params AddParams) domain.Artwork
	Remove(id string) bool
	FindByID(id string) (domain.Artwork, bool)
}

type catalogStore struct {
	mu       sync.RWMutex
	artworks []domain.Artwork
}

// NewCatalogStore creates a catalog seeded with the given listings. The
// seed order is preserved; later additions are prepended. The catalog
// lives in memory only and is rebuilt from the seed on every process
// start.
func NewCatalogStore(seed []domain.Artwork) CatalogStore {
	s := &catalogStore{
		artworks: make([]domain.Artwork, len(seed)),
	}
	copy(s.artworks, seed)
	return s
}

// List returns a snapshot of the collection, newest first.
func (s *catalogStore) List() []domain.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Artwork, len(s.artworks))
	copy(out, s.artworks)
	return out
}

// Add creates a new listing from params, filling defaults for omitted
// fields, and prepends it to the collection. It always succeeds.
func (s *catalogStore) Add(params AddParams) domain.Artwork {
	art := domain.Artwork{
		ID:          newArtworkID(),
		Title:       params.Title,
		Description: params.Description,
		Year:        params.Year,
		Category:    params.Category,
		Technique:   params.Technique,
		Price:       normalizePrice(params.Price),
		PreviewURL:  params.PreviewURL,
		HighResURL:  params.HighResURL,
		FileType:    params.FileType,
		CreatedAt:   time.Now(),
	}

	if art.Title == "" {
		art.Title = DefaultTitle
	}
	if art.Description == "" {
		art.Description = DefaultDescription
	}
	if art.Category == "" {
		art.Category = DefaultCategory
	}
	if art.Year == "" {
		art.Year = strconv.Itoa(time.Now().Year())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.artworks = append([]domain.Artwork{art}, s.artworks...)
	return art
}

// Remove deletes the listing with the given id and reports whether a
// removal occurred. Removing an unknown id is a no-op, not an error.
func (s *catalogStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, art := range s.artworks {
		if art.ID == id {
			s.artworks = append(s.artworks[:i], s.artworks[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID looks up a listing by id. Absence is an expected outcome
// signaled by the bool, not an error.
func (s *catalogStore) FindByID(id string) (domain.Artwork, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, art := range s.artworks {
		if art.ID == id {
			return art, true
		}
	}
	return domain.Artwork{}, false
}

// newArtworkID generates an opaque random id. The token space vastly
// exceeds any realistic catalog size, so no uniqueness check against the
// live collection is made.
func newArtworkID() string {
	return gonanoid.Must(artworkIDLength)
}

// normalizePrice coerces negative and non-finite prices to 0 so the
// collection never holds an invalid amount.
func normalizePrice(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0
	}
	return p
}
