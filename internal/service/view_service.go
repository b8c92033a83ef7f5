package service

import (
	"errors"

	"amy-custom/internal/domain"
	"amy-custom/internal/payment"
	"amy-custom/internal/store"
)

var (
	ErrArtworkNotFound = errors.New("artwork not found")
)

// PublicArtwork is the projection of a listing safe for unauthenticated
// views. It deliberately has no field for the high-resolution deliverable:
// that URL must never reach a public response.
type PublicArtwork struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Year        string  `json:"year"`
	Category    string  `json:"category"`
	Technique   string  `json:"technique,omitempty"`
	Price       float64 `json:"price"`
	PreviewURL  string  `json:"preview_url"`
	FileType    string  `json:"file_type,omitempty"`
}

// Checkout bundles everything the detail view needs to initiate a payment:
// the price-embedded deep link, the hosted-button id for the widget flow,
// and the manual confirmation link.
type Checkout struct {
	PayPalLink   string `json:"paypal_link"`
	WhatsAppLink string `json:"whatsapp_link"`
	ButtonID     string `json:"button_id,omitempty"`
}

// HomeView is what the catalog home route renders.
type HomeView struct {
	Profile  domain.Profile  `json:"profile"`
	Artworks []PublicArtwork `json:"artworks"`
}

// DetailView is what the artwork detail route renders for a known id.
type DetailView struct {
	Artwork  PublicArtwork `json:"artwork"`
	Checkout Checkout      `json:"checkout"`
}

// ViewService computes the state each route needs from the catalog store.
// It owns no data of its own beyond the static profile and link
// configuration.
type ViewService interface {
	Home() HomeView
	ArtworkDetail(id string) (*DetailView, error)
	AdminList() []domain.Artwork
	AddArtwork(params store.AddParams) domain.Artwork
	RemoveArtwork(id string) bool
}

type viewService struct {
	catalog  store.CatalogStore
	links    payment.LinkBuilder
	profile  domain.Profile
	buttonID string
}

// NewViewService creates a ViewService backed by the given catalog store.
func NewViewService(catalog store.CatalogStore, links payment.LinkBuilder, profile domain.Profile, buttonID string) ViewService {
	return &viewService{
		catalog:  catalog,
		links:    links,
		profile:  profile,
		buttonID: buttonID,
	}
}

// Home returns the catalog home projection: artist profile plus the public
// view of every listing, newest first.
func (s *viewService) Home() HomeView {
	artworks := s.catalog.List()
	public := make([]PublicArtwork, 0, len(artworks))
	for _, art := range artworks {
		public = append(public, toPublic(art))
	}

	return HomeView{
		Profile:  s.profile,
		Artworks: public,
	}
}

// ArtworkDetail returns the detail projection for id, including the
// checkout links. An unknown id yields ErrArtworkNotFound, which callers
// render as a distinct not-found state rather than a failure.
func (s *viewService) ArtworkDetail(id string) (*DetailView, error) {
	art, ok := s.catalog.FindByID(id)
	if !ok {
		return nil, ErrArtworkNotFound
	}

	return &DetailView{
		Artwork: toPublic(art),
		Checkout: Checkout{
			PayPalLink:   s.links.PayPalMeURL(art),
			WhatsAppLink: s.links.WhatsAppURL(art),
			ButtonID:     s.buttonID,
		},
	}, nil
}

// AdminList returns the full records, including the high-resolution URL,
// for the management view.
func (s *viewService) AdminList() []domain.Artwork {
	return s.catalog.List()
}

// AddArtwork creates a new listing. Missing fields are defaulted and
// invalid prices coerced by the store; the operation never fails.
func (s *viewService) AddArtwork(params store.AddParams) domain.Artwork {
	return s.catalog.Add(params)
}

// RemoveArtwork deletes a listing by id and reports whether anything was
// removed.
func (s *viewService) RemoveArtwork(id string) bool {
	return s.catalog.Remove(id)
}

func toPublic(art domain.Artwork) PublicArtwork {
	return PublicArtwork{
		ID:          art.ID,
		Title:       art.Title,
		Description: art.Description,
		Year:        art.Year,
		Category:    art.Category,
		Technique:   art.Technique,
		Price:       art.Price,
		PreviewURL:  art.PreviewURL,
		FileType:    art.FileType,
	}
}
