package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"amy-custom/internal/domain"
)

// DefaultSeed returns the built-in catalog the process starts from when no
// seed file is configured.
func DefaultSeed() []domain.Artwork {
	return []domain.Artwork{
		{
			ID:          "navidad-2025",
			Title:       "Dulce Navidad",
			Description: "Una pieza vibrante que captura la esencia cálida y festiva de la temporada navideña a través de trazos detallados.",
			Year:        "2025",
			Category:    "Arte en dibujos",
			Technique:   "Plumones",
			Price:       10.00,
			PreviewURL:  "https://pazjones.sirv.com/amy/navidad72dpi.jpg",
			HighResURL:  "https://pazjones.sirv.com/amy/navidad_alta300dpi.tif",
			FileType:    "TIF",
			CreatedAt:   time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// DefaultProfile returns the artist profile rendered on the home view.
func DefaultProfile() domain.Profile {
	return domain.Profile{
		Handle:       "amy.custom",
		Tagline:      "Ilustración digital con alma.",
		AvatarURL:    "https://pazjones.sirv.com/amy/avatar.webp",
		ContactEmail: "amandajones.arts@gmail.com",
		Location:     "Viña del Mar, Chile",
	}
}

// SeedFromFile loads a seed catalog from a JSON file containing an array of
// artwork records. Prices are normalized the same way Add normalizes them.
func SeedFromFile(path string) ([]domain.Artwork, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed []domain.Artwork
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i := range seed {
		seed[i].Price = normalizePrice(seed[i].Price)
	}
	return seed, nil
}
