package service

import (
	"encoding/json"
	"strings"
	"testing"

	"amy-custom/internal/payment"
	"amy-custom/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() ViewService {
	catalog := store.NewCatalogStore(store.DefaultSeed())
	links := payment.NewLinkBuilder("amycustom", "56979518383")
	return NewViewService(catalog, links, store.DefaultProfile(), "btn-fixed")
}

func TestHome_ReturnsProfileAndListings(t *testing.T) {
	svc := newTestService()

	view := svc.Home()

	assert.Equal(t, "amy.custom", view.Profile.Handle)
	require.Len(t, view.Artworks, 1)
	assert.Equal(t, "navidad-2025", view.Artworks[0].ID)
}

// The high-resolution deliverable URL must never appear in any public
// projection, including its serialized form.
func TestPublicProjection_NeverExposesHighResURL(t *testing.T) {
	svc := newTestService()

	home, err := json.Marshal(svc.Home())
	require.NoError(t, err)
	assert.NotContains(t, string(home), "alta300dpi")
	assert.NotContains(t, string(home), "high_res")

	detail, err := svc.ArtworkDetail("navidad-2025")
	require.NoError(t, err)

	raw, err := json.Marshal(detail)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "alta300dpi")
	assert.NotContains(t, string(raw), "high_res")
}

func TestArtworkDetail_BuildsCheckoutLinks(t *testing.T) {
	svc := newTestService()

	view, err := svc.ArtworkDetail("navidad-2025")
	require.NoError(t, err)

	assert.Equal(t, "https://www.paypal.me/amycustom/10", view.Checkout.PayPalLink)
	assert.True(t, strings.HasPrefix(view.Checkout.WhatsAppLink, "https://wa.me/56979518383?"))
	assert.Equal(t, "btn-fixed", view.Checkout.ButtonID)
	assert.Equal(t, "Dulce Navidad", view.Artwork.Title)
}

func TestArtworkDetail_UnknownIDIsNotFound(t *testing.T) {
	svc := newTestService()

	view, err := svc.ArtworkDetail("does-not-exist")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, ErrArtworkNotFound)
}

func TestAdminList_IncludesHighResURL(t *testing.T) {
	svc := newTestService()

	list := svc.AdminList()
	require.Len(t, list, 1)
	assert.Equal(t, "https://pazjones.sirv.com/amy/navidad_alta300dpi.tif", list[0].HighResURL)
}

func TestAddAndRemoveArtwork(t *testing.T) {
	svc := newTestService()

	art := svc.AddArtwork(store.AddParams{Title: "Nueva Obra", Price: 25})
	assert.NotEmpty(t, art.ID)

	view, err := svc.ArtworkDetail(art.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nueva Obra", view.Artwork.Title)

	assert.True(t, svc.RemoveArtwork(art.ID))
	assert.False(t, svc.RemoveArtwork(art.ID))

	_, err = svc.ArtworkDetail(art.ID)
	assert.ErrorIs(t, err, ErrArtworkNotFound)
}
