package product

import (
	"testing"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaProps(t *testing.T) {
	img := entity.ImageMedia{ID: "m1", Image: entity.Image{URL: "https://cdn/a.jpg"}}

	first, err := MediaProps(img, 0)
	require.NoError(t, err)
	assert.Equal(t, 800, first.Width)
	assert.Equal(t, []int{400, 800, 1200, 1600, 2000, 2400}, first.Widths)
	assert.Equal(t, "eager", first.Loading)

	later, err := MediaProps(img, 2)
	require.NoError(t, err)
	assert.Empty(t, later.Loading)

	video, err := MediaProps(entity.VideoMedia{ID: "m2"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "100%", video.Width)
	assert.True(t, video.AutoPlay)
	require.NotNil(t, video.Controls)
	assert.False(t, *video.Controls)
	assert.True(t, video.Muted)
	assert.True(t, video.Loop)
	assert.Equal(t, "auto", video.Preload)
	assert.Empty(t, video.Loading, "only images get eager loading by position")

	ext, err := MediaProps(entity.ExternalVideoMedia{ID: "m3"}, 1)
	require.NoError(t, err)
	assert.Equal(t, RenderProps{Width: "100%"}, ext)

	model, err := MediaProps(entity.Model3DMedia{ID: "m4"}, 3)
	require.NoError(t, err)
	assert.Equal(t, "0", model.InteractionPromptThreshold)
	assert.True(t, model.AR)
	assert.True(t, model.DisableZoom)
	assert.Equal(t, "eager", model.Loading)

	_, err = MediaProps(nil, 0)
	assert.Error(t, err)
}

func TestNewGallery(t *testing.T) {
	g, err := NewGallery([]entity.MediaItem{
		entity.VideoMedia{ID: "v"},
		entity.ImageMedia{ID: "i", Image: entity.Image{AltText: "front"}},
		entity.ExternalVideoMedia{ID: "e", Alt: "trailer"},
	})
	require.NoError(t, err)
	require.Len(t, g.Items, 3)

	assert.Equal(t, "v", g.SelectedID)
	assert.Equal(t, "Product image", g.Items[0].AltText)
	assert.Equal(t, "front", g.Items[1].AltText)
	assert.Empty(t, g.Items[1].Props.Loading, "an image that is not first is lazy")
	assert.Equal(t, "trailer", g.Items[2].AltText)
	assert.Equal(t, entity.MediaExternalVideo, g.Items[2].ContentType)

	empty, err := NewGallery(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.Empty(t, empty.SelectedID)
}
