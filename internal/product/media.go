package product

import (
	"fmt"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
)

const (
	loadingEager     = "eager"
	defaultAltText   = "Product image"
	fullWidth        = "100%"
	imageRenderWidth = 800
)

var imageWidths = []int{400, 800, 1200, 1600, 2000, 2400}

// MediaView is one gallery entry: the media item and how it should be rendered.
type MediaView struct {
	ID          string                  `json:"id"`
	ContentType entity.MediaContentType `json:"mediaContentType"`
	AltText     string                  `json:"altText"`
	Media       entity.MediaItem        `json:"media"`
	Props       RenderProps             `json:"props"`
}

// RenderProps carries the per-kind rendering parameters of a gallery entry.
// Only the fields relevant to the kind are set.
type RenderProps struct {
	Width                      any    `json:"width,omitempty"`
	Widths                     []int  `json:"widths,omitempty"`
	Loading                    string `json:"loading,omitempty"`
	AutoPlay                   bool   `json:"autoPlay,omitempty"`
	Controls                   *bool  `json:"controls,omitempty"`
	Muted                      bool   `json:"muted,omitempty"`
	Loop                       bool   `json:"loop,omitempty"`
	Preload                    string `json:"preload,omitempty"`
	InteractionPromptThreshold string `json:"interactionPromptThreshold,omitempty"`
	AR                         bool   `json:"ar,omitempty"`
	DisableZoom                bool   `json:"disableZoom,omitempty"`
}

// Gallery is the product media with the initially selected entry.
type Gallery struct {
	Items      []MediaView `json:"items"`
	SelectedID string      `json:"selectedId,omitempty"`
}

// MediaProps returns the rendering parameters for item at position index in the gallery.
func MediaProps(item entity.MediaItem, index int) (RenderProps, error) {
	switch m := item.(type) {
	case entity.ImageMedia:
		props := RenderProps{Width: imageRenderWidth, Widths: imageWidths}
		if index == 0 {
			props.Loading = loadingEager
		}
		return props, nil
	case entity.VideoMedia:
		controls := false
		return RenderProps{
			Width:    fullWidth,
			AutoPlay: true,
			Controls: &controls,
			Muted:    true,
			Loop:     true,
			Preload:  "auto",
		}, nil
	case entity.ExternalVideoMedia:
		return RenderProps{Width: fullWidth}, nil
	case entity.Model3DMedia:
		return RenderProps{
			Width:                      fullWidth,
			InteractionPromptThreshold: "0",
			AR:                         true,
			Loading:                    loadingEager,
			DisableZoom:                true,
		}, nil
	default:
		return RenderProps{}, fmt.Errorf("unsupported media item %T", m)
	}
}

func altText(item entity.MediaItem) string {
	var alt string
	switch m := item.(type) {
	case entity.ImageMedia:
		alt = m.Alt
		if alt == "" {
			alt = m.Image.AltText
		}
	case entity.VideoMedia:
		alt = m.Alt
	case entity.ExternalVideoMedia:
		alt = m.Alt
	case entity.Model3DMedia:
		alt = m.Alt
	}
	if alt == "" {
		return defaultAltText
	}
	return alt
}

// NewGallery builds the gallery view; the first item starts selected.
func NewGallery(items []entity.MediaItem) (Gallery, error) {
	g := Gallery{Items: make([]MediaView, 0, len(items))}
	for i, item := range items {
		props, err := MediaProps(item, i)
		if err != nil {
			return Gallery{}, err
		}
		g.Items = append(g.Items, MediaView{
			ID:          item.MediaID(),
			ContentType: item.ContentType(),
			AltText:     altText(item),
			Media:       item,
			Props:       props,
		})
	}
	if len(g.Items) > 0 {
		g.SelectedID = g.Items[0].ID
	}
	return g, nil
}
