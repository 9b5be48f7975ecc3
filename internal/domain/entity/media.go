package entity

// MediaContentType discriminates the media union.
type MediaContentType string

const (
	MediaImage         MediaContentType = "IMAGE"
	MediaVideo         MediaContentType = "VIDEO"
	MediaExternalVideo MediaContentType = "EXTERNAL_VIDEO"
	MediaModel3D       MediaContentType = "MODEL_3D"
)

// MediaItem is one of ImageMedia, VideoMedia, ExternalVideoMedia or Model3DMedia.
// The set is closed: only this package can add implementations.
type MediaItem interface {
	MediaID() string
	ContentType() MediaContentType
	isMediaItem()
}

type MediaSource struct {
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	Format   string `json:"format,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

type ImageMedia struct {
	ID    string `json:"id"`
	Alt   string `json:"alt,omitempty"`
	Image Image  `json:"image"`
}

type VideoMedia struct {
	ID           string        `json:"id"`
	Alt          string        `json:"alt,omitempty"`
	PreviewImage *Image        `json:"previewImage,omitempty"`
	Sources      []MediaSource `json:"sources"`
}

type ExternalVideoMedia struct {
	ID           string `json:"id"`
	Alt          string `json:"alt,omitempty"`
	PreviewImage *Image `json:"previewImage,omitempty"`
	EmbedURL     string `json:"embedUrl"`
	Host         string `json:"host,omitempty"`
}

type Model3DMedia struct {
	ID           string        `json:"id"`
	Alt          string        `json:"alt,omitempty"`
	PreviewImage *Image        `json:"previewImage,omitempty"`
	Sources      []MediaSource `json:"sources"`
}

func (m ImageMedia) MediaID() string               { return m.ID }
func (m ImageMedia) ContentType() MediaContentType { return MediaImage }
func (ImageMedia) isMediaItem()                    {}

func (m VideoMedia) MediaID() string               { return m.ID }
func (m VideoMedia) ContentType() MediaContentType { return MediaVideo }
func (VideoMedia) isMediaItem()                    {}

func (m ExternalVideoMedia) MediaID() string               { return m.ID }
func (m ExternalVideoMedia) ContentType() MediaContentType { return MediaExternalVideo }
func (ExternalVideoMedia) isMediaItem()                    {}

func (m Model3DMedia) MediaID() string               { return m.ID }
func (m Model3DMedia) ContentType() MediaContentType { return MediaModel3D }
func (Model3DMedia) isMediaItem()                    {}
