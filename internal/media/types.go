package media

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Type classifies stored assets for filtering in the library.
type Type string

const (
	TypeImage    Type = "image"
	TypeVideo    Type = "video"
	TypeDocument Type = "document"
)

// DeriveType maps a MIME content type onto a library type. Anything that is
// not an image or video is filed as a document.
func DeriveType(contentType string) Type {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return TypeImage
	case strings.HasPrefix(contentType, "video/"):
		return TypeVideo
	default:
		return TypeDocument
	}
}

// Media is one stored asset. URL is the public address handed to components;
// ObjectKey is the storage-side key used for deletion.
type Media struct {
	bun.BaseModel `bun:"table:media,alias:m"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	URL         string    `bun:"url,notnull" json:"url"`
	ObjectKey   string    `bun:"object_key,notnull" json:"object_key"`
	Type        Type      `bun:"type,notnull" json:"type"`
	ContentType string    `bun:"content_type,notnull" json:"content_type"`
	Size        int64     `bun:"size,notnull" json:"size"`
	Folder      string    `bun:"folder,notnull" json:"folder"`
	Tags        []string  `bun:"tags,type:jsonb" json:"tags,omitempty"`
	UploadedBy  uuid.UUID `bun:"uploaded_by,notnull,type:uuid" json:"uploaded_by"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Clone deep-copies a media record.
func Clone(src *Media) *Media {
	if src == nil {
		return nil
	}
	copied := *src
	if src.Tags != nil {
		copied.Tags = make([]string, len(src.Tags))
		copy(copied.Tags, src.Tags)
	}
	return &copied
}
