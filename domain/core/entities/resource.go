package entities

import (
	"strings"

	"tutoria-backend/domain/core/valueobjects"
)

// ResourceKind defines the type of learning material
type ResourceKind string

const (
	ResourceVideo         ResourceKind = "video"
	ResourceArticle       ResourceKind = "article"
	ResourceCourse        ResourceKind = "course"
	ResourceDocumentation ResourceKind = "documentation"
	ResourceExercise      ResourceKind = "exercise"
	ResourceBook          ResourceKind = "book"
)

// IsValid reports whether the kind is one of the closed set
func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceVideo, ResourceArticle, ResourceCourse,
		ResourceDocumentation, ResourceExercise, ResourceBook:
		return true
	default:
		return false
	}
}

// Resource is a learning-material reference owned by exactly one node
type Resource struct {
	ID        valueobjects.ResourceID
	Title     string
	URL       string
	Kind      ResourceKind
	IsPremium bool
}

// NewResource creates a resource. Title and URL are required; an invalid
// kind falls back to article so persisted data stays within the closed set.
func NewResource(title, url string, kind ResourceKind, isPremium bool) (*Resource, bool) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	if title == "" || url == "" {
		return nil, false
	}
	if !kind.IsValid() {
		kind = ResourceArticle
	}
	return &Resource{
		ID:        valueobjects.NewResourceID(),
		Title:     title,
		URL:       url,
		Kind:      kind,
		IsPremium: isPremium,
	}, true
}

// Clone returns a deep copy with a fresh identifier
func (r *Resource) Clone() *Resource {
	return &Resource{
		ID:        valueobjects.NewResourceID(),
		Title:     r.Title,
		URL:       r.URL,
		Kind:      r.Kind,
		IsPremium: r.IsPremium,
	}
}
