package adapter

import (
	"strings"

	"github.com/google/uuid"
)

const apiPrefix = "/api/"

// RelationCategories is the sub-collection categories are attached through.
const RelationCategories = "categories"

// ResourceEndpoint addresses a collection, or one entity of it, on a host.
// It is immutable; Entity returns a copy.
type ResourceEndpoint struct {
	host       string
	collection string
	id         *uuid.UUID
}

// NewResourceEndpoint returns the endpoint of collection on host. host is a
// base URL such as "http://localhost:8080".
func NewResourceEndpoint(host, collection string) ResourceEndpoint {
	return ResourceEndpoint{
		host:       strings.TrimRight(host, "/"),
		collection: strings.Trim(collection, "/"),
	}
}

// Entity returns the endpoint of one entity of the collection. A nil id is
// kept and reported as [ErrMissingIdentifier] when a URL is requested.
func (e ResourceEndpoint) Entity(id *uuid.UUID) ResourceEndpoint {
	if id != nil {
		idCopy := *id
		id = &idCopy
	}
	e.id = id
	return e
}

// ID returns the entity identifier, or nil for a collection endpoint.
func (e ResourceEndpoint) ID() *uuid.UUID {
	return e.id
}

// CollectionURL is <host>/api/<collection>.
func (e ResourceEndpoint) CollectionURL() string {
	return e.host + apiPrefix + e.collection
}

// EntityURL is <host>/api/<collection>/<id>.
func (e ResourceEndpoint) EntityURL() (string, error) {
	if e.id == nil {
		return "", ErrMissingIdentifier
	}
	return e.CollectionURL() + "/" + e.id.String(), nil
}

// SubURL is <entity-url>/<subpath...>. Empty segments are skipped.
func (e ResourceEndpoint) SubURL(segments ...string) (string, error) {
	base, err := e.EntityURL()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(base)
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(s)
	}
	return b.String(), nil
}
