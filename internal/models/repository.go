package models

import (
	"fmt"
	"strings"
)

// Repository identifies the repository whose discussions are processed.
type Repository struct {
	Owner string
	Name  string
}

// ParseRepository parses an "owner/name" string such as GITHUB_REPOSITORY.
func ParseRepository(s string) (Repository, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repository{}, fmt.Errorf("invalid repository %q", s)
	}
	return Repository{Owner: owner, Name: name}, nil
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}
