package models

import "regexp"

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// ValidSlug checks the allowed charset and length for category and genre slugs.
func ValidSlug(slug string) bool {
	return slug != "" && len(slug) <= 50 && slugPattern.MatchString(slug)
}
