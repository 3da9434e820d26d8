// Package id generates the prefixed identifiers used for locally created
// records, e.g. "cat_3f0c9a4e-...". The random part is a UUIDv4 so records
// created offline on different devices never collide when they sync.
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	PrefixCategory  = "cat"
	PrefixAuditLog  = "aud"
	PrefixOperation = "op"
	PrefixSession   = "ses"
)

// NewWithPrefix returns "prefix_<uuid>".
func NewWithPrefix(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// ParsePrefixedID splits a prefixed ID and validates the UUID part.
func ParsePrefixedID(prefixedID string) (prefix string, u uuid.UUID, err error) {
	prefix, raw, ok := strings.Cut(prefixedID, "_")
	if !ok || prefix == "" {
		return "", uuid.Nil, fmt.Errorf("invalid prefixed id: %q", prefixedID)
	}
	u, err = uuid.Parse(raw)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid prefixed id %q: %w", prefixedID, err)
	}
	return prefix, u, nil
}

// ValidatePrefix checks that prefixedID is well formed and carries expected.
func ValidatePrefix(prefixedID, expected string) error {
	prefix, _, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if prefix != expected {
		return fmt.Errorf("invalid id prefix: expected %s, got %s", expected, prefix)
	}
	return nil
}

func NewCategoryID() string  { return NewWithPrefix(PrefixCategory) }
func NewAuditLogID() string  { return NewWithPrefix(PrefixAuditLog) }
func NewOperationID() string { return NewWithPrefix(PrefixOperation) }
func NewSessionID() string   { return NewWithPrefix(PrefixSession) }
