// Package validation checks user-supplied identifiers before they reach
// storage keys or remote file names.
package validation

import (
	"fmt"
	"regexp"

	"github.com/iudanet/blogkeeper/internal/models"
)

// UserIDPattern defines the allowed user id format. The id is embedded in
// storage keys and in the remote backup file name, so it must stay free of
// separators and quoting characters.
var UserIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)

// MaxUserIDLen is the upper bound on user id length.
const MaxUserIDLen = 128

// ValidateUserID checks that the id is non-empty and key-safe.
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("user id cannot be empty")
	}

	if len(userID) > MaxUserIDLen {
		return fmt.Errorf("user id must not exceed %d characters", MaxUserIDLen)
	}

	if !UserIDPattern.MatchString(userID) {
		return fmt.Errorf("user id can only contain letters (a-z, A-Z), numbers (0-9), hyphens (-), and underscores (_)")
	}

	return nil
}

// ValidateCollectionType checks that ct names a known history collection,
// accepting legacy aliases from older database versions.
func ValidateCollectionType(ct models.CollectionType) error {
	if models.ValidCollectionType(ct) {
		return nil
	}
	if _, ok := models.LegacyCollectionAlias[string(ct)]; ok {
		return nil
	}
	return fmt.Errorf("unknown collection type %q", ct)
}
