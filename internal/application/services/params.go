package services

import (
	"fmt"
	"strings"

	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

// pick copies the allowed keys present in data into a fresh update map,
// mirroring the partial-update contract: unspecified fields keep their
// prior values.
func pick(data map[string]any, keys ...string) map[string]any {
	updates := make(map[string]any, len(keys))
	for _, key := range keys {
		if value, ok := data[key]; ok {
			updates[key] = value
		}
	}
	return updates
}

// requiredString coerces a required, non-empty string field.
func requiredString(v any, field string) (string, error) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s is required", field))
	}
	return s, nil
}

// stringIDList coerces an id-list field. A missing or null value is an
// empty list.
func stringIDList(v any, field string) ([]string, error) {
	switch list := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return list, nil
	case []any:
		ids := make([]string, 0, len(list))
		for _, item := range list {
			id, ok := item.(string)
			if !ok {
				return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a list of strings", field))
			}
			ids = append(ids, id)
		}
		return ids, nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a list", field))
	}
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
