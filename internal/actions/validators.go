package actions

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	branchNamePattern = regexp.MustCompile(`^[A-Za-z0-9/._-]+$`)
	tagNamePattern    = regexp.MustCompile(`^[A-Za-z0-9.-]+$`)
)

// ValidateBranchName accepts letters, digits and / . _ -
func ValidateBranchName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("branch name is required")
	}
	if !branchNamePattern.MatchString(name) {
		return fmt.Errorf("branch name contains invalid characters")
	}
	return nil
}

// ValidateTagName accepts letters, digits, dots and hyphens
func ValidateTagName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("tag name is required")
	}
	if !tagNamePattern.MatchString(name) {
		return fmt.Errorf("tag name contains invalid characters")
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
