package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/content-studio-api/internal/models"
)

// Named error states for the AI profile checked at the point of use. The UI
// needs to distinguish "nothing selected" from "selected but incomplete".
var (
	ErrNoActiveAIConfig = errors.New("no active AI configuration: select a profile in settings before generating")

	ErrIncompleteAIConfig = errors.New("active AI configuration is missing required fields (API key, API URL and model)")
)

// ValidationError represents a single field-level validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ActiveAIConfig validates the profile resolved from the active pointer
// immediately before a generation call. The profile may have been edited to
// an incomplete state after it was activated, so store-level checks are not
// enough.
func ActiveAIConfig(config *models.AIConfig) error {
	if config == nil {
		return ErrNoActiveAIConfig
	}
	if !config.IsComplete() {
		return ErrIncompleteAIConfig
	}
	return nil
}

// Content validates a content payload submitted for saving
func Content(content *models.Content) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(content.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "title is required"})
	}
	if content.Status != "" && !models.ValidContentStatuses[content.Status] {
		errs = append(errs, ValidationError{Field: "status", Message: "status must be one of: draft, published, failed"})
	}

	sectionIDs := make(map[string]bool, len(content.Sections))
	for _, section := range content.Sections {
		if sectionIDs[section.ID] {
			errs = append(errs, ValidationError{Field: "sections", Message: "duplicate section id " + section.ID})
		}
		sectionIDs[section.ID] = true
	}

	imageIDs := make(map[string]bool, len(content.Images))
	for _, image := range content.Images {
		if imageIDs[image.ID] {
			errs = append(errs, ValidationError{Field: "images", Message: "duplicate image id " + image.ID})
		}
		imageIDs[image.ID] = true
	}

	return errs
}

// PlatformAccountParams validates an add-account request
func PlatformAccountParams(params *models.PlatformAccountParams) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(params.PlatformName) == "" {
		errs = append(errs, ValidationError{Field: "platformName", Message: "platformName is required"})
	}
	// App credentials travel together
	if (params.AppID == "") != (params.AppSecret == "") {
		errs = append(errs, ValidationError{Field: "appId", Message: "appId and appSecret must be supplied together"})
	}

	return errs
}
