package usecase

import (
	"regexp"
	"strings"
)

// InputError marks a request rejected before any retrieval work started.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

const maxQuestionLength = 1000

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateQuestion checks the question and returns it trimmed.
func ValidateQuestion(question string) (string, error) {
	if question == "" {
		return "", &InputError{"Question is required"}
	}
	if strings.TrimSpace(question) == "" {
		return "", &InputError{"Question cannot be empty"}
	}
	if len(question) > maxQuestionLength {
		return "", &InputError{"Question is too long (maximum 1000 characters)"}
	}
	return strings.TrimSpace(question), nil
}

// ValidateDocumentIDs checks an optional document-id filter. A nil filter
// means "all documents"; a present-but-empty or blank-entry filter is
// malformed.
func ValidateDocumentIDs(ids []string) error {
	if ids == nil {
		return nil
	}
	if len(ids) == 0 {
		return &InputError{"Document IDs array cannot be empty"}
	}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return &InputError{"All document IDs must be non-empty strings"}
		}
	}
	return nil
}

// ValidateRegistration checks sign-up fields, reporting the first problem.
func ValidateRegistration(username, email, password string) error {
	switch {
	case username == "":
		return &InputError{"Username is required"}
	case len(username) < 3:
		return &InputError{"Username must be at least 3 characters long"}
	case !usernamePattern.MatchString(username):
		return &InputError{"Username can only contain letters, numbers, and underscores"}
	}

	if err := validateEmail(email); err != nil {
		return err
	}

	switch {
	case password == "":
		return &InputError{"Password is required"}
	case len(password) < 6:
		return &InputError{"Password must be at least 6 characters long"}
	}
	return nil
}

func ValidateLogin(email, password string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return &InputError{"Password is required"}
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return &InputError{"Email is required"}
	}
	if !emailPattern.MatchString(email) {
		return &InputError{"Please provide a valid email address"}
	}
	return nil
}
