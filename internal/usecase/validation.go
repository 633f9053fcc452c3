package usecase

import (
	"fmt"
	"strings"

	"github.com/obsidianco/lead-capture/internal/entity"
)

// Consumer mail providers rejected on verticals that require a work email.
var personalEmailDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"hotmail.com": true,
	"outlook.com": true,
	"aol.com":     true,
	"icloud.com":  true,
}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateSubmitInput checks the vertical's required fields (presence after
// trimming) and a minimal email shape. It does not pre-check uniqueness;
// that is the table constraint's job.
func ValidateSubmitInput(v entity.Vertical, input SubmitInput) []ValidationError {
	var errors []ValidationError

	fields := inputFields(input)
	for _, name := range v.RequiredFields {
		if strings.TrimSpace(fields[name]) == "" {
			errors = append(errors, ValidationError{name, "is required"})
		}
	}

	email := strings.TrimSpace(input.Email)
	if email != "" && !strings.Contains(email, "@") {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

// IsPersonalEmail reports whether the address belongs to a consumer mail
// provider. The check is case-insensitive on the part after the final "@".
func IsPersonalEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	return personalEmailDomains[strings.ToLower(email[at+1:])]
}

// NormalizeSubmitInput lower-cases and trims the email, trims every free-text
// field, and applies the vertical's default landing path. Absent optional
// fields stay empty here and become explicit NULLs at the repository.
func NormalizeSubmitInput(v entity.Vertical, input SubmitInput) SubmitInput {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.Website = strings.TrimSpace(input.Website)
	input.AdSpend = strings.TrimSpace(input.AdSpend)
	input.MonthlyRevenue = strings.TrimSpace(input.MonthlyRevenue)
	input.GrowthChallenge = strings.TrimSpace(input.GrowthChallenge)
	input.UTMSource = strings.TrimSpace(input.UTMSource)
	input.UTMMedium = strings.TrimSpace(input.UTMMedium)
	input.UTMCampaign = strings.TrimSpace(input.UTMCampaign)
	input.UTMTerm = strings.TrimSpace(input.UTMTerm)
	input.UTMContent = strings.TrimSpace(input.UTMContent)
	input.LandingPath = strings.TrimSpace(input.LandingPath)

	if input.LandingPath == "" {
		input.LandingPath = v.DefaultLandingPath
	}

	return input
}

func inputFields(input SubmitInput) map[string]string {
	return map[string]string{
		"email":           input.Email,
		"firstName":       input.FirstName,
		"website":         input.Website,
		"adSpend":         input.AdSpend,
		"monthlyRevenue":  input.MonthlyRevenue,
		"growthChallenge": input.GrowthChallenge,
	}
}
