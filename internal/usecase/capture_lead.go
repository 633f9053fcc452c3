package usecase

import (
	"context"
	"errors"

	"github.com/obsidianco/lead-capture/internal/entity"
)

type CaptureLeadUseCase struct {
	Repo         entity.LeadRepositoryInterface
	EmailService EmailService
}

func NewCaptureLeadUseCase(repo entity.LeadRepositoryInterface, emailService EmailService) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Repo:         repo,
		EmailService: emailService,
	}
}

// Execute runs the submission pipeline for one vertical: validate and
// normalize, insert, then trigger the welcome email. The email step runs
// after a successful insert and, where the vertical allows it, after a
// duplicate too; either way its outcome cannot alter the result.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, v entity.Vertical, input SubmitInput) (*CaptureLeadOutput, error) {
	validationErrors := ValidateSubmitInput(v, input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for i, e := range validationErrors {
			if i > 0 {
				errMsg += ", "
			}
			errMsg += e.Field + " (" + e.Message + ")"
		}
		return nil, &DomainError{
			Code:    "MISSING_FIELDS",
			Message: errMsg,
		}
	}

	input = NormalizeSubmitInput(v, input)

	if v.BlockPersonalEmails && IsPersonalEmail(input.Email) {
		return nil, &DomainError{
			Code:    "PERSONAL_EMAIL",
			Message: "Please use your work email (no Gmail, Yahoo, etc.)",
		}
	}

	lead := entity.NewLead(input.Email, input.FirstName)
	lead.Website = input.Website
	lead.AdSpend = input.AdSpend
	lead.MonthlyRevenue = input.MonthlyRevenue
	lead.GrowthChallenge = input.GrowthChallenge
	lead.UTMSource = input.UTMSource
	lead.UTMMedium = input.UTMMedium
	lead.UTMCampaign = input.UTMCampaign
	lead.UTMTerm = input.UTMTerm
	lead.UTMContent = input.UTMContent
	lead.LandingPath = input.LandingPath
	lead.IPAddress = input.IPAddress
	lead.UserAgent = input.UserAgent

	if err := uc.Repo.Insert(ctx, v.Table, lead); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			// The caller is already known. Some verticals re-send the asset
			// so a lost email can be recovered by submitting again.
			if v.ResendOnDuplicate && uc.EmailService != nil {
				uc.EmailService.SendWelcome(v.ID, input.Email, input.FirstName)
			}
			return &CaptureLeadOutput{Duplicate: true}, nil
		}

		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	if uc.EmailService != nil {
		uc.EmailService.SendWelcome(v.ID, lead.Email, lead.FirstName)
	}

	return &CaptureLeadOutput{LeadID: lead.ID}, nil
}
