package usecase

// SubmitInput carries the raw form body plus request metadata resolved by
// the handler. Field tags match the landing-page forms.
type SubmitInput struct {
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	Website         string `json:"website"`
	AdSpend         string `json:"adSpend"`
	MonthlyRevenue  string `json:"monthlyRevenue"`
	GrowthChallenge string `json:"growthChallenge"`
	UTMSource       string `json:"utm_source"`
	UTMMedium       string `json:"utm_medium"`
	UTMCampaign     string `json:"utm_campaign"`
	UTMTerm         string `json:"utm_term"`
	UTMContent      string `json:"utm_content"`
	LandingPath     string `json:"landing_path"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type CaptureLeadOutput struct {
	LeadID    string `json:"id,omitempty"`
	Duplicate bool   `json:"-"`
}
