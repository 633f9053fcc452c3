package entity

import "net/http"

// Vertical describes one landing-page funnel: which fields its form requires,
// where its leads are stored, and how repeat signups are answered.
type Vertical struct {
	ID                  string
	Table               string
	RequiredFields      []string
	BlockPersonalEmails bool
	// DuplicateStatus is the wire status for a repeat signup. The funnels
	// never agreed on 409 vs 200, so it stays a per-vertical choice.
	DuplicateStatus    int
	ResendOnDuplicate  bool
	DefaultLandingPath string
	SuccessMessage     string
	DuplicateMessage   string
}

var Verticals = []Vertical{
	{
		ID:                 "ecom",
		Table:              "ecom_leads",
		RequiredFields:     []string{"email", "firstName"},
		DuplicateStatus:    http.StatusConflict,
		DefaultLandingPath: "/ecom-checklist/",
		SuccessMessage:     "Thank you! Check your email for the checklist.",
		DuplicateMessage:   "This email is already registered. Please check your inbox.",
	},
	{
		ID:                  "fashion",
		Table:               "fashion_leads",
		RequiredFields:      []string{"email", "firstName", "website", "adSpend", "monthlyRevenue", "growthChallenge"},
		BlockPersonalEmails: true,
		DuplicateStatus:     http.StatusConflict,
		SuccessMessage:      "Thank you! Check your email for the frameworks.",
		DuplicateMessage:    "This email is already registered. Please check your inbox for the download link.",
	},
	{
		ID:                "saas",
		Table:             "saas_leads",
		RequiredFields:    []string{"email", "firstName"},
		DuplicateStatus:   http.StatusOK,
		ResendOnDuplicate: true,
		SuccessMessage:    "Thank you! Check your email for the funnel map.",
		DuplicateMessage:  "You're already on the list — we've re-sent the funnel map to your inbox.",
	},
	{
		ID:                "beauty",
		Table:             "beauty_leads",
		RequiredFields:    []string{"email", "firstName"},
		DuplicateStatus:   http.StatusConflict,
		ResendOnDuplicate: true,
		SuccessMessage:    "Thank you! Check your email for the frameworks.",
		DuplicateMessage:  "This email is already registered. Please check your inbox for the frameworks.",
	},
}

func VerticalByID(id string) (Vertical, bool) {
	for _, v := range Verticals {
		if v.ID == id {
			return v, true
		}
	}
	return Vertical{}, false
}
