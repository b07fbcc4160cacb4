package domain

// Dashboard is the admin summary over every store.
type Dashboard struct {
	Users         int64   `json:"users"`
	Projects      int64   `json:"projects"`
	Investments   int64   `json:"investments"`
	Interests     int64   `json:"interests"`
	TotalInvested float64 `json:"totalInvested"`
}
