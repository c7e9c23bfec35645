package models

// PromoCode is a redeemable subscription code. Redemption is the one
// user-initiated path where failures surface as explicit messages.
type PromoCode struct {
	Code         string   `json:"code"`
	Label        string   `json:"label"`
	DurationDays int      `json:"duration_days"`
	MaxUses      int      `json:"max_uses"`
	CurrentUses  int      `json:"current_uses"`
	ExpiresAt    int64    `json:"expires_at,omitempty"` // unix millis, 0 = never
	ClaimedBy    []string `json:"claimed_by,omitempty"`
}
