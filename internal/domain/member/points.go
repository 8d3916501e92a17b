package member

import "time"

// Point accounting shape. 1 point = NT$1; redemption is capped at half of an
// order's discounted total. The accrual ledger itself lives with the ordering
// system; this service only prices redemptions against the cap.

// PointSource names how points were earned or spent.
type PointSource string

const (
	SourceGoogleReview PointSource = "google_review"
	SourceReferral     PointSource = "referral"
	SourceBirthday     PointSource = "birthday"
	SourceFirstOrder   PointSource = "first_order"
	SourceRedeem       PointSource = "redeem"
)

// PointTransaction records a single point movement.
type PointTransaction struct {
	ID          string      `json:"id"`
	MemberID    string      `json:"memberId"`
	Amount      int64       `json:"amount"`
	Balance     int64       `json:"balance"`
	Source      PointSource `json:"source"`
	OrderID     string      `json:"orderId,omitempty"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Accrual amounts per source.
const (
	PointsGoogleReview   = 100
	PointsReferrer       = 200
	PointsReferee        = 100
	PointsBirthday       = 50
	PointsFirstOrder     = 50
	maxRedeemNumerator   = 1
	maxRedeemDenominator = 2
)

// RedeemLimit returns the maximum points redeemable against an order total.
func RedeemLimit(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return total * maxRedeemNumerator / maxRedeemDenominator
}
