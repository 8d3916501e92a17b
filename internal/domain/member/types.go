package member

import "time"

// Member represents a member record derived from a verified LINE identity
// plus locally tracked stored-value fields.
type Member struct {
	ID           string    `json:"id"`
	LineID       string    `json:"lineId,omitempty"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar,omitempty"`
	Balance      int64     `json:"balance"`
	TotalDeposit int64     `json:"totalDeposit"`
	Tier         Tier      `json:"tier"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DepositRecord captures a single confirmed top-up.
type DepositRecord struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"memberId"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"createdAt"`
}

// Quote prices an order for a member: tier discount first, then an optional
// point redemption capped at half of the discounted total.
type Quote struct {
	Subtotal     int64   `json:"subtotal"`
	Tier         Tier    `json:"tier"`
	DiscountRate float64 `json:"discountRate"`
	Discounted   int64   `json:"discounted"`
	PointsUsed   int64   `json:"pointsUsed"`
	Payable      int64   `json:"payable"`
}

// DepositRequest is the deposit endpoint payload.
type DepositRequest struct {
	Amount int64 `json:"amount"`
}

// QuoteRequest is the quote endpoint payload.
type QuoteRequest struct {
	Subtotal  int64 `json:"subtotal"`
	UsePoints int64 `json:"usePoints"`
}
