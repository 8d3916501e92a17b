package auth

import (
	"time"

	"github.com/thetensy/tensy-api/internal/domain/member"
)

// Config drives authentication behavior.
type Config struct {
	Secret     string
	SessionTTL time.Duration
	Line       LineConfig
}

// LineConfig holds the LINE Login channel credentials and endpoints.
type LineConfig struct {
	ChannelID     string
	ChannelSecret string
	RedirectURL   string
	AuthorizeURL  string
	TokenURL      string
	ProfileURL    string
}

// Profile is the LINE profile endpoint response.
type Profile struct {
	UserID        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	PictureURL    string `json:"pictureUrl,omitempty"`
	StatusMessage string `json:"statusMessage,omitempty"`
}

// LoginResult carries the minted session token and the upserted member.
type LoginResult struct {
	Token  string
	Member member.Member
}

// providerPrefix namespaces member ids by identity provider.
const providerPrefix = "line_"

// MemberID derives the local member id from the provider user id.
func MemberID(providerUserID string) string {
	return providerPrefix + providerUserID
}
