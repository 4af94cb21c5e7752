package model

// Profile is the Google account profile attached to a connection.
type Profile struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
