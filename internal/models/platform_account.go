package models

import "github.com/google/uuid"

// Default field values applied when adding an account
const (
	DefaultUsername  = "New User"
	DefaultAvatarURL = "https://images.pexels.com/photos/1591060/pexels-photo-1591060.jpeg"

	// Username placeholders reflecting connection state
	ConnectedUsername    = "ConnectedUser"
	DisconnectedUsername = "User"
)

// PlatformAccount is a connectable publishing destination. AppID/AppSecret
// are only set for platforms that require app credentials (e.g. WeChat
// official accounts).
type PlatformAccount struct {
	ID           string `json:"id"`
	PlatformName string `json:"platformName"`
	Username     string `json:"username"`
	IsConnected  bool   `json:"isConnected"`
	AvatarURL    string `json:"avatarUrl"`
	AppID        string `json:"appId,omitempty"`
	AppSecret    string `json:"appSecret,omitempty"`
}

// PlatformAccountParams carries the caller-supplied fields for adding an
// account; everything left blank receives a default.
type PlatformAccountParams struct {
	PlatformName string `json:"platformName"`
	Username     string `json:"username"`
	AvatarURL    string `json:"avatarUrl"`
	AppID        string `json:"appId"`
	AppSecret    string `json:"appSecret"`
}

// NewPlatformAccount builds an account from params, applying defaults for
// unset fields. New accounts always start disconnected.
func NewPlatformAccount(params PlatformAccountParams) PlatformAccount {
	account := PlatformAccount{
		ID:           uuid.NewString(),
		PlatformName: params.PlatformName,
		Username:     params.Username,
		IsConnected:  false,
		AvatarURL:    params.AvatarURL,
		AppID:        params.AppID,
		AppSecret:    params.AppSecret,
	}
	if account.Username == "" {
		account.Username = DefaultUsername
	}
	if account.AvatarURL == "" {
		account.AvatarURL = DefaultAvatarURL
	}
	return account
}
