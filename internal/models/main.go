// Package models defines the core data structures for catalog algorithms,
// video search results, and admin sessions.
package models

import "time"

// Algorithm is a single catalog entry describing a cipher or encoding scheme.
type Algorithm struct {
	// ID is the unique identifier of the algorithm inside the catalog.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Category is a free-text classification label.
	Category string `json:"category"`
	// Description is a free-text explanation.
	Description string `json:"description"`
	// EncryptionExample illustrates encoding a message.
	EncryptionExample string `json:"encryption_example"`
	// DecryptionExample illustrates decoding a message.
	DecryptionExample string `json:"decryption_example"`
	// KeyType describes the kind of key the algorithm uses.
	KeyType string `json:"key_type"`
	// Difficulty is a free-text label such as "Principiante".
	Difficulty string `json:"difficulty"`
}

// VideoResult is an explanatory video suggested for an algorithm.
// Exactly one of APIReal and Fallback is set.
type VideoResult struct {
	Title      string `json:"title"`
	VideoID    string `json:"video_id"`
	Channel    string `json:"channel"`
	Thumbnail  string `json:"thumbnail"`
	SearchTerm string `json:"search_term"`
	// APIReal marks a result returned by the video provider.
	APIReal bool `json:"api_real,omitempty"`
	// Fallback marks the static placeholder used when the provider returned nothing.
	Fallback bool `json:"fallback,omitempty"`
}

// Session is an authenticated admin session.
type Session struct {
	// Token is the opaque bearer token handed to the client.
	Token string `json:"token"`
	// Username is the authenticated admin.
	Username string `json:"username"`
	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
