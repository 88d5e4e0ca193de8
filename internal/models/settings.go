// ABOUTME: User settings singleton, identity record, and Credential type.
// ABOUTME: Credentials distinguish unset/placeholder values from real ones.
package models

// PlaceholderCredential is the sentinel written by setup scaffolding. A
// credential equal to it (or empty) counts as unset and may be backfilled
// from the environment.
const PlaceholderCredential = "changeme"

// Credential is an optional API credential stored in settings.
type Credential string

// IsSet reports whether the credential holds a real user-provided value.
func (c Credential) IsSet() bool {
	return c != "" && c != PlaceholderCredential
}

// Settings is the singleton user preferences record.
type Settings struct {
	Name                 string  `json:"name"`
	Theme                string  `json:"theme"`
	NotificationsEnabled bool    `json:"notifications_enabled"`
	MonthlyBudget        float64 `json:"monthly_budget"`
	WeightUnit           string  `json:"weight_unit"`
	ActivityLevel        string  `json:"activity_level"`
	HydrationGoalLiters  float64 `json:"hydration_goal_liters"`
	SleepGoalHours       float64 `json:"sleep_goal_hours"`

	// Optional integration credentials, backfilled from the environment
	// when unset.
	YouTubeAPIKey    Credential `json:"youtube_api_key,omitempty"`
	YouTubeChannelID Credential `json:"youtube_channel_id,omitempty"`
	OpenAIAPIKey     Credential `json:"openai_api_key,omitempty"`

	// Optional profile fields.
	Age               int     `json:"age,omitempty"`
	HeightCm          float64 `json:"height_cm,omitempty"`
	TargetWeight      float64 `json:"target_weight,omitempty"`
	DietaryPreference string  `json:"dietary_preference,omitempty"`
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		Theme:               "dark",
		WeightUnit:          "kg",
		ActivityLevel:       "moderate",
		HydrationGoalLiters: 2.5,
		SleepGoalHours:      8,
	}
}

// User is the active identity. A nil User means the guest identity.
type User struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}
