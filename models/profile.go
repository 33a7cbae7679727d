package models

// Profile is the public profile row of a user. ID equals the user's ID.
type Profile struct {
	ID string `json:"id"`

	// DisplayName is optional; nil when the user never set one.
	DisplayName *string `json:"display_name"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// Name returns the display name or an empty string.
func (p Profile) Name() string {
	if p.DisplayName == nil {
		return ""
	}
	return *p.DisplayName
}
