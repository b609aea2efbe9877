package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDetails is the profile content without storage metadata.
type ProfileDetails struct {
	FullName        string `json:"full_name" gorm:"type:text"`
	Bio             string `json:"bio" gorm:"type:text"`
	Email           string `json:"email" gorm:"type:text"`
	Location        string `json:"location" gorm:"type:text"`
	AvatarURL       string `json:"avatar_url" gorm:"type:text"`
	ProfilePhotoURL string `json:"profile_photo_url" gorm:"type:text"`
}

// ProfileID is the primary key of the single profile row. Every write targets
// it, so concurrent first writes cannot create a second profile.
var ProfileID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Profile is the site owner's about-me record. At most one row exists.
type Profile struct {
	ID             uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProfileDetails `gorm:"embedded"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ProfilePatch struct {
	FullName        *string `json:"full_name"`
	Bio             *string `json:"bio"`
	Email           *string `json:"email"`
	Location        *string `json:"location"`
	AvatarURL       *string `json:"avatar_url"`
	ProfilePhotoURL *string `json:"profile_photo_url"`
}

func (p ProfilePatch) Apply(profile *Profile) {
	if p.FullName != nil {
		profile.FullName = *p.FullName
	}
	if p.Bio != nil {
		profile.Bio = *p.Bio
	}
	if p.Email != nil {
		profile.Email = *p.Email
	}
	if p.Location != nil {
		profile.Location = *p.Location
	}
	if p.AvatarURL != nil {
		profile.AvatarURL = *p.AvatarURL
	}
	if p.ProfilePhotoURL != nil {
		profile.ProfilePhotoURL = *p.ProfilePhotoURL
	}
}

// DefaultProfile is served until the owner saves a profile of their own.
func DefaultProfile() ProfileDetails {
	return ProfileDetails{
		FullName:  "Hafizur Rahman",
		Bio:       "Web Developer & ML Enthusiast",
		Email:     "rahmanhafizur31928@gmail.com",
		Location:  "Bangladesh",
		AvatarURL: "",
	}
}
