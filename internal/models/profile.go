package models

// ProfileDTO is the backend's wire shape for a public user profile. Email and
// phone only arrive when the owner allowed showing them.
type ProfileDTO struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	ProfilePicture    string `json:"profilePicture"`
	Bio               string `json:"bio"`
	ShowEmail         bool   `json:"showEmail"`
	ShowPhone         bool   `json:"showPhone"`
	JoinDate          string `json:"joinDate"`
	TotalPublications int    `json:"totalPublications"`
}

// UserProfile is the profile view model. Contact fields stay empty unless the
// server-controlled visibility flags allow them.
type UserProfile struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	ProfilePicture    string `json:"profilePicture,omitempty"`
	Bio               string `json:"bio,omitempty"`
	ShowEmail         bool   `json:"showEmail"`
	ShowPhone         bool   `json:"showPhone"`
	JoinDate          string `json:"joinDate,omitempty"`
	TotalPublications int    `json:"totalPublications"`
}

// ProfileFromDTO maps a public profile, enforcing the visibility flags on the
// client side as well.
func ProfileFromDTO(dto ProfileDTO) UserProfile {
	name := dto.Name
	if name == "" {
		name = "Usuario"
	}
	p := UserProfile{
		ID:                dto.ID,
		Name:              name,
		ProfilePicture:    dto.ProfilePicture,
		Bio:               dto.Bio,
		ShowEmail:         dto.ShowEmail,
		ShowPhone:         dto.ShowPhone,
		JoinDate:          dto.JoinDate,
		TotalPublications: dto.TotalPublications,
	}
	if dto.ShowEmail {
		p.Email = dto.Email
	}
	if dto.ShowPhone {
		p.Phone = dto.Phone
	}
	return p
}
