package models

// Identity is the external identity-provider view of an account. It is not
// persisted locally; the local User row references it through AuthID.
type Identity struct {
	AuthID      string `json:"auth_id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatar_url"`
	IsForbidden bool   `json:"is_forbidden"`
	IsDeleted   bool   `json:"is_deleted"`
}

// Active reports whether the identity may access the service.
func (i *Identity) Active() bool {
	return !i.IsForbidden && !i.IsDeleted
}
