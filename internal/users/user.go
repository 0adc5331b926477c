package users

// User is a registered account. Username is the natural key; articles and
// comments reference it as their author. This API never mutates users.
//
// The listing endpoint returns usernames only, so Name and AvatarURL are
// omitted when empty.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
