package apiclient

import (
	"context"

	"github.com/shiksha-labs/tutorbot/internal/domain"
)

// UserAPI covers the authenticated profile endpoints.
type UserAPI struct {
	client *Client
}

type UpdateProfileResponse struct {
	Message string      `json:"message"`
	User    domain.User `json:"user"`
}

func (u *UserAPI) Profile(ctx context.Context) (domain.User, error) {
	var out domain.User
	err := u.client.get(ctx, "/user/me", "user", TrustUser, &out)
	return out, err
}

// UpdateProfile changes board and/or class on the current profile.
func (u *UserAPI) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (UpdateProfileResponse, error) {
	var out UpdateProfileResponse
	err := u.client.put(ctx, "/user/me", "user", update, TrustUser, &out)
	return out, err
}
