package apiclient

import (
	"context"
	"net/url"

	"github.com/shiksha-labs/tutorbot/internal/domain"
)

// AdminAPI is the moderation surface. Login itself needs no trust; every
// other call rides the stored admin token.
type AdminAPI struct {
	client *Client
}

type AdminLoginResponse struct {
	Token string              `json:"token"`
	User  domain.AdminProfile `json:"user"`
}

type AdminActionResponse struct {
	Message string `json:"message"`
}

func (a *AdminAPI) Login(ctx context.Context, email, password string) (AdminLoginResponse, error) {
	var out AdminLoginResponse
	err := a.client.post(ctx, "/admin/login", "admin",
		map[string]string{"email": email, "password": password}, TrustNone, &out)
	return out, err
}

func (a *AdminAPI) Users(ctx context.Context) ([]domain.AdminStudentUser, error) {
	var out []domain.AdminStudentUser
	err := a.client.get(ctx, "/admin/users", "admin", TrustAdmin, &out)
	return out, err
}

func (a *AdminAPI) UserByID(ctx context.Context, userID string) (domain.AdminStudentUser, error) {
	var out domain.AdminStudentUser
	err := a.client.get(ctx, "/admin/users/"+url.PathEscape(userID), "admin", TrustAdmin, &out)
	return out, err
}

func (a *AdminAPI) ActivateUser(ctx context.Context, userID string) (AdminActionResponse, error) {
	var out AdminActionResponse
	err := a.client.put(ctx, "/admin/users/"+url.PathEscape(userID)+"/activate", "admin", nil, TrustAdmin, &out)
	return out, err
}

func (a *AdminAPI) DeactivateUser(ctx context.Context, userID string) (AdminActionResponse, error) {
	var out AdminActionResponse
	err := a.client.put(ctx, "/admin/users/"+url.PathEscape(userID)+"/deactivate", "admin", nil, TrustAdmin, &out)
	return out, err
}
