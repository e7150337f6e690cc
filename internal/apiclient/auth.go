package apiclient

import (
	"context"

	"github.com/shiksha-labs/tutorbot/internal/domain"
)

// AuthAPI covers OTP login, signup and the current-user lookup.
type AuthAPI struct {
	client *Client
}

type OTPRequestResponse struct {
	Message string `json:"message"`
}

type VerifyOTPResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// RequestOTP asks the backend to send a one-time code to mobile.
func (a *AuthAPI) RequestOTP(ctx context.Context, mobile string) (OTPRequestResponse, error) {
	var out OTPRequestResponse
	err := a.client.post(ctx, "/auth/login-otp", "auth", map[string]string{"mobile": mobile}, TrustNone, &out)
	return out, err
}

// VerifyOTP exchanges a mobile+code pair for a session token and profile.
// Invalid code, expired code and server errors stay distinguishable through
// the status on the returned *Error.
func (a *AuthAPI) VerifyOTP(ctx context.Context, mobile, otp string) (VerifyOTPResponse, error) {
	var out VerifyOTPResponse
	err := a.client.post(ctx, "/auth/verify-otp", "auth", map[string]string{"mobile": mobile, "otp": otp}, TrustNone, &out)
	return out, err
}

func (a *AuthAPI) Register(ctx context.Context, input domain.RegisterInput) (RegisterResponse, error) {
	var out RegisterResponse
	err := a.client.post(ctx, "/auth/register", "auth", input, TrustNone, &out)
	return out, err
}

// Me returns the profile behind the stored user token.
func (a *AuthAPI) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	err := a.client.get(ctx, "/auth/me", "auth", TrustUser, &out)
	return out, err
}
