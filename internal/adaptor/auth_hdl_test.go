package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"naija-barter/internal/dto/request"
	"naija-barter/internal/dto/response"
	"naija-barter/internal/usecase"
	"naija-barter/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAuthService returns canned results so the handler's status mapping
// can be exercised without a store or mailer.
type stubAuthService struct {
	loginResp *response.UserAndTokenResponse
	err       error
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserAndTokenResponse, error) {
	return s.loginResp, s.err
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, email string) error { return s.err }

func (s *stubAuthService) SendConfirmEmail(ctx context.Context, email string) error { return s.err }

func (s *stubAuthService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error {
	return s.err
}

func (s *stubAuthService) ConfirmEmail(ctx context.Context, req *request.VerifyOTPRequest) error {
	return s.err
}

func (s *stubAuthService) PasswordReset(ctx context.Context, req *request.PasswordResetRequest) error {
	return s.err
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error {
	return s.err
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &response.UserResponse{ID: userID}, nil
}

func newAuthTestHandler(err error) *AuthHandler {
	return NewAuthHandler(&stubAuthService{err: err}, zap.NewNop())
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestLoginStatusMapping(t *testing.T) {
	body := `{"email":"user@example.com","password":"Passw0rd"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown or wrong credentials", err: fmt.Errorf("invalid credentials"), wantStatus: http.StatusUnauthorized},
		{name: "inactive account", err: fmt.Errorf("user is not active"), wantStatus: http.StatusForbidden},
		{name: "unconfirmed email", err: fmt.Errorf("email not confirmed"), wantStatus: utils.StatusEmailNotConfirmed},
		{name: "validation", err: fmt.Errorf("validation failed: email is required"), wantStatus: http.StatusBadRequest},
		{name: "storage failure", err: fmt.Errorf("failed to find user"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthTestHandler(tt.err)
			rec := postJSON(t, h.Login, body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLoginSuccessPayload(t *testing.T) {
	stub := &stubAuthService{
		loginResp: &response.UserAndTokenResponse{
			UserResponse: response.UserResponse{ID: "aaa111", Email: "user@example.com"},
			Token:        "token-value",
		},
	}
	h := NewAuthHandler(stub, zap.NewNop())

	rec := postJSON(t, h.Login, `{"email":"user@example.com","password":"Passw0rd"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "aaa111", data["id"])
	assert.Equal(t, "token-value", data["token"])
}

func TestLoginRejectsBadBody(t *testing.T) {
	h := newAuthTestHandler(nil)
	rec := postJSON(t, h.Login, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForgotPasswordAlwaysGenericAck(t *testing.T) {
	// The handler answers identically whether or not the account exists;
	// the service signals nothing but transport failures.
	h := newAuthTestHandler(nil)
	rec := postJSON(t, h.ForgotPassword, `{"email":"anyone@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, usecase.GenericOTPSentMessage, resp.Message)
}

func TestForgotPasswordMailFailure(t *testing.T) {
	h := newAuthTestHandler(fmt.Errorf("an error occurred while trying to send email"))
	rec := postJSON(t, h.ForgotPassword, `{"email":"anyone@example.com"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestForgotPasswordRejectsBadEmail(t *testing.T) {
	h := newAuthTestHandler(nil)
	rec := postJSON(t, h.ForgotPassword, `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTPStatusMapping(t *testing.T) {
	body := `{"email":"user@example.com","otp":"1234"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "valid", err: nil, wantStatus: http.StatusOK},
		{name: "invalid code", err: fmt.Errorf("OTP is invalid"), wantStatus: http.StatusBadRequest},
		{name: "unknown account", err: fmt.Errorf("user not found"), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthTestHandler(tt.err)
			rec := postJSON(t, h.VerifyOTP, body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPasswordResetStatusMapping(t *testing.T) {
	body := `{"email":"user@example.com","otp":"1234","password":"NewPassw0rd","password_again":"NewPassw0rd"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", err: nil, wantStatus: http.StatusOK},
		{name: "weak password", err: fmt.Errorf("password must be alphanumeric and at least 8 characters"), wantStatus: http.StatusBadRequest},
		{name: "mismatch", err: fmt.Errorf("password and repeat does not match"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthTestHandler(tt.err)
			rec := postJSON(t, h.PasswordReset, body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestChangePasswordRequiresAuth(t *testing.T) {
	h := newAuthTestHandler(nil)
	rec := postJSON(t, h.ChangePassword, `{"old_password":"a","new_password":"b","new_password_again":"b"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePasswordWrongOldPassword(t *testing.T) {
	h := newAuthTestHandler(fmt.Errorf("invalid password"))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
		`{"old_password":"a","new_password":"b","new_password_again":"b"}`))
	req = req.WithContext(utils.SetUserContext(req.Context(), "aaa111"))
	rec := httptest.NewRecorder()
	h.ChangePassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserVerifyEchoesUserAndToken(t *testing.T) {
	h := newAuthTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := utils.SetUserContext(req.Context(), "aaa111")
	ctx = utils.SetTokenContext(ctx, "bearer-token")
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	h.UserVerify(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "aaa111", data["id"])
	assert.Equal(t, "bearer-token", data["token"])
}

func TestUserVerifyRequiresAuth(t *testing.T) {
	h := newAuthTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.UserVerify(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
