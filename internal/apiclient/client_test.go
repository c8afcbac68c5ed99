package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/testutil/fakeapi"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Options{BaseURL: baseURL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func stubServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options{BaseURL: "localhost:8080"})
	require.Error(t, err)

	_, err = New(Options{BaseURL: "ftp://api.example.com"})
	require.Error(t, err)

	_, err = New(Options{BaseURL: "https://api.example.com", TokenPath: "data.[["})
	require.Error(t, err)

	c, err := New(Options{BaseURL: " https://api.example.com/ "})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", c.BaseURL())
}

func TestSignIn_ExtractsTokenAndHints(t *testing.T) {
	api := fakeapi.New(t)
	acc := api.AddAccount(fakeapi.Account{Email: "hr@example.com", Password: "s3cret", Name: "Hana Reyes", Role: "HR_MANAGER"})
	c := newTestClient(t, api.URL)

	creds, err := c.SignIn(context.Background(), " hr@example.com ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, acc.Token, creds.AccessToken)
	assert.Equal(t, acc.ID, creds.UserID)
	assert.Equal(t, "hr@example.com", creds.Email)
	assert.Equal(t, "Hana Reyes", creds.Name)
}

func TestSignIn_EnvelopedResponse(t *testing.T) {
	api := fakeapi.New(t, fakeapi.WithEnvelope())
	acc := api.AddAccount(fakeapi.Account{Email: "a@example.com", Password: "pw", Role: "APPLICANT"})
	c := newTestClient(t, api.URL)

	creds, err := c.SignIn(context.Background(), "a@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, acc.Token, creds.AccessToken)
	assert.Equal(t, acc.ID, creds.UserID)
}

func TestSignIn_BadCredentialsSurfaceServerMessage(t *testing.T) {
	api := fakeapi.New(t)
	api.AddAccount(fakeapi.Account{Email: "a@example.com", Password: "pw", Role: "APPLICANT"})
	c := newTestClient(t, api.URL)

	_, err := c.SignIn(context.Background(), "a@example.com", "wrong")
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Invalid email or password", apperrors.UserMessage(err))
}

func TestSignIn_CustomTokenPathAndMissingToken(t *testing.T) {
	srv := stubServer(t, http.StatusOK, `{"auth":{"jwt":"abc.def.ghi"},"user":{"id":7}}`)

	c, err := New(Options{BaseURL: srv.URL, TokenPath: "auth.jwt"})
	require.NoError(t, err)
	creds, err := c.SignIn(context.Background(), "x@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", creds.AccessToken)
	assert.Equal(t, "7", creds.UserID)

	c = newTestClient(t, srv.URL)
	_, err = c.SignIn(context.Background(), "x@example.com", "pw")
	require.Error(t, err)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.ErrorIs(t, err, errNoToken)
	assert.True(t, apperrors.IsUnavailable(err))
	assert.Equal(t, msgUnreadableSignIn, apperrors.UserMessage(err))
}

func TestSignIn_UndecodableSuccessBody(t *testing.T) {
	srv := stubServer(t, http.StatusOK, `not json`)

	_, err := newTestClient(t, srv.URL).SignIn(context.Background(), "x@example.com", "pw")
	require.Error(t, err)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "invalid_signin_response", apiErr.Code)
	assert.Equal(t, msgUnreadableSignIn, apperrors.UserMessage(err))
}

func TestErrors_ShapesAndClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		code    apperrors.ErrorCode
		message string
	}{
		{"message field", http.StatusNotFound, `{"message":"Vacancy not found"}`, apperrors.ErrCodeNotFound, "Vacancy not found"},
		{"error string", http.StatusConflict, `{"error":"Already applied"}`, apperrors.ErrCodeConflict, "Already applied"},
		{"nested error", http.StatusBadRequest, `{"error":{"message":"Title is required","code":"E_VALIDATION"}}`, apperrors.ErrCodeValidation, "Title is required"},
		{"validation list", http.StatusUnprocessableEntity, `{"success":false,"errors":[{"msg":"Email is invalid"}]}`, apperrors.ErrCodeValidation, "Email is invalid"},
		{"plain text", http.StatusForbidden, `Access denied`, apperrors.ErrCodeForbidden, "Access denied"},
		{"html error page", http.StatusBadGateway, `<html><body>Bad gateway</body></html>`, apperrors.ErrCodeUnavailable, apperrors.GenericMessage},
		{"empty body", http.StatusInternalServerError, ``, apperrors.ErrCodeUnavailable, apperrors.GenericMessage},
		{"200 with success false", http.StatusOK, `{"success":false,"message":"Vacancy closed"}`, apperrors.ErrCodeValidation, "Vacancy closed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := stubServer(t, tt.status, tt.body)
			c := newTestClient(t, srv.URL)

			_, err := c.GetVacancy(context.Background(), "tok", "42")
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.GetCode(err))
			assert.Equal(t, tt.message, apperrors.UserMessage(err))
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := stubServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)
	_, err := c.ListVacancies(context.Background(), "tok")
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Status)
	assert.True(t, apperrors.IsUnavailable(err))
	assert.Equal(t, apperrors.GenericMessage, apperrors.UserMessage(err))
}

func TestBearerHeaderAttached(t *testing.T) {
	api := fakeapi.New(t)
	acc := api.AddAccount(fakeapi.Account{Email: "a@example.com", Password: "pw", Role: "APPLICANT"})
	c := newTestClient(t, api.URL)

	_, err := c.ListMyApplications(context.Background(), acc.Token)
	require.NoError(t, err)

	reqs := api.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer "+acc.Token, reqs[0].Authorization)

	_, err = c.ListMyApplications(context.Background(), "")
	assert.True(t, IsUnauthorized(err))
}

func TestEnvelopeAndBareBodiesDecodeAlike(t *testing.T) {
	for _, opts := range [][]fakeapi.Option{nil, {fakeapi.WithEnvelope()}} {
		api := fakeapi.New(t, opts...)
		hr := api.AddAccount(fakeapi.Account{Email: "hr@example.com", Password: "pw", Role: "HR_MANAGER"})
		api.AddVacancy(model.Vacancy{ID: "42", Title: "Backend Engineer", Status: model.VacancyStatusActive})
		c := newTestClient(t, api.URL)

		list, err := c.ListVacancies(context.Background(), hr.Token)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Backend Engineer", list[0].Title)

		v, err := c.GetVacancy(context.Background(), hr.Token, "42")
		require.NoError(t, err)
		assert.Equal(t, model.ID("42"), v.ID)

		require.NoError(t, c.DeleteVacancy(context.Background(), hr.Token, "42"))
	}
}

func TestWrappedListPayload(t *testing.T) {
	srv := stubServer(t, http.StatusOK, `{"success":true,"data":{"total":1,"applications":[{"id":5,"vacancyId":42,"status":"SHORTLISTED"}]}}`)
	c := newTestClient(t, srv.URL)

	apps, err := c.ListApplications(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, model.ID("5"), apps[0].ID)
	assert.Equal(t, model.ApplicationShortlisted, apps[0].Status)

	srv = stubServer(t, http.StatusOK, `{"success":true,"data":null}`)
	c = newTestClient(t, srv.URL)
	apps, err = c.ListApplications(context.Background(), "tok")
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestApplyTwiceReturnsConflict(t *testing.T) {
	api := fakeapi.New(t)
	acc := api.AddAccount(fakeapi.Account{Email: "a@example.com", Password: "pw", Role: "APPLICANT"})
	api.AddVacancy(model.Vacancy{ID: "42", Title: "Backend Engineer", Status: model.VacancyStatusActive})
	c := newTestClient(t, api.URL)

	_, err := c.Apply(context.Background(), acc.Token, model.ApplyRequest{VacancyID: "42"})
	require.NoError(t, err)

	_, err = c.Apply(context.Background(), acc.Token, model.ApplyRequest{VacancyID: "42"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Len(t, api.Applications(), 1)
}

func TestSignUp(t *testing.T) {
	api := fakeapi.New(t)
	c := newTestClient(t, api.URL)

	in := ports.SignUpInput{FirstName: "Ana", LastName: "Ruiz", Email: "ana@example.com", Password: "pw", Role: "APPLICANT"}
	require.NoError(t, c.SignUp(context.Background(), in))

	err := c.SignUp(context.Background(), in)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	_, err = c.SignIn(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)
}

func TestResultOf(t *testing.T) {
	ok := ResultOf(42, nil)
	assert.True(t, ok.Success)
	assert.Equal(t, 42, ok.Data)

	failed := ResultOf(0, apperrors.Conflict("already applied"))
	assert.False(t, failed.Success)
	assert.Equal(t, "already applied", failed.Error)
	assert.Equal(t, "conflict", failed.Code)
}
