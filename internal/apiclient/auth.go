package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
)

var _ ports.Authenticator = (*Client)(nil)

// Identity hints looked up in the sign-in response when present.
const (
	userIDPath = "user.id || user._id || data.user.id || data.user._id || userId || data.userId"
	emailPath  = "user.email || data.user.email || email || data.email"
	namePath   = "user.name || data.user.name || name || data.name"
)

var errNoToken = errors.New("sign-in response did not contain an access token")

// msgUnreadableSignIn is shown when the API accepted the credentials but
// answered with something the portal cannot turn into a session.
const msgUnreadableSignIn = "Sign-in response was not understood. Please try again later."

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// SignIn calls POST /auth/signin and extracts the access token using the
// configured token path.
func (c *Client) SignIn(ctx context.Context, email, password string) (domainauth.Credentials, error) {
	in := call{
		method: http.MethodPost,
		path:   "/auth/signin",
		body:   signInRequest{Email: strings.TrimSpace(email), Password: password},
	}
	body, err := c.send(ctx, in)
	if err != nil {
		return domainauth.Credentials{}, err
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return domainauth.Credentials{}, unreadableSignIn(in, fmt.Errorf("decode response: %w", err))
	}

	token := searchString(c.tokenPath, doc)
	if token == "" {
		return domainauth.Credentials{}, unreadableSignIn(in, errNoToken)
	}

	return domainauth.Credentials{
		AccessToken: strings.TrimPrefix(token, "Bearer "),
		UserID:      searchString(userIDPath, doc),
		Email:       searchString(emailPath, doc),
		Name:        searchString(namePath, doc),
	}, nil
}

func unreadableSignIn(in call, cause error) *Error {
	return &Error{
		Method:  in.method,
		Path:    in.path,
		Status:  http.StatusBadGateway,
		Message: msgUnreadableSignIn,
		Code:    "invalid_signin_response",
		Err:     cause,
	}
}

// SignUp calls POST /auth/signup.
func (c *Client) SignUp(ctx context.Context, in ports.SignUpInput) error {
	req := signUpRequest{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Password:  in.Password,
		Role:      string(in.Role),
	}
	return c.do(ctx, call{method: http.MethodPost, path: "/auth/signup", body: req}, nil)
}

// searchString evaluates expr and stringifies scalar results. Anything else
// (including evaluation errors) yields "".
func searchString(expr string, doc any) string {
	v, err := jmespath.Search(expr, doc)
	if err != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
