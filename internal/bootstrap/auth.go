package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/config"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/adapters/authroles"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/adapters/devauth"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/adapters/memory"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/adapters/oidc"
	redisadapter "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/adapters/redis"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/adapters/tokenclaims"
	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	httpx "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/http"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/service"
)

// SessionBackend is the configured session store plus the health check that
// /healthz runs against it.
type SessionBackend struct {
	Store  ports.SessionStore
	Health httpx.HealthCheck
}

// BuildSessionStore picks Redis or in-process storage. Redis requires a
// connected client.
func BuildSessionStore(cfg config.SessionConfig, client redis.UniversalClient) (SessionBackend, error) {
	switch cfg.Store {
	case config.SessionStoreRedis:
		if client == nil {
			return SessionBackend{}, errors.New("redis session store selected but no redis client configured")
		}
		store := redisadapter.NewSessionStore(redisadapter.SessionStoreOptions{Client: client, Prefix: cfg.KeyPrefix})
		return SessionBackend{Store: store, Health: store.Ping}, nil
	default:
		return SessionBackend{
			Store:  memory.NewSessionStore(nil),
			Health: func(context.Context) error { return nil },
		}, nil
	}
}

// AuthDeps contains what BuildAuthService needs.
type AuthDeps struct {
	Auth     config.AuthConfig
	API      ports.Authenticator // remote sign-in, used in api mode
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// BuildAuthService wires the authenticator, token decoder and role mapper
// for the configured auth mode.
func BuildAuthService(ctx context.Context, deps AuthDeps) (*service.AuthService, error) {
	if deps.Sessions == nil {
		return nil, errors.New("auth: session store is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authenticator, err := buildAuthenticator(deps)
	if err != nil {
		return nil, err
	}
	decoder, verified, err := buildTokenDecoder(ctx, deps.Auth, logger)
	if err != nil {
		return nil, err
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Authenticator: authenticator,
		Sessions:      deps.Sessions,
		Identity: service.IdentityConfig{
			Decoder:          decoder,
			Roles:            authroles.NewClaimsMapper(deps.Auth.HRRoleNames, deps.Auth.ApplicantRoleNames),
			DefaultRole:      deps.Auth.DefaultRole,
			SessionTTL:       deps.Auth.SessionTTL,
			RequireDecodable: verified,
		},
		Logger: logger,
	}), nil
}

//nolint:ireturn // api and mock modes return different authenticators.
func buildAuthenticator(deps AuthDeps) (ports.Authenticator, error) {
	if deps.Auth.Mode != config.AuthModeMock {
		if deps.API == nil {
			return nil, errors.New("auth: api client is required in api mode")
		}
		return deps.API, nil
	}

	dev := deps.Auth.DevAuth
	prov, err := devauth.NewProvider(devauth.Config{
		Users: []devauth.User{
			{Email: dev.HREmail, Password: dev.HRPassword, Name: dev.HRName, Role: domainauth.RoleHRManager},
			{Email: dev.ApplicantEmail, Password: dev.ApplicantPassword, Name: dev.ApplicantName, Role: domainauth.RoleApplicant},
		},
		SigningKey: []byte(dev.SigningKey),
		TokenTTL:   deps.Auth.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("create dev auth provider: %w", err)
	}
	return prov, nil
}

// buildTokenDecoder returns a verifying decoder when a key source is
// configured. Mock-mode tokens are HMAC-signed locally and never verify
// against a JWKS, so mock mode always reads claims unverified.
//
//nolint:ireturn // verified and unverified decoders share the port.
func buildTokenDecoder(ctx context.Context, cfg config.AuthConfig, logger *slog.Logger) (ports.TokenDecoder, bool, error) {
	if cfg.Mode == config.AuthModeMock {
		if cfg.VerifyTokens() {
			logger.WarnContext(ctx, "token verification settings ignored in mock auth mode")
		}
		return tokenclaims.Decoder{}, false, nil
	}
	if !cfg.VerifyTokens() {
		logger.InfoContext(ctx, "token signatures are not verified; roles from tokens are routing hints only")
		return tokenclaims.Decoder{}, false, nil
	}

	v, err := oidc.NewVerifier(ctx, oidc.VerifierConfig{
		JWKSURL:  cfg.JWKSURL,
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
	})
	if err != nil {
		return nil, false, fmt.Errorf("create token verifier: %w", err)
	}
	return v, true, nil
}
