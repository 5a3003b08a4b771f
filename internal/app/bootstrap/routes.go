// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	apierrors "github.com/dalemusser/memberhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/memberhub/internal/app/features/health"
	loginfeature "github.com/dalemusser/memberhub/internal/app/features/login"
	membersfeature "github.com/dalemusser/memberhub/internal/app/features/members"
	registerfeature "github.com/dalemusser/memberhub/internal/app/features/register"
	"github.com/dalemusser/memberhub/internal/app/system/token"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. MemberHub mounts the account endpoints
// (/register, /login), the member API under /api, and a health check.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Token issuer: process-wide signing secret, read-only after startup.
	issuer := token.NewIssuer(appCfg.TokenSecret, appCfg.TokenTTL)

	// Error logger for handlers.
	errLog := apierrors.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MemberHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Account endpoints
	registerHandler := registerfeature.NewHandler(deps.MemberHubMongoDatabase, errLog, logger)
	r.Mount("/register", registerfeature.Routes(registerHandler))

	loginHandler := loginfeature.NewHandler(deps.MemberHubMongoDatabase, issuer, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	// Member records
	membersHandler := membersfeature.NewHandler(deps.MemberHubMongoDatabase, errLog, logger)
	r.Mount("/api", membersfeature.Routes(membersHandler))

	return r, nil
}
