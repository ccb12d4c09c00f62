package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/internal/league/store"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/slogx"

	_ "github.com/aussiebroadwan/leaguehub/api/league" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	authn        httpx.Middleware
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	LeagueService     *service.LeagueService
	InviteService     *service.InviteService
	MembershipService *service.MembershipService
}

func NewRouter(
	authn httpx.Middleware,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		authn:        authn,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerLeagues()
	r.registerInvites()
	r.registerMembers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			LeagueHub API
//	@version		0.1.0
//	@description	Multi-tenant league membership service: tokenized invites (open and
//	@description	email-targeted), bulk invite batches, and per-league rosters with
//	@description	unique team names.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/leaguehub
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token from the external auth provider. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerLeagues() {
	h := &LeagueCreateHandler{LeagueService: r.LeagueService}

	// POST /v1/leagues - moderate rate limit by user
	r.Mux.Handle("POST /v1/leagues",
		httpx.Chain(h,
			r.authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvites() {
	mintHandler := &InviteMintHandler{InviteService: r.InviteService}
	bulkHandler := &InviteBulkHandler{InviteService: r.InviteService}
	listHandler := &InviteListHandler{InviteService: r.InviteService}
	previewHandler := &InvitePreviewHandler{InviteService: r.InviteService}
	acceptHandler := &InviteAcceptHandler{InviteService: r.InviteService}
	revokeHandler := &InviteRevokeHandler{InviteService: r.InviteService}

	// Admin-side invite management - moderate rate limit by user
	r.Mux.Handle("POST /v1/leagues/{id}/invites",
		httpx.Chain(mintHandler,
			r.authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/leagues/{id}/invites/bulk",
		httpx.Chain(bulkHandler,
			r.authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/leagues/{id}/invites",
		httpx.Chain(listHandler,
			r.authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/invites/{id}",
		httpx.Chain(revokeHandler,
			r.authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /v1/invites/{token} - public preview, strict limit by IP (token guessing)
	r.Mux.Handle("GET /v1/invites/{token}",
		httpx.Chain(previewHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /v1/invites/{token}/accept - strict limit by IP (token guessing)
	r.Mux.Handle("POST /v1/invites/{token}/accept",
		httpx.Chain(acceptHandler,
			r.authn,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerMembers() {
	membersHandler := &MembersHandler{MembershipService: r.MembershipService}
	teamNameHandler := &TeamNameHandler{MembershipService: r.MembershipService}

	r.Mux.Handle("GET /v1/leagues/{id}/members",
		httpx.Chain(http.HandlerFunc(membersHandler.HandleList),
			r.authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/leagues/{id}/members/{userID}",
		httpx.Chain(http.HandlerFunc(membersHandler.HandleUpdateRole),
			r.authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/leagues/{id}/members/{userID}",
		httpx.Chain(http.HandlerFunc(membersHandler.HandleRemove),
			r.authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("PUT /v1/leagues/{id}/team-name",
		httpx.Chain(http.HandlerFunc(teamNameHandler.HandleSet),
			r.authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/leagues/{id}/team-name/availability",
		httpx.Chain(http.HandlerFunc(teamNameHandler.HandleAvailability),
			r.authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.buildVersion, r.startTime),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
