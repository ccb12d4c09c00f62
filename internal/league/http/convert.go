package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
	"github.com/aussiebroadwan/leaguehub/internal/league/service"
	"github.com/aussiebroadwan/leaguehub/pkg/httpx"
	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
)

// identityFromRequest pulls the authenticated caller injected by the authn
// middleware out of the request context.
func identityFromRequest(r *http.Request) (domain.Identity, bool) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		return domain.Identity{}, false
	}
	email, _ := httpx.EmailFromContext(r.Context())
	return domain.Identity{UserID: userID, Email: email}, true
}

func toLeagueJSON(l domain.League) leaguesdk.League {
	return leaguesdk.League{
		ID:        l.ID,
		Name:      l.Name,
		OwnerID:   l.OwnerID,
		CreatedAt: l.CreatedAt,
	}
}

// toInviteJSON renders the administrative view of an invite. This view is
// only served to league owners and admins; public previews go through
// toPreviewJSON instead.
func toInviteJSON(inv domain.Invite, now time.Time) leaguesdk.Invite {
	return leaguesdk.Invite{
		ID:        inv.ID,
		LeagueID:  inv.LeagueID,
		Email:     inv.Email,
		MaxUses:   inv.MaxUses,
		UseCount:  inv.UseCount,
		State:     string(inv.State(now)),
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
}

func toPreviewJSON(p service.InvitePreview) leaguesdk.InvitePreview {
	return leaguesdk.InvitePreview{
		LeagueID:   p.LeagueID,
		LeagueName: p.LeagueName,
		Targeted:   p.Targeted,
		State:      string(p.State),
		ExpiresAt:  p.ExpiresAt,
	}
}

func toMembershipJSON(m domain.Membership) leaguesdk.Membership {
	return leaguesdk.Membership{
		LeagueID: m.LeagueID,
		UserID:   m.UserID,
		Role:     string(m.Role),
		TeamName: m.TeamName,
		JoinedAt: m.CreatedAt,
	}
}
