package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/leaguehub/internal/league/domain"
	"github.com/aussiebroadwan/leaguehub/pkg/slogx"
)

// InvalidAddressesError rejects a whole bulk batch because some inputs were
// malformed. Fail-closed: nothing is minted until every address parses.
type InvalidAddressesError struct {
	Addresses []string
}

// Error implements the error interface.
func (e *InvalidAddressesError) Error() string {
	return fmt.Sprintf("invalid addresses: %s", strings.Join(e.Addresses, ", "))
}

// BulkInvite is one minted invite from a bulk batch.
type BulkInvite struct {
	Email     string
	InviteID  string
	Token     string
	AcceptURL string
}

// BulkReport is the outcome of a bulk mint. Skipped lists addresses that
// already had an open invite in the league. On a mid-batch storage failure
// the accompanying error is non-nil and Created holds what committed before
// the failure.
type BulkReport struct {
	Created []BulkInvite
	Skipped []string
}

// BulkMintInvites parses a blob of addresses and mints a targeted
// single-use invite for each net-new one. Each create commits
// independently.
func (s *InviteService) BulkMintInvites(
	ctx context.Context,
	leagueID string,
	blob string,
	ttl time.Duration,
	requester domain.Identity,
) (BulkReport, error) {
	log := slogx.FromContext(ctx)

	// 1. Requester must be owner or admin.
	if _, err := requireManager(ctx, s.Store, leagueID, requester.UserID); err != nil {
		return BulkReport{}, err
	}
	if ttl < 0 {
		return BulkReport{}, ErrInvalidInviteRequest
	}

	// 2. Parse, normalize, de-dup.
	addresses := parseAddressBlob(blob)
	if len(addresses) == 0 {
		return BulkReport{}, ErrInvalidInviteRequest
	}

	// 3. Shape-check everything before minting anything.
	var invalid []string
	for _, addr := range addresses {
		if !validEmailAddress(addr) {
			invalid = append(invalid, addr)
		}
	}
	if len(invalid) > 0 {
		log.Warn("bulk mint rejected",
			slog.String("league_id", leagueID),
			slog.Int("invalid_count", len(invalid)),
		)
		return BulkReport{}, &InvalidAddressesError{Addresses: invalid}
	}

	// 4. Skip addresses that already have an open invite here.
	now := time.Now().UTC()
	openTargets, err := s.Store.Invites().ListOpenEmailTargetsForLeague(ctx, leagueID, now)
	if err != nil {
		log.Error("failed to list open invite targets", slog.Any("error", err))
		return BulkReport{}, err
	}

	// 5. Mint the rest. Each create is its own commit so a failure partway
	// through leaves a truthful report of what went out.
	var report BulkReport
	for _, addr := range addresses {
		if _, exists := openTargets[addr]; exists {
			report.Skipped = append(report.Skipped, addr)
			continue
		}

		invite, token, err := s.mintTargeted(ctx, leagueID, addr, ttl, requester, now)
		if err != nil {
			log.Error("bulk mint aborted mid-batch",
				slog.String("league_id", leagueID),
				slog.Int("created", len(report.Created)),
				slog.Any("error", err),
			)
			return report, err
		}

		report.Created = append(report.Created, BulkInvite{
			Email:     addr,
			InviteID:  invite.ID,
			Token:     token,
			AcceptURL: s.AcceptURL(token),
		})

		if s.Mailer != nil {
			s.sendInviteMail(ctx, leagueID, addr, token)
		}
	}

	log.Info("bulk invites minted",
		slog.String("league_id", leagueID),
		slog.Int("created", len(report.Created)),
		slog.Int("skipped", len(report.Skipped)),
	)
	return report, nil
}

// mintTargeted writes one single-use targeted invite, bypassing the
// per-call permission check MintInvite performs (the batch already did it).
func (s *InviteService) mintTargeted(
	ctx context.Context,
	leagueID, email string,
	ttl time.Duration,
	requester domain.Identity,
	now time.Time,
) (domain.Invite, string, error) {
	var expiresAt *time.Time
	if ttl > 0 {
		t := now.Add(ttl)
		expiresAt = &t
	}
	one := 1

	return s.createWithFreshToken(ctx, domain.Invite{
		LeagueID:  leagueID,
		CreatedBy: requester.UserID,
		Email:     email,
		MaxUses:   &one,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// parseAddressBlob splits a free-form blob on commas, semicolons, newlines
// and whitespace, lowercases, and de-dups preserving first-seen order.
func parseAddressBlob(blob string) []string {
	fields := strings.FieldsFunc(blob, func(r rune) bool {
		switch r {
		case ',', ';', '\n', '\r', '\t', ' ':
			return true
		}
		return false
	})

	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		addr := strings.ToLower(strings.TrimSpace(f))
		if addr == "" {
			continue
		}
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	return out
}

// validEmailAddress checks the local@domain.tld shape. The RFC 5322 parser
// accepts bare "a@b"; requiring a dotted domain keeps obvious typos out.
func validEmailAddress(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return false
	}

	at := strings.LastIndex(addr, "@")
	if at <= 0 {
		return false
	}
	domainPart := addr[at+1:]
	if !strings.Contains(domainPart, ".") {
		return false
	}
	if strings.HasPrefix(domainPart, ".") || strings.HasSuffix(domainPart, ".") {
		return false
	}
	return true
}
