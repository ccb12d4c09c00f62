package league_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/leaguehub/pkg/leaguesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for league service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "leaguehub-league-test:latest"

	ownerUserID = "user-owner"
	ownerEmail  = "owner@example.com"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building League Service Docker image...")

	// Build the Docker image once before all tests
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	// Run all tests
	exitCode := m.Run()

	// Clean up the Docker image after all tests complete
	fmt.Fprintf(os.Stdout, "Cleaning up League Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/leaguehub/Dockerfile",
		"../../../")
	cmd.Dir = "." // Ensure we're in the test directory
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupLeagueContainer starts the league service in a container and returns
// the base URL. The container runs in static auth mode so tests can assume
// any identity via debug headers.
func setupLeagueContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"LEAGUE_AUTH_MODE":       "static",
			"LEAGUE_DATABASE_FILE":   "/tmp/league.db",
			"LEAGUE_ACCEPT_BASE_URL": "https://league.test/join",
			"ENV":                    "test",
			"LOG_LEVEL":              "info",
			"LOG_FORMAT":             "json",
			// Increase rate limits for E2E tests to prevent test failures
			// Tests often make many rapid requests which would otherwise hit the strict production limits
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	// Get the mapped port
	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// createLeague creates a league as the given session and asserts success.
func createLeague(t *testing.T, session *leaguesdk.Session, name string) *leaguesdk.League {
	t.Helper()

	league, err := session.CreateLeague(t.Context(), leaguesdk.CreateLeagueRequest{Name: name})
	require.NoError(t, err)
	require.NotNil(t, league)
	require.NotEmpty(t, league.ID, "League ID should be generated")
	require.Equal(t, name, league.Name)

	return league
}

// assertHealthy checks that a health response indicates an "ok" status.
func assertHealthy(t *testing.T, health *leaguesdk.HealthResponse, err error) {
	t.Helper()

	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError asserts that err is an APIError with the given code.
func assertAPIError(t *testing.T, err error, code string) *leaguesdk.APIError {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*leaguesdk.APIError)
	require.True(t, ok, "expected *leaguesdk.APIError, got %T: %v", err, err)
	require.Equal(t, code, apiErr.Code)

	return apiErr
}
