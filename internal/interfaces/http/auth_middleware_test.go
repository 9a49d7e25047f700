package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/aquafarm-pro/aquafarm-api/internal/interfaces/http"
	pkgjwt "github.com/aquafarm-pro/aquafarm-api/pkg/jwt"
)

// ── test helpers ──────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testFarmID    = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "aquafarm-api-test"
	testExpMin    = 60
)

// buildTestApp wires a minimal Fiber app: AuthMiddleware to parse the JWT,
// RequireRole for authorization, then a dummy handler.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testFarmID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ── RequireRole ───────────────────────────────────────────────────────────────

func TestRequireRole_OwnerAllowedOnOwnerRoute(t *testing.T) {
	app := buildTestApp("owner")
	resp := doRequest(t, app, tokenForRole(t, "owner"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "owner", body["role"])
}

func TestRequireRole_ManagerAllowedOnMultiRoleRoute(t *testing.T) {
	app := buildTestApp("owner", "manager")
	resp := doRequest(t, app, tokenForRole(t, "manager"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_WorkerBlockedOnOwnerRoute(t *testing.T) {
	app := buildTestApp("owner")
	resp := doRequest(t, app, tokenForRole(t, "worker"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_MissingRoleClaimReturns401(t *testing.T) {
	app := buildTestApp("owner")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testFarmID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestRequireRole_NoAuthHeaderReturns401(t *testing.T) {
	app := buildTestApp("owner")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_MalformedTokenReturns401(t *testing.T) {
	app := buildTestApp("owner")
	resp := doRequest(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ── AuthMiddleware claim extraction ───────────────────────────────────────────

func TestAuthMiddleware_ExtractsClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"farm_id": apphttp.GetFarmID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "owner"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testFarmID, body["farm_id"])
	assert.Equal(t, "owner", body["role"])
}

// ── JWT round trip ────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParseWithRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testFarmID, "manager", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, farmID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testFarmID, farmID)
	assert.Equal(t, "manager", role)
}

func TestJWT_ExpiredTokenFails(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testFarmID, "owner", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err)
}

func TestJWT_WrongSecretFails(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testFarmID, "owner", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err)
}
