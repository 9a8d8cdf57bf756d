package authController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quizmaster/config"
	"quizmaster/database"
	"quizmaster/models"
	authRoutes "quizmaster/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: bcrypt.MinCost}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, db)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

const registerBody = `{
	"email": "new@quizz.com",
	"password": "secret123",
	"fullname": "New User",
	"dob": "1999-05-20",
	"gender": "Female",
	"country": "India",
	"qualification": "BSc"
}`

func TestRegister(t *testing.T) {
	app, db := setupAuthTest(t)

	resp := postJSON(t, app, "/register", registerBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User registered successfully", bodyMap(t, resp)["message"])

	var user models.User
	require.NoError(t, db.Where("email = ?", "new@quizz.com").First(&user).Error)
	assert.Equal(t, "New User", user.FullName)
	assert.Equal(t, "new user", user.NameSearchTerm)
	assert.True(t, user.Active)
	assert.NotEmpty(t, user.FsUniquifier)

	// Passwords are stored hashed.
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := setupAuthTest(t)

	resp := postJSON(t, app, "/register", registerBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/register", registerBody)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already exists", bodyMap(t, resp)["message"])
}

func TestRegisterValidation(t *testing.T) {
	app, _ := setupAuthTest(t)

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, app, "/register", `{"email": "a@b.com"}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, bodyMap(t, resp)["message"], "Missing fields")
	})

	t.Run("bad email", func(t *testing.T) {
		body := strings.Replace(registerBody, "new@quizz.com", "not-an-email", 1)
		resp := postJSON(t, app, "/register", body)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid email format", bodyMap(t, resp)["message"])
	})

	t.Run("bad dob", func(t *testing.T) {
		body := strings.Replace(registerBody, "1999-05-20", "20/05/1999", 1)
		resp := postJSON(t, app, "/register", body)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", bodyMap(t, resp)["message"])
	})
}

func TestLoginAndMe(t *testing.T) {
	app, _ := setupAuthTest(t)

	resp := postJSON(t, app, "/register", registerBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/login_main", `{"email": "new@quizz.com", "password": "secret123"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token, _ := bodyMap(t, resp)["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, meResp.StatusCode)

	me := bodyMap(t, meResp)
	assert.Equal(t, "new@quizz.com", me["email"])
	assert.Equal(t, "New User", me["fullname"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	app, _ := setupAuthTest(t)

	resp := postJSON(t, app, "/register", registerBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, app, "/login_main", `{"email": "new@quizz.com", "password": "wrong"}`)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := postJSON(t, app, "/login_main", `{"email": "ghost@quizz.com", "password": "secret123"}`)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing body", func(t *testing.T) {
		resp := postJSON(t, app, "/login_main", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestMeRequiresToken(t *testing.T) {
	app, _ := setupAuthTest(t)

	req := httptest.NewRequest("GET", "/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
