package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app := createTestApp()
	email := uniqueEmail("register")

	resp := doJSON(t, app, "POST", "/api/v1/users", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := dataOf(t, decodeBody(t, resp))
	assert.Equal(t, email, data["email"])
	assert.NotEmpty(t, data["token"])
}

func TestRegisterValidation(t *testing.T) {
	app := createTestApp()

	// Email tidak valid
	resp := doJSON(t, app, "POST", "/api/v1/users", map[string]string{
		"name":     "Test User",
		"email":    "not-an-email",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Password terlalu pendek
	resp = doJSON(t, app, "POST", "/api/v1/users", map[string]string{
		"name":     "Test User",
		"email":    uniqueEmail("short"),
		"password": "pw",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// Email yang sama tidak boleh terdaftar dua kali.
func TestRegisterDuplicateEmail(t *testing.T) {
	app := createTestApp()
	email := uniqueEmail("duplicate")

	registerUser(t, app, email)

	resp := doJSON(t, app, "POST", "/api/v1/users", map[string]string{
		"name":     "Other User",
		"email":    email,
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Pastikan cuma ada satu user dengan email tersebut
	var count int
	require.NoError(t, testDB.QueryRow(
		"SELECT COUNT(*) FROM users WHERE email = $1", email).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLoginBasicAuth(t *testing.T) {
	app := createTestApp()
	email := uniqueEmail("login")
	registerUser(t, app, email)

	req := httptest.NewRequest("POST", "/api/v1/users/login", nil)
	req.Header.Set("Authorization", basicAuthHeader(email, "secret123"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := dataOf(t, decodeBody(t, resp))
	assert.Equal(t, email, data["email"])
	assert.NotEmpty(t, data["token"])
}

// Password salah dan email tidak terdaftar harus dibalas identik,
// supaya email terdaftar tidak bisa ditebak dari response.
func TestLoginInvalidCredentialsNotEnumerable(t *testing.T) {
	app := createTestApp()
	email := uniqueEmail("enum")
	registerUser(t, app, email)

	wrongPassword := httptest.NewRequest("POST", "/api/v1/users/login", nil)
	wrongPassword.Header.Set("Authorization", basicAuthHeader(email, "wrongpass"))
	respWrong, err := app.Test(wrongPassword, -1)
	require.NoError(t, err)

	unknownEmail := httptest.NewRequest("POST", "/api/v1/users/login", nil)
	unknownEmail.Header.Set("Authorization", basicAuthHeader(uniqueEmail("ghost"), "wrongpass"))
	respUnknown, err := app.Test(unknownEmail, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)

	bodyWrong := decodeBody(t, respWrong)
	bodyUnknown := decodeBody(t, respUnknown)
	assert.Equal(t, bodyWrong["message"], bodyUnknown["message"])
}

// Logout hanya mencabut token yang dipakai; token device lain tetap hidup.
func TestLogoutRevokesOnlyPresentedToken(t *testing.T) {
	app := createTestApp()
	email := uniqueEmail("logout")
	firstToken := registerUser(t, app, email)

	// Login lagi untuk dapat token kedua (device lain)
	req := httptest.NewRequest("POST", "/api/v1/users/login", nil)
	req.Header.Set("Authorization", basicAuthHeader(email, "secret123"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	secondToken := dataOf(t, decodeBody(t, resp))["token"].(string)
	require.NotEqual(t, firstToken, secondToken)

	// Logout dengan token pertama
	logoutResp := doJSON(t, app, "POST", "/api/v1/users/logout", nil, firstToken)
	assert.Equal(t, http.StatusOK, logoutResp.StatusCode)
	logoutResp.Body.Close()

	// Token pertama sudah mati
	meResp := doJSON(t, app, "GET", "/api/v1/users/me", nil, firstToken)
	assert.Equal(t, http.StatusUnauthorized, meResp.StatusCode)
	meResp.Body.Close()

	// Token kedua masih berlaku
	meResp = doJSON(t, app, "GET", "/api/v1/users/me", nil, secondToken)
	assert.Equal(t, http.StatusOK, meResp.StatusCode)
	meResp.Body.Close()
}

func TestMe(t *testing.T) {
	app := createTestApp()
	email := uniqueEmail("me")
	token := registerUser(t, app, email)

	// Baru ada satu token, jadi token aktif terbaru = token register
	resp := doJSON(t, app, "GET", "/api/v1/users/me", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := dataOf(t, decodeBody(t, resp))
	assert.Equal(t, email, data["email"])
	assert.Equal(t, token, data["token"])

	// Setelah login lagi, me mengembalikan token yang paling baru
	// walaupun request memakai token lama
	req := httptest.NewRequest("POST", "/api/v1/users/login", nil)
	req.Header.Set("Authorization", basicAuthHeader(email, "secret123"))
	loginResp, err := app.Test(req, -1)
	require.NoError(t, err)
	newToken := dataOf(t, decodeBody(t, loginResp))["token"].(string)

	resp = doJSON(t, app, "GET", "/api/v1/users/me", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = dataOf(t, decodeBody(t, resp))
	assert.Equal(t, newToken, data["token"])
}

// Token kadaluarsa harus ditolak 401 dan barisnya ikut terhapus.
func TestExpiredTokenRejectedAndDeleted(t *testing.T) {
	app := createTestApp()
	token := registerUser(t, app, uniqueEmail("expired"))

	// Mundurkan masa berlaku token langsung di database
	_, err := testDB.Exec(
		"UPDATE tokens SET expires_at = CURRENT_TIMESTAMP - INTERVAL '1 hour' WHERE token = $1",
		token)
	require.NoError(t, err)

	resp := doJSON(t, app, "GET", "/api/v1/users/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Lazy cleanup: baris token kadaluarsa dihapus saat dipakai
	var count int
	require.NoError(t, testDB.QueryRow(
		"SELECT COUNT(*) FROM tokens WHERE token = $1", token).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app := createTestApp()

	resp := doJSON(t, app, "GET", "/api/v1/lists", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/v1/lists", nil, "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
