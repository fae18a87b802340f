package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateList(t *testing.T) {
	app := createTestApp()
	token := registerUser(t, app, uniqueEmail("createlist"))

	resp := doJSON(t, app, "POST", "/api/v1/lists", map[string]string{"title": "Home"}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := dataOf(t, decodeBody(t, resp))
	assert.Equal(t, "Home", data["title"])
	assert.NotZero(t, data["id"])
}

func TestCreateListEmptyTitle(t *testing.T) {
	app := createTestApp()
	token := registerUser(t, app, uniqueEmail("emptytitle"))

	resp := doJSON(t, app, "POST", "/api/v1/lists", map[string]string{"title": "   "}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// GET /lists hanya mengembalikan list milik principal sendiri.
func TestGetListsOwnedOnly(t *testing.T) {
	app := createTestApp()
	tokenA := registerUser(t, app, uniqueEmail("owner_a"))
	tokenB := registerUser(t, app, uniqueEmail("owner_b"))

	createList(t, app, tokenA, "Groceries A")
	createList(t, app, tokenB, "Groceries B")

	resp := doJSON(t, app, "GET", "/api/v1/lists", nil, tokenA)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	lists, ok := result["data"].([]interface{})
	require.True(t, ok)
	for _, raw := range lists {
		list := raw.(map[string]interface{})
		assert.NotEqual(t, "Groceries B", list["title"], "list user lain ikut terbawa")
	}
}

// Filter ?title= harus case-insensitive substring.
func TestGetListsTitleFilter(t *testing.T) {
	app := createTestApp()
	token := registerUser(t, app, uniqueEmail("filter"))

	createList(t, app, token, "Weekend Shopping")
	createList(t, app, token, "Work Errands")

	resp := doJSON(t, app, "GET", "/api/v1/lists?title=shop", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	lists, ok := result["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, lists, 1)
	assert.Equal(t, "Weekend Shopping", lists[0].(map[string]interface{})["title"])
}

// Karakter wildcard di ?title= harus dicari sebagai literal,
// bukan diteruskan sebagai pattern LIKE.
func TestGetListsTitleFilterLiteralWildcards(t *testing.T) {
	app := createTestApp()
	token := registerUser(t, app, uniqueEmail("wildcard"))

	createList(t, app, token, "100% done")
	createList(t, app, token, "100 done")
	createList(t, app, token, "a_b")
	createList(t, app, token, "aXb")

	// %25 = '%' ter-encode; tanpa escaping filter ini akan match keduanya
	resp := doJSON(t, app, "GET", "/api/v1/lists?title=100%25", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	lists, ok := decodeBody(t, resp)["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, lists, 1)
	assert.Equal(t, "100% done", lists[0].(map[string]interface{})["title"])

	// '_' di LIKE berarti sembarang satu karakter; harus literal juga
	resp = doJSON(t, app, "GET", "/api/v1/lists?title=a_b", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	lists, ok = decodeBody(t, resp)["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, lists, 1)
	assert.Equal(t, "a_b", lists[0].(map[string]interface{})["title"])
}

// List user lain harus dibalas 404, bukan 403: keberadaannya tidak
// boleh bisa dibedakan dengan list yang tidak ada.
func TestGetListCrossUserNotFound(t *testing.T) {
	app := createTestApp()
	tokenA := registerUser(t, app, uniqueEmail("cross_a"))
	tokenB := registerUser(t, app, uniqueEmail("cross_b"))

	listID := createList(t, app, tokenA, "Private")

	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/v1/lists/%d", listID), nil, tokenB)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Pemiliknya sendiri tetap bisa akses
	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/v1/lists/%d", listID), nil, tokenA)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateList(t *testing.T) {
	app := createTestApp()
	token := registerUser(t, app, uniqueEmail("updatelist"))
	listID := createList(t, app, token, "Old Title")

	resp := doJSON(t, app, "PATCH", fmt.Sprintf("/api/v1/lists/%d", listID),
		map[string]string{"title": "New Title"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := dataOf(t, decodeBody(t, resp))
	assert.Equal(t, "New Title", data["title"])

	// Perubahan harus terbaca juga di GET berikutnya (cache ikut diperbarui)
	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/v1/lists/%d", listID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = dataOf(t, decodeBody(t, resp))
	assert.Equal(t, "New Title", data["title"])
}

func TestUpdateListCrossUserNotFound(t *testing.T) {
	app := createTestApp()
	tokenA := registerUser(t, app, uniqueEmail("updcross_a"))
	tokenB := registerUser(t, app, uniqueEmail("updcross_b"))
	listID := createList(t, app, tokenA, "Mine")

	resp := doJSON(t, app, "PATCH", fmt.Sprintf("/api/v1/lists/%d", listID),
		map[string]string{"title": "Hijacked"}, tokenB)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// Hapus list harus ikut menghapus semua task anaknya.
func TestDeleteListCascades(t *testing.T) {
	app := createTestApp()
	token := registerUser(t, app, uniqueEmail("cascade"))
	listID := createList(t, app, token, "Doomed")
	taskID := createTask(t, app, token, "Doomed task", listID)

	resp := doJSON(t, app, "DELETE", fmt.Sprintf("/api/v1/lists/%d", listID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// List dan task-nya sudah tidak ada
	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/v1/lists/%d/tasks", listID), nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/v1/tasks/%d", taskID), nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Tidak ada baris task yang tersisa untuk list tersebut
	var count int
	require.NoError(t, testDB.QueryRow(
		"SELECT COUNT(*) FROM tasks WHERE list_id = $1", listID).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestGetListTasks(t *testing.T) {
	app := createTestApp()
	token := registerUser(t, app, uniqueEmail("listtasks"))
	listID := createList(t, app, token, "Chores")
	createTask(t, app, token, "Sweep", listID)
	createTask(t, app, token, "Mop", listID)

	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/v1/lists/%d/tasks", listID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	tasks, ok := result["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, tasks, 2)
}
