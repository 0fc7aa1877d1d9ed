package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppHealthAndHome(t *testing.T) {
	app := NewApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, "healthy", health["status"])
	assert.NotEmpty(t, health["time"])

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var home map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&home))
	resp.Body.Close()
	assert.Equal(t, "Welcome to the Online Book Store API!", home["message"])
}

// A register, login, order, list round trip over the in-memory stores the
// server actually runs with.
func TestNewAppOrderFlow(t *testing.T) {
	app := NewApp(nil)

	post := func(path string, body any) *http.Response {
		jsonBody, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		return resp
	}

	resp := post("/auth/register", map[string]string{
		"username": "alice", "password": "pw1", "email": "a@x.com",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = post("/auth/login", map[string]string{
		"username": "alice", "password": "pw1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = post("/orders", map[string]any{
		"username": "alice",
		"items":    []map[string]any{{"id": 3, "qty": 2}},
		"total":    798,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, float64(1), created["order"].(map[string]any)["id"])

	req := httptest.NewRequest(http.MethodGet, "/orders/alice", nil)
	listResp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
	var orders []map[string]any
	assert.NoError(t, json.NewDecoder(listResp.Body).Decode(&orders))
	listResp.Body.Close()
	assert.Len(t, orders, 1)
	assert.Equal(t, "completed", orders[0]["status"])
}

// Concurrent registrations of the same username: exactly one wins, the rest
// conflict, no matter how the requests interleave.
func TestNewAppConcurrentDuplicateRegistration(t *testing.T) {
	app := NewApp(nil)
	const workers = 8

	var wg sync.WaitGroup
	statuses := make(chan int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			jsonBody, _ := json.Marshal(map[string]string{
				"username": "alice",
				"password": "pw1",
				"email":    "a@x.com",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(jsonBody))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Errorf("register request failed: %v", err)
				return
			}
			resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	var created, conflicts int
	for code := range statuses {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		default:
			t.Errorf("unexpected status %d", code)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)
}

func TestNewAppSeededCatalog(t *testing.T) {
	app := NewApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var books []map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&books))
	resp.Body.Close()
	assert.Len(t, books, 6)
	assert.Equal(t, "HTML Basics", books[0]["title"])
	assert.Equal(t, "Kubernetes Guide", books[5]["title"])
}
