package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authapp "prreview-service/internal/application/auth"
	notificationapp "prreview-service/internal/application/notification"
	prapp "prreview-service/internal/application/pr"
	projectapp "prreview-service/internal/application/project"
	"prreview-service/internal/infrastructure/config"
	apihttp "prreview-service/internal/infrastructure/http"
	"prreview-service/internal/infrastructure/logger"
	"prreview-service/internal/infrastructure/passwordhasher"
	"prreview-service/internal/infrastructure/persistence/postgres/uow"
	"prreview-service/internal/infrastructure/tokenmanager"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.New("test")
	u := uow.NewPostgresUOW(pgC.Pool, log)
	tokens := tokenmanager.NewJWTManager("integration-secret", time.Hour)
	hasher := passwordhasher.NewBcryptHasher(4)

	authSvc := authapp.NewService(u, tokens, hasher, log)
	projectSvc := projectapp.NewService(u, log)
	prSvc := prapp.NewService(u, log)
	notificationSvc := notificationapp.NewService(u, log)

	r := apihttp.NewRouter(log, authSvc, projectSvc, prSvc, notificationSvc, pgC.Pool.Ping)
	r.Setup(&config.Config{HTTPServer: config.HTTPServer{RequestTimeout: 5 * time.Second}})

	server := httptest.NewServer(r.GetRouter())
	t.Cleanup(server.Close)
	return server
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, method, url, token string, body any) (int, apiResponse) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, parsed
}

func registerUser(t *testing.T, baseURL, name, email, role string) (userID, token string) {
	t.Helper()
	status, resp := doJSON(t, http.MethodPost, baseURL+"/auth/register", "", map[string]any{
		"name": name, "email": email, "password": "secret1", "role": role,
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s: want 201 got %d (%+v)", email, status, resp.Error)
	}
	var data struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode register data: %v", err)
	}
	return data.User.ID, data.Token
}

func seedProjects(t *testing.T, baseURL string) string {
	t.Helper()
	status, _ := doJSON(t, http.MethodPost, baseURL+"/projects/seed", "", nil)
	if status != http.StatusOK {
		t.Fatalf("seed: want 200 got %d", status)
	}
	status, resp := doJSON(t, http.MethodGet, baseURL+"/projects", "", nil)
	if status != http.StatusOK {
		t.Fatalf("list projects: want 200 got %d", status)
	}
	var data struct {
		Projects []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"projects"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode projects: %v", err)
	}
	if len(data.Projects) != 3 {
		t.Fatalf("want 3 seeded projects, got %d", len(data.Projects))
	}
	return data.Projects[0].ID
}

type prData struct {
	PullRequest struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Author *struct {
			Name string `json:"name"`
		} `json:"author"`
		Reviewer *struct {
			Name string `json:"name"`
		} `json:"reviewer"`
	} `json:"pullRequest"`
}

func TestReviewWorkflow_HTTP(t *testing.T) {
	if pgC == nil {
		t.Fatal("postgres not init")
	}
	if err := TruncateAll(testCtx, pgC.Pool); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	server := newTestServer(t)
	baseURL := server.URL

	_, aliceToken := registerUser(t, baseURL, "Alice", "alice@example.com", "developer")
	bobID, bobToken := registerUser(t, baseURL, "Bob", "bob@example.com", "reviewer")
	projectID := seedProjects(t, baseURL)

	var prID string

	t.Run("developer opens a pull request", func(t *testing.T) {
		status, resp := doJSON(t, http.MethodPost, baseURL+"/pull-requests", aliceToken, map[string]any{
			"title":       "Add product search",
			"description": "Implements fuzzy search over the catalog",
			"branch":      "feature/search",
			"projectId":   projectID,
			"reviewerId":  bobID,
		})
		if status != http.StatusCreated {
			t.Fatalf("create pr: want 201 got %d (%+v)", status, resp.Error)
		}
		var data prData
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode pr: %v", err)
		}
		if data.PullRequest.Status != "pending" {
			t.Fatalf("want pending, got %s", data.PullRequest.Status)
		}
		if data.PullRequest.Author == nil || data.PullRequest.Author.Name != "Alice" {
			t.Fatalf("author not resolved: %+v", data.PullRequest.Author)
		}
		prID = data.PullRequest.ID
	})

	t.Run("reviewer sees the assignment notification", func(t *testing.T) {
		status, resp := doJSON(t, http.MethodGet, baseURL+"/notifications/unread-count", bobToken, nil)
		if status != http.StatusOK {
			t.Fatalf("unread-count: want 200 got %d", status)
		}
		var data struct {
			UnreadCount int `json:"unreadCount"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode count: %v", err)
		}
		if data.UnreadCount != 1 {
			t.Fatalf("want 1 unread for reviewer, got %d", data.UnreadCount)
		}
	})

	t.Run("reviewer cannot create pull requests", func(t *testing.T) {
		status, _ := doJSON(t, http.MethodPost, baseURL+"/pull-requests", bobToken, map[string]any{
			"title":       "x",
			"description": "y",
			"branch":      "z",
			"projectId":   projectID,
			"reviewerId":  bobID,
		})
		if status != http.StatusForbidden {
			t.Fatalf("want 403 got %d", status)
		}
	})

	t.Run("author cannot approve", func(t *testing.T) {
		status, _ := doJSON(t, http.MethodPut, baseURL+"/pull-requests/"+prID+"/approve", aliceToken, nil)
		if status != http.StatusForbidden {
			t.Fatalf("want 403 got %d", status)
		}
	})

	t.Run("assigned reviewer approves", func(t *testing.T) {
		status, resp := doJSON(t, http.MethodPut, baseURL+"/pull-requests/"+prID+"/approve", bobToken, nil)
		if status != http.StatusOK {
			t.Fatalf("approve: want 200 got %d (%+v)", status, resp.Error)
		}
		var data prData
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode pr: %v", err)
		}
		if data.PullRequest.Status != "approved" {
			t.Fatalf("want approved, got %s", data.PullRequest.Status)
		}
	})

	t.Run("second decision gets conflict", func(t *testing.T) {
		status, resp := doJSON(t, http.MethodPut, baseURL+"/pull-requests/"+prID+"/reject", bobToken, nil)
		if status != http.StatusConflict {
			t.Fatalf("want 409 got %d", status)
		}
		if resp.Error == nil || resp.Error.Code != "PR_RESOLVED" {
			t.Fatalf("want PR_RESOLVED error, got %+v", resp.Error)
		}
	})

	t.Run("author sees the approval notification", func(t *testing.T) {
		status, resp := doJSON(t, http.MethodGet, baseURL+"/notifications", aliceToken, nil)
		if status != http.StatusOK {
			t.Fatalf("notifications: want 200 got %d", status)
		}
		var data struct {
			Notifications []struct {
				Type             string `json:"type"`
				PullRequestID    string `json:"pullRequestId"`
				PullRequestTitle string `json:"pullRequestTitle"`
				Read             bool   `json:"read"`
			} `json:"notifications"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode notifications: %v", err)
		}
		if len(data.Notifications) != 1 {
			t.Fatalf("want 1 notification for author, got %d", len(data.Notifications))
		}
		n := data.Notifications[0]
		if n.Type != "approved" || n.PullRequestID != prID || n.Read {
			t.Fatalf("unexpected notification: %+v", n)
		}
		if n.PullRequestTitle != "Add product search" {
			t.Fatalf("pull request title not resolved: %q", n.PullRequestTitle)
		}
	})

	t.Run("author marks all read", func(t *testing.T) {
		status, resp := doJSON(t, http.MethodPut, baseURL+"/notifications/read-all", aliceToken, nil)
		if status != http.StatusOK {
			t.Fatalf("read-all: want 200 got %d", status)
		}
		var data struct {
			Updated int64 `json:"updated"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode read-all: %v", err)
		}
		if data.Updated != 1 {
			t.Fatalf("want 1 updated, got %d", data.Updated)
		}

		status, resp = doJSON(t, http.MethodGet, baseURL+"/notifications/unread-count", aliceToken, nil)
		if status != http.StatusOK {
			t.Fatalf("unread-count: want 200 got %d", status)
		}
		var count struct {
			UnreadCount int `json:"unreadCount"`
		}
		if err := json.Unmarshal(resp.Data, &count); err != nil {
			t.Fatalf("decode count: %v", err)
		}
		if count.UnreadCount != 0 {
			t.Fatalf("want 0 unread after read-all, got %d", count.UnreadCount)
		}
	})
}

func TestReviewWorkflow_StartReview(t *testing.T) {
	if pgC == nil {
		t.Fatal("postgres not init")
	}
	if err := TruncateAll(testCtx, pgC.Pool); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	server := newTestServer(t)
	baseURL := server.URL

	_, aliceToken := registerUser(t, baseURL, "Alice", "alice@example.com", "developer")
	bobID, bobToken := registerUser(t, baseURL, "Bob", "bob@example.com", "reviewer")
	projectID := seedProjects(t, baseURL)

	status, resp := doJSON(t, http.MethodPost, baseURL+"/pull-requests", aliceToken, map[string]any{
		"title":       "Fix cart totals",
		"description": "Rounds totals at the line level",
		"branch":      "fix/totals",
		"projectId":   projectID,
		"reviewerId":  bobID,
	})
	if status != http.StatusCreated {
		t.Fatalf("create pr: want 201 got %d", status)
	}
	var created prData
	if err := json.Unmarshal(resp.Data, &created); err != nil {
		t.Fatalf("decode pr: %v", err)
	}
	prID := created.PullRequest.ID

	status, resp = doJSON(t, http.MethodPut, baseURL+"/pull-requests/"+prID+"/start-review", bobToken, nil)
	if status != http.StatusOK {
		t.Fatalf("start-review: want 200 got %d (%+v)", status, resp.Error)
	}
	var moved prData
	if err := json.Unmarshal(resp.Data, &moved); err != nil {
		t.Fatalf("decode pr: %v", err)
	}
	if moved.PullRequest.Status != "in_review" {
		t.Fatalf("want in_review, got %s", moved.PullRequest.Status)
	}

	// in_review still resolves normally.
	status, resp = doJSON(t, http.MethodPut, baseURL+"/pull-requests/"+prID+"/reject", bobToken, nil)
	if status != http.StatusOK {
		t.Fatalf("reject: want 200 got %d (%+v)", status, resp.Error)
	}
	var rejected prData
	if err := json.Unmarshal(resp.Data, &rejected); err != nil {
		t.Fatalf("decode pr: %v", err)
	}
	if rejected.PullRequest.Status != "rejected" {
		t.Fatalf("want rejected, got %s", rejected.PullRequest.Status)
	}
}

func TestAuth_HTTP(t *testing.T) {
	if pgC == nil {
		t.Fatal("postgres not init")
	}
	if err := TruncateAll(testCtx, pgC.Pool); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	server := newTestServer(t)
	baseURL := server.URL

	registerUser(t, baseURL, "Alice", "alice@example.com", "developer")

	t.Run("duplicate email rejected", func(t *testing.T) {
		status, resp := doJSON(t, http.MethodPost, baseURL+"/auth/register", "", map[string]any{
			"name": "Other Alice", "email": "Alice@Example.com", "password": "secret1",
		})
		if status != http.StatusBadRequest {
			t.Fatalf("want 400 got %d", status)
		}
		if resp.Error == nil || resp.Error.Code != "EMAIL_EXISTS" {
			t.Fatalf("want EMAIL_EXISTS, got %+v", resp.Error)
		}
	})

	t.Run("login round trip", func(t *testing.T) {
		status, resp := doJSON(t, http.MethodPost, baseURL+"/auth/login", "", map[string]any{
			"email": "alice@example.com", "password": "secret1",
		})
		if status != http.StatusOK {
			t.Fatalf("login: want 200 got %d", status)
		}
		var data struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode login: %v", err)
		}

		status, resp = doJSON(t, http.MethodGet, baseURL+"/auth/me", data.Token, nil)
		if status != http.StatusOK {
			t.Fatalf("me: want 200 got %d", status)
		}
		var me struct {
			User struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		}
		if err := json.Unmarshal(resp.Data, &me); err != nil {
			t.Fatalf("decode me: %v", err)
		}
		if me.User.Email != "alice@example.com" || me.User.Role != "developer" {
			t.Fatalf("unexpected profile: %+v", me.User)
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		status, resp := doJSON(t, http.MethodPost, baseURL+"/auth/login", "", map[string]any{
			"email": "alice@example.com", "password": "wrong-pass",
		})
		if status != http.StatusUnauthorized {
			t.Fatalf("want 401 got %d", status)
		}
		if resp.Error == nil || resp.Error.Code != "INVALID_CREDENTIALS" {
			t.Fatalf("want INVALID_CREDENTIALS, got %+v", resp.Error)
		}
	})

	t.Run("protected route without token", func(t *testing.T) {
		status, _ := doJSON(t, http.MethodGet, baseURL+"/pull-requests", "", nil)
		if status != http.StatusUnauthorized {
			t.Fatalf("want 401 got %d", status)
		}
	})

	t.Run("health is up", func(t *testing.T) {
		status, resp := doJSON(t, http.MethodGet, baseURL+"/health", "", nil)
		if status != http.StatusOK {
			t.Fatalf("health: want 200 got %d", status)
		}
		if !resp.Success {
			t.Fatalf("health not successful: %+v", resp)
		}
	})
}
