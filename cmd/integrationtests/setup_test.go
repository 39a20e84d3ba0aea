package integrationtests

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	accounts "tradehub/internal/accountService"
	bidding "tradehub/internal/biddingService"
	catalog "tradehub/internal/catalogService"
	community "tradehub/internal/communityService"
	"tradehub/internal/repository"
	"tradehub/internal/server"
	"tradehub/internal/token"
)

const testBaseURL = "http://localhost:8080"

// recordingMailer captures outgoing mail so tests can pull verification
// links out of message bodies.
type recordingMailer struct {
	bodies []string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.bodies = append(m.bodies, body)
	return nil
}

// LastVerificationToken extracts the token from the most recent mail body.
func (m *recordingMailer) LastVerificationToken(t *testing.T) string {
	t.Helper()
	if len(m.bodies) == 0 {
		t.Fatal("no mail recorded")
	}
	body := m.bodies[len(m.bodies)-1]
	idx := strings.LastIndex(body, "/verify_email/")
	if idx < 0 {
		t.Fatalf("no verification link in mail body: %q", body)
	}
	return strings.TrimSpace(body[idx+len("/verify_email/"):])
}

// TestEnv bundles the router with the collaborators tests need to reach into.
type TestEnv struct {
	Router   *gin.Engine
	Repo     *repository.MemoryRepo
	Sessions *accounts.SessionManager
	Mailer   *recordingMailer
}

// nullImageStore satisfies the image store contract without touching disk
type nullImageStore struct{}

func (nullImageStore) Save(filename string, content io.Reader) (string, error) {
	return "stored-" + filename, nil
}

// SetupTestEnv wires the full stack over in-memory storage.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	mailer := &recordingMailer{}
	tokens := token.NewService("integration-token-secret")
	sessions := accounts.NewSessionManager("integration-session-secret", time.Hour)

	accountSvc := accounts.NewAccountService(repo, tokens, mailer, sessions, testBaseURL, time.Hour)
	catalogSvc := catalog.NewCatalogService(repo, nullImageStore{})
	biddingSvc := bidding.NewBiddingService(repo)
	communitySvc := community.NewCommunityService(repo)

	router := server.SetupRouter(accountSvc, catalogSvc, biddingSvc, communitySvc, sessions)

	return &TestEnv{
		Router:   router,
		Repo:     repo,
		Sessions: sessions,
		Mailer:   mailer,
	}
}

// DoJSON executes a JSON request, optionally authenticated, and parses the
// response envelope.
func (env *TestEnv) DoJSON(t *testing.T, method, url, sessionToken string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+sessionToken)
	}
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// DoMultipart posts a multipart listing form.
func (env *TestEnv) DoMultipart(t *testing.T, url, sessionToken string, fields map[string]string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", url, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+sessionToken)
	}
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Data unwraps the envelope's data object.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
