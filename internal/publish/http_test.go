package publish

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}
	return path
}

func TestHTTPDestinationPost(t *testing.T) {
	var (
		gotBody   []byte
		gotAuth   string
		gotMethod string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	path := writeArtifact(t, `{"validationPassed": true}`)
	dest := NewHTTPDestination(server.URL, "secret-token", hclog.NewNullLogger())

	err := dest.Post(path)
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Token secret-token", gotAuth)
	assert.JSONEq(t, `{"validationPassed": true}`, string(gotBody))
}

func TestHTTPDestinationPostWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	path := writeArtifact(t, `{}`)
	dest := NewHTTPDestination(server.URL, "", hclog.NewNullLogger())

	assert.NoError(t, dest.Post(path))
	assert.Empty(t, gotAuth)
}

func TestHTTPDestinationPostErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	path := writeArtifact(t, `{}`)
	dest := NewHTTPDestination(server.URL, "", hclog.NewNullLogger())

	err := dest.Post(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPDestinationPostMissingFile(t *testing.T) {
	dest := NewHTTPDestination("http://localhost:1", "", hclog.NewNullLogger())
	err := dest.Post(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
