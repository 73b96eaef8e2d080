package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smokeTaskID = "6b7c8d9e-0f1a-4b2c-8d3e-4f5a6b7c8d9e"

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	server := newBackend(t)

	env := []string{
		"RAG_API_BASE_URL=" + server.URL + "/api",
		"RAG_CREDENTIALS_BACKEND=bolt",
		"RAG_POLL_INTERVAL=100ms",
	}

	_, stderr, err := runRAG(t, binaryPath, home, env, "hunter2\n", "login", "-u", "ada")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.FileExists(t, filepath.Join(home, ".rag", "credentials.db"))

	stdout, stderr, err := runRAG(t, binaryPath, home, env, "", "upload", "url", "https://example.com/post", "--wait")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "task: "+smokeTaskID)
	assert.Contains(t, stdout, "completed\t100%\tIndexed 1 chunk")
	assert.Contains(t, stdout, "documents: 1")

	stdout, stderr, err = runRAG(t, binaryPath, home, env, "", "logout")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Signed out")

	stdout, _, err = runRAG(t, binaryPath, home, env, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "session: signed out")
}

func TestSmokeOfflineCommands(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runRAG(t, binaryPath, home, nil, "", "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, strings.TrimSpace(stdout))

	stdout, stderr, err = runRAG(t, binaryPath, home, nil, "**hi** $x \\to y$", "render", "--tree")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "paragraph\n  strong\n    text \"hi\"\n  text \" \"\n  math \"x -> y\"\n", stdout)

	_, _, err = runRAG(t, binaryPath, home, nil, "", "tasks", "watch", "not-a-task")
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	var polls atomic.Int32
	reply := func(w http.ResponseWriter, status int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/sign-in/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]any{"tokens": map[string]string{"access": "a", "refresh": "r"}})
	})
	mux.HandleFunc("POST /api/logout/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /api/upload-url/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusAccepted, map[string]string{"task_id": smokeTaskID})
	})
	mux.HandleFunc("GET /api/tasks/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) == 1 {
			reply(w, http.StatusOK, map[string]any{"status": "processing", "progress": 50})
			return
		}
		reply(w, http.StatusOK, map[string]any{
			"status": "completed", "progress": 100,
			"result": map[string]any{"message": "Indexed 1 chunk"},
		})
	})
	mux.HandleFunc("GET /api/documents/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]any{"count": 1, "documents": []map[string]any{{"name": "post.html", "size_bytes": 900}}})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "rag-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rag")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build rag binary: %s", string(output))
	return binaryPath
}

func runRAG(t *testing.T, binaryPath, home string, env []string, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(append(os.Environ(), "HOME="+home), env...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
