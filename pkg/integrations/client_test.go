package integrations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/matzehuels/cratescout/pkg/errors"
	"github.com/matzehuels/cratescout/pkg/observability"
)

func TestNewClient(t *testing.T) {
	headers := map[string]string{"Authorization": "Bearer token"}
	client := NewClient(headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.http.Timeout != 0 {
		t.Errorf("NewClient() timeout = %v, want none", client.http.Timeout)
	}
	if client.headers["Authorization"] != "Bearer token" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewClientNilHeaders(t *testing.T) {
	client := NewClient(nil)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.headers != nil {
		t.Error("NewClient() should allow nil headers")
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(nil).WithHTTPClient(server.Client())

	var resp response
	err := client.Get(context.Background(), server.URL, &resp)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientGetWithHeadersOverridesDefaults(t *testing.T) {
	var gotDefault, gotOverride string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDefault = r.Header.Get("X-Default")
		gotOverride = r.Header.Get("X-Override")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(map[string]string{
		"X-Default":  "default",
		"X-Override": "default",
	}).WithHTTPClient(server.Client())

	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"X-Override": "overridden"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if gotDefault != "default" {
		t.Errorf("default header = %q, want %q", gotDefault, "default")
	}
	if gotOverride != "overridden" {
		t.Errorf("override header = %q, want %q", gotOverride, "overridden")
	}
}

func TestClientGetDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(nil).WithHTTPClient(server.Client())

	var resp map[string]any
	err := client.Get(context.Background(), server.URL, &resp)
	if !errors.Is(err, errors.ErrCodeDecode) {
		t.Errorf("Get() error = %v, want %s", err, errors.ErrCodeDecode)
	}
}

func TestClientGetNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(nil)

	var resp map[string]any
	err := client.Get(context.Background(), url, &resp)
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("Get() error = %v, want %s", err, errors.ErrCodeNetwork)
	}
}

func TestClientGetStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		headers  map[string]string
		body     string
		wantCode errors.Code
	}{
		{
			name:     "401 Unauthorized",
			status:   401,
			body:     `{"message":"Bad credentials"}`,
			wantCode: errors.ErrCodeUnauthorized,
		},
		{
			name:     "403 Forbidden",
			status:   403,
			wantCode: errors.ErrCodeForbidden,
		},
		{
			name:     "403 rate limit exhausted",
			status:   403,
			headers:  map[string]string{"X-RateLimit-Remaining": "0"},
			body:     `{"message":"API rate limit exceeded"}`,
			wantCode: errors.ErrCodeRateLimited,
		},
		{
			name:     "404 Not Found",
			status:   404,
			wantCode: errors.ErrCodeNotFound,
		},
		{
			name:     "422 Unprocessable",
			status:   422,
			body:     `{"message":"Validation Failed"}`,
			wantCode: errors.ErrCodeRemoteStatus,
		},
		{
			name:     "429 Too Many Requests",
			status:   429,
			headers:  map[string]string{"Retry-After": "30"},
			wantCode: errors.ErrCodeRateLimited,
		},
		{
			name:     "500 Internal Server Error",
			status:   500,
			wantCode: errors.ErrCodeRemoteStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(nil).WithHTTPClient(server.Client())

			var resp map[string]any
			err := client.Get(context.Background(), server.URL, &resp)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Get() error = %v, want code %s", err, tt.wantCode)
			}
			if got := errors.StatusCode(err); got != tt.status {
				t.Errorf("StatusCode() = %d, want %d", got, tt.status)
			}
			if calls != 1 {
				t.Errorf("server called %d times, want exactly 1", calls)
			}
		})
	}
}

func TestClientGetStatusMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Bad credentials","documentation_url":"https://docs.github.com"}`))
	}))
	defer server.Close()

	client := NewClient(nil).WithHTTPClient(server.Client())

	var resp map[string]any
	err := client.Get(context.Background(), server.URL, &resp)
	if err == nil {
		t.Fatal("Get() should return error for 401")
	}
	want := "UNAUTHORIZED: credentials rejected: status 401: Bad credentials"
	if err.Error() != want {
		t.Errorf("Get() error = %q, want %q", err.Error(), want)
	}
}

func TestRetryAfter(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name    string
		headers map[string]string
		want    time.Duration
	}{
		{"none", nil, 0},
		{"retry-after seconds", map[string]string{"Retry-After": "42"}, 42 * time.Second},
		{"retry-after garbage", map[string]string{"Retry-After": "soon"}, 0},
		{"reset epoch", map[string]string{"X-RateLimit-Reset": strconv.FormatInt(now.Unix()+90, 10)}, 90 * time.Second},
		{"reset in past", map[string]string{"X-RateLimit-Reset": strconv.FormatInt(now.Unix()-10, 10)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{Header: http.Header{}}
			for k, v := range tt.headers {
				resp.Header.Set(k, v)
			}
			if got := retryAfter(resp, now); got != tt.want {
				t.Errorf("retryAfter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"https url", "https://github.com/user/repo", "https://github.com/user/repo"},
		{"with .git suffix", "https://github.com/user/repo.git", "https://github.com/user/repo"},
		{"git@ to https", "git@github.com:user/repo", "https://github.com/user/repo"},
		{"git:// to https", "git://github.com/user/repo", "https://github.com/user/repo"},
		{"git+ prefix", "git+https://github.com/user/repo", "https://github.com/user/repo"},
		{"with spaces", "  https://github.com/user/repo  ", "https://github.com/user/repo"},
		{"combined", "git+git@github.com:user/repo.git", "https://github.com/user/repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRepoURL(tt.input); got != tt.want {
				t.Errorf("NormalizeRepoURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

type countingHooks struct {
	observability.NoopHTTPHooks
	requests int
	statuses []int
	errs     int
}

func (h *countingHooks) OnRequest(context.Context, string, string, string) { h.requests++ }
func (h *countingHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.statuses = append(h.statuses, status)
}
func (h *countingHooks) OnError(context.Context, string, string, string, error) { h.errs++ }

func TestClientEmitsHTTPHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var v map[string]any
	if err := NewClient(nil).Get(context.Background(), server.URL+"/search/code", &v); err == nil {
		t.Fatal("Get() should fail on 404")
	}
	if hooks.requests != 1 || len(hooks.statuses) != 1 || hooks.statuses[0] != http.StatusNotFound {
		t.Errorf("hooks = %+v, want one request with status 404", hooks)
	}

	server.Close()
	_ = NewClient(nil).Get(context.Background(), server.URL, &v)
	if hooks.errs != 1 {
		t.Errorf("OnError calls = %d, want 1", hooks.errs)
	}
}
