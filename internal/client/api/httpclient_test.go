package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dkravets/internhub/internal/client/models"
	"github.com/dkravets/internhub/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "student-1", "exp": exp.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// handleMethod registers h for path, enforcing the HTTP method, as
// `mux.HandleFunc(method+" "+path, h)` would on Go 1.22+. The local
// toolchain is Go 1.21, whose ServeMux has no method patterns.
func handleMethod(mux *http.ServeMux, method, path string, h http.HandlerFunc) {
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	})
}

func loginHandler(t *testing.T, token string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"` + token + `"}`))
	}
}

func TestHTTPClient_Login_SetsBearerForAuthorizedCalls(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))

	var gotAuth, gotRequestID string
	mux := http.NewServeMux()
	handleMethod(mux, "POST", "/auth/login", loginHandler(t, token))
	handleMethod(mux, "GET", "/resume/my-resumes", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthHeaderName)
		gotRequestID = r.Header.Get(common.RequestIDHeaderName)
		_, _ = w.Write([]byte(`[{"id":"r1","file_name":"cv.pdf","is_active":true}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, 5*time.Second, nil)
	require.NoError(t, c.Login(context.Background(), "a@b.c", "pw"))

	records, err := c.ListResumes(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "r1", records[0].ID)
	require.True(t, records[0].IsActive)
	require.Equal(t, "Bearer "+token, gotAuth)
	require.NotEmpty(t, gotRequestID, "every request must carry a correlation id")
}

func TestHTTPClient_AuthorizedCall_WithoutLogin(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, 5*time.Second, nil)
	_, err := c.ListResumes(context.Background())
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
	require.Zero(t, hits, "must not reach the network without a token")
}

func TestHTTPClient_ExpiredToken_ShortCircuits(t *testing.T) {
	token := signedToken(t, time.Now().Add(-time.Minute))

	hits := 0
	mux := http.NewServeMux()
	handleMethod(mux, "POST", "/auth/login", loginHandler(t, token))
	handleMethod(mux, "PUT", "/resume/r1/activate", func(w http.ResponseWriter, r *http.Request) {
		hits++
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, 5*time.Second, nil)
	require.NoError(t, c.Login(context.Background(), "a@b.c", "pw"))

	err := c.Activate(context.Background(), "r1")
	require.ErrorIs(t, err, common.ErrTokenExpired)
	require.Zero(t, hits, "expired token must not produce a network call")
}

func TestHTTPClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantIs   error
		wantText string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantIs: common.ErrorUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantIs: common.ErrorUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantIs: common.ErrorNotFound},
		{
			name:     "detail passthrough",
			status:   http.StatusUnprocessableEntity,
			body:     `{"detail":"resume is corrupted"}`,
			wantText: "resume is corrupted",
		},
		{
			name:     "raw body fallback",
			status:   http.StatusInternalServerError,
			body:     `boom`,
			wantText: "boom",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token := signedToken(t, time.Now().Add(time.Hour))
			mux := http.NewServeMux()
			handleMethod(mux, "POST", "/auth/login", loginHandler(t, token))
			handleMethod(mux, "DELETE", "/resume/r1", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			srv := httptest.NewServer(mux)
			t.Cleanup(srv.Close)

			c := NewHTTPClient(srv.URL, 5*time.Second, nil)
			require.NoError(t, c.Login(context.Background(), "a@b.c", "pw"))

			err := c.Delete(context.Background(), "r1")
			require.Error(t, err)
			if tc.wantIs != nil {
				require.ErrorIs(t, err, tc.wantIs)
				return
			}
			var rejection *RejectionError
			require.ErrorAs(t, err, &rejection)
			require.Equal(t, tc.status, rejection.Status)
			require.Equal(t, tc.wantText, rejection.Detail)
		})
	}
}

func TestHTTPClient_Parse_SendsMultipartAndDecodes(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	handleMethod(mux, "POST", "/auth/login", loginHandler(t, token))
	handleMethod(mux, "POST", "/filter/parse-resume", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "resume.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"structured_data": {
				"all_skills": ["Python", "SQL"],
				"total_experience_years": 2
			},
			"processing_details": {"file_name": "resume.pdf"}
		}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, 5*time.Second, nil)
	require.NoError(t, c.Login(context.Background(), "a@b.c", "pw"))

	result, err := c.Parse(context.Background(), models.Document{
		Name:     "resume.pdf",
		MimeType: "application/pdf",
		Size:     4,
		Data:     []byte("%PDF"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Python", "SQL"}, result.StructuredData.AllSkills)
	require.InDelta(t, 2.0, result.StructuredData.TotalExperienceYears, 0.001)
	require.Equal(t, "resume.pdf", result.ProcessingDetails.FileName)
}

func TestHTTPClient_Store_DoesNotRequireAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resume/upload", r.URL.Path)
		require.Empty(t, r.Header.Get(common.AuthHeaderName))
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, 5*time.Second, nil)
	err := c.Store(context.Background(), models.Document{Name: "cv.txt", Data: []byte("hi")})
	require.NoError(t, err)
}

func TestHTTPClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, nil)
	err := c.Store(context.Background(), models.Document{Name: "cv.txt"})
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrUnavailable))
}
