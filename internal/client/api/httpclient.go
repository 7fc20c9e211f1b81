package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dkravets/internhub/internal/client/models"
	"github.com/dkravets/internhub/internal/common"
	"github.com/dkravets/internhub/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// HTTPClient implements Client against the REST contract of the InternHub
// service. The bearer token is held in memory only.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.NewNop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", bytes.NewReader(body), false)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp loginResponse
	if err := c.do(req, &resp); err != nil {
		return err
	}

	exp, err := tokenExpiry(resp.AccessToken)
	if err != nil {
		return fmt.Errorf("inspecting access token: %w", err)
	}

	c.mu.Lock()
	c.token = resp.AccessToken
	c.tokenExp = exp
	c.mu.Unlock()
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature. The
// client only needs the deadline to avoid sending doomed requests; the
// server remains the authority on token validity.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, nil // no exp claim: treat as non-expiring
	}
	return exp.Time, nil
}

func (c *HTTPClient) bearer() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == "" {
		return "", common.ErrNotLoggedIn
	}
	if !c.tokenExp.IsZero() && time.Now().After(c.tokenExp) {
		return "", common.ErrTokenExpired
	}
	return c.token, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader, authorized bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if authorized {
		token, err := c.bearer()
		if err != nil {
			return nil, err
		}
		req.Header.Set(common.AuthHeaderName, "Bearer "+token)
	}
	return req, nil
}

// do executes the request and decodes a 2xx JSON body into out (if out is
// non-nil). Non-2xx statuses are mapped to sentinel errors where possible,
// otherwise to a RejectionError carrying the server's detail message.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(req.Context(), "api call",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", req.Header.Get(common.RequestIDHeaderName),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) mapStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Detail == "" {
		payload.Detail = strings.TrimSpace(string(raw))
	}
	return &RejectionError{Status: resp.StatusCode, Detail: payload.Detail}
}

// multipartBody writes doc as a "file" form field and returns the body with
// its content type.
func multipartBody(doc models.Document) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", doc.Name)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(doc.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func (c *HTTPClient) Store(ctx context.Context, doc models.Document) error {
	body, contentType, err := multipartBody(doc)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/resume/upload", body, false)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, nil)
}

func (c *HTTPClient) Parse(ctx context.Context, doc models.Document) (*models.ParseResult, error) {
	body, contentType, err := multipartBody(doc)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/filter/parse-resume", body, true)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var result models.ParseResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListResumes(ctx context.Context) ([]models.ResumeRecord, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/resume/my-resumes", nil, true)
	if err != nil {
		return nil, err
	}
	var records []models.ResumeRecord
	if err := c.do(req, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) Activate(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodPut, "/resume/"+id+"/activate", nil, true)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *HTTPClient) ParsedData(ctx context.Context, id string) (*models.ParseResult, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/resume/"+id+"/parsed-data", nil, true)
	if err != nil {
		return nil, err
	}
	var result models.ParseResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/resume/"+id, nil, true)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

type profileUpdate struct {
	Skills               []string `json:"skills"`
	TotalExperienceYears float64  `json:"total_experience_years"`
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, skills []string, totalExperienceYears float64) error {
	body, err := json.Marshal(profileUpdate{Skills: skills, TotalExperienceYears: totalExperienceYears})
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPut, "/students/profile", bytes.NewReader(body), true)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}
