package updater

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
)

// GitHub source defaults
const (
	DefaultHTTPTimeout  = 60 * time.Second
	DefaultReleasesPage = 30
	UserAgent           = "desktop-app-updater"
)

// GitHubOption configures a GitHubSource
type GitHubOption func(*GitHubSource) error

// WithHTTPClient sets the HTTP client used for API calls and downloads
func WithHTTPClient(client *http.Client) GitHubOption {
	return func(s *GitHubSource) error {
		s.httpClient = client
		return nil
	}
}

// WithBaseURL points the source at another API root (GitHub Enterprise, tests)
func WithBaseURL(base string) GitHubOption {
	return func(s *GitHubSource) error {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", base, err)
		}
		s.baseURL = u
		return nil
	}
}

// WithToken authenticates API calls, raising the rate limit
func WithToken(token string) GitHubOption {
	return func(s *GitHubSource) error {
		s.token = token
		return nil
	}
}

// GitHubSource lists releases of one GitHub repository
type GitHubSource struct {
	owner      string
	repo       string
	token      string
	baseURL    *url.URL
	httpClient *http.Client
	client     *github.Client
}

// NewGitHubSource creates a release source for owner/repo
func NewGitHubSource(owner, repo string, opts ...GitHubOption) (*GitHubSource, error) {
	s := &GitHubSource{
		owner:      strings.TrimSpace(owner),
		repo:       strings.TrimSpace(repo),
		httpClient: &http.Client{Timeout: DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.owner == "" || s.repo == "" {
		return nil, fmt.Errorf("release repository is not configured (owner=%q repo=%q)", s.owner, s.repo)
	}

	s.client = github.NewClient(s.httpClient)
	s.client.UserAgent = UserAgent
	if s.token != "" {
		s.client = s.client.WithAuthToken(s.token)
	}
	if s.baseURL != nil {
		s.client.BaseURL = s.baseURL
	}
	return s, nil
}

// NewGitHubClient creates an update client for releases of owner/repo
func NewGitHubClient(cfg Config, owner, repo string, opts ...GitHubOption) (*Client, error) {
	source, err := NewGitHubSource(owner, repo, opts...)
	if err != nil {
		return nil, err
	}
	return NewClient(cfg, source, nil), nil
}

// Repository returns the owner/repo slug
func (s *GitHubSource) Repository() string {
	return s.owner + "/" + s.repo
}

// ListReleases returns published releases, newest first. Drafts are skipped.
func (s *GitHubSource) ListReleases(ctx context.Context) ([]Release, error) {
	list, _, err := s.client.Repositories.ListReleases(ctx, s.owner, s.repo, &github.ListOptions{PerPage: DefaultReleasesPage})
	if err != nil {
		return nil, fmt.Errorf("list releases for %s: %w", s.Repository(), err)
	}

	releases := make([]Release, 0, len(list))
	for _, rel := range list {
		if rel.GetDraft() {
			continue
		}
		releases = append(releases, convertRelease(rel))
	}
	return releases, nil
}

// DownloadAsset opens the asset content. Redirects to the storage host are followed.
func (s *GitHubSource) DownloadAsset(ctx context.Context, asset Asset) (io.ReadCloser, error) {
	rc, redirectURL, err := s.client.Repositories.DownloadReleaseAsset(ctx, s.owner, s.repo, asset.ID, s.httpClient)
	if err != nil {
		return nil, fmt.Errorf("download asset %s: %w", asset.Name, err)
	}
	if rc != nil {
		return rc, nil
	}
	if redirectURL == "" {
		return nil, fmt.Errorf("download asset %s: empty response", asset.Name)
	}
	return s.get(ctx, redirectURL)
}

func (s *GitHubSource) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("http %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func convertRelease(rel *github.RepositoryRelease) Release {
	r := Release{
		Version:     rel.GetTagName(),
		Name:        rel.GetName(),
		Notes:       rel.GetBody(),
		URL:         rel.GetHTMLURL(),
		PublishedAt: rel.GetPublishedAt().Time,
	}
	for _, a := range rel.Assets {
		r.Assets = append(r.Assets, Asset{
			ID:   a.GetID(),
			Name: a.GetName(),
			Size: int64(a.GetSize()),
			URL:  a.GetBrowserDownloadURL(),
		})
	}
	return r
}
