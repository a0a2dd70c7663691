package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/thesavant42/pokedex-ng/internal/models"
)

const (
	// DefaultBaseURL is where the Pokédex backend listens by default
	DefaultBaseURL = "http://127.0.0.1:5000"
	// DefaultTimeout bounds a single request
	DefaultTimeout = 30 * time.Second

	userAgent  = "pokedex-ng/1.0"
	maxErrBody = 512
)

// Client reads Pokémon and move records from the Pokédex backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
}

// NewClient creates a client for baseURL. A zero timeout disables the
// request timeout; a nil logger discards log output.
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// NewClientWithLogging creates a client that logs every request to logPath.
// The TUI owns stdout, so the log always goes to a file.
func NewClientWithLogging(baseURL string, timeout time.Duration, logPath string) *Client {
	logger, err := NewFileLogger(logPath, "API")
	if err != nil {
		// Fall back to a client without file logging if we can't open the log file
		return NewClient(baseURL, timeout, nil)
	}
	return NewClient(baseURL, timeout, logger)
}

// NewFileLogger opens (or creates) logPath for appending and returns a logger writing to it
func NewFileLogger(logPath, prefix string) (*log.Logger, error) {
	if dir := filepath.Dir(logPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
	}), nil
}

// BaseURL returns the backend address the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchPokemonList fetches every Pokémon record (GET /pokemon)
func (c *Client) FetchPokemonList(ctx context.Context) ([]models.Pokemon, error) {
	return fetchList[models.Pokemon](ctx, c, "/pokemon")
}

// FetchPokemon fetches a single Pokémon by dex id (GET /pokemon/{id}).
// A 404 or a null body yields ErrNotFound.
func (c *Client) FetchPokemon(ctx context.Context, id models.DexID) (*models.Pokemon, error) {
	return fetchOne[models.Pokemon](ctx, c, "/pokemon", id.String())
}

// FetchPokemonMoves fetches the move records learnable by one Pokémon (GET /pokemon/{id}/moves)
func (c *Client) FetchPokemonMoves(ctx context.Context, id models.DexID) ([]models.Move, error) {
	return fetchList[models.Move](ctx, c, "/pokemon/"+url.PathEscape(id.String())+"/moves")
}

// FetchMoves fetches the full move database (GET /moves)
func (c *Client) FetchMoves(ctx context.Context) ([]models.Move, error) {
	return fetchList[models.Move](ctx, c, "/moves")
}

// fetchList decodes a JSON array; a null body is an empty list and a 404 is ErrNetwork
func fetchList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	found, err := c.getAndDecode(ctx, path, &items)
	if err != nil {
		return nil, err
	}
	if !found || items == nil {
		return []T{}, nil
	}
	return items, nil
}

// fetchOne decodes a single JSON object; 404 and a null body are ErrNotFound
func fetchOne[T any](ctx context.Context, c *Client, resource, id string) (*T, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &RequestError{Endpoint: resource + "/", Err: ErrNotFound}
	}
	path := resource + "/" + url.PathEscape(id)

	var item *T
	found, err := c.getAndDecode(ctx, path, &item)
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound {
		found, err = false, nil
	}
	if err != nil {
		return nil, err
	}
	if !found || item == nil {
		c.logger.Warn("Record not found", "endpoint", path)
		return nil, &RequestError{Endpoint: path, Status: http.StatusNotFound, Err: ErrNotFound}
	}
	return item, nil
}

// getAndDecode performs a GET and decodes the body into out.
// It reports found=false for a JSON null body. Every non-2xx status is ErrNetwork;
// callers decide whether a 404 means a missing record.
func (c *Client) getAndDecode(ctx context.Context, path string, out any) (bool, error) {
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", "url", endpoint, "error", err)
		return false, &RequestError{Endpoint: path, Err: wrap(ErrNetwork, err)}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Info("GET", "endpoint", endpoint)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Request failed", "url", endpoint, "error", err)
		return false, &RequestError{Endpoint: path, Err: wrap(ErrNetwork, err)}
	}
	defer resp.Body.Close()

	c.logger.Debug("Response", "endpoint", endpoint, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		c.logger.Error("Unexpected status", "url", endpoint, "status", resp.StatusCode, "body", strings.TrimSpace(string(body)))
		return false, &RequestError{Endpoint: path, Status: resp.StatusCode, Err: ErrNetwork}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response", "url", endpoint, "error", err)
		return false, &RequestError{Endpoint: path, Status: resp.StatusCode, Err: wrap(ErrNetwork, err)}
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return false, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error("Failed to parse JSON", "url", endpoint, "error", err)
		return false, &RequestError{Endpoint: path, Status: resp.StatusCode, Err: wrap(ErrNetwork, fmt.Errorf("failed to parse JSON: %w", err))}
	}
	return true, nil
}
