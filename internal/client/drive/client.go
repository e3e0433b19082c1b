// Package drive implements the remote backup client: one JSON file per
// user in the provider's app-private folder, with find-or-create-or-update
// semantics and cleanup of race-created duplicates.
package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/iudanet/blogkeeper/internal/client/api"
	pkgapi "github.com/iudanet/blogkeeper/pkg/api"
)

const (
	// DefaultBaseURL serves metadata and content reads.
	DefaultBaseURL = "https://www.googleapis.com/drive/v3"
	// DefaultUploadURL serves multipart creates and media updates.
	DefaultUploadURL = "https://www.googleapis.com/upload/drive/v3"

	// appDataSpace is the app-private folder invisible to the user's own
	// file listing.
	appDataSpace = "appDataFolder"

	backupFilePrefix = "blogger_data_"
	backupFileSuffix = ".json"
)

// ErrFileNotFound means no remote file matched the requested name or id.
var ErrFileNotFound = errors.New("remote file not found")

// AuthedDoer executes an authenticated HTTP request. Satisfied by the
// token-refreshing transport; every call through it gets the one-retry 401
// handling.
type AuthedDoer interface {
	Do(ctx context.Context, method, url, contentType string, body []byte) (*http.Response, error)
}

// BackupFileName derives the deterministic per-user backup file name.
func BackupFileName(userID string) string {
	return backupFilePrefix + userID + backupFileSuffix
}

// Client is the remote backup client.
type Client struct {
	doer      AuthedDoer
	baseURL   string
	uploadURL string
	logger    *slog.Logger

	// mu guards the resolved file-id cache, which saves a search round-trip
	// on repeated saves of the same file.
	mu      sync.Mutex
	fileIDs map[string]string
}

// Option adjusts the client, primarily for tests pointing at a fake server.
type Option func(*Client)

// WithBaseURLs overrides both endpoint roots.
func WithBaseURLs(baseURL, uploadURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
		c.uploadURL = strings.TrimSuffix(uploadURL, "/")
	}
}

// New creates the client.
func New(doer AuthedDoer, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		doer:      doer,
		baseURL:   DefaultBaseURL,
		uploadURL: DefaultUploadURL,
		logger:    logger,
		fileIDs:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FindFile searches the app-private folder for an exact name match. When
// concurrent creators left duplicates, the most recently modified file is
// canonical and the rest are deleted best-effort. Returns ErrFileNotFound
// when nothing matches.
func (c *Client) FindFile(ctx context.Context, name string) (*pkgapi.DriveFile, error) {
	query := url.Values{
		"q":      {fmt.Sprintf("name='%s'", name)},
		"spaces": {appDataSpace},
		"fields": {"files(id,name,mimeType,modifiedTime)"},
	}

	body, err := c.do(ctx, http.MethodGet, c.baseURL+"/files?"+query.Encode(), "", nil)
	if err != nil {
		return nil, fmt.Errorf("file search failed: %w", err)
	}

	var list pkgapi.FileListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode file list: %w", err)
	}

	if len(list.Files) == 0 {
		return nil, ErrFileNotFound
	}

	files := list.Files
	sort.SliceStable(files, func(i, j int) bool {
		return modifiedTime(files[i]).After(modifiedTime(files[j]))
	})

	canonical := files[0]
	for _, dup := range files[1:] {
		c.logger.Warn("pruning duplicate remote file",
			"name", name, "id", dup.ID, "modified", dup.ModifiedTime)
		if err := c.DeleteFile(ctx, dup.ID); err != nil {
			c.logger.Warn("failed to delete duplicate remote file", "id", dup.ID, "error", err)
		}
	}

	c.cacheFileID(name, canonical.ID)
	return &canonical, nil
}

// CreateFile uploads a new JSON file into the app-private folder via a
// multipart request carrying metadata and content in one round-trip.
func (c *Client) CreateFile(ctx context.Context, name string, content []byte) (*pkgapi.DriveFile, error) {
	payload, contentType, err := multipartBody(name, content)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost,
		c.uploadURL+"/files?uploadType=multipart", contentType, payload)
	if err != nil {
		return nil, fmt.Errorf("file creation failed: %w", err)
	}

	var file pkgapi.DriveFile
	if err := json.Unmarshal(body, &file); err != nil {
		return nil, fmt.Errorf("failed to decode created file: %w", err)
	}

	c.cacheFileID(name, file.ID)
	c.logger.Info("remote backup file created", "name", name, "id", file.ID)
	return &file, nil
}

// UpdateFile replaces the content of a known file id (media-only PATCH,
// metadata untouched).
func (c *Client) UpdateFile(ctx context.Context, fileID string, content []byte) (*pkgapi.DriveFile, error) {
	body, err := c.do(ctx, http.MethodPatch,
		c.uploadURL+"/files/"+fileID+"?uploadType=media", "application/json", content)
	if err != nil {
		return nil, fmt.Errorf("file update failed: %w", err)
	}

	var file pkgapi.DriveFile
	if err := json.Unmarshal(body, &file); err != nil {
		return nil, fmt.Errorf("failed to decode updated file: %w", err)
	}
	return &file, nil
}

// DownloadFile fetches the raw JSON content of a known file id.
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL+"/files/"+fileID+"?alt=media", "", nil)
	if err != nil {
		if api.IsStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("download: %w", ErrFileNotFound)
		}
		return nil, fmt.Errorf("file download failed: %w", err)
	}
	return body, nil
}

// DeleteFile removes a file by id. Deleting an already-gone file succeeds.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	_, err := c.do(ctx, http.MethodDelete, c.baseURL+"/files/"+fileID, "", nil)
	if err != nil && !api.IsStatus(err, http.StatusNotFound) {
		return fmt.Errorf("file deletion failed: %w", err)
	}
	return nil
}

// SaveOrUpdateJSON serializes v and writes it under name: update when the
// file exists, create otherwise. Permission refusals surface as
// ErrPermissionDenied so the caller can show a specific message.
func (c *Client) SaveOrUpdateJSON(ctx context.Context, name string, v any) (*pkgapi.DriveFile, error) {
	content, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize backup: %w", err)
	}

	// Cached id first: a stale id (file deleted remotely) falls through to
	// a fresh search.
	if id, ok := c.cachedFileID(name); ok {
		file, err := c.UpdateFile(ctx, id, content)
		if err == nil {
			return file, nil
		}
		if !api.IsStatus(err, http.StatusNotFound) {
			return nil, classifyWriteError(err)
		}
		c.uncacheFileID(name)
	}

	existing, err := c.FindFile(ctx, name)
	switch {
	case err == nil:
		file, err := c.UpdateFile(ctx, existing.ID, content)
		if err != nil {
			return nil, classifyWriteError(err)
		}
		return file, nil
	case errors.Is(err, ErrFileNotFound):
		file, err := c.CreateFile(ctx, name, content)
		if err != nil {
			return nil, classifyWriteError(err)
		}
		return file, nil
	default:
		return nil, err
	}
}

// DeleteUserData removes the user's backup file. A missing file is logged
// and treated as success.
func (c *Client) DeleteUserData(ctx context.Context, userID string) error {
	name := BackupFileName(userID)

	file, err := c.FindFile(ctx, name)
	if errors.Is(err, ErrFileNotFound) {
		c.logger.Info("no remote backup to delete", "name", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to locate backup for deletion: %w", err)
	}

	if err := c.DeleteFile(ctx, file.ID); err != nil {
		return err
	}
	c.uncacheFileID(name)
	c.logger.Info("remote backup deleted", "name", name, "id", file.ID)
	return nil
}

// do executes one authenticated call with bounded retries on transient
// failures (network errors and 5xx). Client errors are never retried.
func (c *Client) do(ctx context.Context, method, reqURL, contentType string, body []byte) ([]byte, error) {
	var result []byte

	err := retry.Do(
		func() error {
			resp, err := c.doer.Do(ctx, method, reqURL, contentType, body)
			if err != nil {
				if api.IsNetworkError(err) {
					return err
				}
				return retry.Unrecoverable(err)
			}
			defer resp.Body.Close()

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("failed to read response: %w", err)
			}

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				result = data
				return nil
			}

			apiErr := &api.APIError{Status: resp.StatusCode, Message: driveErrorMessage(data)}
			if resp.StatusCode >= 500 {
				return apiErr
			}
			return retry.Unrecoverable(apiErr)
		},
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.MaxDelay(5*time.Second),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) cacheFileID(name, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fileIDs[name] = id
}

func (c *Client) cachedFileID(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.fileIDs[name]
	return id, ok
}

func (c *Client) uncacheFileID(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.fileIDs, name)
}

// classifyWriteError maps permission refusals onto the sentinel the UI
// keys its message on.
func classifyWriteError(err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusForbidden ||
			strings.Contains(strings.ToLower(apiErr.Message), "permission") {
			return fmt.Errorf("%w: %v", api.ErrPermissionDenied, err)
		}
	}
	return err
}

// driveErrorMessage extracts the human message from the store's error
// envelope, falling back to the raw body.
func driveErrorMessage(body []byte) string {
	var envelope pkgapi.DriveErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

// modifiedTime parses the descriptor's RFC 3339 stamp; unparseable stamps
// sort last.
func modifiedTime(f pkgapi.DriveFile) time.Time {
	t, err := time.Parse(time.RFC3339, f.ModifiedTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// multipartBody assembles the two-part create request: JSON metadata
// placing the file in the app-private folder, then the content itself.
func multipartBody(name string, content []byte) ([]byte, string, error) {
	metadata, err := json.Marshal(map[string]any{
		"name":     name,
		"mimeType": "application/json",
		"parents":  []string{appDataSpace},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize file metadata: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	part, err := w.CreatePart(metaHeader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build metadata part: %w", err)
	}
	if _, err := part.Write(metadata); err != nil {
		return nil, "", fmt.Errorf("failed to write metadata part: %w", err)
	}

	mediaHeader := textproto.MIMEHeader{}
	mediaHeader.Set("Content-Type", "application/json")
	part, err = w.CreatePart(mediaHeader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build media part: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", fmt.Errorf("failed to write media part: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return buf.Bytes(), "multipart/related; boundary=" + w.Boundary(), nil
}
