package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/location-moderation/internal/config"
	"github.com/location-moderation/internal/domain/repository"
	"github.com/location-moderation/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	repo       string
	filePath   string
	logger     *zap.Logger
}

// NewGitHubClient создает новый клиент для GitHub contents API
func NewGitHubClient(cfg *config.GitHubConfig, logger *zap.Logger) repository.DocumentRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:  cfg.BaseURL,
		token:    cfg.Token,
		repo:     cfg.Repo,
		filePath: cfg.FilePath,
		logger:   logger,
	}
}

type contentsResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

type putContentsRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

func (c *client) contentsURL() string {
	return fmt.Sprintf("%s/repos/%s/contents/%s", c.baseURL, c.repo, c.filePath)
}

// GetFile читает документ целиком вместе с его blob SHA
func (c *client) GetFile(ctx context.Context) (*repository.RemoteFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentsURL(), nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.ErrDocumentFetch
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to fetch contents", zap.Error(err))
		return nil, errors.ErrDocumentFetch
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("GitHub contents API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrDocumentFetch
	}

	var contents contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&contents); err != nil {
		c.logger.Error("Failed to decode contents response", zap.Error(err))
		return nil, errors.ErrDocumentFetch
	}

	// contents API переносит base64 построчно
	decoded, err := base64.StdEncoding.DecodeString(stripNewlines(contents.Content))
	if err != nil {
		c.logger.Error("Failed to decode file content", zap.Error(err))
		return nil, errors.ErrDocumentFetch
	}

	return &repository.RemoteFile{
		Content: decoded,
		SHA:     contents.SHA,
	}, nil
}

// PutFile пишет документ целиком; sha из последнего чтения служит
// compare-and-swap precondition'ом
func (c *client) PutFile(ctx context.Context, message string, content []byte, sha string) error {
	payload := putContentsRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		SHA:     sha,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.ErrDocumentWrite
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(), bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return errors.ErrDocumentWrite
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to put contents", zap.Error(err))
		return errors.ErrDocumentWrite
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return nil
	case resp.StatusCode == http.StatusConflict:
		c.logger.Warn("GitHub contents API reported SHA conflict")
		return errors.ErrDocumentConflict
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("GitHub contents API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return errors.ErrDocumentWrite
	}
}

func (c *client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")
}

func stripNewlines(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' && s[i] != '\r' {
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}
