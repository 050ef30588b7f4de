// Package bible talks to a bible-api.com compatible passage service.
package bible

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"verse-journal/internal/config"
	"verse-journal/internal/domain"
	"verse-journal/internal/logger"

	"go.uber.org/zap"
)

// maxResponseBytes caps the body read from the upstream service.
const maxResponseBytes = 4 << 20

type apiVerse struct {
	BookName string `json:"book_name"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`
}

type apiPassage struct {
	Reference       string     `json:"reference"`
	Text            string     `json:"text"`
	TranslationID   string     `json:"translation_id"`
	TranslationName string     `json:"translation_name"`
	Verses          []apiVerse `json:"verses"`
	Error           string     `json:"error"`
}

// Client implements domain.PassageSource over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for cfg.BaseURL. A nil httpClient gets one
// with cfg.Timeout.
func NewClient(cfg config.BibleConfig, httpClient *http.Client) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("bible service base URL cannot be empty")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid bible service base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *Client) passageURL(reference, translation string) string {
	u := c.baseURL + "/" + url.PathEscape(strings.TrimSpace(reference))
	if translation != "" {
		u += "?translation=" + url.QueryEscape(translation)
	}
	return u
}

// FetchPassage looks up reference in translation.
func (c *Client) FetchPassage(ctx context.Context, reference, translation string) (*domain.Passage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.passageURL(reference, translation), nil)
	if err != nil {
		return nil, domain.NewBibleServiceError(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewBibleServiceError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domain.NewBibleServiceError(err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.NewBiblePassageNotFoundError(reference)
	case resp.StatusCode != http.StatusOK:
		logger.Get().Warn("Bible service returned an error",
			zap.Int("status", resp.StatusCode),
			zap.String("reference", reference))
		return nil, domain.NewBibleServiceError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload apiPassage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.NewBibleServiceError(fmt.Errorf("failed to decode passage: %w", err))
	}
	if payload.Error != "" || len(payload.Verses) == 0 {
		return nil, domain.NewBiblePassageNotFoundError(reference)
	}

	passage := &domain.Passage{
		Reference:       payload.Reference,
		Text:            strings.TrimSpace(payload.Text),
		TranslationID:   payload.TranslationID,
		TranslationName: payload.TranslationName,
		Verses:          make([]domain.PassageVerse, 0, len(payload.Verses)),
	}
	for _, v := range payload.Verses {
		passage.Verses = append(passage.Verses, domain.PassageVerse{
			BookName: v.BookName,
			Chapter:  v.Chapter,
			Verse:    v.Verse,
			Text:     strings.TrimSpace(v.Text),
		})
	}
	return passage, nil
}
