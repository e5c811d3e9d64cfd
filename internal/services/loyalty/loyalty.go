package loyalty

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MyelinBots/userapi-go/config"
	"github.com/MyelinBots/userapi-go/internal/logger"
)

// LoyaltyClient fetches the point balance for a user from the loyalty service.
type LoyaltyClient interface {
	GetPoints(ctx context.Context, userID string) (int, error)
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// ConfigFromApp maps the application config section onto a client Config.
func ConfigFromApp(cfg config.LoyaltyConfig) Config {
	return Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
	}
}

type pointsResponse struct {
	Point int `json:"point"`
}

type LoyaltyClientImpl struct {
	log  *logger.Logger
	cfg  Config
	http *http.Client
}

func NewLoyaltyClient(log *logger.Logger, cfg Config) LoyaltyClient {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "http://localhost:8081"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 500 * time.Millisecond
	}
	return &LoyaltyClientImpl{
		log:  log.With("client", "LoyaltyClient"),
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *LoyaltyClientImpl) GetPoints(ctx context.Context, userID string) (int, error) {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/loyalty/" + userID

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authentication", c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("loyalty http %d: %s", resp.StatusCode, string(raw))
	}

	var out pointsResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return 0, fmt.Errorf("loyalty decode: %w", err)
	}
	return out.Point, nil
}
