package health

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/KimTien0410/shop-checkout/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{

			Name:    "shop-checkout",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "backend",
				Timeout:   5 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {

					u, err := url.Parse(cfg.Backend.BaseURL)
					if err != nil {
						return fmt.Errorf("invalid backend base url: %w", err)
					}

					req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
					if err != nil {
						return fmt.Errorf("failed to build backend probe: %w", err)
					}

					resp, err := http.DefaultClient.Do(req)
					if err != nil {
						return fmt.Errorf("failed to reach backend: %w", err)
					}
					defer resp.Body.Close()

					if resp.StatusCode >= http.StatusInternalServerError {
						return fmt.Errorf("backend responded with status %d", resp.StatusCode)
					}

					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
