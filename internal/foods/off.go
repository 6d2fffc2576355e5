// Package foods proxies Open Food Facts product lookups through a DB-backed
// cache with a staleness window.
package foods

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/SamratSK/better-bites/internal/model"
)

// ErrProductNotFound is returned when Open Food Facts has no product for the
// barcode.
var ErrProductNotFound = fmt.Errorf("product not found: %w", model.ErrNotFound)

// OFFClient fetches products from the Open Food Facts API.
type OFFClient struct {
	http   *resty.Client
	logger zerolog.Logger
}

type offProduct struct {
	ProductName string             `json:"product_name"`
	Brands      string             `json:"brands"`
	ServingSize string             `json:"serving_size"`
	Nutriments  map[string]float64 `json:"nutriments"`
}

type offResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

// NewOFFClient builds a client for the given base URL
// (e.g. https://world.openfoodfacts.org).
func NewOFFClient(baseURL string, logger zerolog.Logger) *OFFClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(10 * time.Second).
		SetHeader("User-Agent", "better-bites/1.0")
	return &OFFClient{http: c, logger: logger}
}

// Fetch retrieves one product, retrying transient failures with exponential
// backoff. A 404 or status=0 payload maps to ErrProductNotFound and is not
// retried.
func (c *OFFClient) Fetch(ctx context.Context, barcode string) (*model.FoodProduct, error) {
	if barcode == "" {
		return nil, fmt.Errorf("%w: barcode is required", model.ErrValidation)
	}

	var out *model.FoodProduct
	op := func() error {
		var body offResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetResult(&body).
			Get("/api/v2/product/" + barcode + ".json")
		if err != nil {
			return err
		}
		if resp.StatusCode() == 404 {
			return backoff.Permanent(ErrProductNotFound)
		}
		if resp.IsError() {
			return fmt.Errorf("open food facts returned %d", resp.StatusCode())
		}
		if body.Status == 0 || body.Product.ProductName == "" {
			return backoff.Permanent(ErrProductNotFound)
		}
		out = mapProduct(barcode, &body.Product)
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		c.logger.Debug().Err(err).Str("barcode", barcode).Msg("open food facts fetch failed")
		return nil, err
	}
	return out, nil
}

// macroKeys are the nutriment fields surfaced as macros; everything else
// ending in _100g goes into micros.
var macroKeys = map[string]string{
	"proteins_100g":      "protein",
	"carbohydrates_100g": "carbs",
	"fat_100g":           "fat",
	"fiber_100g":         "fiber",
	"sugars_100g":        "sugar",
}

func mapProduct(barcode string, p *offProduct) *model.FoodProduct {
	out := &model.FoodProduct{
		Barcode:      barcode,
		Name:         p.ProductName,
		Source:       "open_food_facts",
		Macros:       map[string]float64{},
		Micros:       map[string]float64{},
		LastSyncedAt: time.Now().UTC(),
	}
	if p.Brands != "" {
		b := p.Brands
		out.Brand = &b
	}
	if p.ServingSize != "" {
		s := p.ServingSize
		out.ServingSize = &s
	}
	if kcal, ok := p.Nutriments["energy-kcal_100g"]; ok {
		out.Calories = &kcal
	}
	for key, v := range p.Nutriments {
		if name, ok := macroKeys[key]; ok {
			out.Macros[name] = v
			continue
		}
		if strings.HasSuffix(key, "_100g") && key != "energy-kcal_100g" {
			out.Micros[strings.TrimSuffix(key, "_100g")] = v
		}
	}
	return out
}
