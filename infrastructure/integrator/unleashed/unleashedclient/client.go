package unleashedclient

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	unleasheddomain "github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed/domain"
	"github.com/arizon-automation/sales-dashboard/internal/config"
)

type Client interface {
	GetSalesOrders(ctx context.Context, start, end time.Time) ([]unleasheddomain.Order, error)
	GetCreditNotes(ctx context.Context, start, end time.Time) ([]unleasheddomain.CreditNote, error)
	GetProducts(ctx context.Context) ([]unleasheddomain.Product, error)
	GetSalesPersons(ctx context.Context) ([]unleasheddomain.SalesPerson, error)
}

type UnleashedClient struct {
	httpClient *http.Client
	config     config.Unleashed
}

func NewClient(cfg config.Unleashed) Client {
	return &UnleashedClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// sign produces the api-auth-signature header value: the url-encoded
// query string, without the leading '?', authenticated with the
// account's API key.
func (c *UnleashedClient) sign(query string) string {
	mac := hmac.New(sha256.New, []byte(c.config.APIKey))
	mac.Write([]byte(query))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// get executes one authenticated request and decodes the JSON body into
// out. The signed query string is exactly the one sent on the wire.
func (c *UnleashedClient) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	query := params.Encode()

	endpointURL, err := url.Parse(c.config.URL)
	if err != nil {
		return fmt.Errorf("parsing base URL: %w", err)
	}
	endpointURL.Path = path.Join(endpointURL.Path, endpoint)
	endpointURL.RawQuery = query

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-auth-id", c.config.APIID)
	req.Header.Set("api-auth-signature", c.sign(query))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("request to %s failed with status: %s", endpoint, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}

	return nil
}
