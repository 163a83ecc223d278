package unleashedclient

import (
	"context"
	"net/url"
	"strconv"

	unleasheddomain "github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed/domain"
)

type productsResponse struct {
	Pagination *unleasheddomain.Pagination `json:"Pagination"`
	Items      []unleasheddomain.Product   `json:"Items"`
}

// GetProducts fetches the full product catalog.
func (c *UnleashedClient) GetProducts(ctx context.Context) ([]unleasheddomain.Product, error) {
	var products []unleasheddomain.Product

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("page", strconv.Itoa(page))

		var response productsResponse
		if err := c.get(ctx, "/Products", params, &response); err != nil {
			return nil, err
		}

		if len(response.Items) == 0 {
			break
		}
		products = append(products, response.Items...)

		if page >= response.Pagination.TotalPages() {
			break
		}
	}

	return products, nil
}
