package unleashedclient

import (
	"context"
	"net/url"
	"strconv"

	unleasheddomain "github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed/domain"
)

type salesPersonsResponse struct {
	Pagination *unleasheddomain.Pagination   `json:"Pagination"`
	Items      []unleasheddomain.SalesPerson `json:"Items"`
}

// GetSalesPersons fetches the salesperson reference list.
func (c *UnleashedClient) GetSalesPersons(ctx context.Context) ([]unleasheddomain.SalesPerson, error) {
	var salesPersons []unleasheddomain.SalesPerson

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("page", strconv.Itoa(page))

		var response salesPersonsResponse
		if err := c.get(ctx, "/SalesPersons", params, &response); err != nil {
			return nil, err
		}

		if len(response.Items) == 0 {
			break
		}
		salesPersons = append(salesPersons, response.Items...)

		if page >= response.Pagination.TotalPages() {
			break
		}
	}

	return salesPersons, nil
}
