package unleashedclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	unleasheddomain "github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed/domain"
	"github.com/arizon-automation/sales-dashboard/pkg/utils"
)

type salesOrdersResponse struct {
	Pagination *unleasheddomain.Pagination `json:"Pagination"`
	Items      []unleasheddomain.Order     `json:"Items"`
}

// GetSalesOrders fetches every page of completed sales orders in the
// inclusive date range. A failure on any page aborts the whole fetch.
func (c *UnleashedClient) GetSalesOrders(ctx context.Context, start, end time.Time) ([]unleasheddomain.Order, error) {
	var orders []unleasheddomain.Order

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("completedAfter", utils.FormatDate(start))
		params.Set("completedBefore", utils.FormatDate(end))
		params.Set("orderStatus", "Completed")
		params.Set("page", strconv.Itoa(page))

		var response salesOrdersResponse
		if err := c.get(ctx, "/SalesOrders", params, &response); err != nil {
			return nil, err
		}

		if len(response.Items) == 0 {
			break
		}
		orders = append(orders, response.Items...)

		if page >= response.Pagination.TotalPages() {
			break
		}
	}

	return orders, nil
}
