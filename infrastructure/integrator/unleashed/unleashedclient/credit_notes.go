package unleashedclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	unleasheddomain "github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed/domain"
	"github.com/arizon-automation/sales-dashboard/pkg/utils"
)

type creditNotesResponse struct {
	Pagination *unleasheddomain.Pagination  `json:"Pagination"`
	Items      []unleasheddomain.CreditNote `json:"Items"`
}

// GetCreditNotes fetches every page of credit notes created in the
// inclusive date range.
func (c *UnleashedClient) GetCreditNotes(ctx context.Context, start, end time.Time) ([]unleasheddomain.CreditNote, error) {
	var notes []unleasheddomain.CreditNote

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("startDate", utils.FormatDate(start))
		params.Set("endDate", utils.FormatDate(end))
		params.Set("page", strconv.Itoa(page))

		var response creditNotesResponse
		if err := c.get(ctx, "/CreditNotes", params, &response); err != nil {
			return nil, err
		}

		if len(response.Items) == 0 {
			break
		}
		notes = append(notes, response.Items...)

		if page >= response.Pagination.TotalPages() {
			break
		}
	}

	return notes, nil
}
