package unleashedclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arizon-automation/sales-dashboard/internal/config"
)

func testClient(serverURL string) *UnleashedClient {
	return &UnleashedClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		config: config.Unleashed{
			URL:    serverURL,
			APIID:  "test-id",
			APIKey: "test-api-key",
		},
	}
}

func TestSign(t *testing.T) {
	client := &UnleashedClient{config: config.Unleashed{APIKey: "secret"}}

	// Known value computed independently for HMAC-SHA256("page=1", "secret").
	assert.Equal(t, "pSaZ2PeaG1BK9vRCXCZb6/L1xK2+c64V+4At5DQsdlA=", client.sign("page=1"))
}

func TestGetSalesOrders_PaginatesUntilLastPage(t *testing.T) {
	var requestedQueries []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedQueries = append(requestedQueries, r.URL.RawQuery)

		assert.Equal(t, "test-id", r.Header.Get("api-auth-id"))
		// The signature must cover exactly the query string on the wire.
		assert.Equal(t,
			testClient("").sign(r.URL.RawQuery),
			r.Header.Get("api-auth-signature"),
		)

		page := r.URL.Query().Get("page")
		if page == "1" {
			fmt.Fprint(w, `{
				"Pagination": {"NumberOfPages": 2, "PageNumber": 1},
				"Items": [
					{"OrderNumber": "SO-001", "Total": 100},
					{"OrderNumber": "SO-002", "Total": 50}
				]
			}`)
			return
		}
		fmt.Fprint(w, `{
			"Pagination": {"NumberOfPages": 2, "PageNumber": 2},
			"Items": [{"OrderNumber": "SO-003", "Total": 25}]
		}`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	orders, err := client.GetSalesOrders(
		context.Background(),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "SO-001", orders[0].OrderNumber)
	assert.Equal(t, "SO-003", orders[2].OrderNumber)

	require.Len(t, requestedQueries, 2)
	assert.Equal(t, "completedAfter=2024-05-01&completedBefore=2024-05-16&orderStatus=Completed&page=1", requestedQueries[0])
	assert.Equal(t, "completedAfter=2024-05-01&completedBefore=2024-05-16&orderStatus=Completed&page=2", requestedQueries[1])
}

func TestGetSalesOrders_SignatureFixture(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Known value computed independently for the page-1 query string
		// signed with "test-api-key".
		assert.Equal(t, "8p0iR9G1zl9DtjEQuU9aEz2kE3y+gr/vLy1B+4x31kc=", r.Header.Get("api-auth-signature"))
		fmt.Fprint(w, `{"Items": []}`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.GetSalesOrders(
		context.Background(),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
}

func TestGetSalesOrders_StopsOnEmptyItems(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		// The reported page count is wrong, the empty page still stops
		// the loop.
		fmt.Fprint(w, `{"Pagination": {"NumberOfPages": 10}, "Items": []}`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	orders, err := client.GetSalesOrders(
		context.Background(),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, 1, requests)
}

func TestGetSalesOrders_MissingPaginationMeansSinglePage(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{"Items": [{"OrderNumber": "SO-001"}]}`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	orders, err := client.GetSalesOrders(
		context.Background(),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, 1, requests)
}

func TestGetSalesOrders_FailedPageAbortsFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, `{
				"Pagination": {"NumberOfPages": 2},
				"Items": [{"OrderNumber": "SO-001"}]
			}`)
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := testClient(server.URL)
	orders, err := client.GetSalesOrders(
		context.Background(),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC),
	)

	// No partial results on failure.
	require.Error(t, err)
	assert.Nil(t, orders)
}

func TestGetCreditNotes_UsesCreationDateRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-05-16", r.URL.Query().Get("endDate"))
		fmt.Fprint(w, `{"Items": [{"CreditNoteNumber": "CN-001", "Total": 10}]}`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	notes, err := client.GetCreditNotes(
		context.Background(),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "CN-001", notes[0].CreditNoteNumber)
}

func TestGetProductsAndSalesPersons(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/Products":
			fmt.Fprint(w, `{"Items": [{"ProductCode": "P-1", "DefaultPurchasePrice": 4.5}]}`)
		case r.URL.Path == "/SalesPersons":
			fmt.Fprint(w, `{"Items": [{"FullName": "Alice Jones"}]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := testClient(server.URL)

	products, err := client.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "P-1", products[0].ProductCode)

	salesPersons, err := client.GetSalesPersons(context.Background())
	require.NoError(t, err)
	require.Len(t, salesPersons, 1)
	assert.Equal(t, "Alice Jones", salesPersons[0].FullName)
}
