package unleashed

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/arizon-automation/sales-dashboard/infrastructure/cache"
	unleasheddomain "github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed/domain"
	"github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed/unleashedclient"
	"github.com/arizon-automation/sales-dashboard/pkg/log"
	"github.com/arizon-automation/sales-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UnleashedIntegrator exposes the vendor data the dashboard needs, with
// a cache in front of every fetch.
type UnleashedIntegrator interface {
	GetSalesOrders(ctx context.Context, start, end time.Time) ([]unleasheddomain.Order, error)
	GetCreditNotes(ctx context.Context, start, end time.Time) ([]unleasheddomain.CreditNote, error)
	GetProducts(ctx context.Context) ([]unleasheddomain.Product, error)
	GetSalesPersons(ctx context.Context) ([]unleasheddomain.SalesPerson, error)
	ClearCache(ctx context.Context) error
}

type UnleashedService struct {
	Client unleashedclient.Client
	store  cache.Store
}

func New(client unleashedclient.Client, store cache.Store) UnleashedIntegrator {
	return &UnleashedService{
		Client: client,
		store:  store,
	}
}

func (s *UnleashedService) GetSalesOrders(ctx context.Context, start, end time.Time) ([]unleasheddomain.Order, error) {
	key := rangeKey("sales_orders", start, end)

	var orders []unleasheddomain.Order
	if hit(ctx, s.store, key, &orders) {
		return orders, nil
	}

	orders, err := s.Client.GetSalesOrders(ctx, start, end)
	if err != nil {
		return nil, err
	}

	put(ctx, s.store, key, orders)
	return orders, nil
}

func (s *UnleashedService) GetCreditNotes(ctx context.Context, start, end time.Time) ([]unleasheddomain.CreditNote, error) {
	key := rangeKey("credit_notes", start, end)

	var notes []unleasheddomain.CreditNote
	if hit(ctx, s.store, key, &notes) {
		return notes, nil
	}

	notes, err := s.Client.GetCreditNotes(ctx, start, end)
	if err != nil {
		return nil, err
	}

	put(ctx, s.store, key, notes)
	return notes, nil
}

func (s *UnleashedService) GetProducts(ctx context.Context) ([]unleasheddomain.Product, error) {
	const key = "products"

	var products []unleasheddomain.Product
	if hit(ctx, s.store, key, &products) {
		return products, nil
	}

	products, err := s.Client.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	put(ctx, s.store, key, products)
	return products, nil
}

func (s *UnleashedService) GetSalesPersons(ctx context.Context) ([]unleasheddomain.SalesPerson, error) {
	const key = "sales_persons"

	var salesPersons []unleasheddomain.SalesPerson
	if hit(ctx, s.store, key, &salesPersons) {
		return salesPersons, nil
	}

	salesPersons, err := s.Client.GetSalesPersons(ctx)
	if err != nil {
		return nil, err
	}

	put(ctx, s.store, key, salesPersons)
	return salesPersons, nil
}

func (s *UnleashedService) ClearCache(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func rangeKey(endpoint string, start, end time.Time) string {
	return fmt.Sprintf("%s/%s/%s", endpoint, utils.FormatDate(start), utils.FormatDate(end))
}

// hit reads and decodes a cached payload. A corrupt entry is treated
// as a miss so the data is fetched again.
func hit(ctx context.Context, store cache.Store, key string, out interface{}) bool {
	payload, ok := store.Get(ctx, key)
	if !ok {
		return false
	}

	if err := json.Unmarshal(payload, out); err != nil {
		log.L.WithError(err).WithField("key", key).Warn("corrupt cache entry, refetching")
		return false
	}

	return true
}

func put(ctx context.Context, store cache.Store, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.L.WithError(err).WithField("key", key).Warn("could not encode cache entry")
		return
	}

	store.Set(ctx, key, payload)
}
