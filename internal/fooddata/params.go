package fooddata

import (
	"fmt"
	"time"

	"github.com/pgEdge/pgedge-fooddata/internal/config"
	"github.com/pgEdge/pgedge-fooddata/internal/datagen"
)

// recentOrderWindow separates settled orders from ones still in flight.
const recentOrderWindow = 2 * time.Hour

// Params controls one generation run.
type Params struct {
	// Reference is "now" for every generated date.
	Reference time.Time
	Entities  config.EntitiesConfig
	Limits    config.LimitsConfig
}

// DefaultParams returns the parameters of the default configuration.
func DefaultParams() Params {
	p, err := ParamsFromConfig(config.DefaultConfig())
	if err != nil {
		panic(err) // the default reference time always parses
	}
	return p
}

// ParamsFromConfig converts a validated configuration into run parameters.
func ParamsFromConfig(cfg *config.Config) (Params, error) {
	ref, err := cfg.Reference()
	if err != nil {
		return Params{}, err
	}
	return Params{
		Reference: ref,
		Entities:  cfg.Entities,
		Limits:    cfg.Limits,
	}, nil
}

// Table sizes for size calculation. Locations are reference data.
var tableSizes = []datagen.TableSizeInfo{
	{Name: TableLocation, BaseRowSize: 70, ScaleRatio: 30, Fixed: true},
	{Name: TableRestaurant, BaseRowSize: 260, ScaleRatio: 100},
	{Name: TableMenuItem, BaseRowSize: 150, ScaleRatio: 1000},
	{Name: TableCustomer, BaseRowSize: 230, ScaleRatio: 200},
	{Name: TableAddress, BaseRowSize: 200, ScaleRatio: 500},
	{Name: TableLoginAudit, BaseRowSize: 70, ScaleRatio: 500},
	{Name: TableOrders, BaseRowSize: 110, ScaleRatio: 1000},
	{Name: TableOrderItem, BaseRowSize: 70, ScaleRatio: 3000},
	{Name: TableDeliveryAgent, BaseRowSize: 110, ScaleRatio: 150},
	{Name: TableDelivery, BaseRowSize: 110, ScaleRatio: 800},
}

// ScaleToSize resizes the configured entity ranges so the written dataset
// comes out near targetSize bytes. Start ids are kept.
func ScaleToSize(e config.EntitiesConfig, targetSize int64) config.EntitiesConfig {
	calc := datagen.NewSizeCalculator(tableSizes)
	counts := calc.CalculateRowCounts(targetSize)

	e.Locations = e.Locations.WithCount(counts[TableLocation])
	e.Restaurants = e.Restaurants.WithCount(counts[TableRestaurant])
	e.MenuItems = e.MenuItems.WithCount(counts[TableMenuItem])
	e.Customers = e.Customers.WithCount(counts[TableCustomer])
	e.LoginAudits = e.LoginAudits.WithCount(counts[TableLoginAudit])
	e.Orders = e.Orders.WithCount(counts[TableOrders])
	e.DeliveryAgents = e.DeliveryAgents.WithCount(counts[TableDeliveryAgent])
	return e
}

// EstimateSize returns the approximate output size of the given ranges.
func EstimateSize(e config.EntitiesConfig) string {
	calc := datagen.NewSizeCalculator(tableSizes)
	counts := map[string]int64{
		TableLocation:      e.Locations.Count(),
		TableRestaurant:    e.Restaurants.Count(),
		TableMenuItem:      e.MenuItems.Count(),
		TableCustomer:      e.Customers.Count(),
		TableAddress:       e.Customers.Count() * 5 / 2,
		TableLoginAudit:    e.LoginAudits.Count(),
		TableOrders:        e.Orders.Count(),
		TableOrderItem:     e.Orders.Count() * 3,
		TableDeliveryAgent: e.DeliveryAgents.Count(),
		TableDelivery:      e.Orders.Count() * 4 / 5,
	}
	return datagen.FormatSize(calc.EstimatedSize(counts))
}

func (p Params) String() string {
	return fmt.Sprintf("ref=%s entities=%+v limits=%+v",
		p.Reference.Format(time.RFC3339), p.Entities, p.Limits)
}
