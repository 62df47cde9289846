package fooddata

import (
	"errors"
	"fmt"
	"time"

	"github.com/pgEdge/pgedge-fooddata/internal/tables"
)

// maxViolations bounds the report of a badly broken dataset.
const maxViolations = 50

// Dataset is a complete generated dataset.
type Dataset struct {
	Locations      []Location
	Restaurants    []Restaurant
	MenuItems      []MenuItem
	Customers      []Customer
	Addresses      []Address
	LoginAudits    []LoginAudit
	Orders         []Order
	OrderItems     []OrderItem
	DeliveryAgents []DeliveryAgent
	Deliveries     []Delivery
}

func toTable[T interface{ values() []any }](name string, columns []string, rows []T) tables.Table {
	t := tables.Table{Name: name, Columns: columns, Rows: make([][]any, len(rows))}
	for i, r := range rows {
		t.Rows[i] = r.values()
	}
	return t
}

// Tables returns every table in parent-to-child order.
func (d *Dataset) Tables() []tables.Table {
	return []tables.Table{
		toTable(TableLocation, locationColumns, d.Locations),
		toTable(TableRestaurant, restaurantColumns, d.Restaurants),
		toTable(TableMenuItem, menuItemColumns, d.MenuItems),
		toTable(TableCustomer, customerColumns, d.Customers),
		toTable(TableAddress, addressColumns, d.Addresses),
		toTable(TableLoginAudit, loginAuditColumns, d.LoginAudits),
		toTable(TableOrders, orderColumns, d.Orders),
		toTable(TableOrderItem, orderItemColumns, d.OrderItems),
		toTable(TableDeliveryAgent, deliveryAgentColumns, d.DeliveryAgents),
		toTable(TableDelivery, deliveryColumns, d.Deliveries),
	}
}

// TableColumns lists the header of every table, in load order.
func TableColumns() []tables.Table {
	return (&Dataset{}).Tables()
}

// Counts returns the row count of every table.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		TableLocation:      len(d.Locations),
		TableRestaurant:    len(d.Restaurants),
		TableMenuItem:      len(d.MenuItems),
		TableCustomer:      len(d.Customers),
		TableAddress:       len(d.Addresses),
		TableLoginAudit:    len(d.LoginAudits),
		TableOrders:        len(d.Orders),
		TableOrderItem:     len(d.OrderItems),
		TableDeliveryAgent: len(d.DeliveryAgents),
		TableDelivery:      len(d.Deliveries),
	}
}

type violations struct {
	errs    []error
	dropped int
}

func (v *violations) addf(format string, args ...any) {
	if len(v.errs) >= maxViolations {
		v.dropped++
		return
	}
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *violations) dates(table string, id int64, created, modified time.Time) {
	if modified.Before(created) {
		v.addf("%s %d: modified date %s before created date %s", table, id,
			modified.Format(tables.TimestampLayout), created.Format(tables.TimestampLayout))
	}
}

func (v *violations) err() error {
	if v.dropped > 0 {
		v.errs = append(v.errs, fmt.Errorf("and %d more violations", v.dropped))
	}
	return errors.Join(v.errs...)
}

// idSet indexes rows by key and reports duplicate keys.
func idSet[K comparable, T any](v *violations, table string, rows []T, key func(T) K) map[K]T {
	m := make(map[K]T, len(rows))
	for _, r := range rows {
		k := key(r)
		if _, dup := m[k]; dup {
			v.addf("%s: duplicate id %v", table, k)
		}
		m[k] = r
	}
	return m
}

// Verify checks the referential and derived-field invariants of a complete
// dataset and returns every violation joined into one error.
func (d *Dataset) Verify() error {
	v := &violations{}

	locations := idSet(v, TableLocation, d.Locations, func(l Location) LocationID { return l.LocationID })
	restaurants := idSet(v, TableRestaurant, d.Restaurants, func(r Restaurant) RestaurantID { return r.RestaurantID })
	menu := idSet(v, TableMenuItem, d.MenuItems, func(m MenuItem) MenuID { return m.MenuID })
	customers := idSet(v, TableCustomer, d.Customers, func(c Customer) CustomerID { return c.CustomerID })
	addresses := idSet(v, TableAddress, d.Addresses, func(a Address) AddressID { return a.AddressID })
	orders := idSet(v, TableOrders, d.Orders, func(o Order) OrderID { return o.OrderID })
	agents := idSet(v, TableDeliveryAgent, d.DeliveryAgents, func(a DeliveryAgent) DeliveryAgentID { return a.DeliveryAgentID })
	idSet(v, TableLoginAudit, d.LoginAudits, func(l LoginAudit) LoginID { return l.LoginID })
	idSet(v, TableOrderItem, d.OrderItems, func(i OrderItem) OrderItemID { return i.OrderItemID })
	idSet(v, TableDelivery, d.Deliveries, func(x Delivery) DeliveryID { return x.DeliveryID })

	for _, l := range d.Locations {
		if l.ModifiedDate != nil {
			v.dates(TableLocation, int64(l.LocationID), l.CreatedDate, *l.ModifiedDate)
		}
	}

	for _, r := range d.Restaurants {
		if _, ok := locations[r.LocationID]; !ok {
			v.addf("restaurant %d: unknown location %d", r.RestaurantID, r.LocationID)
		}
		if (r.ActiveFlag == Yes) != (r.OpenStatus == "Open") {
			v.addf("restaurant %d: open status %q does not match active flag %q",
				r.RestaurantID, r.OpenStatus, r.ActiveFlag)
		}
		v.dates(TableRestaurant, int64(r.RestaurantID), r.CreatedDate, r.ModifiedDate)
	}

	for _, m := range d.MenuItems {
		if _, ok := restaurants[m.RestaurantID]; !ok {
			v.addf("menu item %d: unknown restaurant %d", m.MenuID, m.RestaurantID)
		}
		if m.ItemType != ItemTypeFor(m.ItemName) {
			v.addf("menu item %d: %q has item type %q", m.MenuID, m.ItemName, m.ItemType)
		}
		v.dates(TableMenuItem, int64(m.MenuID), m.CreatedDate, m.ModifiedDate)
	}

	for _, c := range d.Customers {
		v.dates(TableCustomer, int64(c.CustomerID), c.CreatedDate, c.ModifiedDate)
	}

	primaries := make(map[CustomerID]int)
	for _, a := range d.Addresses {
		if _, ok := customers[a.CustomerID]; !ok {
			v.addf("address %d: unknown customer %d", a.AddressID, a.CustomerID)
		}
		if _, ok := locations[a.LocationID]; !ok {
			v.addf("address %d: unknown location %d", a.AddressID, a.LocationID)
		}
		if a.PrimaryFlag == Yes {
			primaries[a.CustomerID]++
		}
		if a.ModifiedDate != nil {
			v.dates(TableAddress, int64(a.AddressID), a.CreatedDate, *a.ModifiedDate)
		}
	}
	checked := make(map[CustomerID]bool)
	for _, a := range d.Addresses {
		if checked[a.CustomerID] {
			continue
		}
		checked[a.CustomerID] = true
		if n := primaries[a.CustomerID]; n != 1 {
			v.addf("customer %d: %d primary addresses", a.CustomerID, n)
		}
	}

	for _, l := range d.LoginAudits {
		if _, ok := customers[l.CustomerID]; !ok {
			v.addf("login %d: unknown customer %d", l.LoginID, l.CustomerID)
		}
		switch l.LoginType {
		case LoginApp:
			if l.WebInterface != nil {
				v.addf("login %d: app login has web interface", l.LoginID)
			}
			if l.DeviceInterface == nil ||
				(*l.DeviceInterface != DeviceAndroid && *l.DeviceInterface != DeviceIOS) {
				v.addf("login %d: app login without Android or iOS device interface", l.LoginID)
			} else if *l.DeviceInterface == DeviceIOS &&
				(l.MobileDeviceName == nil || *l.MobileDeviceName != "iPhone") {
				v.addf("login %d: iOS login not on an iPhone", l.LoginID)
			}
		case LoginWeb:
			if l.DeviceInterface != nil || l.MobileDeviceName != nil {
				v.addf("login %d: web login has device fields", l.LoginID)
			}
			if l.WebInterface == nil {
				v.addf("login %d: web login without web interface", l.LoginID)
			}
		default:
			v.addf("login %d: unknown login type %q", l.LoginID, l.LoginType)
		}
	}

	for _, o := range d.Orders {
		if _, ok := customers[o.CustomerID]; !ok {
			v.addf("order %d: unknown customer %d", o.OrderID, o.CustomerID)
		}
		if _, ok := restaurants[o.RestaurantID]; !ok {
			v.addf("order %d: unknown restaurant %d", o.OrderID, o.RestaurantID)
		}
		if o.AddressID != nil {
			a, ok := addresses[*o.AddressID]
			if !ok {
				v.addf("order %d: unknown address %d", o.OrderID, *o.AddressID)
			} else if a.CustomerID != o.CustomerID {
				v.addf("order %d: address %d belongs to customer %d", o.OrderID, a.AddressID, a.CustomerID)
			}
		}
		v.dates(TableOrders, int64(o.OrderID), o.CreatedDate, o.ModifiedDate)
	}

	totals := make(map[OrderID]int64)
	for _, it := range d.OrderItems {
		o, ok := orders[it.OrderID]
		if !ok {
			v.addf("order item %d: unknown order %d", it.OrderItemID, it.OrderID)
			continue
		}
		m, ok := menu[it.MenuID]
		if !ok {
			v.addf("order item %d: unknown menu item %d", it.OrderItemID, it.MenuID)
		} else if m.RestaurantID != o.RestaurantID {
			v.addf("order item %d: menu item %d is from restaurant %d, order %d is from restaurant %d",
				it.OrderItemID, it.MenuID, m.RestaurantID, o.OrderID, o.RestaurantID)
		}
		if it.Subtotal != it.Price*it.Quantity {
			v.addf("order item %d: subtotal %d is not %d x %d", it.OrderItemID, it.Subtotal, it.Price, it.Quantity)
		}
		totals[it.OrderID] += it.Subtotal
	}
	for _, o := range d.Orders {
		if o.TotalAmount != totals[o.OrderID] {
			v.addf("order %d: total %d, items sum to %d", o.OrderID, o.TotalAmount, totals[o.OrderID])
		}
	}

	for _, a := range d.DeliveryAgents {
		if _, ok := locations[a.LocationID]; !ok {
			v.addf("delivery agent %d: unknown location %d", a.DeliveryAgentID, a.LocationID)
		}
		v.dates(TableDeliveryAgent, int64(a.DeliveryAgentID), a.CreatedDate, a.ModifiedDate)
	}

	delivered := make(map[OrderID]bool)
	for _, x := range d.Deliveries {
		if _, ok := agents[x.DeliveryAgentID]; !ok {
			v.addf("delivery %d: unknown agent %d", x.DeliveryID, x.DeliveryAgentID)
		}
		o, ok := orders[x.OrderID]
		if !ok {
			v.addf("delivery %d: unknown order %d", x.DeliveryID, x.OrderID)
			continue
		}
		if delivered[x.OrderID] {
			v.addf("delivery %d: order %d has more than one delivery", x.DeliveryID, x.OrderID)
		}
		delivered[x.OrderID] = true

		want, ok := DeliveryStatusFor(o.Status)
		if !ok {
			v.addf("delivery %d: order %d is %s", x.DeliveryID, o.OrderID, o.Status)
		} else if x.DeliveryStatus != want {
			v.addf("delivery %d: status %q for order status %q", x.DeliveryID, x.DeliveryStatus, o.Status)
		}
		if o.AddressID == nil || *o.AddressID != x.AddressID {
			v.addf("delivery %d: address %d is not the order's address", x.DeliveryID, x.AddressID)
		}
		if (x.DeliveryDate != nil) != (x.DeliveryStatus == DeliveryDelivered) {
			v.addf("delivery %d: delivery date does not match status %q", x.DeliveryID, x.DeliveryStatus)
		}
		v.dates(TableDelivery, int64(x.DeliveryID), x.CreatedDate, x.ModifiedDate)
	}

	return v.err()
}
