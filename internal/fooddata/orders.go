//-------------------------------------------------------------------------
//
// pgEdge Food Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package fooddata

import (
	"fmt"
	"slices"
	"time"

	"github.com/pgEdge/pgedge-fooddata/internal/datagen"
)

// Orders generates orders with a zero TotalAmount. Each attempt picks a
// random customer; with city matching on, the restaurant must share the
// city of one of the customer's addresses and attempts that find no such
// pair are skipped. Order ids are only consumed by emitted orders.
//
// An error means a parent table is incomplete: an address or restaurant
// refers to a customer or location the generator was not given.
func (g *Generator) Orders(customers []Customer, addresses []Address,
	restaurants []Restaurant, locations []Location) ([]Order, error) {
	r := g.params.Entities.Orders
	ref := g.params.Reference
	window := ref.AddDate(0, 0, -g.params.Limits.OrderWindowDays)
	progress := datagen.NewProgressReporter(TableOrders, r.Count(), 0)

	customerSet := make(map[CustomerID]bool, len(customers))
	for _, c := range customers {
		customerSet[c.CustomerID] = true
	}
	addressesOf := make(map[CustomerID][]Address)
	primaryOf := make(map[CustomerID]Address)
	for _, a := range addresses {
		if !customerSet[a.CustomerID] {
			return nil, fmt.Errorf("address %d refers to unknown customer %d", a.AddressID, a.CustomerID)
		}
		addressesOf[a.CustomerID] = append(addressesOf[a.CustomerID], a)
		if a.PrimaryFlag == Yes {
			primaryOf[a.CustomerID] = a
		}
	}

	cityOf := make(map[LocationID]string, len(locations))
	for _, l := range locations {
		cityOf[l.LocationID] = l.City
	}
	restaurantsIn := make(map[string][]Restaurant)
	for _, rest := range restaurants {
		city, ok := cityOf[rest.LocationID]
		if !ok {
			return nil, fmt.Errorf("restaurant %d refers to unknown location %d",
				rest.RestaurantID, rest.LocationID)
		}
		restaurantsIn[city] = append(restaurantsIn[city], rest)
	}

	out := make([]Order, 0, r.Count())
	next := r.StartID
	for attempt := int64(0); attempt < r.Count(); attempt++ {
		if len(customers) == 0 {
			progress.Skip("no customers")
			continue
		}
		c := datagen.Choose(g.faker, customers)

		var rest Restaurant
		var addressID *AddressID
		if g.params.Limits.CityMatchedOrders {
			addrs := addressesOf[c.CustomerID]
			if len(addrs) == 0 {
				progress.Skip("customer has no address")
				continue
			}
			a := datagen.Choose(g.faker, addrs)
			candidates := restaurantsIn[a.City]
			if len(candidates) == 0 {
				progress.Skip("no restaurant in address city")
				continue
			}
			rest = datagen.Choose(g.faker, candidates)
			addressID = ptr(a.AddressID)
		} else {
			if len(restaurants) == 0 {
				progress.Skip("no restaurants")
				continue
			}
			rest = datagen.Choose(g.faker, restaurants)
			if a, ok := primaryOf[c.CustomerID]; ok {
				addressID = ptr(a.AddressID)
			}
		}

		orderDate := g.faker.DateRange(window, ref)
		status := g.orderStatus(orderDate)
		payment := datagen.Choose(g.faker, paymentMethods)
		modified := g.faker.DateRange(orderDate, minTime(orderDate.Add(recentOrderWindow), ref))

		out = append(out, Order{
			OrderID:       OrderID(next),
			CustomerID:    c.CustomerID,
			RestaurantID:  rest.RestaurantID,
			AddressID:     addressID,
			OrderDate:     orderDate,
			Status:        status,
			PaymentMethod: payment,
			CreatedDate:   orderDate,
			ModifiedDate:  modified,
		})
		next++
		progress.Update(1)
	}

	progress.Done()
	return out, nil
}

func (g *Generator) orderStatus(orderDate time.Time) OrderStatus {
	if g.params.Reference.Sub(orderDate) > recentOrderWindow {
		return datagen.ChooseWeighted(g.faker, settledStatuses, settledWeights)
	}
	return datagen.ChooseWeighted(g.faker, recentStatuses, recentWeights)
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// OrderItems samples between one and MaxItemsPerOrder distinct dishes from
// each order's restaurant menu. Orders whose restaurant has no menu get no
// items. The orders themselves are not touched; see ApplyOrderTotals.
//
// An error means an order or menu item refers to a restaurant the
// generator was not given.
func (g *Generator) OrderItems(orders []Order, restaurants []Restaurant,
	menu []MenuItem) ([]OrderItem, error) {
	maxItems := g.params.Limits.MaxItemsPerOrder
	progress := datagen.NewProgressReporter(TableOrderItem, int64(len(orders)*(maxItems+1)/2), 0)

	menuOf := make(map[RestaurantID][]MenuItem, len(restaurants))
	for _, r := range restaurants {
		menuOf[r.RestaurantID] = nil
	}
	for _, m := range menu {
		if _, ok := menuOf[m.RestaurantID]; !ok {
			return nil, fmt.Errorf("menu item %d refers to unknown restaurant %d", m.MenuID, m.RestaurantID)
		}
		menuOf[m.RestaurantID] = append(menuOf[m.RestaurantID], m)
	}

	var out []OrderItem
	next := g.params.Entities.OrderItemStartID
	for _, o := range orders {
		dishes, ok := menuOf[o.RestaurantID]
		if !ok {
			return nil, fmt.Errorf("order %d refers to unknown restaurant %d", o.OrderID, o.RestaurantID)
		}
		if len(dishes) == 0 {
			progress.Skip("restaurant has no menu")
			continue
		}
		k := g.faker.Int(1, min(maxItems, len(dishes)))

		for _, m := range datagen.Sample(g.faker, dishes, k) {
			qty := int64(g.faker.Int(1, g.params.Limits.MaxQuantity))
			out = append(out, OrderItem{
				OrderItemID:  OrderItemID(next),
				OrderID:      o.OrderID,
				MenuID:       m.MenuID,
				Quantity:     qty,
				Price:        m.Price,
				Subtotal:     m.Price * qty,
				CreatedDate:  o.CreatedDate,
				ModifiedDate: o.ModifiedDate,
			})
			next++
			progress.Update(1)
		}
	}

	progress.Done()
	return out, nil
}

// ApplyOrderTotals returns a copy of orders with TotalAmount set to the sum
// of each order's item subtotals. It refuses orders that already carry a
// total, so totals are applied exactly once.
func ApplyOrderTotals(orders []Order, items []OrderItem) ([]Order, error) {
	index := make(map[OrderID]int, len(orders))
	for i, o := range orders {
		if o.TotalAmount != 0 {
			return nil, fmt.Errorf("order %d already has total %d", o.OrderID, o.TotalAmount)
		}
		index[o.OrderID] = i
	}

	out := slices.Clone(orders)
	for _, it := range items {
		i, ok := index[it.OrderID]
		if !ok {
			return nil, fmt.Errorf("order item %d refers to unknown order %d", it.OrderItemID, it.OrderID)
		}
		out[i].TotalAmount += it.Subtotal
	}
	return out, nil
}

// Deliveries emits one delivery per order that has a delivery status and
// an address. The agent is an active agent at the restaurant's location
// when there is one, otherwise any active agent.
func (g *Generator) Deliveries(orders []Order, restaurants []Restaurant,
	agents []DeliveryAgent) ([]Delivery, error) {
	ref := g.params.Reference
	progress := datagen.NewProgressReporter(TableDelivery, int64(len(orders)), 0)

	locationOf := make(map[RestaurantID]LocationID, len(restaurants))
	for _, r := range restaurants {
		locationOf[r.RestaurantID] = r.LocationID
	}

	activeAt := make(map[LocationID][]DeliveryAgent)
	var active []DeliveryAgent
	for _, a := range agents {
		if a.Status == AgentActive {
			activeAt[a.LocationID] = append(activeAt[a.LocationID], a)
			active = append(active, a)
		}
	}

	var out []Delivery
	next := g.params.Entities.DeliveryStartID
	for _, o := range orders {
		status, ok := DeliveryStatusFor(o.Status)
		if !ok {
			continue
		}
		if o.AddressID == nil {
			progress.Skip("order has no address")
			continue
		}
		loc, ok := locationOf[o.RestaurantID]
		if !ok {
			return nil, fmt.Errorf("order %d refers to unknown restaurant %d", o.OrderID, o.RestaurantID)
		}

		candidates := activeAt[loc]
		if len(candidates) == 0 {
			candidates = active
		}
		if len(candidates) == 0 {
			progress.Skip("no active agent")
			continue
		}
		agent := datagen.Choose(g.faker, candidates)
		estimate := fmt.Sprintf("%d minutes", g.faker.Int(10, 60))

		d := Delivery{
			DeliveryID:      DeliveryID(next),
			OrderID:         o.OrderID,
			DeliveryAgentID: agent.DeliveryAgentID,
			DeliveryStatus:  status,
			EstimatedTime:   estimate,
			AddressID:       *o.AddressID,
			CreatedDate:     o.CreatedDate,
			ModifiedDate:    o.ModifiedDate,
		}
		if status == DeliveryDelivered {
			at := o.OrderDate.Add(time.Duration(g.faker.Int(30, 90)) * time.Minute)
			at = minTime(at, ref)
			d.DeliveryDate = &at
			d.ModifiedDate = at
		}

		out = append(out, d)
		next++
		progress.Update(1)
	}

	progress.Done()
	return out, nil
}
