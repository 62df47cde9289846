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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pgEdge/pgedge-fooddata/internal/datagen"
	"github.com/pgEdge/pgedge-fooddata/internal/logging"
)

// Generator produces the dataset tables. Every stage draws from the same
// Faker, so stages must run in pipeline order for a seed to reproduce.
type Generator struct {
	faker  *datagen.Faker
	params Params
}

// NewGenerator creates a generator drawing from faker.
func NewGenerator(faker *datagen.Faker, params Params) *Generator {
	return &Generator{
		faker:  faker,
		params: params,
	}
}

// Generate runs the whole pipeline, parents before children.
func (g *Generator) Generate() (*Dataset, error) {
	logging.Info().
		Time("reference", g.params.Reference).
		Str("estimated_size", EstimateSize(g.params.Entities)).
		Msg("Generating food delivery data")

	d := &Dataset{}
	d.Locations = g.Locations()
	d.Restaurants = g.Restaurants(d.Locations)
	d.MenuItems = g.MenuItems(d.Restaurants)
	d.Customers = g.Customers()
	d.Addresses = g.Addresses(d.Customers, d.Locations)
	d.LoginAudits = g.LoginAudits(d.Customers)

	orders, err := g.Orders(d.Customers, d.Addresses, d.Restaurants, d.Locations)
	if err != nil {
		return nil, fmt.Errorf("failed to generate orders: %w", err)
	}
	d.OrderItems, err = g.OrderItems(orders, d.Restaurants, d.MenuItems)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order items: %w", err)
	}
	d.Orders, err = ApplyOrderTotals(orders, d.OrderItems)
	if err != nil {
		return nil, fmt.Errorf("failed to apply order totals: %w", err)
	}

	d.DeliveryAgents = g.DeliveryAgents(d.Locations)
	d.Deliveries, err = g.Deliveries(d.Orders, d.Restaurants, d.DeliveryAgents)
	if err != nil {
		return nil, fmt.Errorf("failed to generate deliveries: %w", err)
	}

	return d, nil
}

func (g *Generator) yearsAgo(n int) time.Time {
	return g.params.Reference.AddDate(-n, 0, 0)
}

func (g *Generator) optionalDate(p float64, start time.Time) *time.Time {
	if !g.faker.Chance(p) {
		return nil
	}
	return ptr(g.faker.DateRange(start, g.params.Reference))
}

// Locations generates the location table, cycling through the city list.
func (g *Generator) Locations() []Location {
	r := g.params.Entities.Locations
	progress := datagen.NewProgressReporter(TableLocation, r.Count(), 0)
	out := make([]Location, 0, r.Count())

	for id := r.StartID; id < r.EndID; id++ {
		cs := cities[int(id-r.StartID)%len(cities)]
		zip := strconv.Itoa(g.faker.Int(110000, 999999))
		active := g.faker.Chance(0.9)
		created := g.faker.DateRange(g.yearsAgo(3), g.params.Reference)

		out = append(out, Location{
			LocationID:   LocationID(id),
			City:         cs.City,
			State:        cs.State,
			ZipCode:      zip,
			ActiveFlag:   flagOf(active),
			CreatedDate:  created,
			ModifiedDate: g.optionalDate(0.7, created),
		})
		progress.Update(1)
	}

	progress.Done()
	return out
}

// Restaurants attaches each restaurant to a location drawn from all
// locations. OpenStatus follows the restaurant's own active flag.
func (g *Generator) Restaurants(locations []Location) []Restaurant {
	r := g.params.Entities.Restaurants
	progress := datagen.NewProgressReporter(TableRestaurant, r.Count(), 0)
	out := make([]Restaurant, 0, r.Count())

	for id := r.StartID; id < r.EndID; id++ {
		if len(locations) == 0 {
			progress.Skip("no locations")
			continue
		}
		loc := datagen.Choose(g.faker, locations)

		name := datagen.Choose(g.faker, restaurantFirstParts) + " " +
			datagen.Choose(g.faker, restaurantSecondParts)
		cuisines := datagen.Sample(g.faker, restaurantCuisines, g.faker.Int(1, 3))
		pricing := int64(g.faker.Int(200, 2000))
		phone := "9" + g.faker.Digits(9)
		opening, closing := g.faker.Int(7, 11), g.faker.Int(17, 23)
		active := g.faker.Chance(0.9)
		locality := g.faker.StreetName()
		address := fmt.Sprintf("%s%s, %s - %s",
			datagen.Choose(g.faker, floorPrefixes), locality, loc.City, loc.ZipCode)
		lat := datagen.Round(g.faker.Float64(8.4, 37.6), 6)
		long := datagen.Round(g.faker.Float64(68.7, 97.25), 6)
		created := g.faker.DateRange(g.yearsAgo(3), g.yearsAgo(1))
		modified := g.faker.DateRange(created, g.params.Reference)

		openStatus := "Closed"
		if active {
			openStatus = "Open"
		}

		out = append(out, Restaurant{
			RestaurantID:   RestaurantID(id),
			Name:           name,
			CuisineType:    strings.Join(cuisines, ", "),
			PricingFor2:    pricing,
			Phone:          phone,
			OperatingHours: fmt.Sprintf("%d:00 AM - %d:00 PM", opening, closing-12),
			LocationID:     loc.LocationID,
			ActiveFlag:     flagOf(active),
			OpenStatus:     openStatus,
			Locality:       locality,
			Address:        address,
			Latitude:       lat,
			Longitude:      long,
			CreatedDate:    created,
			ModifiedDate:   modified,
		})
		progress.Update(1)
	}

	progress.Done()
	return out
}

// MenuItems attaches each menu item to a random restaurant, avoiding a
// repeated dish name within one restaurant where the category allows it.
func (g *Generator) MenuItems(restaurants []Restaurant) []MenuItem {
	r := g.params.Entities.MenuItems
	progress := datagen.NewProgressReporter(TableMenuItem, r.Count(), 0)
	out := make([]MenuItem, 0, r.Count())
	used := make(map[RestaurantID]map[string]bool)

	for id := r.StartID; id < r.EndID; id++ {
		if len(restaurants) == 0 {
			progress.Skip("no restaurants")
			continue
		}
		rest := datagen.Choose(g.faker, restaurants)
		category := datagen.Choose(g.faker, menuCategories)
		dishes := menuItemsByCategory[category]

		names := used[rest.RestaurantID]
		if names == nil {
			names = make(map[string]bool)
			used[rest.RestaurantID] = names
		}
		name := datagen.Choose(g.faker, dishes)
		for attempt := 0; names[name] && attempt < 20; attempt++ {
			name = datagen.Choose(g.faker, dishes)
		}
		names[name] = true

		description := fmt.Sprintf(datagen.Choose(g.faker, menuDescriptions), name)
		price := int64(g.faker.Int(50, 500))
		available := g.faker.Chance(0.95)
		created := g.faker.DateRange(g.yearsAgo(3), g.yearsAgo(1))
		modified := g.faker.DateRange(created, g.params.Reference)

		out = append(out, MenuItem{
			MenuID:       MenuID(id),
			RestaurantID: rest.RestaurantID,
			ItemName:     name,
			Description:  description,
			Price:        price,
			Category:     category,
			Availability: available,
			ItemType:     ItemTypeFor(name),
			CreatedDate:  created,
			ModifiedDate: modified,
		})
		progress.Update(1)
	}

	progress.Done()
	return out
}

// Customers generates independent customer records.
func (g *Generator) Customers() []Customer {
	r := g.params.Entities.Customers
	ref := g.params.Reference
	progress := datagen.NewProgressReporter(TableCustomer, r.Count(), 0)
	out := make([]Customer, 0, r.Count())

	for id := r.StartID; id < r.EndID; id++ {
		gender := datagen.Choose(g.faker, genders)
		name := g.faker.Name()
		mobile := strconv.FormatInt(g.faker.Int64(7000000000, 9999999999), 10)
		email := fmt.Sprintf("%s%d@%s", emailLocalPart(name), g.faker.Int(1, 999),
			datagen.Choose(g.faker, emailDomains))
		login := datagen.Choose(g.faker, loginMethods)

		dob := dateOnly(g.faker.DateRange(ref.AddDate(-75, 0, 0), ref.AddDate(-15, 0, 0)))
		anniversary := dob.AddDate(g.faker.Int(18, 30), 0, 0)
		hasAnniversary := g.faker.Chance(0.7) && anniversary.Before(ref)

		prefs := Preferences{
			FoodPreference: datagen.Choose(g.faker, foodPreferences),
			CuisineTypes:   datagen.Sample(g.faker, customerCuisines, g.faker.Int(1, 5)),
		}
		created := g.faker.DateRange(g.yearsAgo(3), ref.AddDate(0, -1, 0))
		modified := g.faker.DateRange(created, ref)

		c := Customer{
			CustomerID:   CustomerID(id),
			Name:         name,
			Mobile:       mobile,
			Email:        email,
			LoginByUsing: login,
			Gender:       gender,
			DOB:          pgDate(dob),
			Preferences:  encodePreferences(prefs),
			CreatedDate:  created,
			ModifiedDate: modified,
		}
		if hasAnniversary {
			c.Anniversary = pgDate(anniversary)
		}
		out = append(out, c)
		progress.Update(1)
	}

	progress.Done()
	return out
}

func encodePreferences(p Preferences) string {
	// Marshal cannot fail for a struct of strings.
	b, _ := json.Marshal(p)
	return string(b)
}

func emailLocalPart(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, name)
}

func activeLocations(locations []Location) []Location {
	var out []Location
	for _, l := range locations {
		if l.ActiveFlag == Yes {
			out = append(out, l)
		}
	}
	return out
}

// Addresses gives every customer between one and MaxAddressesPerCustomer
// addresses at distinct active locations. The first one is primary.
func (g *Generator) Addresses(customers []Customer, locations []Location) []Address {
	active := activeLocations(locations)
	maxPer := g.params.Limits.MaxAddressesPerCustomer
	progress := datagen.NewProgressReporter(TableAddress, int64(len(customers)*(maxPer+1)/2), 0)
	var out []Address
	next := g.params.Entities.AddressStartID

	for _, c := range customers {
		if len(active) == 0 {
			progress.Skip("no active locations")
			continue
		}
		n := min(g.faker.Int(1, maxPer), len(active))

		for i, loc := range datagen.Sample(g.faker, active, n) {
			flat := strconv.Itoa(g.faker.Int(1, 50))
			var floor *string
			if g.faker.Chance(0.7) {
				floor = ptr(strconv.Itoa(g.faker.Int(1, 40)))
			}
			building := g.faker.Company() + " " + datagen.Choose(g.faker, buildingSuffixes)
			landmark := datagen.Choose(g.faker, landmarkPrefixes) + g.faker.Company()
			locality := datagen.Choose(g.faker, localities)
			coords := fmt.Sprintf("%.6f,%.6f",
				g.faker.Float64(8.4, 37.6), g.faker.Float64(68.7, 97.25))
			addrType := datagen.Choose(g.faker, addressTypes)
			created := g.faker.DateRange(c.CreatedDate, g.params.Reference)

			out = append(out, Address{
				AddressID:    AddressID(next),
				CustomerID:   c.CustomerID,
				LocationID:   loc.LocationID,
				FlatNo:       flat,
				Floor:        floor,
				Building:     building,
				Landmark:     landmark,
				Locality:     locality,
				City:         loc.City,
				State:        loc.State,
				Pincode:      loc.ZipCode,
				Coordinates:  coords,
				PrimaryFlag:  flagOf(i == 0),
				AddressType:  addrType,
				CreatedDate:  created,
				ModifiedDate: g.optionalDate(0.7, created),
			})
			next++
			progress.Update(1)
		}
	}

	progress.Done()
	return out
}

// LoginAudits generates login events for random customers. Device fields
// depend on the login channel.
func (g *Generator) LoginAudits(customers []Customer) []LoginAudit {
	r := g.params.Entities.LoginAudits
	progress := datagen.NewProgressReporter(TableLoginAudit, r.Count(), 0)
	out := make([]LoginAudit, 0, r.Count())

	for id := r.StartID; id < r.EndID; id++ {
		if len(customers) == 0 {
			progress.Skip("no customers")
			continue
		}
		c := datagen.Choose(g.faker, customers)

		la := LoginAudit{
			LoginID:    LoginID(id),
			CustomerID: c.CustomerID,
			LoginType:  datagen.ChooseWeighted(g.faker, []string{LoginApp, LoginWeb}, []int{90, 10}),
		}
		if la.LoginType == LoginApp {
			device := datagen.ChooseWeighted(g.faker, []string{DeviceAndroid, DeviceIOS}, []int{70, 30})
			la.DeviceInterface = ptr(device)
			if device == DeviceIOS {
				la.MobileDeviceName = ptr("iPhone")
			} else {
				la.MobileDeviceName = ptr(datagen.Choose(g.faker, androidDevices))
			}
		} else {
			la.WebInterface = ptr(datagen.Choose(g.faker, browsers))
		}
		la.LastLogin = g.faker.DateRange(g.yearsAgo(3), g.params.Reference)

		out = append(out, la)
		progress.Update(1)
	}

	progress.Done()
	return out
}

// DeliveryAgents places agents at active locations, or at any location
// when none is active.
func (g *Generator) DeliveryAgents(locations []Location) []DeliveryAgent {
	r := g.params.Entities.DeliveryAgents
	ref := g.params.Reference
	progress := datagen.NewProgressReporter(TableDeliveryAgent, r.Count(), 0)
	out := make([]DeliveryAgent, 0, r.Count())

	pool := activeLocations(locations)
	if len(pool) == 0 {
		pool = locations
	}

	for id := r.StartID; id < r.EndID; id++ {
		if len(pool) == 0 {
			progress.Skip("no locations")
			continue
		}
		loc := datagen.Choose(g.faker, pool)
		gender := datagen.ChooseWeighted(g.faker, genders, []int{90, 9, 1})
		name := g.faker.Name()
		phone := strconv.FormatInt(g.faker.Int64(7000000000, 9999999999), 10)
		vehicle := datagen.Choose(g.faker, vehicleTypes)
		status := datagen.ChooseWeighted(g.faker, []string{AgentActive, AgentInactive}, []int{90, 10})
		rating := datagen.Round(g.faker.Float64(3.0, 5.0), 1)
		created := g.faker.DateRange(g.yearsAgo(2), ref.AddDate(0, -3, 0))
		modified := g.faker.DateRange(created, ref)

		out = append(out, DeliveryAgent{
			DeliveryAgentID: DeliveryAgentID(id),
			Name:            name,
			Phone:           phone,
			VehicleType:     vehicle,
			LocationID:      loc.LocationID,
			Status:          status,
			Gender:          gender,
			Rating:          rating,
			CreatedDate:     created,
			ModifiedDate:    modified,
		})
		progress.Update(1)
	}

	progress.Done()
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
