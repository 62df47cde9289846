//-------------------------------------------------------------------------
//
// pgEdge Food Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package fooddata generates a referentially consistent food-delivery
// dataset: locations, restaurants, menus, customers and their addresses,
// login audits, orders with line items, delivery agents and deliveries.
package fooddata

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Table names, in load order.
const (
	TableLocation      = "location"
	TableRestaurant    = "restaurant"
	TableMenuItem      = "menu_item"
	TableCustomer      = "customer"
	TableAddress       = "customer_address"
	TableLoginAudit    = "login_audit"
	TableOrders        = "orders"
	TableOrderItem     = "order_item"
	TableDeliveryAgent = "delivery_agent"
	TableDelivery      = "delivery"
)

// Typed keys keep a foreign key from being assigned to the wrong column.
type (
	LocationID      int64
	RestaurantID    int64
	MenuID          int64
	CustomerID      int64
	AddressID       int64
	LoginID         int64
	OrderID         int64
	OrderItemID     int64
	DeliveryAgentID int64
	DeliveryID      int64
)

// Flag is the Yes/No marker used by active and primary columns.
type Flag string

const (
	Yes Flag = "Yes"
	No  Flag = "No"
)

func flagOf(b bool) Flag {
	if b {
		return Yes
	}
	return No
}

// OrderStatus is the canonical order lifecycle state.
type OrderStatus string

const (
	OrderDelivered OrderStatus = "Delivered"
	OrderCanceled  OrderStatus = "Canceled"
	OrderFailed    OrderStatus = "Failed"
	OrderReturned  OrderStatus = "Returned"
	OrderInTransit OrderStatus = "In Transit"
	OrderPreparing OrderStatus = "Preparing"
)

// DeliveryStatus is the state of a delivery record.
type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "Delivered"
	DeliveryFailed    DeliveryStatus = "Failed"
	DeliveryReturned  DeliveryStatus = "Returned"
	DeliveryInTransit DeliveryStatus = "In Transit"
	DeliveryAssigned  DeliveryStatus = "Assigned"
)

var deliveryStatusByOrder = map[OrderStatus]DeliveryStatus{
	OrderDelivered: DeliveryDelivered,
	OrderFailed:    DeliveryFailed,
	OrderReturned:  DeliveryReturned,
	OrderInTransit: DeliveryInTransit,
	OrderPreparing: DeliveryAssigned,
}

// DeliveryStatusFor maps an order status to the status of its delivery.
// The second result is false when the order gets no delivery at all.
func DeliveryStatusFor(s OrderStatus) (DeliveryStatus, bool) {
	ds, ok := deliveryStatusByOrder[s]
	return ds, ok
}

// Login channels and device interfaces.
const (
	LoginApp = "App"
	LoginWeb = "Web"

	DeviceAndroid = "Android"
	DeviceIOS     = "iOS"
)

// Location is a city served by the platform.
type Location struct {
	LocationID   LocationID
	City         string
	State        string
	ZipCode      string
	ActiveFlag   Flag
	CreatedDate  time.Time
	ModifiedDate *time.Time
}

var locationColumns = []string{
	"LocationID", "City", "State", "ZipCode", "ActiveFlag", "CreatedDate", "ModifiedDate",
}

func (l Location) values() []any {
	return []any{int64(l.LocationID), l.City, l.State, l.ZipCode, string(l.ActiveFlag),
		l.CreatedDate, l.ModifiedDate}
}

// Restaurant belongs to one location.
type Restaurant struct {
	RestaurantID   RestaurantID
	Name           string
	CuisineType    string
	PricingFor2    int64
	Phone          string
	OperatingHours string
	LocationID     LocationID
	ActiveFlag     Flag
	OpenStatus     string
	Locality       string
	Address        string
	Latitude       float64
	Longitude      float64
	CreatedDate    time.Time
	ModifiedDate   time.Time
}

var restaurantColumns = []string{
	"RestaurantID", "Name", "CuisineType", "Pricing_for_2", "Restaurant_Phone",
	"OperatingHours", "LocationID", "ActiveFlag", "OpenStatus", "Locality",
	"Restaurant_Address", "Latitude", "Longitude", "CreatedDate", "ModifiedDate",
}

func (r Restaurant) values() []any {
	return []any{int64(r.RestaurantID), r.Name, r.CuisineType, r.PricingFor2, r.Phone,
		r.OperatingHours, int64(r.LocationID), string(r.ActiveFlag), r.OpenStatus, r.Locality,
		r.Address, r.Latitude, r.Longitude, r.CreatedDate, r.ModifiedDate}
}

// MenuItem is one dish on a restaurant's menu.
type MenuItem struct {
	MenuID       MenuID
	RestaurantID RestaurantID
	ItemName     string
	Description  string
	Price        int64
	Category     string
	Availability bool
	ItemType     string
	CreatedDate  time.Time
	ModifiedDate time.Time
}

var menuItemColumns = []string{
	"MenuID", "RestaurantID", "ItemName", "Description", "Price", "Category",
	"Availability", "ItemType", "CreatedDate", "ModifiedDate",
}

func (m MenuItem) values() []any {
	return []any{int64(m.MenuID), int64(m.RestaurantID), m.ItemName, m.Description, m.Price,
		m.Category, m.Availability, m.ItemType, m.CreatedDate, m.ModifiedDate}
}

// Preferences is stored as JSON text in the customer table.
type Preferences struct {
	FoodPreference string   `json:"FoodPreference"`
	CuisineTypes   []string `json:"CuisineTypes"`
}

// Customer is an account holder.
type Customer struct {
	CustomerID   CustomerID
	Name         string
	Mobile       string
	Email        string
	LoginByUsing string
	Gender       string
	DOB          pgtype.Date
	Anniversary  pgtype.Date
	Preferences  string
	CreatedDate  time.Time
	ModifiedDate time.Time
}

var customerColumns = []string{
	"CustomerID", "Name", "Mobile", "Email", "LoginByUsing", "Gender", "DOB",
	"Anniversary", "Preferences", "CreatedDate", "ModifiedDate",
}

func (c Customer) values() []any {
	return []any{int64(c.CustomerID), c.Name, c.Mobile, c.Email, c.LoginByUsing, c.Gender,
		c.DOB, c.Anniversary, c.Preferences, c.CreatedDate, c.ModifiedDate}
}

// Address is a delivery address of a customer in one location.
type Address struct {
	AddressID    AddressID
	CustomerID   CustomerID
	LocationID   LocationID
	FlatNo       string
	Floor        *string
	Building     string
	Landmark     string
	Locality     string
	City         string
	State        string
	Pincode      string
	Coordinates  string
	PrimaryFlag  Flag
	AddressType  string
	CreatedDate  time.Time
	ModifiedDate *time.Time
}

var addressColumns = []string{
	"AddressID", "CustomerID", "LocationID", "FlatNo", "Floor", "Building", "Landmark",
	"Locality", "City", "State", "Pincode", "Coordinates", "PrimaryFlag", "AddressType",
	"CreatedDate", "ModifiedDate",
}

func (a Address) values() []any {
	return []any{int64(a.AddressID), int64(a.CustomerID), int64(a.LocationID), a.FlatNo,
		a.Floor, a.Building, a.Landmark, a.Locality, a.City, a.State, a.Pincode,
		a.Coordinates, string(a.PrimaryFlag), a.AddressType, a.CreatedDate, a.ModifiedDate}
}

// LoginAudit records one customer login. App logins carry device fields,
// web logins carry only the browser.
type LoginAudit struct {
	LoginID          LoginID
	CustomerID       CustomerID
	LoginType        string
	DeviceInterface  *string
	MobileDeviceName *string
	WebInterface     *string
	LastLogin        time.Time
}

var loginAuditColumns = []string{
	"LoginID", "CustomerID", "LoginType", "DeviceInterface", "MobileDeviceName",
	"WebInterface", "LastLogin",
}

func (l LoginAudit) values() []any {
	return []any{int64(l.LoginID), int64(l.CustomerID), l.LoginType, l.DeviceInterface,
		l.MobileDeviceName, l.WebInterface, l.LastLogin}
}

// Order is placed by a customer at a restaurant. TotalAmount stays zero
// until ApplyOrderTotals derives it from the order's items.
type Order struct {
	OrderID       OrderID
	CustomerID    CustomerID
	RestaurantID  RestaurantID
	AddressID     *AddressID
	OrderDate     time.Time
	TotalAmount   int64
	Status        OrderStatus
	PaymentMethod string
	CreatedDate   time.Time
	ModifiedDate  time.Time
}

var orderColumns = []string{
	"OrderID", "CustomerID", "RestaurantID", "AddressID", "OrderDate", "TotalAmount",
	"Status", "PaymentMethod", "CreatedDate", "ModifiedDate",
}

func (o Order) values() []any {
	var addr *int64
	if o.AddressID != nil {
		v := int64(*o.AddressID)
		addr = &v
	}
	return []any{int64(o.OrderID), int64(o.CustomerID), int64(o.RestaurantID), addr,
		o.OrderDate, o.TotalAmount, string(o.Status), o.PaymentMethod, o.CreatedDate,
		o.ModifiedDate}
}

// OrderItem is one line of an order with the menu price at order time.
type OrderItem struct {
	OrderItemID  OrderItemID
	OrderID      OrderID
	MenuID       MenuID
	Quantity     int64
	Price        int64
	Subtotal     int64
	CreatedDate  time.Time
	ModifiedDate time.Time
}

var orderItemColumns = []string{
	"OrderItemID", "OrderID", "MenuID", "Quantity", "Price", "Subtotal",
	"CreatedDate", "ModifiedDate",
}

func (i OrderItem) values() []any {
	return []any{int64(i.OrderItemID), int64(i.OrderID), int64(i.MenuID), i.Quantity,
		i.Price, i.Subtotal, i.CreatedDate, i.ModifiedDate}
}

// DeliveryAgent is a rider based in one location.
type DeliveryAgent struct {
	DeliveryAgentID DeliveryAgentID
	Name            string
	Phone           string
	VehicleType     string
	LocationID      LocationID
	Status          string
	Gender          string
	Rating          float64
	CreatedDate     time.Time
	ModifiedDate    time.Time
}

// Agent statuses.
const (
	AgentActive   = "Active"
	AgentInactive = "Inactive"
)

var deliveryAgentColumns = []string{
	"DeliveryAgentID", "Name", "Phone", "VehicleType", "LocationID", "Status", "Gender",
	"Rating", "CreatedDate", "ModifiedDate",
}

func (a DeliveryAgent) values() []any {
	return []any{int64(a.DeliveryAgentID), a.Name, a.Phone, a.VehicleType,
		int64(a.LocationID), a.Status, a.Gender, a.Rating, a.CreatedDate, a.ModifiedDate}
}

// Delivery is the single delivery of a non-canceled order.
type Delivery struct {
	DeliveryID      DeliveryID
	OrderID         OrderID
	DeliveryAgentID DeliveryAgentID
	DeliveryStatus  DeliveryStatus
	EstimatedTime   string
	AddressID       AddressID
	DeliveryDate    *time.Time
	CreatedDate     time.Time
	ModifiedDate    time.Time
}

var deliveryColumns = []string{
	"DeliveryID", "OrderID", "DeliveryAgentID", "DeliveryStatus", "EstimatedTime",
	"AddressID", "DeliveryDate", "CreatedDate", "ModifiedDate",
}

func (d Delivery) values() []any {
	return []any{int64(d.DeliveryID), int64(d.OrderID), int64(d.DeliveryAgentID),
		string(d.DeliveryStatus), d.EstimatedTime, int64(d.AddressID), d.DeliveryDate,
		d.CreatedDate, d.ModifiedDate}
}

func ptr[T any](v T) *T {
	return &v
}

func pgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}
