package fooddata

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema SQL for loading a generated dataset. Column names are the
// snake_case form of the CSV headers.
const createSchemaSQL = `
-- Location: cities served
CREATE TABLE IF NOT EXISTS location (
    location_id     BIGINT PRIMARY KEY,
    city            VARCHAR(100) NOT NULL,
    state           VARCHAR(100) NOT NULL,
    zip_code        VARCHAR(10) NOT NULL,
    active_flag     VARCHAR(3) NOT NULL,
    created_date    TIMESTAMP NOT NULL,
    modified_date   TIMESTAMP
);

-- Restaurant: attached to one location
CREATE TABLE IF NOT EXISTS restaurant (
    restaurant_id       BIGINT PRIMARY KEY,
    name                VARCHAR(100) NOT NULL,
    cuisine_type        VARCHAR(200) NOT NULL,
    pricing_for_2       INTEGER NOT NULL,
    restaurant_phone    VARCHAR(20) NOT NULL,
    operating_hours     VARCHAR(50) NOT NULL,
    location_id         BIGINT NOT NULL REFERENCES location(location_id),
    active_flag         VARCHAR(3) NOT NULL,
    open_status         VARCHAR(10) NOT NULL,
    locality            VARCHAR(100),
    restaurant_address  VARCHAR(255),
    latitude            DOUBLE PRECISION,
    longitude           DOUBLE PRECISION,
    created_date        TIMESTAMP NOT NULL,
    modified_date       TIMESTAMP NOT NULL
);

-- Menu item: dishes of a restaurant
CREATE TABLE IF NOT EXISTS menu_item (
    menu_id         BIGINT PRIMARY KEY,
    restaurant_id   BIGINT NOT NULL REFERENCES restaurant(restaurant_id),
    item_name       VARCHAR(100) NOT NULL,
    description     TEXT,
    price           BIGINT NOT NULL,
    category        VARCHAR(50) NOT NULL,
    availability    BOOLEAN NOT NULL,
    item_type       VARCHAR(10) NOT NULL,
    created_date    TIMESTAMP NOT NULL,
    modified_date   TIMESTAMP NOT NULL
);

-- Customer: account holders
CREATE TABLE IF NOT EXISTS customer (
    customer_id     BIGINT PRIMARY KEY,
    name            VARCHAR(100) NOT NULL,
    mobile          VARCHAR(15) NOT NULL,
    email           VARCHAR(255) NOT NULL,
    login_by_using  VARCHAR(20) NOT NULL,
    gender          VARCHAR(10) NOT NULL,
    dob             DATE NOT NULL,
    anniversary     DATE,
    preferences     JSONB NOT NULL,
    created_date    TIMESTAMP NOT NULL,
    modified_date   TIMESTAMP NOT NULL
);

-- Customer address: the first one per customer is primary
CREATE TABLE IF NOT EXISTS customer_address (
    address_id      BIGINT PRIMARY KEY,
    customer_id     BIGINT NOT NULL REFERENCES customer(customer_id),
    location_id     BIGINT NOT NULL REFERENCES location(location_id),
    flat_no         VARCHAR(10) NOT NULL,
    floor           VARCHAR(10),
    building        VARCHAR(200) NOT NULL,
    landmark        VARCHAR(200),
    locality        VARCHAR(100),
    city            VARCHAR(100) NOT NULL,
    state           VARCHAR(100) NOT NULL,
    pincode         VARCHAR(10) NOT NULL,
    coordinates     VARCHAR(50),
    primary_flag    VARCHAR(3) NOT NULL,
    address_type    VARCHAR(10) NOT NULL,
    created_date    TIMESTAMP NOT NULL,
    modified_date   TIMESTAMP
);

-- Login audit: app or web logins
CREATE TABLE IF NOT EXISTS login_audit (
    login_id            BIGINT PRIMARY KEY,
    customer_id         BIGINT NOT NULL REFERENCES customer(customer_id),
    login_type          VARCHAR(10) NOT NULL,
    device_interface    VARCHAR(20),
    mobile_device_name  VARCHAR(50),
    web_interface       VARCHAR(20),
    last_login          TIMESTAMP NOT NULL
);

-- Orders: total_amount is the sum of the order's items
CREATE TABLE IF NOT EXISTS orders (
    order_id        BIGINT PRIMARY KEY,
    customer_id     BIGINT NOT NULL REFERENCES customer(customer_id),
    restaurant_id   BIGINT NOT NULL REFERENCES restaurant(restaurant_id),
    address_id      BIGINT REFERENCES customer_address(address_id),
    order_date      TIMESTAMP NOT NULL,
    total_amount    BIGINT NOT NULL,
    status          VARCHAR(20) NOT NULL,
    payment_method  VARCHAR(20) NOT NULL,
    created_date    TIMESTAMP NOT NULL,
    modified_date   TIMESTAMP NOT NULL
);

-- Order item: line items with the menu price at order time
CREATE TABLE IF NOT EXISTS order_item (
    order_item_id   BIGINT PRIMARY KEY,
    order_id        BIGINT NOT NULL REFERENCES orders(order_id),
    menu_id         BIGINT NOT NULL REFERENCES menu_item(menu_id),
    quantity        INTEGER NOT NULL,
    price           BIGINT NOT NULL,
    subtotal        BIGINT NOT NULL,
    created_date    TIMESTAMP NOT NULL,
    modified_date   TIMESTAMP NOT NULL
);

-- Delivery agent: riders
CREATE TABLE IF NOT EXISTS delivery_agent (
    delivery_agent_id   BIGINT PRIMARY KEY,
    name                VARCHAR(100) NOT NULL,
    phone               VARCHAR(15) NOT NULL,
    vehicle_type        VARCHAR(20) NOT NULL,
    location_id         BIGINT NOT NULL REFERENCES location(location_id),
    status              VARCHAR(10) NOT NULL,
    gender              VARCHAR(10) NOT NULL,
    rating              DOUBLE PRECISION NOT NULL,
    created_date        TIMESTAMP NOT NULL,
    modified_date       TIMESTAMP NOT NULL
);

-- Delivery: at most one per order
CREATE TABLE IF NOT EXISTS delivery (
    delivery_id         BIGINT PRIMARY KEY,
    order_id            BIGINT NOT NULL UNIQUE REFERENCES orders(order_id),
    delivery_agent_id   BIGINT NOT NULL REFERENCES delivery_agent(delivery_agent_id),
    delivery_status     VARCHAR(20) NOT NULL,
    estimated_time      VARCHAR(20) NOT NULL,
    address_id          BIGINT NOT NULL REFERENCES customer_address(address_id),
    delivery_date       TIMESTAMP,
    created_date        TIMESTAMP NOT NULL,
    modified_date       TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_restaurant_location ON restaurant(location_id);
CREATE INDEX IF NOT EXISTS idx_menu_item_restaurant ON menu_item(restaurant_id);
CREATE INDEX IF NOT EXISTS idx_address_customer ON customer_address(customer_id);
CREATE INDEX IF NOT EXISTS idx_login_audit_customer ON login_audit(customer_id);
CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id);
CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders(restaurant_id);
CREATE INDEX IF NOT EXISTS idx_order_item_order ON order_item(order_id);
CREATE INDEX IF NOT EXISTS idx_delivery_agent ON delivery(delivery_agent_id);
`

// Drop schema SQL
const dropSchemaSQL = `
DROP TABLE IF EXISTS delivery CASCADE;
DROP TABLE IF EXISTS delivery_agent CASCADE;
DROP TABLE IF EXISTS order_item CASCADE;
DROP TABLE IF EXISTS orders CASCADE;
DROP TABLE IF EXISTS login_audit CASCADE;
DROP TABLE IF EXISTS customer_address CASCADE;
DROP TABLE IF EXISTS customer CASCADE;
DROP TABLE IF EXISTS menu_item CASCADE;
DROP TABLE IF EXISTS restaurant CASCADE;
DROP TABLE IF EXISTS location CASCADE;
`

// CreateSchema creates the food delivery tables.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, createSchemaSQL)
	return err
}

// DropSchema drops the food delivery tables.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, dropSchemaSQL)
	return err
}
