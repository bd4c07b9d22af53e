// Copyright 2024 Logistics Dashboard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the sql.DB connection and provides access to stores
type DB struct {
	*sql.DB
	Regions    *RegionStore
	Customers  *CustomerStore
	Deliveries *DeliveryStore
	Attempts   *AttemptStore
	Insurance  *InsuranceStore
	Claims     *ClaimStore
	Trends     *TrendStore
	Stats      *StatsStore
}

// Open opens a database connection and initializes stores
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Enable foreign key constraints in SQLite
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create the wrapper
	database := NewDB(db)

	// Run migrations
	if err := database.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database, nil
}

// NewDB wraps an existing connection without running migrations.
func NewDB(db *sql.DB) *DB {
	return &DB{
		DB:         db,
		Regions:    NewRegionStore(db),
		Customers:  NewCustomerStore(db),
		Deliveries: NewDeliveryStore(db),
		Attempts:   NewAttemptStore(db),
		Insurance:  NewInsuranceStore(db),
		Claims:     NewClaimStore(db),
		Trends:     NewTrendStore(db),
		Stats:      NewStatsStore(db),
	}
}

// migrate creates the database schema
func (db *DB) migrate() error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Schema is the full reporting schema. Exposed so tests and the seeder can
// create it against their own connections.
const Schema = `
	CREATE TABLE IF NOT EXISTS regions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		performance INTEGER NOT NULL DEFAULT 0 CHECK (performance BETWEEN 0 AND 100)
	);

	CREATE TABLE IF NOT EXISTS customers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		address TEXT,
		loyalty_points INTEGER NOT NULL DEFAULT 0,
		tier TEXT NOT NULL DEFAULT 'STANDARD'
	);

	CREATE TABLE IF NOT EXISTS deliveries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tracking_number TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL DEFAULT 'PENDING',
		customer_id INTEGER NOT NULL,
		region_id INTEGER NOT NULL,
		destination TEXT NOT NULL,
		expected_delivery DATETIME NOT NULL,
		actual_delivery DATETIME,
		delay REAL,
		priority TEXT NOT NULL DEFAULT 'STANDARD',
		weight REAL NOT NULL DEFAULT 0,
		dimensions TEXT,
		signature_required BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE,
		FOREIGN KEY (region_id) REFERENCES regions(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS delivery_attempts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		delivery_id INTEGER NOT NULL,
		attempted_at DATETIME NOT NULL,
		outcome TEXT NOT NULL,
		notes TEXT,
		FOREIGN KEY (delivery_id) REFERENCES deliveries(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS insurance_policies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		delivery_id INTEGER NOT NULL UNIQUE,
		coverage_amount REAL NOT NULL,
		premium REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		FOREIGN KEY (delivery_id) REFERENCES deliveries(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS claims (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		delivery_id INTEGER NOT NULL,
		customer_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		amount REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		description TEXT NOT NULL,
		resolution TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (delivery_id) REFERENCES deliveries(id) ON DELETE CASCADE,
		FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS delivery_trends (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date DATETIME NOT NULL UNIQUE,
		deliveries INTEGER NOT NULL DEFAULT 0,
		on_time INTEGER NOT NULL DEFAULT 0,
		delayed INTEGER NOT NULL DEFAULT 0,
		CHECK (on_time + delayed <= deliveries)
	);

	CREATE INDEX IF NOT EXISTS idx_deliveries_status ON deliveries(status);
	CREATE INDEX IF NOT EXISTS idx_deliveries_priority ON deliveries(priority);
	CREATE INDEX IF NOT EXISTS idx_deliveries_region ON deliveries(region_id);
	CREATE INDEX IF NOT EXISTS idx_deliveries_created ON deliveries(created_at);
	CREATE INDEX IF NOT EXISTS idx_attempts_delivery ON delivery_attempts(delivery_id);
	CREATE INDEX IF NOT EXISTS idx_claims_created ON claims(created_at);
	CREATE INDEX IF NOT EXISTS idx_insurance_status ON insurance_policies(status);
	CREATE INDEX IF NOT EXISTS idx_trends_date ON delivery_trends(date);
`

// IsHealthy checks if the database connection is healthy
func (db *DB) IsHealthy() error {
	return db.Ping()
}
