// Package models defines the core domain models for the customer portal.
//
// # Identity
//
//   - User: a registered customer account. The password hash never leaves the server.
//
// # Owned records
//
// Every owned record carries the UserID of the account that created it and is only ever
// read back by that account:
//   - Bill: an issued bill, created by the billing import (seeded for now)
//   - MeterReading: a reading submitted by the customer
//   - Incident: a leak, outage or other problem reported by the customer
//
// Owned records are immutable once written.
//
// # Synthesized data
//
//   - Outage: not persisted; built per request from the caller's postcode.
package models
