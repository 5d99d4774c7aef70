// Package model defines shared data types used across moex-quotes.
//
// Conventions:
//   - Text fields hold cells exactly as ISS rendered them
//   - Prices: shopspring decimal, null when the cell is not a number
//   - Timestamps: int64 microseconds since Unix epoch
//   - IDs: string SECIDs, uuid.UUID for run IDs
package model
