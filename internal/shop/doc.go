// Package shop holds the shopping state: the stores, their items and
// loyalty cards, and the active store selection.
//
// State is the only mutation surface. It loads a snapshot through its
// Persister when constructed and saves the full snapshot after every
// change. Operations never fail: an unknown id, or an item or card
// operation with no active store, leaves the state untouched and reports
// false.
package shop
