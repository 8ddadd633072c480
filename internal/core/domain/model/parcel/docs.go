// Package parcel contains the Parcel aggregate and its status vocabulary.
// The aggregate owns the delivery-status state machine (assignment, pickup,
// transit, delivery) together with the orthogonal payment and cash-out axes,
// and enforces the set-once semantics of the lifecycle timestamps.
package parcel
