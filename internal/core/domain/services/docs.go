// Package services provides domain services that implement business logic
// spanning multiple domain entities of the order management system.
//
// The package includes:
//   - PriceCalculator: the pure pricing engine combining tiered unit prices,
//     terminology surcharges, company fixed-price offers, and campaign discounts
//   - DeliveryEstimator: the potential-delivery-date estimate derived from a
//     document's size and a configured daily throughput
//
// Domain services hold no state of their own and perform no I/O; callers load
// the reference data and pass it in.
package services
