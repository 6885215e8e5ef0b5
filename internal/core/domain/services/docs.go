// Package services provides domain services that operate across the order,
// restaurant, and user aggregates.
//
// The package includes:
//   - PricingEngine: prices a customer's cart against a restaurant's menu
//   - AuthorizationPolicy: role and ownership checks for every gated operation
//
// Both services are pure decision/computation functions: they hold no state,
// touch no storage, and produce no side effects. Orchestration — persisting
// the outcome and publishing events — is the job of the use case handlers.
package services
