// Package user contains the identity aggregate and the Role enum.
//
// A User's role is fixed at creation: Client, Owner, Delivery, or Admin.
// All authorization decisions start from the role; resource-level ownership
// checks are layered on top by the domain services.
package user
