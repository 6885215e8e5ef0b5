// Package kernel provides core domain primitives shared by every aggregate.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Price: A value object for monetary amounts in the smallest currency unit
//
// These primitives enforce domain invariants, ensuring that domain objects
// are always in a valid state. They are immutable and thread-safe, making
// them suitable for concurrent use.
package kernel
