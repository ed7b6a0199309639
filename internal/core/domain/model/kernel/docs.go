// Package kernel holds the shared building blocks of the domain model:
// the UUID value object used as identifier for every entity and aggregate,
// and the ConstructorGuard that keeps domain objects from being created
// by direct struct initialization.
package kernel
