// Package kernel provides the value objects shared by the restaurant model.
//
// The package includes:
//   - UUID: identity of entities that adapters need to address, such as order items
//   - Location: a point on the floor plan where a table stands
//   - Money: a non-negative decimal amount used for menu prices and order totals
//
// Every value object is immutable and must be created through its constructor;
// the zero value fails Validate.
package kernel
