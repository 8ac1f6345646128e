// Package services provides domain services that read across several
// aggregates of the restaurant model.
//
// The package includes:
//   - KitchenBoard: builds what the kitchen has to do, table by table, with
//     the label of the next action for every item
//
// Domain services never mutate the model and never notify views. Callers
// decide what to do with what they return.
package services
