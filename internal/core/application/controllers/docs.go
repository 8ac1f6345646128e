// Package controllers implements the navigation of the server and kitchen
// screens.
//
// A view always has exactly one active controller. The controller decides
// what the view draws (CreateUI) and handles the gestures that make sense in
// its mode. A gesture either redraws the current view only, or, when other
// views must show the change, broadcasts through Restaurant.NotifyViews.
//
// Server side modes:
//
//	RestaurantMode --TableTouched(n)--> TableMode --SeatTouched(s)--> OrderMode
//	      ^                                |  ^                           |
//	      +-------------Done()-------------+  +--UpdateOrder/CancelChanges+
//
// The kitchen side has a single mode, KitchenMode.
//
// Gestures that break a precondition (unknown table, seat out of range,
// cancelling an item that is already cooking, advancing a served item) return
// an error and change neither the model nor the navigation.
package controllers
