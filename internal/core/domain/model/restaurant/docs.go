// Package restaurant provides the root of the model: the tables, the menu and
// the registry of views that observe them.
//
// Views register once and are told to refresh through NotifyViews. The
// restaurant never renders anything itself; a View reads whatever state it
// needs when its Update method is called.
package restaurant
