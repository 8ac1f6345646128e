// Package console is a text front end for the restaurant. ServerView and
// KitchenView render to an io.Writer and Session turns input lines into
// gestures on the active controllers.
//
// Every number a user can type refers to a record built at render time
// (a menu entry, an order line, a kitchen button), so a command always acts
// on the entity that was on screen when it was drawn.
package console
