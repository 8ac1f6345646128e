package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"oorms/internal/core/application/controllers"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/ports"
	"oorms/internal/pkg/errs"
)

// ErrUnknownCommand is returned for input that is not a command of the active screen.
var ErrUnknownCommand = errors.New("unknown command")

const helpText = `Commands:
  table N    open table N                (floor plan)
  seat N     open the order of seat N    (table)
  done       back to the floor plan      (table)
  add N      add menu item N             (order)
  x N        cancel order line N         (order)
  place      send new items to kitchen   (order)
  cancel     drop items not yet sent     (order)
  k N        press kitchen button N      (kitchen, any time)
  help       show this text
  quit       leave`

type command struct {
	verb string
	arg  int
}

// Session reads commands and turns them into gestures. Each command runs on
// the executor, so views are drawn from the same goroutine that mutates the model.
type Session struct {
	in         io.Reader
	out        io.Writer
	executor   ports.Executor
	restaurant *restaurant.Restaurant
	server     *ServerView
	kitchen    *KitchenView
	logger     *slog.Logger
}

// NewSession wires a session to both views.
func NewSession(
	in io.Reader,
	out io.Writer,
	executor ports.Executor,
	r *restaurant.Restaurant,
	server *ServerView,
	kitchen *KitchenView,
	logger *slog.Logger,
) *Session {
	return &Session{
		in:         in,
		out:        out,
		executor:   executor,
		restaurant: r,
		server:     server,
		kitchen:    kitchen,
		logger:     logger.With("component", "Session"),
	}
}

// Run processes input until quit, end of input or ctx is done. Mistakes in
// commands are printed and the session carries on; a failing executor ends it.
func (s *Session) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, parseErr := parseCommand(line)
		if cmd.verb == "quit" {
			return nil
		}

		err := s.executor.Do(ctx, func() error {
			err := parseErr
			if err == nil {
				err = s.handle(cmd)
			}
			if err != nil {
				s.logger.Debug("command rejected", "line", line, "error", err)
				fmt.Fprintf(s.out, "error: %v\n", err)
			}
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}

	return scanner.Err()
}

func (s *Session) handle(cmd command) error {
	if cmd.verb == "help" {
		fmt.Fprintln(s.out, helpText)
		return nil
	}
	if cmd.verb == "k" {
		return s.pressKitchenButton(cmd.arg)
	}

	controller := s.server.Controller()
	s.logger.Info("gesture", "command", cmd.verb, "arg", cmd.arg, "mode", controller.Mode().String())

	switch c := controller.(type) {
	case *controllers.RestaurantController:
		if cmd.verb == "table" {
			return c.TableTouched(cmd.arg)
		}
	case *controllers.TableController:
		switch cmd.verb {
		case "seat":
			return c.SeatTouched(cmd.arg)
		case "done":
			c.Done()
			return nil
		}
	case *controllers.OrderController:
		switch cmd.verb {
		case "add":
			item, err := s.restaurant.MenuItem(cmd.arg)
			if err != nil {
				return err
			}
			return c.AddItem(item)
		case "x":
			line, err := s.server.Line(cmd.arg)
			if err != nil {
				return err
			}
			return c.RemoveItem(line.Item)
		case "place":
			return c.UpdateOrder()
		case "cancel":
			c.CancelChanges()
			return nil
		}
	}

	return fmt.Errorf("%w %q on the %s screen", ErrUnknownCommand, cmd.verb, controller.Mode())
}

func (s *Session) pressKitchenButton(n int) error {
	button, err := s.kitchen.Button(n)
	if err != nil {
		return err
	}

	s.logger.Info("gesture", "command", "k", "arg", n,
		"table", button.Ticket.Table, "seat", button.Ticket.Seat, "action", button.Ticket.Action)
	return s.kitchen.Controller().ButtonPressed(button.Ticket.Item)
}

func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	cmd := command{verb: fields[0]}

	switch cmd.verb {
	case "table", "seat", "add", "x", "k":
		if len(fields) != 2 {
			return cmd, errs.NewValueIsRequiredError(cmd.verb + " number")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return cmd, errs.NewValueIsInvalidErrorWithCause(cmd.verb+" number", err)
		}
		cmd.arg = n
	case "done", "place", "cancel", "help", "quit":
		if len(fields) != 1 {
			return cmd, fmt.Errorf("%w: %s takes no argument", ErrUnknownCommand, cmd.verb)
		}
	default:
		return cmd, fmt.Errorf("%w %q, type help", ErrUnknownCommand, cmd.verb)
	}

	return cmd, nil
}
