package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"oorms/internal/adapters/in/console"
	httpadapter "oorms/internal/adapters/in/http"
	"oorms/internal/adapters/out/catalog"
	"oorms/internal/core/application/usecases/queries"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/jobs"
	"oorms/internal/pkg/loop"

	"github.com/labstack/echo/v4"
)

// CompositionRoot builds the object graph. Everything that touches the
// restaurant is handed the same loop.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	restaurant *restaurant.Restaurant
	loop       *loop.Loop
	feed       *httpadapter.KitchenFeed
}

// NewCompositionRoot loads the catalog and builds the restaurant.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	source, err := catalog.Load(config.CatalogFile)
	if err != nil {
		return nil, err
	}
	layout, err := source.Layout(ctx)
	if err != nil {
		return nil, err
	}
	menu, err := source.Menu(ctx)
	if err != nil {
		return nil, err
	}

	r, err := restaurant.NewRestaurant(layout, menu)
	if err != nil {
		return nil, fmt.Errorf("build restaurant: %w", err)
	}

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		restaurant: r,
		loop:       loop.New(logger),
		feed:       httpadapter.NewKitchenFeed(r, logger),
	}, nil
}

func (c *CompositionRoot) Restaurant() *restaurant.Restaurant {
	return c.restaurant
}

// Loop must be running before any view is registered or any handler is called.
func (c *CompositionRoot) Loop() *loop.Loop {
	return c.loop
}

func (c *CompositionRoot) KitchenFeed() *httpadapter.KitchenFeed {
	return c.feed
}

func (c *CompositionRoot) CreateGetFloorPlanQueryHandler() queries.GetFloorPlanQueryHandler {
	return queries.NewGetFloorPlanQueryHandler(c.loop, c.restaurant)
}

func (c *CompositionRoot) CreateGetSeatOrderQueryHandler() queries.GetSeatOrderQueryHandler {
	return queries.NewGetSeatOrderQueryHandler(c.loop, c.restaurant)
}

func (c *CompositionRoot) CreateGetKitchenBoardQueryHandler() queries.GetKitchenBoardQueryHandler {
	return queries.NewGetKitchenBoardQueryHandler(c.loop, c.restaurant)
}

// CreateEcho returns an echo instance with the board routes mounted.
func (c *CompositionRoot) CreateEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpadapter.NewServer(
		c.CreateGetFloorPlanQueryHandler(),
		c.CreateGetSeatOrderQueryHandler(),
		c.CreateGetKitchenBoardQueryHandler(),
		c.feed,
		c.logger,
	).Register(e)
	return e
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.logger,
		jobs.NewKitchenReportJob(c.loop, c.restaurant, c.config.ReportSchedule, c.logger),
	)
}

// RegisterViews registers the kitchen feed and, when out is not nil, the
// console server and kitchen views, then draws them all once. It returns the
// console session, or nil without console.
func (c *CompositionRoot) RegisterViews(ctx context.Context, in io.Reader, out io.Writer) (*console.Session, error) {
	var session *console.Session

	err := c.loop.Do(ctx, func() error {
		if out != nil {
			server, err := console.NewServerView(out, c.restaurant)
			if err != nil {
				return err
			}
			kitchen, err := console.NewKitchenView(out, c.restaurant, c.logger)
			if err != nil {
				return err
			}
			if err := c.restaurant.AddView(server); err != nil {
				return err
			}
			if err := c.restaurant.AddView(kitchen); err != nil {
				return err
			}
			session = console.NewSession(in, out, c.loop, c.restaurant, server, kitchen, c.logger)
		}

		if err := c.restaurant.AddView(c.feed); err != nil {
			return err
		}
		c.restaurant.NotifyViews()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("register views: %w", err)
	}

	return session, nil
}
