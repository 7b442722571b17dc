package controller

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-planner/internal/domain"
)

// ShowPage hides every panel and activates the one named name.
// An unknown name leaves all panels hidden, logs the available panels and
// returns an error wrapping domain.ErrMissingElement; CurrentPage keeps its
// previous value in that case.
func (c *Controller) ShowPage(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showPage(ctx, name)
}

// Navigate handles a click on a nav item: it shows the panel and moves the
// active marker to the clicked item.
func (c *Controller) Navigate(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.showPage(ctx, name); err != nil {
		return err
	}
	c.setNav(ctx, name)
	return nil
}

func (c *Controller) showPage(ctx context.Context, name string) error {
	panels := c.view.PanelIDs()
	if len(panels) == 0 {
		err := fmt.Errorf("controller.ShowPage: %w: no panels", domain.ErrMissingElement)
		c.report(ctx, "show_page", err)
		return err
	}

	for _, id := range panels {
		if err := c.view.SetPanelActive(id, false); err != nil {
			c.report(ctx, "show_page", err)
		}
	}

	target := domain.PanelID(name)
	if err := c.view.SetPanelActive(target, true); err != nil {
		c.log.ErrorContext(ctx, "page not found", "page", target, "available", panels)
		return fmt.Errorf("controller.ShowPage: %w", err)
	}

	c.state.CurrentPage = name
	c.log.DebugContext(ctx, "switched page", "page", name)
	return nil
}

func (c *Controller) setNav(ctx context.Context, name string) {
	if err := c.view.SetNavActive(name); err != nil {
		c.report(ctx, "set_nav", err)
	}
}
