package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/render"
	"github.com/pkordes/travel-planner/internal/schedule"
	"github.com/pkordes/travel-planner/internal/service"
	"github.com/pkordes/travel-planner/internal/view"
)

// SubmitPlan handles a submit of the trip form. Invalid input marks the
// failing fields, alerts the user and returns a domain.ErrValidation error.
// Valid input puts the submit button into its loading state and schedules
// the plan to appear after the plan delay; a pending plan from an earlier
// submit is replaced.
func (c *Controller) SubmitPlan(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	req, err := c.readPlanForm()
	if err != nil {
		c.report(ctx, "submit_plan", err)
		return err
	}
	if err := c.validatePlan(ctx, req); err != nil {
		return err
	}

	if c.pendingPlan != nil {
		c.pendingPlan.Cancel()
	}
	c.setBusy(ctx, true)
	c.state.Generating = true

	bg := context.WithoutCancel(ctx)
	var task schedule.Task
	task = c.after(c.planDelay, func() {
		// A timer that fired before a later submit or Close cancelled it
		// still runs; only the current task may show its plan.
		if c.pendingPlan != task {
			return
		}
		c.pendingPlan = nil
		c.state.Generating = false
		c.setBusy(bg, false)
		// The request was validated on submit; a failure here is logged only.
		if _, err := c.generatePlan(bg, req); err != nil {
			c.report(bg, "generate_plan", err)
		}
	})
	c.pendingPlan = task
	c.log.DebugContext(ctx, "plan scheduled", "to", req.To, "delay", c.planDelay)
	return nil
}

func (c *Controller) readPlanForm() (service.PlanRequest, error) {
	var vals [4]string
	for i, f := range []string{view.FieldFrom, view.FieldTo, view.FieldBudget, view.FieldTravelers} {
		v, err := c.view.FieldValue(view.FormTrip, f)
		if err != nil {
			return service.PlanRequest{}, fmt.Errorf("controller.readPlanForm: %w", err)
		}
		vals[i] = v
	}
	return service.NewPlanRequest(vals[0], vals[1], vals[2], vals[3]), nil
}

// validatePlan clears old field errors, marks each invalid field and alerts.
func (c *Controller) validatePlan(ctx context.Context, req service.PlanRequest) error {
	if err := c.view.ClearFieldErrors(view.FormTrip); err != nil {
		c.report(ctx, "validate_plan", err)
	}

	err := req.Validate()
	if err == nil {
		return nil
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			if ferr := c.view.SetFieldError(view.FormTrip, f.Field, f.Message); ferr != nil {
				c.report(ctx, "validate_plan", ferr)
			}
		}
	}
	c.view.Alert(msgPlanInvalid)
	return fmt.Errorf("controller.SubmitPlan: %w", err)
}

func (c *Controller) generatePlan(ctx context.Context, req service.PlanRequest) (domain.Plan, error) {
	plan, err := c.plans.Generate(ctx, req)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("controller.generatePlan: %w", err)
	}
	if err := c.displayPlan(plan); err != nil {
		return domain.Plan{}, fmt.Errorf("controller.generatePlan: %w", err)
	}
	c.log.InfoContext(ctx, "plan generated",
		"from", plan.From, "to", plan.Destination,
		"budget", plan.TotalBudget, "estimate", plan.TotalEstimated)
	return plan, nil
}

// displayPlan fills the plan section and reveals it.
func (c *Controller) displayPlan(plan domain.Plan) error {
	flights, err := render.Flights(plan)
	if err != nil {
		return err
	}
	hotel, err := render.Hotel(plan)
	if err != nil {
		return err
	}
	activities, err := render.Activities(plan)
	if err != nil {
		return err
	}
	msg, color := render.BudgetMessage(plan)

	steps := []func() error{
		func() error { return c.view.SetHTML(view.FlightDetails, flights) },
		func() error { return c.view.SetHTML(view.HotelDetails, hotel) },
		func() error { return c.view.SetHTML(view.ActivitiesList, activities) },
		func() error { return c.view.SetText(view.TotalCost, render.Rupees(plan.TotalEstimated)) },
		func() error { return c.view.SetText(view.BudgetMessage, msg) },
		func() error { return c.view.SetColor(view.BudgetMessage, color) },
		func() error { return c.view.SetHidden(view.TripPlan, false) },
		func() error { return c.view.ScrollTo(view.TripPlan) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) setBusy(ctx context.Context, busy bool) {
	if err := c.view.SetBusy(view.FormTrip, busy); err != nil {
		c.report(ctx, "set_busy", err)
	}
}
