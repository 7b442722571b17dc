package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/pkordes/travel-planner/internal/middleware"
	"github.com/pkordes/travel-planner/internal/session"
	"github.com/pkordes/travel-planner/internal/view"
)

// formFields lists the page's input fields per form. Events carry whatever
// the browser currently shows in them so typed text survives the redirect.
var formFields = map[string][]string{
	view.FormTrip:   {view.FieldFrom, view.FieldTo, view.FieldBudget, view.FieldTravelers},
	view.FormReview: {view.FieldDestination, view.FieldReview},
}

// event runs fn against the request's session and redirects back to the
// page. Failures the controller already surfaced to the user still redirect;
// anything else is a 500.
func (s *Server) event(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, sess *session.Session) error) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error", "no session")
		return
	}

	if err := r.ParseForm(); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", "malformed form body")
		return
	}

	if err := syncForms(r, sess); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := fn(r.Context(), sess); err != nil && !handledByController(err) {
		s.fail(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "event failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "event failed")
}

// syncForms copies posted values for known fields into the session's forms.
func syncForms(r *http.Request, sess *session.Session) error {
	for form, fields := range formFields {
		values := map[string]string{}
		for _, f := range fields {
			if r.PostForm.Has(f) {
				values[f] = r.PostForm.Get(f)
			}
		}
		if len(values) == 0 {
			continue
		}
		if err := sess.Fill(form, values); err != nil {
			return err
		}
	}
	return nil
}

func badParam(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, "bad_request", err.Error())
}

// PostNav handles POST /nav/{page}. Unknown pages leave every panel hidden;
// the controller logs the failure.
func (s *Server) PostNav(w http.ResponseWriter, r *http.Request) {
	var page string
	if err := pathParam(r, "page", &page); err != nil {
		badParam(w, err)
		return
	}
	s.event(w, r, func(ctx context.Context, sess *session.Session) error {
		return sess.Controller.Navigate(ctx, page)
	})
}

// PostPlan handles POST /plan, the trip form submit.
func (s *Server) PostPlan(w http.ResponseWriter, r *http.Request) {
	s.event(w, r, func(ctx context.Context, sess *session.Session) error {
		return sess.Controller.SubmitPlan(ctx)
	})
}

// PostRating handles POST /rating/{action}/{star} where action is hover or
// click. Stars outside 1–5 are ignored by the controller.
func (s *Server) PostRating(w http.ResponseWriter, r *http.Request) {
	var action string
	if err := pathParam(r, "action", &action); err != nil {
		badParam(w, err)
		return
	}
	var star int
	if err := pathParam(r, "star", &star); err != nil {
		badParam(w, err)
		return
	}
	if action != "hover" && action != "click" {
		writeError(w, http.StatusNotFound, "not_found", "unknown rating action")
		return
	}

	s.event(w, r, func(ctx context.Context, sess *session.Session) error {
		if action == "hover" {
			sess.Controller.HoverStar(ctx, star)
		} else {
			sess.Controller.ClickStar(ctx, star)
		}
		return nil
	})
}

// PostRatingLeave handles POST /rating/leave, the pointer leaving the stars.
func (s *Server) PostRatingLeave(w http.ResponseWriter, r *http.Request) {
	s.event(w, r, func(ctx context.Context, sess *session.Session) error {
		sess.Controller.LeaveStars(ctx)
		return nil
	})
}

// PostReview handles POST /reviews, the review form submit.
func (s *Server) PostReview(w http.ResponseWriter, r *http.Request) {
	s.event(w, r, func(ctx context.Context, sess *session.Session) error {
		_, err := sess.Controller.SubmitReview(ctx)
		return err
	})
}

// PostHelpful handles POST /reviews/{id}/helpful.
func (s *Server) PostHelpful(w http.ResponseWriter, r *http.Request) {
	var id int
	if err := pathParam(r, "id", &id); err != nil {
		badParam(w, err)
		return
	}
	s.event(w, r, func(ctx context.Context, sess *session.Session) error {
		sess.Controller.MarkHelpful(ctx, id)
		return nil
	})
}

// PostTripAction handles POST /trips/{id}/{action} for the trip card
// buttons: view, edit and review.
func (s *Server) PostTripAction(w http.ResponseWriter, r *http.Request) {
	var id int
	if err := pathParam(r, "id", &id); err != nil {
		badParam(w, err)
		return
	}
	var action string
	if err := pathParam(r, "action", &action); err != nil {
		badParam(w, err)
		return
	}

	var run func(ctx context.Context, sess *session.Session)
	switch action {
	case "view":
		run = func(ctx context.Context, sess *session.Session) { sess.Controller.ViewTripDetails(ctx, id) }
	case "edit":
		run = func(ctx context.Context, sess *session.Session) { sess.Controller.EditTrip(ctx, id) }
	case "review":
		run = func(ctx context.Context, sess *session.Session) { sess.Controller.LeaveReview(ctx, id) }
	default:
		writeError(w, http.StatusNotFound, "not_found", "unknown trip action")
		return
	}
	s.event(w, r, func(ctx context.Context, sess *session.Session) error {
		run(ctx, sess)
		return nil
	})
}

// PostDestination handles POST /destinations, a click on a destination
// card. The card's name arrives in the "name" form value.
func (s *Server) PostDestination(w http.ResponseWriter, r *http.Request) {
	s.event(w, r, func(ctx context.Context, sess *session.Session) error {
		sess.Controller.SelectDestination(ctx, r.PostForm.Get("name"))
		return nil
	})
}

// PostResetSession handles POST /session/reset. It ends the session and
// clears the cookie; the next page load starts from the sample data.
func (s *Server) PostResetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error", "no session")
		return
	}
	s.sessions.Delete(sess.ID)
	middleware.ClearSessionCookie(w)
	s.log.InfoContext(r.Context(), "session reset", "session_id", sess.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
