package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/session"
	"github.com/pkordes/travel-planner/internal/view"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"fieldOf":  fieldOf,
	"inc":      func(i int) int { return i + 1 },
	"navLabel": navLabel,
}).ParseFS(templatesFS, "templates/*.html"))

var navLabels = map[string]string{
	domain.PanelHome:    "Home",
	domain.PanelAccount: "Account",
	domain.PanelTrips:   "My Trips",
	domain.PanelReviews: "Reviews",
	domain.PanelMore:    "More",
}

func navLabel(name string) string {
	if l, ok := navLabels[name]; ok {
		return l
	}
	return name
}

// fieldView is one labelled input of a form.
type fieldView struct {
	Name, Label, Type, Placeholder string
	Value, Error                   string
	Focused                        bool
}

func fieldOf(p pageData, form, name, label, typ, placeholder string) fieldView {
	return fieldView{
		Name:        name,
		Label:       label,
		Type:        typ,
		Placeholder: placeholder,
		Value:       p.Value(form, name),
		Error:       p.Error(form, name),
		Focused:     p.Focused(form, name),
	}
}

// Destinations offered as cards on the home panel.
var destinations = []destinationCard{
	{Name: "Goa", Blurb: "Beaches and nightlife"},
	{Name: "Kerala", Blurb: "Backwaters and hills"},
	{Name: "Rajasthan", Blurb: "Forts and deserts"},
	{Name: "Ladakh", Blurb: "High passes and monasteries"},
}

type destinationCard struct {
	Name  string
	Blurb string
}

// pageData is a view.Page plus what the template derives from session state.
type pageData struct {
	view.Page
	Generating   bool
	Destinations []destinationCard
}

// Refresh asks the browser to reload shortly so scheduled changes (a plan
// appearing, a banner going away) show up without user input.
func (p pageData) Refresh() bool {
	return p.Generating || len(p.Banners) > 0
}

func (p pageData) Active(name string) bool {
	for _, panel := range p.Panels {
		if panel.Name == name {
			return panel.Active
		}
	}
	return false
}

func (p pageData) Value(form, field string) string {
	return p.Forms[form].Values[field]
}

func (p pageData) Error(form, field string) string {
	return p.Forms[form].Errors[field]
}

func (p pageData) Busy(form string) bool {
	return p.Forms[form].Busy
}

func (p pageData) Focused(form, field string) bool {
	return p.FocusForm == form && p.FocusField == field
}

// BannersFor returns the banners shown at the top of panel name.
func (p pageData) BannersFor(name string) []view.Banner {
	var out []view.Banner
	for _, b := range p.Banners {
		if b.PanelID == domain.PanelID(name) {
			out = append(out, b)
		}
	}
	return out
}

// GetPage handles GET /. Rendering consumes the session's pending alerts,
// focus and scroll requests.
func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error", "no session")
		return
	}

	data := pageData{
		Page:         sess.Page(),
		Generating:   sess.Controller.State().Generating,
		Destinations: destinations,
	}

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page", data); err != nil {
		s.log.ErrorContext(r.Context(), "failed to render page", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}
