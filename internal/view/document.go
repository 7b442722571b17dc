package view

import (
	"fmt"
	"html/template"
	"maps"
	"slices"

	"github.com/pkordes/travel-planner/internal/domain"
)

// Layout declares which elements exist on a Document.
type Layout struct {
	// Panels are panel names; each becomes element id domain.PanelID(name).
	Panels []string
	// Nav lists the panel names that have a nav item.
	Nav []string
	// Forms maps a form name to its field names.
	Forms map[string][]string
	// Containers are ids usable with SetHTML, SetText, SetColor, SetHidden
	// and ScrollTo.
	Containers []string
	// Hidden are containers that start hidden.
	Hidden []string
	// Stars is the size of the star-rating control; 0 means there is none.
	Stars int
}

// DefaultLayout is the travel planner page.
func DefaultLayout() Layout {
	return Layout{
		Panels: slices.Clone(domain.Panels),
		Nav:    slices.Clone(domain.Panels),
		Forms: map[string][]string{
			FormTrip:   {FieldFrom, FieldTo, FieldBudget, FieldTravelers},
			FormReview: {FieldDestination, FieldReview},
		},
		Containers: []string{
			TripsList, ReviewsList, TripPlan, FlightDetails, HotelDetails,
			ActivitiesList, TotalCost, BudgetMessage, WriteReview,
		},
		Hidden: []string{TripPlan},
		Stars:  StarCount,
	}
}

// Banner is a transient message shown at the top of a panel.
type Banner struct {
	ID      int
	PanelID string
	Message string
}

// Form is the state of one form.
type Form struct {
	Values map[string]string
	Errors map[string]string
	Busy   bool
}

// Panel is the visibility of one panel.
type Panel struct {
	Name   string
	ID     string
	Active bool
}

// Page is a point-in-time copy of a Document for rendering.
type Page struct {
	Panels    []Panel
	ActiveNav string
	Forms     map[string]Form
	Stars     []bool
	HTML      map[string]template.HTML
	Text      map[string]string
	Color     map[string]string
	Hidden    map[string]bool
	Banners   []Banner

	// One-shot effects, delivered by exactly one Snapshot.
	Alerts       []string
	FocusForm    string
	FocusField   string
	ScrollTarget string

	IconPasses int
}

// Document is an in-memory page. It implements View and IconRenderer.
// It is not safe for concurrent use; callers serialize access (the
// controller holds its lock around every call).
type Document struct {
	layout Layout
	panels map[string]bool // element id → active
	nav    string
	forms  map[string]*Form
	stars  []bool
	html   map[string]template.HTML
	text   map[string]string
	color  map[string]string
	hidden map[string]bool

	containers map[string]bool

	banners    []Banner
	nextBanner int

	alerts       []string
	focusForm    string
	focusField   string
	scrollTarget string

	iconPasses int
}

// compile-time checks: Document is both collaborators the controller needs.
var (
	_ View         = (*Document)(nil)
	_ IconRenderer = (*Document)(nil)
)

// NewDocument builds an empty page with the elements declared by l.
// All panels start inactive.
func NewDocument(l Layout) *Document {
	d := &Document{
		layout:     l,
		panels:     make(map[string]bool, len(l.Panels)),
		forms:      make(map[string]*Form, len(l.Forms)),
		stars:      make([]bool, l.Stars),
		html:       map[string]template.HTML{},
		text:       map[string]string{},
		color:      map[string]string{},
		hidden:     map[string]bool{},
		containers: make(map[string]bool, len(l.Containers)),
		nextBanner: 1,
	}
	for _, p := range l.Panels {
		d.panels[domain.PanelID(p)] = false
	}
	for name, fields := range l.Forms {
		f := &Form{Values: map[string]string{}, Errors: map[string]string{}}
		for _, field := range fields {
			f.Values[field] = ""
		}
		d.forms[name] = f
	}
	for _, c := range l.Containers {
		d.containers[c] = true
	}
	for _, h := range l.Hidden {
		if d.containers[h] {
			d.hidden[h] = true
		}
	}
	return d
}

func missing(kind, id string) error {
	return fmt.Errorf("view: %w: %s %q", domain.ErrMissingElement, kind, id)
}

// PanelIDs returns panel element ids in layout order.
func (d *Document) PanelIDs() []string {
	ids := make([]string, 0, len(d.layout.Panels))
	for _, p := range d.layout.Panels {
		ids = append(ids, domain.PanelID(p))
	}
	return ids
}

func (d *Document) SetPanelActive(id string, active bool) error {
	if _, ok := d.panels[id]; !ok {
		return missing("panel", id)
	}
	d.panels[id] = active
	return nil
}

func (d *Document) SetNavActive(page string) error {
	if !slices.Contains(d.layout.Nav, page) {
		return missing("nav item", page)
	}
	d.nav = page
	return nil
}

func (d *Document) field(form, field string) (*Form, error) {
	f, ok := d.forms[form]
	if !ok {
		return nil, missing("form", form)
	}
	if _, ok := f.Values[field]; !ok {
		return nil, missing("field", form+"."+field)
	}
	return f, nil
}

func (d *Document) FieldValue(form, field string) (string, error) {
	f, err := d.field(form, field)
	if err != nil {
		return "", err
	}
	return f.Values[field], nil
}

func (d *Document) SetFieldValue(form, field, value string) error {
	f, err := d.field(form, field)
	if err != nil {
		return err
	}
	f.Values[field] = value
	return nil
}

// ResetForm clears every field value and error of the form.
func (d *Document) ResetForm(form string) error {
	f, ok := d.forms[form]
	if !ok {
		return missing("form", form)
	}
	for k := range f.Values {
		f.Values[k] = ""
	}
	clear(f.Errors)
	return nil
}

func (d *Document) SetFieldError(form, field, message string) error {
	f, err := d.field(form, field)
	if err != nil {
		return err
	}
	f.Errors[field] = message
	return nil
}

func (d *Document) ClearFieldErrors(form string) error {
	f, ok := d.forms[form]
	if !ok {
		return missing("form", form)
	}
	clear(f.Errors)
	return nil
}

func (d *Document) Focus(form, field string) error {
	if _, err := d.field(form, field); err != nil {
		return err
	}
	d.focusForm, d.focusField = form, field
	return nil
}

func (d *Document) SetBusy(form string, busy bool) error {
	f, ok := d.forms[form]
	if !ok {
		return missing("form", form)
	}
	f.Busy = busy
	return nil
}

func (d *Document) HighlightStars(n int) error {
	if len(d.stars) == 0 {
		return missing("control", "star-rating")
	}
	for i := range d.stars {
		d.stars[i] = i < n
	}
	return nil
}

func (d *Document) SetHTML(id string, markup template.HTML) error {
	if !d.containers[id] {
		return missing("container", id)
	}
	d.html[id] = markup
	return nil
}

func (d *Document) SetText(id, text string) error {
	if !d.containers[id] {
		return missing("container", id)
	}
	d.text[id] = text
	return nil
}

func (d *Document) SetColor(id, color string) error {
	if !d.containers[id] {
		return missing("container", id)
	}
	d.color[id] = color
	return nil
}

func (d *Document) SetHidden(id string, hidden bool) error {
	if !d.containers[id] {
		return missing("container", id)
	}
	d.hidden[id] = hidden
	return nil
}

func (d *Document) ScrollTo(id string) error {
	if !d.containers[id] {
		return missing("container", id)
	}
	d.scrollTarget = id
	return nil
}

func (d *Document) Alert(message string) {
	d.alerts = append(d.alerts, message)
}

func (d *Document) ShowBanner(panelID, message string) (int, error) {
	if _, ok := d.panels[panelID]; !ok {
		return 0, missing("panel", panelID)
	}
	b := Banner{ID: d.nextBanner, PanelID: panelID, Message: message}
	d.nextBanner++
	// Newest banner goes first, like inserting before the panel's first child.
	d.banners = slices.Insert(d.banners, 0, b)
	return b.ID, nil
}

// RemoveBanner drops the banner; unknown ids are ignored.
func (d *Document) RemoveBanner(id int) {
	d.banners = slices.DeleteFunc(d.banners, func(b Banner) bool { return b.ID == id })
}

// CreateIcons records an icon pass; the browser performs the real one.
func (d *Document) CreateIcons() {
	d.iconPasses++
}

// Snapshot copies the current state and consumes one-shot effects
// (alerts, focus, scroll) so each is delivered once.
func (d *Document) Snapshot() Page {
	p := Page{
		ActiveNav:    d.nav,
		Forms:        make(map[string]Form, len(d.forms)),
		Stars:        slices.Clone(d.stars),
		HTML:         maps.Clone(d.html),
		Text:         maps.Clone(d.text),
		Color:        maps.Clone(d.color),
		Hidden:       maps.Clone(d.hidden),
		Banners:      slices.Clone(d.banners),
		Alerts:       d.alerts,
		FocusForm:    d.focusForm,
		FocusField:   d.focusField,
		ScrollTarget: d.scrollTarget,
		IconPasses:   d.iconPasses,
	}
	for _, name := range d.layout.Panels {
		id := domain.PanelID(name)
		p.Panels = append(p.Panels, Panel{Name: name, ID: id, Active: d.panels[id]})
	}
	for name, f := range d.forms {
		p.Forms[name] = Form{Values: maps.Clone(f.Values), Errors: maps.Clone(f.Errors), Busy: f.Busy}
	}

	d.alerts = nil
	d.focusForm, d.focusField = "", ""
	d.scrollTarget = ""
	return p
}

// ActivePanels returns the ids of active panels, for invariant checks.
func (d *Document) ActivePanels() []string {
	var out []string
	for _, id := range d.PanelIDs() {
		if d.panels[id] {
			out = append(out, id)
		}
	}
	return out
}
