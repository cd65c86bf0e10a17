package domain

// EventType classifies a chapter event.
type EventType string

// Event types.
const (
	EventWorkshop     EventType = "workshop"
	EventWebinar      EventType = "webinar"
	EventCompetition  EventType = "competition"
	EventCelebration  EventType = "celebration"
	EventPresentation EventType = "presentation"
)

// EventStatus is the lifecycle status of an event.
type EventStatus string

// Event statuses.
const (
	EventUpcoming  EventStatus = "upcoming"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// Event represents a chapter event. Date is a calendar-day string
// (YYYY-MM-DD) and Time is a display string, matching the persisted layout.
// swagger:model Event
type Event struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Date             string      `json:"date"`
	Time             string      `json:"time"`
	Location         string      `json:"location"`
	Type             EventType   `json:"type"`
	Status           EventStatus `json:"status"`
	Image            string      `json:"image"`
	RegistrationLink string      `json:"registrationLink"`
	Organizer        string      `json:"organizer"`
}

// EventPatch is a shallow-merge update for an event. Nil fields are unchanged.
type EventPatch struct {
	Title            *string      `json:"title"`
	Description      *string      `json:"description"`
	Date             *string      `json:"date"`
	Time             *string      `json:"time"`
	Location         *string      `json:"location"`
	Type             *EventType   `json:"type"`
	Status           *EventStatus `json:"status"`
	Image            *string      `json:"image"`
	RegistrationLink *string      `json:"registrationLink"`
	Organizer        *string      `json:"organizer"`
}

// Apply merges the patch onto e, field by field.
func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.RegistrationLink != nil {
		e.RegistrationLink = *p.RegistrationLink
	}
	if p.Organizer != nil {
		e.Organizer = *p.Organizer
	}
}

// EventFilter selects events. Search is a case-insensitive substring match
// over title, description, and location; Type, Status, and Year are exact
// matches (Year against the year of Date). Empty search and the "all"
// sentinel bypass their condition; all conditions are AND-combined.
type EventFilter struct {
	Search string
	Type   string
	Status string
	Year   string
}
