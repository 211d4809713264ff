package service

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"mom-portal/backend/internal/model"
)

const (
	calendarProductID = "-//MoM Portal//Meetings//EN"
	// meetings carry a start time only
	defaultMeetingDuration = time.Hour
)

// buildCalendar renders meetings as VEVENTs. Start times are interpreted in loc.
func buildCalendar(meetings []model.Meeting, loc *time.Location, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetName("Meetings")

	for i := range meetings {
		m := &meetings[i]
		start := m.StartsAt(loc)

		event := cal.AddEvent(m.MeetingID + "@mom-portal")
		event.SetDtStampTime(stamp)
		event.SetCreatedTime(m.CreatedAt)
		event.SetModifiedAt(m.UpdatedAt)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(defaultMeetingDuration))
		event.SetSummary(m.MeetingTitle)
		if m.MeetingDescription != "" {
			event.SetDescription(m.MeetingDescription)
		}
		if m.MeetingType != nil {
			event.AddProperty(ics.ComponentPropertyCategories, m.MeetingType.MeetingTypeName)
		}

		switch m.Status {
		case model.StatusCancelled:
			event.SetStatus(ics.ObjectStatusCancelled)
		case model.StatusCompleted, model.StatusOngoing:
			event.SetStatus(ics.ObjectStatusConfirmed)
		default:
			event.SetStatus(ics.ObjectStatusTentative)
		}
	}

	return cal.Serialize()
}
