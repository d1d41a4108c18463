package domain

// Raw audit-log shapes, as returned by the Admin SDK Reports API
// (activities.list). These are read-only inputs to the pipeline.

type ActivityID struct {
	Time            string `json:"time"`
	UniqueQualifier string `json:"uniqueQualifier,omitempty"`
	ApplicationName string `json:"applicationName,omitempty"`
	CustomerID      string `json:"customerId,omitempty"`
}

type ActivityActor struct {
	CallerType string `json:"callerType,omitempty"`
	Email      string `json:"email,omitempty"`
}

// EventParameter is one named parameter of an audit-log event. Exactly
// one of Value, IntValue or BoolValue is set depending on the upstream
// type; intValue comes over the wire as a quoted int64.
type EventParameter struct {
	Name      string `json:"name"`
	Value     string `json:"value,omitempty"`
	IntValue  *int64 `json:"intValue,string,omitempty"`
	BoolValue *bool  `json:"boolValue,omitempty"`
}

type ActivityEvent struct {
	Type       string           `json:"type,omitempty"`
	Name       string           `json:"name,omitempty"`
	Parameters []EventParameter `json:"parameters"`
}

// Activity is one raw audit-log entry.
type Activity struct {
	ID     ActivityID      `json:"id"`
	Actor  ActivityActor   `json:"actor,omitempty"`
	Events []ActivityEvent `json:"events"`
}

type Location struct {
	Country string `json:"country"`
	Region  string `json:"region"`
}

// MeetingActivity is the simplified record derived from the first
// event of an Activity. MeetingCode, ConferenceID and OrganizerEmail
// are guaranteed non-empty; entries missing any of them are discarded
// during normalization.
type MeetingActivity struct {
	MeetingCode            string   `json:"meetingCode"`
	ConferenceID           string   `json:"conferenceId"`
	CalendarEventID        string   `json:"calendarEventId"`
	OrganizerEmail         string   `json:"organizerEmail"`
	ParticipantEmail       string   `json:"participantEmail"`
	ParticipantDisplayName string   `json:"participantDisplayName"`
	StartTimestamp         string   `json:"startTimestamp"` // RFC 3339, UTC
	DurationSeconds        int64    `json:"durationSeconds"`
	IsExternal             bool     `json:"isExternal"`
	Location               Location `json:"location"`
}

// Attendee is one invited identity on a calendar event. DisplayName is
// only populated by the detail-lookup path; the ingestion rows carry
// email and response status only.
type Attendee struct {
	Email          string `json:"email"`
	DisplayName    string `json:"displayName,omitempty"`
	ResponseStatus string `json:"responseStatus"`
}

// EventDetails is the calendar metadata attached to a meeting, keyed
// by (calendarID, eventID). A failed lookup degrades to the zero
// value rather than an error.
type EventDetails struct {
	Summary   string
	Attendees []Attendee
}

// ActivityRow is the flattened record pushed to the analytics store,
// one NDJSON line per row. InvitedCount is null when no calendar
// invite could be resolved, which is distinct from zero invitees;
// AttendeePercentage is omitted in that case.
type ActivityRow struct {
	MeetingCode            string     `json:"meetingCode"`
	ConferenceID           string     `json:"conferenceId"`
	CalendarEventID        string     `json:"calendarEventId"`
	OrganizerEmail         string     `json:"organizerEmail"`
	ParticipantEmail       string     `json:"participantEmail"`
	ParticipantDisplayName string     `json:"participantDisplayName"`
	StartTimestamp         string     `json:"startTimestamp"`
	DurationSeconds        int64      `json:"durationSeconds"`
	IsExternal             int        `json:"isExternal"` // coerced to 0/1
	Location               Location   `json:"location"`
	MeetingName            string     `json:"meetingName"`
	Attendees              []Attendee `json:"attendees"`
	ParticipantCount       int        `json:"participantCount"`
	InvitedCount           *int       `json:"invitedCount"`
	AttendeePercentage     *int       `json:"attendeePercentage,omitempty"`
}

// RangeSummary reports the outcome of a date-range run.
type RangeSummary struct {
	Message         string `json:"message"`
	TotalActivities int    `json:"totalActivities"`
}

// DirectoryEmployee is a raw employee record from the directory API.
type DirectoryEmployee struct {
	ID             int64               `json:"id"`
	EmployeeNumber string              `json:"employee_number"`
	FullName       string              `json:"full_name"`
	Email          string              `json:"email"`
	Position       *DirectoryRef       `json:"position"`
	Department     *DirectoryRef       `json:"department"`
	Division       *DirectoryRef       `json:"division"`
	ReportingTo    *DirectoryReporting `json:"reporting_to"`
}

type DirectoryRef struct {
	Name string `json:"name"`
}

type DirectoryReporting struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// EmployeeRow is the flattened employee record pushed to the
// analytics store by the directory sync path.
type EmployeeRow struct {
	EmployeeID          int64   `json:"employeeId"`
	EmployeeNumber      string  `json:"employeeNumber"`
	FullName            string  `json:"fullName"`
	Email               string  `json:"email"`
	Position            *string `json:"position"`
	Department          *string `json:"department"`
	Division            *string `json:"division"`
	ReportingToID       *int64  `json:"reportingToId"`
	ReportingToEmail    *string `json:"reportingToEmail"`
	ReportingToFullName *string `json:"reportingToFullName"`
}
