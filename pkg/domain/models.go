// Package domain holds the read-only input records a report is built from.
//
// All entities arrive fully resolved from the caller (the dashboard's
// persistence layer is an external collaborator); the report engine never
// mutates them and holds no state across builds.
package domain

// ── Entities ──

// Student identifies the subject of one report. Immutable for the duration
// of a report build.
type Student struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ClassName     string `json:"className"`
	GuardianPhone string `json:"guardianPhone"`
	AvatarRef     string `json:"avatarRef,omitempty"` // data: URI, asset:<id> or URL
	Number        string `json:"number,omitempty"`    // student/roll number
}

// DailyRecord is one date-stamped record per student per day. The four
// status axes are independent except that attendance gates the other three.
type DailyRecord struct {
	Date          string     `json:"date"` // YYYY-MM-DD
	Day           string     `json:"day"`  // weekday name, matches ScheduleItem.Day
	Attendance    Attendance `json:"attendance"`
	Participation Grade      `json:"participation"`
	Homework      Grade      `json:"homework"`
	Behavior      Grade      `json:"behavior"`
	Notes         string     `json:"notes,omitempty"`
}

// ScheduleItem is one weekly-recurring class session. Period is the
// ordering key within a day.
type ScheduleItem struct {
	Day     string `json:"day"`
	Period  int    `json:"period"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher,omitempty"`
	Room    string `json:"room,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// SchoolSettings carries the report letterhead data. Every field is
// optional; missing values degrade to empty or placeholder rendering.
type SchoolSettings struct {
	SchoolName    string `json:"schoolName"`
	OrgName       string `json:"orgName,omitempty"`
	LogoRef       string `json:"logoRef,omitempty"`
	StampRef      string `json:"stampRef,omitempty"`
	Link          string `json:"link,omitempty"` // QR-eligible URL
	Message       string `json:"message,omitempty"`
	Slogan        string `json:"slogan,omitempty"`
	Phone         string `json:"phone,omitempty"`
	CounselorName string `json:"counselorName,omitempty"`
}
