package entity

import (
	"time"
)

// ElectivesBlock is one scheduling block of a sectioning term.
type ElectivesBlock struct {
	Key      string `json:"key" firestore:"key"`
	Name     string `json:"name" firestore:"name"`
	MaxRooms int    `json:"maxRooms" firestore:"maxRooms"`
}

type BlockAllocation struct {
	Sections int `json:"sections" firestore:"sections"`
	Cap      int `json:"cap" firestore:"cap"`
}

type ElectivesSubject struct {
	Name        string                     `json:"name" firestore:"name"`
	Applicants  int                        `json:"applicants" firestore:"applicants"`
	MinSections int                        `json:"minSections" firestore:"minSections"`
	MaxSections int                        `json:"maxSections" firestore:"maxSections"`
	Blocks      map[string]BlockAllocation `json:"blocks" firestore:"blocks"`
}

// ElectivesConfig is the published sectioning configuration for one term.
// The document id is the term id.
type ElectivesConfig struct {
	TermID    string                 `json:"termId" firestore:"termId"`
	Blocks    []ElectivesBlock       `json:"blocks" firestore:"blocks"`
	Subjects  []ElectivesSubject     `json:"subjects" firestore:"subjects"`
	Meta      map[string]interface{} `json:"meta,omitempty" firestore:"meta"`
	Public    bool                   `json:"public" firestore:"public"`
	CreatedAt time.Time              `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt" firestore:"updatedAt"`
}

type Contact struct {
	Name  string `json:"name" firestore:"name"`
	Email string `json:"email" firestore:"email"`
}

type ElectivesConstraints struct {
	MaxPerClass int `json:"maxPerClass,omitempty" firestore:"maxPerClass"`
	MinSlots    int `json:"minSlots,omitempty" firestore:"minSlots"`
	MaxSlots    int `json:"maxSlots,omitempty" firestore:"maxSlots"`
}

type RequestSubject struct {
	Name       string `json:"name" firestore:"name"`
	Applicants int    `json:"applicants" firestore:"applicants"`
	Cap        int    `json:"cap" firestore:"cap"`
	Sections   int    `json:"sections" firestore:"sections"`
}

type RequestSource struct {
	Filename string `json:"filename,omitempty" firestore:"filename"`
	StartIdx int    `json:"startIdx,omitempty" firestore:"startIdx"`
}

type TeacherConstraint struct {
	Name           string         `json:"name" firestore:"name"`
	Info           string         `json:"info,omitempty" firestore:"info"`
	MaxConsecutive int            `json:"maxConsecutive,omitempty" firestore:"maxConsecutive"`
	BannedRooms    []string       `json:"bannedRooms,omitempty" firestore:"bannedRooms"`
	PerDayMax      map[string]int `json:"perDayMax,omitempty" firestore:"perDayMax"`
}

type TeacherConstraints struct {
	Rooms     []string            `json:"rooms,omitempty" firestore:"rooms"`
	List      []TeacherConstraint `json:"list,omitempty" firestore:"list"`
	GlobalMax int                 `json:"globalMax,omitempty" firestore:"globalMax"`
}

// ElectivesRequest is one sectioning intake submitted from the importer page.
type ElectivesRequest struct {
	ID          string               `json:"id" firestore:"id"`
	TermID      string               `json:"termId,omitempty" firestore:"termId"`
	Contact     Contact              `json:"contact" firestore:"contact"`
	Constraints ElectivesConstraints `json:"constraints" firestore:"constraints"`
	Notes       string               `json:"notes,omitempty" firestore:"notes"`
	Source      *RequestSource       `json:"source,omitempty" firestore:"source"`
	Subjects    []RequestSubject     `json:"subjects" firestore:"subjects"`
	Teachers    *TeacherConstraints  `json:"teachers,omitempty" firestore:"teachers"`
	Status      string               `json:"status" firestore:"status"`
	CreatedAt   time.Time            `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" firestore:"updatedAt"`
}

type MoveConstraint struct {
	Grades         []string `json:"grades" firestore:"grades"`
	MaxConsecutive int      `json:"maxConsecutive" firestore:"maxConsecutive"`
}

// TimetableRequest carries timetable constraints keyed by submission id; it
// is merge-upserted so the request page can be saved incrementally.
type TimetableRequest struct {
	SubmissionID   string              `json:"submissionId" firestore:"id"`
	WeekdayPeriods map[string]int      `json:"weekdayPeriods,omitempty" firestore:"weekdayPeriods"`
	Move           *MoveConstraint     `json:"move,omitempty" firestore:"move"`
	ExcludeRule    string              `json:"excludeRule,omitempty" firestore:"excludeRule"`
	Teachers       *TeacherConstraints `json:"teachers,omitempty" firestore:"teachers"`
	CreatedAt      time.Time           `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" firestore:"updatedAt"`
}
