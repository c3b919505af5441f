package entity

import (
	"time"
)

// Submission statuses. Transitions are admin-gated but deliberately not
// ordered: completed -> processing is a legal transition.
const (
	StatusUploaded   = "uploaded"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

var statuses = map[string]struct{}{
	StatusUploaded:   {},
	StatusProcessing: {},
	StatusCompleted:  {},
	StatusRejected:   {},
}

func ValidStatus(s string) bool {
	_, ok := statuses[s]
	return ok
}

// Submission categories (other/image/document/data/code).
var categories = map[string]struct{}{
	"기타":  {},
	"이미지": {},
	"문서":  {},
	"데이터": {},
	"코드":  {},
}

func ValidCategory(c string) bool {
	_, ok := categories[c]
	return ok
}

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 5000
	MaxMessageLen     = 1000
)

type FileMeta struct {
	Name        string `json:"name" firestore:"name"`
	Size        int64  `json:"size" firestore:"size"`
	ContentType string `json:"contentType" firestore:"contentType"`
	StoragePath string `json:"storagePath" firestore:"storagePath"`
}

type Message struct {
	By   string    `json:"by" firestore:"by"`
	Text string    `json:"text" firestore:"text"`
	At   time.Time `json:"at" firestore:"at"`
}

// GroupingMeta is the optional sectioning contact/constraint block. The
// lifecycle never interprets it.
type GroupingMeta struct {
	ContactName  string `json:"contactName" firestore:"contactName"`
	ContactEmail string `json:"contactEmail" firestore:"contactEmail"`
	MaxPerClass  int    `json:"maxPerClass,omitempty" firestore:"maxPerClass"`
	MinSlots     int    `json:"minSlots,omitempty" firestore:"minSlots"`
	MaxSlots     int    `json:"maxSlots,omitempty" firestore:"maxSlots"`
	Notes        string `json:"notes,omitempty" firestore:"notes"`
}

type SubmissionMeta struct {
	Grouping *GroupingMeta `json:"grouping,omitempty" firestore:"grouping"`
}

type Submission struct {
	ID          string          `json:"id" firestore:"id"`
	OwnerUID    string          `json:"ownerUid" firestore:"ownerUid"`
	OwnerEmail  string          `json:"ownerEmail" firestore:"ownerEmail"`
	Title       string          `json:"title" firestore:"title"`
	Description string          `json:"description" firestore:"description"`
	Category    string          `json:"category" firestore:"category"`
	Status      string          `json:"status" firestore:"status"`
	Files       []FileMeta      `json:"files" firestore:"files"`
	Results     []FileMeta      `json:"results" firestore:"results"`
	Messages    []Message       `json:"messages" firestore:"messages"`
	Meta        *SubmissionMeta `json:"meta,omitempty" firestore:"meta"`
	CreatedAt   time.Time       `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt" firestore:"updatedAt"`
}
