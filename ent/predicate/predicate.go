// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Chat is the predicate function for chat builders.
type Chat func(*sql.Selector)

// ChatInvitation is the predicate function for chatinvitation builders.
type ChatInvitation func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ClassificationCache is the predicate function for classificationcache builders.
type ClassificationCache func(*sql.Selector)

// ClientRequest is the predicate function for clientrequest builders.
type ClientRequest func(*sql.Selector)

// FAQItem is the predicate function for faqitem builders.
type FAQItem func(*sql.Selector)

// FeedbackResponse is the predicate function for feedbackresponse builders.
type FeedbackResponse func(*sql.Selector)

// GlobalSettings is the predicate function for globalsettings builders.
type GlobalSettings func(*sql.Selector)

// Lease is the predicate function for lease builders.
type Lease func(*sql.Selector)

// SLAAlert is the predicate function for slaalert builders.
type SLAAlert func(*sql.Selector)

// TimerJob is the predicate function for timerjob builders.
type TimerJob func(*sql.Selector)
