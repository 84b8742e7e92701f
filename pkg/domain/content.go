package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpportunityStatus is the lifecycle state of a posted opportunity.
type OpportunityStatus string

const (
	// OpportunityStatusOpen accepts applications until the deadline.
	OpportunityStatusOpen OpportunityStatus = "open"
	// OpportunityStatusClosed no longer accepts applications.
	OpportunityStatusClosed OpportunityStatus = "closed"
)

// Opportunity is a speaking-engagement listing created by an organization.
type Opportunity struct {
	ID             uuid.UUID         `json:"id"`
	OrganizationID MemberID          `json:"organizationId"`
	Title          string            `json:"title"`
	Description    string            `json:"description,omitempty"`
	Topics         []string          `json:"topics"`
	Location       string            `json:"location,omitempty"`
	EventDate      time.Time         `json:"eventDate"`
	Deadline       time.Time         `json:"deadline"`
	Fee            *decimal.Decimal  `json:"fee,omitempty"`
	Status         OpportunityStatus `json:"status"`
}

// Article is a published blog/resources article.
type Article struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Body        string    `json:"body,omitempty"`
	Category    string    `json:"category,omitempty"`
	Author      string    `json:"author,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// FAQ is a single question on the FAQ page.
type FAQ struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Category string    `json:"category,omitempty"`
	Position int       `json:"position"`
}

// HelpArticle is a help-center entry.
type HelpArticle struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	Body      string    `json:"body,omitempty"`
	Category  string    `json:"category,omitempty"`
	Position  int       `json:"position"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Stats holds row counts reported by the signup diagnostics endpoint.
type Stats struct {
	Members       int64 `json:"members"`
	Speakers      int64 `json:"speakers"`
	Organizations int64 `json:"organizations"`
	Opportunities int64 `json:"opportunities"`
}
