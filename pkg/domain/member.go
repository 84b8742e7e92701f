package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberID identifies a member. It is the ID the identity provider assigned
// to the member's auth user, so both systems share one key.
type MemberID uuid.UUID

// String returns the canonical UUID text form.
func (id MemberID) String() string { return uuid.UUID(id).String() }

// UserType is the role a member signed up with.
type UserType string

const (
	// UserTypeSpeaker is a presenter looking for speaking engagements.
	UserTypeSpeaker UserType = "speaker"
	// UserTypeOrganization is an event host posting opportunities.
	UserTypeOrganization UserType = "organization"
)

// Valid reports whether t is one of the known user types.
func (t UserType) Valid() bool {
	return t == UserTypeSpeaker || t == UserTypeOrganization
}

// Normalize lowercases and trims t.
func (t UserType) Normalize() UserType {
	return UserType(strings.ToLower(strings.TrimSpace(string(t))))
}

// Member is the account row created at signup.
type Member struct {
	ID        MemberID  `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	UserType  UserType  `json:"userType"`
	PlanID    string    `json:"planId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Speaker is the public directory profile of a speaker member.
type Speaker struct {
	MemberID MemberID `json:"id"`
	Name     string   `json:"name"`
	Headline string   `json:"headline,omitempty"`
	Bio      string   `json:"bio,omitempty"`
	// Topics doubles as the speaker's specialties for directory filtering.
	Topics   []string `json:"topics"`
	Location string   `json:"location,omitempty"`
	// FeeMin and FeeMax are nil when the speaker did not publish a fee.
	FeeMin    *decimal.Decimal `json:"feeMin,omitempty"`
	FeeMax    *decimal.Decimal `json:"feeMax,omitempty"`
	Rating    decimal.Decimal  `json:"rating"`
	ImageURL  string           `json:"imageUrl,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Organization is the public directory profile of an organization member.
type Organization struct {
	MemberID    MemberID  `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry,omitempty"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Size        string    `json:"size,omitempty"`
	Website     string    `json:"website,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Profile is the role-specific row stored alongside a new member. Exactly
// one of the fields is set, matching Member.UserType.
type Profile struct {
	Speaker      *Speaker
	Organization *Organization
}
