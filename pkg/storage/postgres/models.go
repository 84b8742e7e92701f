package postgres

import (
	"podium/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PgMember struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	UserType  string    `db:"user_type"`
	PlanID    string    `db:"plan_id"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgMember) ToDomain() *domain.Member {
	return &domain.Member{
		ID:        domain.MemberID(p.ID),
		Email:     p.Email,
		Name:      p.Name,
		UserType:  domain.UserType(p.UserType),
		PlanID:    p.PlanID,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgMember) FromDomain(m domain.Member) {
	*p = PgMember{
		ID:        uuid.UUID(m.ID),
		Email:     m.Email,
		Name:      m.Name,
		UserType:  string(m.UserType),
		PlanID:    m.PlanID,
		CreatedAt: m.CreatedAt,
	}
}

type PgSpeaker struct {
	MemberID  uuid.UUID           `db:"member_id"`
	Name      string              `db:"name"`
	Headline  string              `db:"headline"`
	Bio       string              `db:"bio"`
	Topics    pq.StringArray      `db:"topics"`
	Location  string              `db:"location"`
	FeeMin    decimal.NullDecimal `db:"fee_min"`
	FeeMax    decimal.NullDecimal `db:"fee_max"`
	Rating    decimal.Decimal     `db:"rating"`
	ImageURL  string              `db:"image_url"`
	CreatedAt time.Time           `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSpeaker) ToDomain() domain.Speaker {
	topics := []string(p.Topics)
	if topics == nil {
		topics = []string{}
	}

	return domain.Speaker{
		MemberID:  domain.MemberID(p.MemberID),
		Name:      p.Name,
		Headline:  p.Headline,
		Bio:       p.Bio,
		Topics:    topics,
		Location:  p.Location,
		FeeMin:    nullDecimalPtr(p.FeeMin),
		FeeMax:    nullDecimalPtr(p.FeeMax),
		Rating:    p.Rating,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgSpeaker) FromDomain(s domain.Speaker) {
	topics := s.Topics
	if topics == nil {
		topics = []string{}
	}

	*p = PgSpeaker{
		MemberID:  uuid.UUID(s.MemberID),
		Name:      s.Name,
		Headline:  s.Headline,
		Bio:       s.Bio,
		Topics:    pq.StringArray(topics),
		Location:  s.Location,
		FeeMin:    decimalPtrNull(s.FeeMin),
		FeeMax:    decimalPtrNull(s.FeeMax),
		Rating:    s.Rating,
		ImageURL:  s.ImageURL,
		CreatedAt: s.CreatedAt,
	}
}

type PgOrganization struct {
	MemberID    uuid.UUID `db:"member_id"`
	Name        string    `db:"name"`
	Industry    string    `db:"industry"`
	Description string    `db:"description"`
	Location    string    `db:"location"`
	Size        string    `db:"size"`
	Website     string    `db:"website"`
	CreatedAt   time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgOrganization) ToDomain() domain.Organization {
	return domain.Organization{
		MemberID:    domain.MemberID(p.MemberID),
		Name:        p.Name,
		Industry:    p.Industry,
		Description: p.Description,
		Location:    p.Location,
		Size:        p.Size,
		Website:     p.Website,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgOrganization) FromDomain(o domain.Organization) {
	*p = PgOrganization{
		MemberID:    uuid.UUID(o.MemberID),
		Name:        o.Name,
		Industry:    o.Industry,
		Description: o.Description,
		Location:    o.Location,
		Size:        o.Size,
		Website:     o.Website,
		CreatedAt:   o.CreatedAt,
	}
}

type PgOpportunity struct {
	ID             uuid.UUID           `db:"id"`
	OrganizationID uuid.UUID           `db:"organization_id"`
	Title          string              `db:"title"`
	Description    string              `db:"description"`
	Topics         pq.StringArray      `db:"topics"`
	Location       string              `db:"location"`
	EventDate      time.Time           `db:"event_date"`
	Deadline       time.Time           `db:"deadline"`
	Fee            decimal.NullDecimal `db:"fee"`
	Status         string              `db:"status"`
}

func (p *PgOpportunity) ToDomain() domain.Opportunity {
	topics := []string(p.Topics)
	if topics == nil {
		topics = []string{}
	}

	return domain.Opportunity{
		ID:             p.ID,
		OrganizationID: domain.MemberID(p.OrganizationID),
		Title:          p.Title,
		Description:    p.Description,
		Topics:         topics,
		Location:       p.Location,
		EventDate:      p.EventDate,
		Deadline:       p.Deadline,
		Fee:            nullDecimalPtr(p.Fee),
		Status:         domain.OpportunityStatus(p.Status),
	}
}

type PgArticle struct {
	ID          uuid.UUID `db:"id"`
	Slug        string    `db:"slug"`
	Title       string    `db:"title"`
	Excerpt     string    `db:"excerpt"`
	Body        string    `db:"body"`
	Category    string    `db:"category"`
	Author      string    `db:"author"`
	PublishedAt time.Time `db:"published_at"`
}

func (p *PgArticle) ToDomain() domain.Article {
	return domain.Article{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Body:        p.Body,
		Category:    p.Category,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
	}
}

type PgFAQ struct {
	ID       uuid.UUID `db:"id"`
	Question string    `db:"question"`
	Answer   string    `db:"answer"`
	Category string    `db:"category"`
	Position int       `db:"position"`
}

func (p *PgFAQ) ToDomain() domain.FAQ {
	return domain.FAQ{
		ID:       p.ID,
		Question: p.Question,
		Answer:   p.Answer,
		Category: p.Category,
		Position: p.Position,
	}
}

type PgHelpArticle struct {
	ID        uuid.UUID `db:"id"`
	Slug      string    `db:"slug"`
	Title     string    `db:"title"`
	Summary   string    `db:"summary"`
	Body      string    `db:"body"`
	Category  string    `db:"category"`
	Position  int       `db:"position"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p *PgHelpArticle) ToDomain() domain.HelpArticle {
	return domain.HelpArticle{
		ID:        p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		Summary:   p.Summary,
		Body:      p.Body,
		Category:  p.Category,
		Position:  p.Position,
		UpdatedAt: p.UpdatedAt,
	}
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal

	return &v
}

func decimalPtrNull(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func toDomain[P any, D any](rows []P, conv func(*P) D) []D {
	out := make([]D, 0, len(rows))
	for i := range rows {
		out = append(out, conv(&rows[i]))
	}

	return out
}
