// Package content holds the static copy and fixtures shown by the site views.
package content

import (
	"embed"
	"errors"
	"net/url"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/brightsteps/site/internal/nav"
)

//go:embed pages/*.md sections/*.md
var pagesFS embed.FS

var (
	errPageMissing    = errors.New("page copy missing")
	errSectionMissing = errors.New("section copy missing")
)

const BusinessName = "BrightSteps Behavioral Therapy"

// Page returns the markdown copy for view.
func Page(view nav.View) (string, error) {
	body, err := pagesFS.ReadFile(path.Join("pages", view.String()+".md"))
	if err != nil {
		return "", errors.Join(err, errPageMissing)
	}

	return string(body), nil
}

// Section returns a named block of markdown shown inside a page, such as "home-welcome".
func Section(name string) (string, error) {
	body, err := pagesFS.ReadFile(path.Join("sections", name+".md"))
	if err != nil {
		return "", errors.Join(err, errSectionMissing)
	}

	return string(body), nil
}

// Card is a titled blurb laid out in a row with its siblings.
type Card struct {
	Title string
	Body  string
}

// ServiceHighlights are the cards shown under "Our services" on the home page.
func ServiceHighlights() []Card {
	return []Card{
		{Title: "In-home ABA", Body: "Personalized therapy, delivered where your child is most comfortable."},
		{Title: "Parent training", Body: "Practical strategies your whole family can use every day."},
		{Title: "School collaboration", Body: "We partner with teachers so progress carries into the classroom."},
	}
}

// IntakeSteps describe the path from first contact to the first session.
func IntakeSteps() []Card {
	return []Card{
		{Title: "Connect", Body: "Fill out the intake form or call us. We learn about your child and family."},
		{Title: "Verify & intake", Body: "We check your insurance benefits and walk you through the paperwork."},
		{Title: "Assess & begin", Body: "A BCBA assesses your child, writes a tailored plan and services begin."},
	}
}

type Testimonial struct {
	Text   string
	Author string
}

// Testimonials is the carousel fixture, in display order.
func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Text: "Our therapist met our son where he was, at our kitchen table. Within a few months " +
				"mornings stopped being a battle and he started asking for help with words instead of tears.",
			Author: "Maria G., parent",
		},
		{
			Text: "They trained all of us, not just our daughter. The parent coaching sessions gave us tools " +
				"we still use every single day.",
			Author: "James and Priya T., parents",
		},
		{
			Text: "From the first phone call to the insurance paperwork, the team made everything simple. " +
				"We always knew what the plan was and why.",
			Author: "Denise R., grandparent",
		},
	}
}

type Posting struct {
	Title        string
	Location     string
	Schedule     string
	Description  string
	Requirements []string
	Posted       time.Time
}

// Postings lists the open roles, most recent first.
func Postings() []Posting {
	return []Posting{
		{
			Title:        "Board Certified Behavior Analyst (BCBA)",
			Location:     "In-home, North County",
			Schedule:     "Full time",
			Description:  "Lead assessments, write treatment plans and supervise a small caseload of RBTs.",
			Requirements: []string{"BCBA certification", "State behavior analyst license", "1+ years of BCBA experience"},
			Posted:       time.Date(2026, time.September, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:        "Registered Behavior Technician (RBT)",
			Location:     "In-home, Metro area",
			Schedule:     "Part time, afternoons",
			Description:  "Deliver one-on-one sessions under BCBA supervision and coach caregivers as you go.",
			Requirements: []string{"RBT certification", "High school diploma, bachelor's preferred"},
			Posted:       time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:        "Intake Coordinator",
			Location:     "Office, hybrid",
			Schedule:     "Full time",
			Description:  "Guide families through intake, insurance verification and scheduling.",
			Requirements: []string{"Healthcare admin or intake experience", "Strong communication skills"},
			Posted:       time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Contact is the set of outbound contact details. Links built from it are opened by the
// operating system, never fetched by the site itself.
type Contact struct {
	Phone        string
	Email        string
	CareersEmail string
	Address      string
	MapURL       string
}

var DefaultContact = Contact{
	Phone:        "(555) 010-2040",
	Email:        "intake@brightsteps.example",
	CareersEmail: "careers@brightsteps.example",
	Address:      "1200 Harbor View Dr, Suite 4, Oceanside, CA 92054",
	MapURL:       "https://www.openstreetmap.org/search?query=1200%20Harbor%20View%20Dr%20Oceanside%20CA",
}

// TelURI returns a tel: link with formatting characters stripped.
func (c Contact) TelURI() string {
	var digits strings.Builder
	for idx, r := range strings.TrimSpace(c.Phone) {
		if unicode.IsDigit(r) || (r == '+' && idx == 0) {
			digits.WriteRune(r)
		}
	}

	return "tel:" + digits.String()
}

// MailtoURI returns a mailto: link to the intake address, with subject when it is not empty.
func (c Contact) MailtoURI(subject string) string {
	return mailto(c.Email, subject)
}

// CareersMailtoURI is MailtoURI for job applications.
func (c Contact) CareersMailtoURI(subject string) string {
	return mailto(c.CareersEmail, subject)
}

func mailto(address string, subject string) string {
	link := url.URL{Scheme: "mailto", Opaque: address}
	if subject != "" {
		link.RawQuery = "subject=" + url.PathEscape(subject)
	}

	return link.String()
}
