package content_test

import (
	"strings"
	"testing"

	"github.com/brightsteps/site/internal/content"
	"github.com/brightsteps/site/internal/nav"
	"github.com/stretchr/testify/require"
)

func TestEveryViewHasCopy(t *testing.T) {
	for _, view := range nav.Views() {
		body, err := content.Page(view)
		require.NoError(t, err, view.String())
		require.NotEmpty(t, body)
	}
}

func TestTestimonials(t *testing.T) {
	items := content.Testimonials()
	require.Len(t, items, 3)
	for _, item := range items {
		require.NotEmpty(t, item.Text)
		require.NotEmpty(t, item.Author)
	}
}

func TestPostings(t *testing.T) {
	postings := content.Postings()
	require.Len(t, postings, 3)

	for idx, posting := range postings {
		require.NotEmpty(t, posting.Description, posting.Title)
		require.NotEmpty(t, posting.Requirements, posting.Title)
		require.False(t, posting.Posted.IsZero())

		if idx > 0 {
			require.True(t, posting.Posted.Before(postings[idx-1].Posted), "most recent first")
		}
	}
}

func TestSections(t *testing.T) {
	for _, name := range []string{"home-welcome", "home-area", "services-insurance", "careers-apply"} {
		body, err := content.Section(name)
		require.NoError(t, err, name)
		require.True(t, strings.HasPrefix(body, "## "), name)
	}

	_, err := content.Section("missing")
	require.Error(t, err)
}

func TestCards(t *testing.T) {
	require.Len(t, content.ServiceHighlights(), 3)
	require.Len(t, content.IntakeSteps(), 3)
}

func TestContactLinks(t *testing.T) {
	contact := content.Contact{Phone: "+1 (555) 010-2040", Email: "hello@example.com"}
	require.Equal(t, "tel:+15550102040", contact.TelURI())
	require.Equal(t, "mailto:hello@example.com", contact.MailtoURI(""))
	require.Equal(t, "mailto:hello@example.com?subject=New%20client%20intake", contact.MailtoURI("New client intake"))

	require.Equal(t, "tel:5550102040", content.DefaultContact.TelURI())
	require.Equal(t, "mailto:careers@brightsteps.example?subject=Application", content.DefaultContact.CareersMailtoURI("Application"))
}
