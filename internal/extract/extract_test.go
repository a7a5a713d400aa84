package extract

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `
<html><body>
	<div class="job-listing">
		<h3>Senior Backend Engineer</h3>
		<p>Build and operate our core services. Requires: 5+ years experience with distributed systems.</p>
		<span>Location: Austin, TX</span>
		<a href="/jobs/backend-123">Apply</a>
	</div>
	<div class="job-listing">
		<h3>Data Scientist</h3>
		<p>Work on ranking models using Python and machine learning.</p>
		<span>Remote</span>
		<a href="https://boards.example/acme/ds-7">Apply</a>
	</div>
</body></html>`

func TestPostings_StructuredStrategy(t *testing.T) {
	postings := Postings(listingPage, "Acme", "https://acme.example/careers")
	require.Len(t, postings, 2)

	first := postings[0]
	assert.Equal(t, "Senior Backend Engineer", first.Title)
	assert.Equal(t, "Acme", first.Company)
	assert.Equal(t, "Austin, TX", first.Location)
	assert.Contains(t, first.Description, "core services")
	assert.Equal(t, "https://acme.example/jobs/backend-123", first.URL)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "senior", first.ExperienceLevel)

	second := postings[1]
	assert.Equal(t, "Data Scientist", second.Title)
	assert.Equal(t, "Remote", second.Location)
	assert.Equal(t, "https://boards.example/acme/ds-7", second.URL)
}

func TestPostings_DepartmentFromClassOrLabel(t *testing.T) {
	html := `
	<html><body>
		<div class="job-listing">
			<h3>Backend Engineer</h3>
			<span class="department">Platform Engineering</span>
		</div>
		<div class="job-listing">
			<h3>Account Executive</h3>
			<p>Department: Sales</p>
		</div>
	</body></html>`

	postings := Postings(html, "Acme", "https://acme.example/careers")
	require.Len(t, postings, 2)
	assert.Equal(t, "Platform Engineering", postings[0].Department)
	assert.Equal(t, "Sales", postings[1].Department)
}

func TestTruncate_NeverSplitsRunes(t *testing.T) {
	long := strings.Repeat("Zürich Müller Café ", 40)
	for _, max := range []int{1, 2, 3, 10, 100, 499, 500} {
		cut := truncate(long, max)
		assert.True(t, utf8.ValidString(cut), "max=%d", max)
		assert.LessOrEqual(t, len([]rune(cut)), max)
	}
	assert.Equal(t, "short", truncate("short", 500))
}

func TestPostings_StableIDsAcrossReextraction(t *testing.T) {
	a := Postings(listingPage, "Acme", "https://acme.example/careers")
	b := Postings(listingPage, "Acme", "https://acme.example/other-page")
	require.NotEmpty(t, a)
	require.NotEmpty(t, b)
	assert.Equal(t, a[0].ID, b[0].ID)
}

func TestPostings_DiscardsElementsWithoutTitle(t *testing.T) {
	html := `
	<html><body>
		<div class="job-listing"><p>No heading at all here, just text.</p></div>
		<div class="job-listing"><h2>Platform Engineer</h2><p>Run the platform.</p></div>
	</body></html>`

	postings := Postings(html, "Acme", "https://acme.example/careers")
	require.Len(t, postings, 1)
	assert.Equal(t, "Platform Engineer", postings[0].Title)
}

func TestPostings_DescriptionFallsBackToElementText(t *testing.T) {
	html := `
	<html><body>
		<div class="job-listing">
			<h3>SRE</h3>
			Keep the lights on. On-call rotation. Kubernetes and Terraform day to day.
		</div>
	</body></html>`

	postings := Postings(html, "Acme", "https://acme.example/careers")
	require.Len(t, postings, 1)
	assert.Contains(t, postings[0].Description, "Keep the lights on")
}

func TestPostings_FreeTextFallback(t *testing.T) {
	html := `
	<html><body>
		<main>
			We are growing! Open position: Senior Software Engineer to join our
			infrastructure group. We also need a Junior Data Analyst for the
			reporting squad. Both roles require experience with Python and AWS.
		</main>
	</body></html>`

	postings := Postings(html, "Acme", "https://acme.example/careers")
	require.NotEmpty(t, postings)

	titles := make([]string, 0, len(postings))
	for _, p := range postings {
		titles = append(titles, strings.ToLower(p.Title))
		assert.Equal(t, "https://acme.example/careers", p.URL)
		assert.Equal(t, "See job posting", p.Location)
		assert.NotEmpty(t, p.Description)
	}
	assert.Contains(t, strings.Join(titles, " | "), "senior software engineer")
}

func TestPostings_FreeTextDedupesTitles(t *testing.T) {
	html := `<html><body><p>
		Senior Platform Engineer wanted. Did we mention we need a
		Senior Platform Engineer? Yes: SENIOR PLATFORM ENGINEER.
	</p></body></html>`

	postings := Postings(html, "Acme", "https://acme.example/careers")
	titleCount := 0
	for _, p := range postings {
		if strings.EqualFold(p.Title, "Senior Platform Engineer") {
			titleCount++
		}
	}
	assert.LessOrEqual(t, titleCount, 1)
}

func TestPostings_FreeTextCapped(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body><p>")
	roles := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel", "India", "Juliet", "Kilo", "Lima"}
	for _, r := range roles {
		fmt.Fprintf(&sb, "We are hiring a %s Engineer for the team. ", r)
	}
	sb.WriteString("</p></body></html>")

	postings := Postings(sb.String(), "Acme", "https://acme.example/careers")
	assert.LessOrEqual(t, len(postings), MaxPostingsPerPage)
}

func TestPostings_EmptyHTML(t *testing.T) {
	assert.Empty(t, Postings("", "Acme", "https://acme.example"))
	assert.Empty(t, Postings("   \n ", "Acme", "https://acme.example"))
	assert.Empty(t, Postings("<html><body></body></html>", "Acme", "https://acme.example"))
}

func TestCompanyNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.acme-corp.com/careers", "Acme Corp"},
		{"https://careers.initech.io", "Initech"},
		{"https://jobs.big_company.example.com", "Big Company"},
		{"not a url", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompanyNameFromURL(tt.url), "url: %s", tt.url)
	}
}
