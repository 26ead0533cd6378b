// Package emailer delivers the daily digest through SendGrid. The API region
// is an explicit value on the client: switching regions builds a request
// against the other host instead of mutating process environment.
package emailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/samber/lo"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"

	"github.com/harshduche/maffb/internal/models"
)

type Region string

const (
	RegionUS Region = "us"
	RegionEU Region = "eu"
)

func (r Region) Flip() Region {
	if r == RegionEU {
		return RegionUS
	}
	return RegionEU
}

const (
	usHost = "https://api.sendgrid.com"
	euHost = "https://api.eu.sendgrid.com"

	defaultFromEmail = "blogs@harshduche.com"
	mailSendEndpoint = "/v3/mail/send"
)

type Emailer struct {
	apiKey  string
	region  Region
	from    string
	subject string
	hosts   map[Region]string
}

// TemplateData is what the HTML email template is rendered with.
type TemplateData struct {
	GenerationDate string
	TotalBlogs     int
	BlogSummaries  []models.BlogSummary
}

func New(apiKey string, region Region, from, subject string) *Emailer {
	if apiKey == "" {
		log.Warn("SENDGRID_API_KEY not set, email delivery disabled")
	} else if len(apiKey) < 60 {
		log.Warn("SENDGRID_API_KEY length looks short; ensure the full key was copied")
	}
	if from == defaultFromEmail {
		log.Warn("FROM_EMAIL not set. Set a verified sender via FROM_EMAIL to avoid 401 errors")
	}

	return &Emailer{
		apiKey:  apiKey,
		region:  region,
		from:    from,
		subject: subject,
		hosts: map[Region]string{
			RegionUS: usHost,
			RegionEU: euHost,
		},
	}
}

// SetHost overrides the API host used for a region.
func (e *Emailer) SetHost(region Region, host string) {
	e.hosts[region] = host
}

// LoadRecipients reads the recipient list from a JSON file. An empty list is
// an error: there is nobody to deliver to.
func LoadRecipients(path string) ([]models.RecipientEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading emailer list: %w", err)
	}

	var recipients []models.RecipientEntry
	if err := json.Unmarshal(data, &recipients); err != nil {
		return nil, fmt.Errorf("parsing emailer list: %w", err)
	}

	if len(recipients) == 0 {
		return nil, errors.New("a recipient email list is required to complete this task")
	}

	return recipients, nil
}

// SendDigest renders the HTML template and sends one message per recipient.
// Failures are reported per recipient and never abort the batch; the return
// value is a human-readable result string.
func (e *Emailer) SendDigest(ctx context.Context, summaries []models.BlogSummary, recipientsPath, templatePath string) string {
	if e.apiKey == "" {
		return "Error: SendGrid not initialized. Please set SENDGRID_API_KEY environment variable."
	}

	recipients, err := LoadRecipients(recipientsPath)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	htmlContent, err := renderTemplate(templatePath, summaries)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	sent := lo.CountBy(recipients, func(recipient models.RecipientEntry) bool {
		return e.sendTo(ctx, recipient, htmlContent)
	})

	if sent > 0 {
		return fmt.Sprintf("Successfully sent emails to %d recipients", sent)
	}
	return "Failed to send emails to any recipients"
}

// sendTo delivers one message. A 401 whose body mentions a regional
// attribute mismatch flips the client's region and retries exactly once; the
// flipped region sticks for the remaining recipients. Every other failure is
// terminal for this recipient.
func (e *Emailer) sendTo(ctx context.Context, recipient models.RecipientEntry, htmlContent string) bool {
	attempt := func() error {
		response, err := e.post(ctx, recipient, htmlContent)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("sending email: %w", err))
		}

		if response.StatusCode >= 200 && response.StatusCode < 300 {
			return nil
		}

		if response.StatusCode == 401 && strings.Contains(strings.ToLower(response.Body), "regional attribute") {
			log.Infof("Detected regional mismatch for %s, switching API region and retrying once", recipient.Email)
			e.region = e.region.Flip()
			return fmt.Errorf("regional mismatch: %s", response.Body)
		}

		return backoff.Permanent(fmt.Errorf("sendgrid returned %d: %s", response.StatusCode, response.Body))
	}

	err := backoff.Retry(attempt, backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 1))
	if err != nil {
		log.WithFields(log.Fields{
			"recipient": recipient.Email,
		}).Warnf("Failed to send email: %v", err)
		return false
	}

	log.WithFields(log.Fields{
		"recipient": recipient.Email,
	}).Info("Email sent successfully")
	return true
}

func (e *Emailer) post(ctx context.Context, recipient models.RecipientEntry, htmlContent string) (*rest.Response, error) {
	name := recipient.Name
	if name == "" {
		name = "Recipient"
	}

	from := mail.NewEmail("", e.from)
	to := mail.NewEmail(name, recipient.Email)
	message := mail.NewSingleEmail(from, e.subject, to, "", htmlContent)

	request := sendgrid.GetRequest(e.apiKey, mailSendEndpoint, e.hosts[e.region])
	request.Method = "POST"
	request.Body = mail.GetRequestBody(message)

	return sendgrid.MakeRequestWithContext(ctx, request)
}

func renderTemplate(templatePath string, summaries []models.BlogSummary) (string, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("loading email template: %w", err)
	}

	data := TemplateData{
		GenerationDate: time.Now().Format("January 02, 2006 at 3:04 PM"),
		TotalBlogs:     len(summaries),
		BlogSummaries:  summaries,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering email template: %w", err)
	}

	return buf.String(), nil
}
