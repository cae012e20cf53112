package mail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"backend/internal/app/config"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	gomessage "github.com/emersion/go-message/mail"
	"github.com/sirupsen/logrus"
)

// InboundEmail is one unread vendor reply pulled from the inbox.
type InboundEmail struct {
	Subject     string
	From        string // raw From header, may include a display name
	Body        string
	ReceivedAt  time.Time
	Attachments []string
	// AttachmentData maps filename to raw content for upload to the
	// attachment store.
	AttachmentData map[string][]byte
}

// Fetcher pulls unread RFP replies over IMAP. Fetching a message body
// marks it seen on the server, so a message is only ever returned once
// even when later processing fails.
type Fetcher struct {
	cfg config.IMAPConfig
}

func NewFetcher(cfg config.IMAPConfig) *Fetcher {
	return &Fetcher{cfg: cfg}
}

// FetchUnread connects, selects INBOX and returns every unseen message
// whose subject carries the RFP marker. Messages that fail to parse are
// logged and skipped rather than failing the whole batch.
func (f *Fetcher) FetchUnread(ctx context.Context) ([]InboundEmail, error) {
	if f.cfg.Host == "" {
		return nil, errors.New("imap transport is not configured")
	}

	addr := fmt.Sprintf("%s:%d", f.cfg.Host, f.cfg.Port)

	var c *client.Client
	var err error
	if f.cfg.TLS {
		c, err = client.DialTLS(addr, nil)
	} else {
		c, err = client.Dial(addr)
	}
	if err != nil {
		return nil, fmt.Errorf("imap dial %s: %w", addr, err)
	}
	defer c.Logout()

	if err := c.Login(f.cfg.User, f.cfg.Pass); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}

	if _, err := c.Select("INBOX", false); err != nil {
		return nil, fmt.Errorf("imap select inbox: %w", err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	criteria.Header.Add("Subject", SubjectPrefix)

	ids, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("imap search: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(ids...)

	// Fetching BODY[] (without PEEK) sets \Seen server-side.
	section := &imap.BodySectionName{}
	items := []imap.FetchItem{section.FetchItem(), imap.FetchEnvelope, imap.FetchInternalDate}

	messages := make(chan *imap.Message, len(ids))
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqSet, items, messages)
	}()

	var emails []InboundEmail
	for msg := range messages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		email, err := parseMessage(msg, section)
		if err != nil {
			logrus.Warnf("skipping unparseable message %d: %v", msg.SeqNum, err)
			continue
		}
		emails = append(emails, email)
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("imap fetch: %w", err)
	}

	logrus.Infof("fetched %d unread RFP replies", len(emails))
	return emails, nil
}

func parseMessage(msg *imap.Message, section *imap.BodySectionName) (InboundEmail, error) {
	body := msg.GetBody(section)
	if body == nil {
		return InboundEmail{}, errors.New("server returned no body section")
	}

	mr, err := gomessage.CreateReader(body)
	if err != nil {
		return InboundEmail{}, fmt.Errorf("create mail reader: %w", err)
	}

	email := InboundEmail{
		From:           mr.Header.Get("From"),
		AttachmentData: map[string][]byte{},
	}
	email.Subject, _ = mr.Header.Subject()
	if date, err := mr.Header.Date(); err == nil && !date.IsZero() {
		email.ReceivedAt = date
	} else {
		email.ReceivedAt = msg.InternalDate
	}

	var textBody, htmlBody string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return InboundEmail{}, fmt.Errorf("read mime part: %w", err)
		}

		switch header := part.Header.(type) {
		case *gomessage.InlineHeader:
			contentType, _, _ := header.ContentType()
			data, err := io.ReadAll(part.Body)
			if err != nil {
				return InboundEmail{}, fmt.Errorf("read part body: %w", err)
			}
			switch contentType {
			case "text/plain":
				if textBody == "" {
					textBody = string(data)
				}
			case "text/html":
				if htmlBody == "" {
					htmlBody = string(data)
				}
			}
		case *gomessage.AttachmentHeader:
			filename, _ := header.Filename()
			if filename == "" {
				continue
			}
			data, err := io.ReadAll(part.Body)
			if err != nil {
				return InboundEmail{}, fmt.Errorf("read attachment %s: %w", filename, err)
			}
			email.Attachments = append(email.Attachments, filename)
			email.AttachmentData[filename] = data
		}
	}

	email.Body = textBody
	if email.Body == "" && htmlBody != "" {
		email.Body = HTMLToText(htmlBody)
	}

	return email, nil
}
