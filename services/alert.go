package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/mediconnect/backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const mapsLinkTemplate = "https://www.google.com/maps?q=%s,%s"

// Recipient is one entry in the emergency service directory.
type Recipient struct {
	Email string
	Icon  string
	Label string
}

// Location is the caller-reported position of the emergency.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// serviceInfo fixes the icon and display label per service key; only the
// recipient address is configurable.
var serviceInfo = map[string]struct {
	Icon  string
	Label string
}{
	"police":      {"🚓", "Police"},
	"ambulance":   {"🚑", "Ambulance"},
	"firebrigade": {"🚒", "Fire Brigade"},
}

// NewDirectory builds the service directory from configured recipient
// addresses. Keys without a configured address are left out of the
// directory, so requests naming them are rejected.
func NewDirectory(emails map[string]string) map[string]Recipient {
	directory := make(map[string]Recipient, len(serviceInfo))
	for key, info := range serviceInfo {
		if email, ok := emails[key]; ok && email != "" {
			directory[key] = Recipient{Email: email, Icon: info.Icon, Label: info.Label}
		}
	}
	return directory
}

// AlertDispatcher fans an emergency alert out to the requested services,
// one email per service, all sends issued concurrently.
type AlertDispatcher struct {
	directory map[string]Recipient
	sender    EmailSender
	logger    zerolog.Logger
}

func NewAlertDispatcher(directory map[string]Recipient, sender EmailSender) *AlertDispatcher {
	return &AlertDispatcher{
		directory: directory,
		sender:    sender,
		logger:    log.With().Str("serviceName", "alertDispatcher").Logger(),
	}
}

// Dispatch sends one formatted alert to each requested service's registered
// recipient and blocks until every send has finished. Every key is resolved
// against the directory before any email goes out; an unrecognized key fails
// the whole request without a single send. If any send fails the batch is
// reported as failed, even though other sends may have completed.
func (d *AlertDispatcher) Dispatch(ctx context.Context, serviceKeys []string, loc Location) error {
	if len(serviceKeys) == 0 {
		return errs.NewMissingRequiredFieldError("services")
	}

	recipients := make([]Recipient, 0, len(serviceKeys))
	for _, key := range serviceKeys {
		recipient, ok := d.directory[key]
		if !ok {
			return errs.NewUnknownServiceError(key)
		}
		recipients = append(recipients, recipient)
	}

	alertID := uuid.New().String()
	d.logger.Info().
		Str("alertId", alertID).
		Strs("services", serviceKeys).
		Float64("latitude", loc.Latitude).
		Float64("longitude", loc.Longitude).
		Msg("Dispatching emergency alert")

	// Plain errgroup, not WithContext: a failed send must not cancel the
	// sends still in flight. All sends are attempted, the first error wins.
	var g errgroup.Group
	for _, recipient := range recipients {
		recipient := recipient
		g.Go(func() error {
			subject, body := buildAlertMessage(recipient, loc)
			if err := d.sender.Send(ctx, subject, body, []string{recipient.Email}); err != nil {
				d.logger.Error().
					Err(err).
					Str("alertId", alertID).
					Str("service", recipient.Label).
					Msg("Failed to send emergency alert")
				return errs.NewDispatchError(recipient.Label, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	d.logger.Info().Str("alertId", alertID).Msg("Emergency alerts sent successfully")
	return nil
}

// MapsLink builds the map-service URL for a coordinate pair.
func MapsLink(latitude, longitude float64) string {
	return fmt.Sprintf(mapsLinkTemplate,
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64),
	)
}

func buildAlertMessage(recipient Recipient, loc Location) (subject, html string) {
	subject = fmt.Sprintf("EMERGENCY ALERT: %s needed", recipient.Label)

	mapsLink := MapsLink(loc.Latitude, loc.Longitude)

	addressBlock := ""
	if loc.Address != "" {
		addressBlock = fmt.Sprintf(`<p style="margin-bottom: 5px;"><strong>Address:</strong> %s</p>`, loc.Address)
	}

	html = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 5px;">
			<h1 style="color: #d32f2f; text-align: center;">URGENT HELP NEEDED!</h1>
			<div style="text-align: center; font-size: 24px; margin: 20px 0;">
				🚨 %s %s Emergency Alert 🚨
			</div>

			<div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin-bottom: 20px;">
				<h3 style="margin-top: 0; color: #333;">Location Details:</h3>
				<p style="margin-bottom: 5px;"><strong>Latitude:</strong> %s</p>
				<p style="margin-bottom: 5px;"><strong>Longitude:</strong> %s</p>
				%s
			</div>

			<div style="text-align: center; margin: 25px 0;">
				<a href="%s" style="display: inline-block; padding: 12px 24px; background-color: #d32f2f; color: white; text-decoration: none; border-radius: 5px; font-weight: bold;">View on Google Maps</a>
			</div>

			<p style="text-align: center; color: #666; font-size: 14px; margin-top: 30px;">
				Sent from MediConnect Emergency Response System
			</p>
		</div>`,
		recipient.Icon, recipient.Label,
		strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		addressBlock,
		mapsLink,
	)

	return subject, html
}
