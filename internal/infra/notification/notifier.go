package notification

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wingman/internal/delivery/context"
	"wingman/internal/domain/entity"
	"wingman/internal/domain/repository"
	"wingman/internal/domain/service"
	"wingman/internal/errors"

	"github.com/google/uuid"
)

// notifier fans each engagement notification out to push and email.
type notifier struct {
	push     service.PushSender
	email    service.EmailSender
	devices  repository.DeviceRepository
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

// NewNotifier composes push and email delivery behind the Notifier interface.
func NewNotifier(push service.PushSender, email service.EmailSender, devices repository.DeviceRepository, profiles repository.ProfileRepository, logger *slog.Logger) service.Notifier {
	return &notifier{
		push:     push,
		email:    email,
		devices:  devices,
		profiles: profiles,
		logger:   logger,
	}
}

type outgoing struct {
	recipient uuid.UUID
	partner   uuid.UUID
	title     string
	body      string
	template  string
	subject   string
	data      map[string]string
	venue     string
	when      string
}

func (n *notifier) NotifyMatchAccepted(ctx context.Context, match *entity.WingmanMatch) error {
	data := map[string]string{"type": "match_accepted", "match_id": match.ID.String()}

	return errors.Join(
		n.deliver(ctx, outgoing{recipient: match.UserAID, partner: match.UserBID, title: "It's a match!", body: "Your wingman accepted. Open the chat to plan a session.", template: "match_accepted", subject: "Your wingman match is confirmed", data: data}),
		n.deliver(ctx, outgoing{recipient: match.UserBID, partner: match.UserAID, title: "It's a match!", body: "Your wingman accepted. Open the chat to plan a session.", template: "match_accepted", subject: "Your wingman match is confirmed", data: data}),
	)
}

func (n *notifier) NotifyMatchDeclined(ctx context.Context, match *entity.WingmanMatch, declinedBy uuid.UUID) error {
	return n.deliver(ctx, outgoing{
		recipient: match.PartnerOf(declinedBy),
		partner:   declinedBy,
		title:     "Match ended",
		body:      "A pending match has ended. Request a new one anytime.",
		template:  "match_declined",
		subject:   "Your pending match has ended",
		data:      map[string]string{"type": "match_declined", "match_id": match.ID.String()},
	})
}

func (n *notifier) NotifySessionScheduled(ctx context.Context, match *entity.WingmanMatch, session *entity.WingmanSession) error {
	when := session.ScheduledTime.UTC().Format(time.RFC1123)

	return n.deliver(ctx, outgoing{
		recipient: match.PartnerOf(session.CreatedBy),
		partner:   session.CreatedBy,
		title:     "Session scheduled",
		body:      session.VenueName + " on " + when,
		template:  "session_scheduled",
		subject:   "A wingman session was scheduled",
		data: map[string]string{
			"type":       "session_scheduled",
			"match_id":   match.ID.String(),
			"session_id": session.ID.String(),
		},
		venue: session.VenueName,
		when:  when,
	})
}

// deliver sends one notification through every channel. Channel failures are joined
// so the caller can log them; one channel failing never skips the other.
func (n *notifier) deliver(ctx context.Context, msg outgoing) error {
	return errors.Join(n.sendPush(ctx, msg), n.sendEmail(ctx, msg))
}

func (n *notifier) sendPush(ctx context.Context, msg outgoing) error {
	tokens, err := n.devices.FindActiveTokensForUsers(ctx, []uuid.UUID{msg.recipient})
	if err != nil {
		return errors.Wrap(err, "load device tokens")
	}
	if len(tokens) == 0 {
		return nil
	}

	_, failed, invalid, err := n.push.SendBatchNotification(ctx, tokens, msg.title, msg.body, msg.data)
	if len(invalid) > 0 {
		if deactivateErr := n.devices.DeactivateTokens(ctx, invalid); deactivateErr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to deactivate invalid device tokens",
				slog.Int("count", len(invalid)),
				slog.Any("error", deactivateErr),
			)
		}
	}
	if err != nil {
		return errors.Wrap(err, "send push")
	}
	if failed > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Debug("Some push deliveries failed",
			slog.String("recipient", msg.recipient.String()),
			slog.Int("failed", failed),
		)
	}

	return nil
}

func (n *notifier) sendEmail(ctx context.Context, msg outgoing) error {
	profiles, err := n.profiles.FindProfilesByUserIDs(ctx, []uuid.UUID{msg.recipient, msg.partner})
	if err != nil {
		return errors.Wrap(err, "load profiles for email")
	}

	var recipient, partner *entity.WingmanProfile
	for _, p := range profiles {
		switch p.UserID {
		case msg.recipient:
			recipient = p
		case msg.partner:
			partner = p
		}
	}
	if recipient == nil || recipient.Email == "" {
		return nil
	}

	data := emailData{RecipientName: displayName(recipient), VenueName: msg.venue, ScheduledTime: msg.when}
	if partner != nil {
		data.PartnerName = displayName(partner)
	}

	html, err := renderEmail(msg.template, data)
	if err != nil {
		return err
	}

	return n.email.Send(ctx, &service.EmailMessage{
		To:       recipient.Email,
		ToName:   recipient.DisplayName,
		Subject:  msg.subject,
		HTMLBody: html,
	})
}

func displayName(p *entity.WingmanProfile) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}

	return "there"
}
