package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"savings-site/domain"
	"savings-site/metrics"
	"savings-site/repository"
)

const submissionCachePrefix = "waitlist:"

type WaitlistOptions struct {
	From      string
	TeamInbox string
	// SubmissionTTL bounds how long a repeated address is answered from cache.
	SubmissionTTL time.Duration
}

type WaitlistService struct {
	repo     repository.SubscriberRepository
	cache    repository.CacheRepository
	mailer   Mailer
	validate *validator.Validate
	opts     WaitlistOptions
	now      func() time.Time
}

func NewWaitlistService(
	repo repository.SubscriberRepository,
	cache repository.CacheRepository,
	mailer Mailer,
	opts WaitlistOptions,
) *WaitlistService {
	return &WaitlistService{
		repo:     repo,
		cache:    cache,
		mailer:   mailer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		opts:     opts,
		now:      time.Now,
	}
}

// Join registers an email on the waitlist and sends the confirmation and
// team notification emails. Email delivery failures are logged only.
func (s *WaitlistService) Join(ctx context.Context, req domain.JoinRequest) (domain.Subscriber, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Source = strings.TrimSpace(req.Source)

	if err := s.validate.StructCtx(ctx, req); err != nil {
		metrics.WaitlistSignupsTotal.WithLabelValues("invalid").Inc()
		return domain.Subscriber{}, fmt.Errorf("%w: %s", ErrInvalidSignup, validationMessage(err))
	}

	key := submissionCachePrefix + req.Email
	if _, seen := s.cache.Get(ctx, key); seen {
		metrics.WaitlistSignupsTotal.WithLabelValues("duplicate").Inc()
		return domain.Subscriber{}, ErrAlreadySubscribed
	}

	sub := domain.Subscriber{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Source:    req.Source,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Save(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.remember(ctx, key, sub.ID)
			metrics.WaitlistSignupsTotal.WithLabelValues("duplicate").Inc()
			return domain.Subscriber{}, ErrAlreadySubscribed
		}
		metrics.WaitlistSignupsTotal.WithLabelValues("error").Inc()
		return domain.Subscriber{}, fmt.Errorf("%w: %w", ErrSubscriberNotSaved, err)
	}
	metrics.WaitlistSignupsTotal.WithLabelValues("created").Inc()

	s.sendConfirmation(ctx, sub)
	s.notifyTeam(ctx, sub)
	s.remember(ctx, key, sub.ID)

	log.Ctx(ctx).Info().
		Str("subscriber_id", sub.ID).
		Str("source", sub.Source).
		Msg("waitlist signup")

	return sub, nil
}

func (s *WaitlistService) remember(ctx context.Context, key, id string) {
	// A failed write only means the repository answers the next repeat.
	if err := s.cache.Set(ctx, key, id, s.opts.SubmissionTTL); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("failed to cache waitlist submission")
	}
}

func (s *WaitlistService) sendConfirmation(ctx context.Context, sub domain.Subscriber) {
	body, err := render(confirmationTmpl, sub)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to render confirmation email")
		return
	}
	s.send(ctx, "confirmation", EmailMessage{
		From:    s.opts.From,
		To:      []string{sub.Email},
		Subject: "You're on the waitlist",
		HTML:    body,
	})
}

func (s *WaitlistService) notifyTeam(ctx context.Context, sub domain.Subscriber) {
	if s.opts.TeamInbox == "" {
		return
	}
	body, err := render(teamNotificationTmpl, sub)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to render team notification")
		return
	}
	s.send(ctx, "team_notification", EmailMessage{
		From:    s.opts.From,
		To:      []string{s.opts.TeamInbox},
		Subject: "New waitlist signup: " + sub.Email,
		HTML:    body,
		ReplyTo: sub.Email,
	})
}

func (s *WaitlistService) send(ctx context.Context, template string, msg EmailMessage) {
	if err := s.mailer.Send(ctx, msg); err != nil {
		metrics.EmailsSentTotal.WithLabelValues(template, "error").Inc()
		log.Ctx(ctx).Warn().Err(err).Str("template", template).Msg("failed to send email")
		return
	}
	metrics.EmailsSentTotal.WithLabelValues(template, "ok").Inc()
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return strings.ToLower(fe.Field()) + " is required"
	case "email":
		return "not a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", strings.ToLower(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag())
	}
}
