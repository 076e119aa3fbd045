package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Cba40/blogCBA/internal/mailer"
	"github.com/Cba40/blogCBA/pkg/envutils"
)

var (
	ErrMissingFields  = errors.New("missing subject or content")
	ErrNoSubscribers  = errors.New("no subscribers")
	ErrDispatchFailed = errors.New("failed to send newsletter")
)

// DISPATCH_CONCURRENCY caps concurrent SMTP deliveries. Kept small on
// purpose: consumer relays throttle well before this becomes the
// bottleneck.
const DISPATCH_CONCURRENCY = 4

type Mailer interface {
	Send(ctx context.Context, mail mailer.Mail) error
}

type SiteConfig struct {
	// URL is the public site domain absolute links in email are built on.
	URL string
}

type NewsletterService struct {
	articles    *ArticleService
	subscribers *SubscriberService
	mailer      Mailer
	site        *SiteConfig
	log         *zap.SugaredLogger
}

// Dispatch sends one personalized message per subscriber, each carrying
// an unsubscribe link built from that subscriber's own id. Returns the
// number of recipients attempted. A transport failure anywhere fails the
// whole dispatch; per-recipient results are not tracked.
func (s *NewsletterService) Dispatch(ctx context.Context, subject, content string) (int, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(content) == "" {
		return 0, ErrMissingFields
	}

	recipients, err := s.subscribers.Recipients(ctx)
	if err != nil {
		s.log.Errorf("unable load recipients. Err:%s", err)
		return 0, ErrDispatchFailed
	}
	if len(recipients) == 0 {
		return 0, ErrNoSubscribers
	}

	featured := s.featuredCard(ctx)
	paragraphs := mailer.SplitParagraphs(content)
	year := time.Now().Year()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(DISPATCH_CONCURRENCY)
	for _, recipient := range recipients {
		recipient := recipient
		group.Go(func() error {
			html, err := mailer.RenderNewsletter(mailer.NewsletterParams{
				Subject:        subject,
				Paragraphs:     paragraphs,
				Featured:       featured,
				UnsubscribeURL: s.unsubscribeURL(recipient.ID),
				SiteURL:        s.site.URL,
				Year:           year,
			})
			if err != nil {
				return err
			}
			return s.mailer.Send(groupCtx, mailer.Mail{
				To:      recipient.Email,
				Subject: subject,
				HTML:    html,
			})
		})
	}

	if err := group.Wait(); err != nil {
		s.log.Errorf("newsletter dispatch failed. Err:%s", err)
		return 0, ErrDispatchFailed
	}
	return len(recipients), nil
}

// featuredCard loads the current featured article. None flagged is a
// policy outcome, not an error: the email simply omits the block.
func (s *NewsletterService) featuredCard(ctx context.Context) *mailer.FeaturedCard {
	article, err := s.articles.GetFeaturedArticle(ctx)
	if errors.Is(err, ErrNoFeaturedArticle) {
		return nil
	}
	if err != nil {
		s.log.Errorf("unable load featured article. Err:%s", err)
		return nil
	}
	return &mailer.FeaturedCard{
		Title:    article.Title,
		Excerpt:  article.Excerpt,
		ImageURL: s.assetURL(article.Image),
		Link:     fmt.Sprintf("%s/article/%s", s.site.URL, article.ID),
	}
}

func (s *NewsletterService) unsubscribeURL(token string) string {
	return fmt.Sprintf("%s/api/unsubscribe?token=%s", s.site.URL, token)
}

func (s *NewsletterService) assetURL(image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return s.site.URL + "/" + strings.TrimPrefix(image, "/")
}

func NewSiteConfig() *SiteConfig {
	return &SiteConfig{
		URL: strings.TrimRight(envutils.Env("SITE_URL", "http://localhost:5173"), "/"),
	}
}

type NewNewsletterServiceParams struct {
	fx.In

	Articles    *ArticleService
	Subscribers *SubscriberService
	Mailer      Mailer
	Site        *SiteConfig
	Log         *zap.SugaredLogger
}

func NewNewsletterService(params NewNewsletterServiceParams) *NewsletterService {
	return &NewsletterService{
		articles:    params.Articles,
		subscribers: params.Subscribers,
		mailer:      params.Mailer,
		site:        params.Site,
		log:         params.Log,
	}
}
