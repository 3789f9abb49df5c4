package payments

import (
	"context"

	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
)

// OnboardingService links hosts to Stripe Express accounts and mints the
// time-limited onboarding links that collect their compliance information.
type OnboardingService struct {
	users   UserStore
	gateway Gateway
}

func NewOnboardingService(users UserStore, gw Gateway) *OnboardingService {
	return &OnboardingService{users: users, gateway: gw}
}

type OnboardingResult struct {
	StripeAccountID string `json:"stripe_account_id"`
	URL             string `json:"url"`
}

// Start creates the connected account if the user has none yet and always
// mints a fresh onboarding link. Account creation is idempotent: an
// existing identifier is reused, never replaced.
func (s *OnboardingService) Start(ctx context.Context, userID, origin string) (OnboardingResult, error) {
	if origin == "" {
		return OnboardingResult{}, domain.ErrOriginRequired
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return OnboardingResult{}, err
	}

	accountID := ""
	if user.StripeAccountID != nil {
		accountID = *user.StripeAccountID
	}
	if accountID == "" {
		accountID, err = s.gateway.CreateAccount(ctx, user.Email)
		if err != nil {
			return OnboardingResult{}, err
		}
		if err := s.users.SetStripeAccount(ctx, user.ID, accountID); err != nil {
			return OnboardingResult{}, err
		}
	}

	url, err := s.gateway.CreateAccountLink(
		ctx,
		accountID,
		origin+"/host?onboarding=refresh",
		origin+"/host?onboarding=return",
	)
	if err != nil {
		return OnboardingResult{}, err
	}

	return OnboardingResult{StripeAccountID: accountID, URL: url}, nil
}
