package admin

import (
	"context"
	"errors"
	"sync"

	"yatra/backend"
	"yatra/models"
)

// Dashboard is what the admin page renders. Either half can be missing:
// a failed analytics fetch degrades that section to its error text
// instead of blanking the whole page.
type Dashboard struct {
	Verified     bool
	Analytics    *models.Analytics
	AnalyticsErr string
}

// Load runs the admin gate check and the analytics fetch in parallel.
// Only a failed gate check is a hard error; the backend, not the local
// role, decides whether this token is an admin.
func Load(ctx context.Context, api *backend.Client, token string) (*Dashboard, error) {
	var (
		wg       sync.WaitGroup
		checkErr error
		data     *models.Analytics
		dataErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		checkErr = api.AdminCheck(ctx, token)
	}()
	go func() {
		defer wg.Done()
		data, dataErr = api.AdminAnalytics(ctx, token)
	}()
	wg.Wait()

	if checkErr != nil {
		return nil, checkErr
	}

	dash := &Dashboard{Verified: true, Analytics: data}
	if dataErr != nil {
		dash.AnalyticsErr = notice(dataErr)
	}
	return dash, nil
}

func notice(err error) string {
	switch {
	case errors.Is(err, backend.ErrNetwork):
		return "Analytics are unreachable right now"
	case errors.Is(err, backend.ErrAuth), errors.Is(err, backend.ErrForbidden):
		return "Analytics are not available for this account"
	default:
		return "Analytics could not be loaded"
	}
}
