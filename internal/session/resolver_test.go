package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yolked/yolked/internal/api"
)

// fakeClient implements api.Client with canned answers.
type fakeClient struct {
	user       *api.User
	userErr    error
	profile    *api.Profile
	profileErr error

	profileCalls int
}

func (f *fakeClient) CurrentUser(context.Context) (*api.User, error) { return f.user, f.userErr }
func (f *fakeClient) Profile(context.Context) (*api.Profile, error) {
	f.profileCalls++
	return f.profile, f.profileErr
}
func (f *fakeClient) SignUp(context.Context, string, string, api.SignUpMeta) (*api.Session, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeClient) SignInWithPassword(context.Context, string, string) (*api.Session, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeClient) SignInWithOAuth(context.Context, string) (string, error) {
	return "", errors.New("not implemented")
}
func (f *fakeClient) UpdateProfile(context.Context, api.ProfileFields) (*api.Profile, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeClient) SignOut(context.Context) error    { return nil }
func (f *fakeClient) OnAuthChange(func(api.AuthEvent)) {}

func TestResolveSignedOut(t *testing.T) {
	r := New(&fakeClient{})
	res := r.Resolve(context.Background())
	require.Equal(t, RouteWelcome, res.Route)
	require.Nil(t, res.User)
}

func TestResolveIdentityLookupErrorFailsOpen(t *testing.T) {
	r := New(&fakeClient{userErr: errors.New("network down")})
	res := r.Resolve(context.Background())
	require.Equal(t, RouteWelcome, res.Route)
}

func TestResolveProfileFetchErrorFailsOpen(t *testing.T) {
	fake := &fakeClient{
		user:       &api.User{ID: "u1", Email: "a@b.com"},
		profileErr: errors.New("boom"),
	}
	res := New(fake).Resolve(context.Background())
	require.Equal(t, RouteOnboarding, res.Route, "a failed profile fetch must never route to the main app")
	require.NotNil(t, res.User)
}

func TestResolveMissingProfileNeedsOnboarding(t *testing.T) {
	fake := &fakeClient{
		user:       &api.User{ID: "u1"},
		profileErr: api.ErrProfileNotFound,
	}
	res := New(fake).Resolve(context.Background())
	require.Equal(t, RouteOnboarding, res.Route)
}

func TestResolveIncompleteProfileRestartsWizard(t *testing.T) {
	fake := &fakeClient{
		user:    &api.User{ID: "u1"},
		profile: &api.Profile{UserID: "u1", OnboardingCompleted: false},
	}
	res := New(fake).Resolve(context.Background())
	require.Equal(t, RouteOnboarding, res.Route)
}

func TestResolveCompletedProfileSkipsOnboarding(t *testing.T) {
	fake := &fakeClient{
		user:    &api.User{ID: "u1"},
		profile: &api.Profile{UserID: "u1", OnboardingCompleted: true},
	}
	res := New(fake).Resolve(context.Background())
	require.Equal(t, RouteMain, res.Route)
	require.NotNil(t, res.Profile)
	require.Equal(t, 1, fake.profileCalls)
}
