package service

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/stpnv0/Hack4Good/internal/kv"
	"github.com/stpnv0/Hack4Good/internal/repository"
	"github.com/stpnv0/Hack4Good/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRosterService(t *testing.T, store *kv.MemoryStore, events []*domain.Event, signups []*domain.Signup) (*RosterService, *mocks.MockActivityPublisher) {
	t.Helper()
	publisher := mocks.NewMockActivityPublisher(t)
	svc := NewRosterService(
		store,
		repository.NewMemEventRepo(events...),
		repository.NewMemSignupRepo(signups...),
		publisher,
		newTestLogger(t),
	)
	return svc, publisher
}

func TestRosterService_Init(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc, _ := newRosterService(t, store, nil, nil)

	svc.Init(ctx, "e1")
	assert.Equal(t, []string{"Alex Chen", "Jordan Martinez", "Sam Taylor"}, svc.List(ctx, "e1"))

	require.NoError(t, store.Set(ctx, RosterKey("e2"), []byte(`[]`)))
	svc.Init(ctx, "e2")
	assert.Empty(t, svc.List(ctx, "e2"))
}

func TestRosterService_AddRemove(t *testing.T) {
	ctx := context.Background()
	svc, publisher := newRosterService(t, kv.NewMemoryStore(), nil, nil)

	publisher.EXPECT().Publish(mock.MatchedBy(func(a domain.Activity) bool {
		return a.EventID == "e1" && a.Kind == domain.ActivityRosterChanged
	})).Times(3)

	names, err := svc.Add(ctx, "e1", "Riley Park")
	require.NoError(t, err)
	assert.Equal(t, []string{"Riley Park"}, names)

	names, err = svc.Add(ctx, "e1", "Morgan Lee")
	require.NoError(t, err)
	assert.Equal(t, []string{"Riley Park", "Morgan Lee"}, names)

	names, err = svc.Add(ctx, "e1", "Riley Park")
	require.NoError(t, err)
	assert.Len(t, names, 2)

	names = svc.Remove(ctx, "e1", "Riley Park")
	assert.Equal(t, []string{"Morgan Lee"}, names)
}

func TestRosterService_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	svc, publisher := newRosterService(t, kv.NewMemoryStore(), nil, nil)

	const names = 25
	publisher.EXPECT().Publish(mock.Anything).Times(names)

	var wg sync.WaitGroup
	for i := 0; i < names; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Add(ctx, "e1", "Name "+strconv.Itoa(i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got := svc.List(ctx, "e1")
	assert.Len(t, got, names)
	for i := 0; i < names; i++ {
		assert.Contains(t, got, "Name "+strconv.Itoa(i))
	}
}

func TestRosterService_ConcurrentAddAndRemove(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, RosterKey("e1"), []byte(`["Keep","Drop"]`)))
	svc, publisher := newRosterService(t, store, nil, nil)

	publisher.EXPECT().Publish(mock.Anything).Times(2)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := svc.Add(ctx, "e1", "New")
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		svc.Remove(ctx, "e1", "Drop")
	}()
	wg.Wait()

	assert.ElementsMatch(t, []string{"Keep", "New"}, svc.List(ctx, "e1"))
}

func TestRosterService_Add_BlankName(t *testing.T) {
	svc, _ := newRosterService(t, kv.NewMemoryStore(), nil, nil)

	_, err := svc.Add(context.Background(), "e1", "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRosterService_StorageFailureReadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockKVStore(t)
	publisher := mocks.NewMockActivityPublisher(t)
	svc := NewRosterService(store, repository.NewMemEventRepo(), repository.NewMemSignupRepo(), publisher, newTestLogger(t))

	store.EXPECT().Get(mock.Anything, RosterKey("e1")).Return(nil, assert.AnError)
	store.EXPECT().Set(mock.Anything, RosterKey("e1"), mock.Anything).Return(assert.AnError)

	assert.Equal(t, []string{}, svc.List(ctx, "e1"))

	names, err := svc.Add(ctx, "e1", "Riley Park")
	require.NoError(t, err)
	assert.Equal(t, []string{}, names)
}

func TestRosterService_CorruptRosterReadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, RosterKey("e1"), []byte("not json")))
	svc, _ := newRosterService(t, store, nil, nil)

	assert.Equal(t, []string{}, svc.List(ctx, "e1"))
}

func TestRosterService_InitAll(t *testing.T) {
	ctx := context.Background()
	events := []*domain.Event{
		{ID: "tracked", VolunteerQuota: intPtr(2)},
		{ID: "untracked"},
	}
	svc, _ := newRosterService(t, kv.NewMemoryStore(), events, nil)

	require.NoError(t, svc.InitAll(ctx))

	assert.Len(t, svc.List(ctx, "tracked"), 3)
	assert.Empty(t, svc.List(ctx, "untracked"))
}

func TestRosterService_Audit(t *testing.T) {
	ctx := context.Background()
	events := []*domain.Event{
		{ID: "drifted", VolunteerQuota: intPtr(5)},
		{ID: "in-sync", VolunteerQuota: intPtr(5)},
		{ID: "untracked"},
	}
	signups := []*domain.Signup{
		{ID: "s1", EventID: "drifted", UserID: "v1", Role: domain.RoleVolunteer},
		{ID: "s2", EventID: "in-sync", UserID: "v2", Role: domain.RoleVolunteer},
		{ID: "s3", EventID: "in-sync", UserID: "p1", Role: domain.RoleParticipant},
	}
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, RosterKey("drifted"), []byte(`["A","B","C"]`)))
	require.NoError(t, store.Set(ctx, RosterKey("in-sync"), []byte(`["Riley Park"]`)))
	svc, _ := newRosterService(t, store, events, signups)

	drift, err := svc.Audit(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.RosterDrift{
		{EventID: "drifted", RosterSize: 3, VolunteerCount: 1},
	}, drift)
}
