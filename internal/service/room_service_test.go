package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/models"
)

func seedThirdUser(t *testing.T, st *testStack) int64 {
	t.Helper()
	id, err := st.svc.SignUp(context.Background(), SignUpInput{Email: "third@fit.io", Nickname: "third", Password: "thirdpass"})
	if err != nil {
		t.Fatalf("SignUp third: %v", err)
	}
	return id
}

func TestRoomService_CreateAndJoin(t *testing.T) {
	st := newTestStack(t)
	st.seedUsers(t)
	third := seedThirdUser(t, st)
	ctx := context.Background()

	room, err := st.svc.CreateRoom(ctx, admin.UserID, RoomInput{Name: "Morning crew", MaxMembers: 2})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if room.Status != models.RoomWaiting || len(room.Code) != roomCodeLen || !room.IsMember(admin.UserID) {
		t.Fatalf("unexpected room %+v", room)
	}

	joined, err := st.svc.JoinRoom(ctx, member.UserID, " "+room.Code+" ")
	if err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}
	if len(joined.Members) != 2 {
		t.Fatalf("expected 2 members, got %v", joined.Members)
	}
	// joining again is a no-op
	if again, err := st.svc.JoinRoom(ctx, member.UserID, room.Code); err != nil || len(again.Members) != 2 {
		t.Fatalf("rejoin: %+v, %v", again, err)
	}
	if _, err := st.svc.JoinRoom(ctx, third, room.Code); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict for full room, got %v", err)
	}
	if _, err := st.svc.JoinRoom(ctx, third, "NOPE0000"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found for unknown code, got %v", err)
	}
}

func TestRoomService_CreateValidation(t *testing.T) {
	st := newTestStack(t)
	st.seedUsers(t)
	ctx := context.Background()

	for _, in := range []RoomInput{
		{Name: ""},
		{Name: "x", MaxMembers: 1},
		{Name: "x", MaxMembers: 99},
	} {
		if _, err := st.svc.CreateRoom(ctx, admin.UserID, in); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("CreateRoom(%+v): expected validation, got %v", in, err)
		}
	}
	r, err := st.svc.CreateRoom(ctx, admin.UserID, RoomInput{Name: "defaults"})
	if err != nil || r.MaxMembers != 4 {
		t.Fatalf("expected configured max members, got %+v, %v", r, err)
	}
	if _, err := st.svc.ListRooms(ctx, "sleeping"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation for unknown status, got %v", err)
	}
}

func TestRoomService_Lifecycle(t *testing.T) {
	st := newTestStack(t)
	st.seedUsers(t)
	third := seedThirdUser(t, st)
	ctx := context.Background()

	room, _ := st.svc.CreateRoom(ctx, admin.UserID, RoomInput{Name: "Evening"})
	if _, err := st.svc.JoinRoom(ctx, member.UserID, room.Code); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}

	if _, err := st.svc.StartRoom(ctx, member.UserID, room.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected forbidden start by non-owner, got %v", err)
	}
	started, err := st.svc.StartRoom(ctx, admin.UserID, room.ID)
	if err != nil {
		t.Fatalf("StartRoom: %v", err)
	}
	if started.Status != models.RoomActive || started.StartedAt == nil {
		t.Fatalf("unexpected started room %+v", started)
	}
	if _, err := st.svc.StartRoom(ctx, admin.UserID, room.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict starting twice, got %v", err)
	}
	if _, err := st.svc.JoinRoom(ctx, third, room.Code); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict joining active room, got %v", err)
	}

	left, err := st.svc.LeaveRoom(ctx, member.UserID, room.ID)
	if err != nil || left.IsMember(member.UserID) || left.Status != models.RoomActive {
		t.Fatalf("LeaveRoom member: %+v, %v", left, err)
	}
	if _, err := st.svc.LeaveRoom(ctx, member.UserID, room.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found leaving twice, got %v", err)
	}

	active, _ := st.svc.ListRooms(ctx, models.RoomActive)
	if len(active) != 1 {
		t.Fatalf("expected 1 active room, got %d", len(active))
	}

	closed, err := st.svc.CloseRoom(ctx, admin.UserID, room.ID)
	if err != nil || closed.Status != models.RoomClosed || closed.ClosedAt == nil {
		t.Fatalf("CloseRoom: %+v, %v", closed, err)
	}
	if _, err := st.svc.CloseRoom(ctx, admin.UserID, room.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict closing twice, got %v", err)
	}
}

func TestRoomService_OwnerLeavingCloses(t *testing.T) {
	st := newTestStack(t)
	st.seedUsers(t)
	ctx := context.Background()

	room, _ := st.svc.CreateRoom(ctx, admin.UserID, RoomInput{Name: "Solo"})
	r, err := st.svc.LeaveRoom(ctx, admin.UserID, room.ID)
	if err != nil {
		t.Fatalf("LeaveRoom owner: %v", err)
	}
	if r.Status != models.RoomClosed {
		t.Fatalf("expected room closed after owner left, got %s", r.Status)
	}
	if _, err := st.svc.JoinRoom(ctx, member.UserID, room.Code); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict joining closed room, got %v", err)
	}
}

func TestRoomReaper_ReapOnce(t *testing.T) {
	st := newTestStack(t)
	st.seedUsers(t)
	ctx := context.Background()

	stale, _ := st.svc.CreateRoom(ctx, admin.UserID, RoomInput{Name: "Stale"})
	fresh, _ := st.svc.CreateRoom(ctx, member.UserID, RoomInput{Name: "Fresh"})

	reaper := NewRoomReaperService(st.repos.Rooms, time.Hour, nopLogger())
	reaper.now = func() time.Time { return time.Now().UTC().Add(30 * time.Minute) }
	if n, err := reaper.ReapOnce(ctx); err != nil || n != 0 {
		t.Fatalf("nothing should be idle yet: %d, %v", n, err)
	}

	// touch the fresh room later than the stale one
	roomSvc := NewRoomService(st.repos.Rooms, 4)
	roomSvc.now = func() time.Time { return time.Now().UTC().Add(2 * time.Hour) }
	if _, err := roomSvc.JoinRoom(ctx, admin.UserID, fresh.Code); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}

	reaper.now = func() time.Time { return time.Now().UTC().Add(90 * time.Minute) }
	n, err := reaper.ReapOnce(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expected exactly one reaped room, got %d, %v", n, err)
	}
	if r, _ := st.svc.GetRoom(ctx, stale.ID); r.Status != models.RoomClosed {
		t.Fatalf("stale room should be closed, got %s", r.Status)
	}
	if r, _ := st.svc.GetRoom(ctx, fresh.ID); r.Status != models.RoomWaiting {
		t.Fatalf("fresh room should stay open, got %s", r.Status)
	}
}

func TestRoomReaper_RunStopsOnCancel(t *testing.T) {
	st := newTestStack(t)
	reaper := NewRoomReaperService(st.repos.Rooms, time.Hour, nopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		reaper.Run(ctx, 5*time.Millisecond)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRoomService_GetRoomByCode(t *testing.T) {
	st := newTestStack(t)
	st.seedUsers(t)
	ctx := context.Background()

	room, err := st.svc.CreateRoom(ctx, admin.UserID, RoomInput{Name: "Lookup"})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	got, err := st.svc.GetRoomByCode(ctx, " "+room.Code+" ")
	if err != nil || got.ID != room.ID {
		t.Fatalf("GetRoomByCode: %+v, %v", got, err)
	}
	if _, err := st.svc.GetRoomByCode(ctx, ""); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := st.svc.GetRoomByCode(ctx, "NOPE0000"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
