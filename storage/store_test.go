package storage

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/huyi122/Ticket-Master/model"
	"github.com/huyi122/Ticket-Master/store"
)

// fakeSnap records saves in memory.
type fakeSnap struct {
	doc   *model.BackupData
	saves int
}

func (f *fakeSnap) Load(context.Context) (*model.BackupData, error) { return f.doc, nil }

func (f *fakeSnap) Save(_ context.Context, doc *model.BackupData) error {
	f.doc = doc
	f.saves++
	return nil
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh install starts empty", func(t *testing.T) {
		st, err := Open(ctx, &fakeSnap{}, zerolog.Nop())
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if len(st.Events()) != 0 || len(st.Tickets()) != 0 {
			t.Fatalf("expected empty collections")
		}
	})

	t.Run("rehydrates an existing snapshot", func(t *testing.T) {
		snap := &fakeSnap{doc: &model.BackupData{
			Version:   1,
			Timestamp: 1,
			Events:    []model.Event{{ID: "E1", Name: "Gala"}},
			Tickets:   []model.Ticket{{ID: "T1", EventID: "E1", Code: "AAAA"}},
		}}
		st, err := Open(ctx, snap, zerolog.Nop())
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if len(st.Events()) != 1 || st.Events()[0].Name != "Gala" {
			t.Fatalf("events not rehydrated: %+v", st.Events())
		}
		if len(st.Tickets()) != 1 {
			t.Fatalf("tickets not rehydrated: %+v", st.Tickets())
		}
	})
}

func TestApplyPersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	snap := &fakeSnap{}
	st, err := Open(ctx, snap, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	err = st.Apply(ctx, func(events []model.Event, tickets []model.Ticket) ([]model.Event, []model.Ticket) {
		return store.CreateEvent(events, model.CreateEventInput{Name: "Gala"}, 1700000000000), tickets
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if snap.saves != 1 {
		t.Fatalf("expected 1 save after 1 mutation, got %d", snap.saves)
	}
	if len(snap.doc.Events) != 1 || snap.doc.Events[0].Name != "Gala" {
		t.Fatalf("persisted document is stale: %+v", snap.doc)
	}
	if snap.doc.Version != model.BackupVersion || snap.doc.Timestamp == 0 {
		t.Fatalf("persisted document missing envelope: %+v", snap.doc)
	}
}

func TestReplaceSwapsBothCollections(t *testing.T) {
	ctx := context.Background()
	snap := &fakeSnap{doc: &model.BackupData{
		Version: 1, Timestamp: 1,
		Events:  []model.Event{{ID: "OLD"}},
		Tickets: []model.Ticket{{ID: "OLDT"}},
	}}
	st, err := Open(ctx, snap, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	err = st.Replace(ctx,
		[]model.Event{{ID: "E1"}, {ID: "E2"}},
		[]model.Ticket{{ID: "T1"}},
	)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	if len(st.Events()) != 2 || len(st.Tickets()) != 1 {
		t.Fatalf("collections not replaced")
	}
	if len(snap.doc.Events) != 2 {
		t.Fatalf("replacement not persisted")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	ctx := context.Background()
	snap := &fakeSnap{doc: &model.BackupData{
		Version: 1, Timestamp: 1,
		Events:  []model.Event{{ID: "E1", Name: "Gala"}},
		Tickets: []model.Ticket{},
	}}
	st, err := Open(ctx, snap, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	events := st.Events()
	events[0].Name = "tampered"
	if st.Events()[0].Name != "Gala" {
		t.Fatalf("accessor leaked internal state")
	}
}
