package state

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestStore_UpdateAndSnapshot(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(nil)

	snap := s.Snapshot()
	if !snap.Healthy {
		t.Fatal("Healthy = false after successful check")
	}
	if snap.LastChecked.Before(before) {
		t.Fatalf("LastChecked = %v, want >= %v", snap.LastChecked, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestStore_SnapshotClonesError(t *testing.T) {
	var s Store

	origErr := errors.New("boom")
	s.Update(origErr)

	snap := s.Snapshot()
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatal("Snapshot should clone error instance")
	}
}

func TestStore_OfflineThreshold(t *testing.T) {
	var s Store

	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true with 0 failures")
	}

	s.Update(errors.New("fail 1"))
	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true with 1 failure")
	}

	s.Update(errors.New("fail 2"))
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("ConsecutiveFailures = %d IsOffline = %v, want 2/true", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() || !snap.Healthy {
		t.Fatalf("snapshot after recovery = %#v, want reset", snap)
	}
}
