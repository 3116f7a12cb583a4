package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteRecordRoundTrip(t *testing.T) {
	s := NewFSStore(t.TempDir())

	content := []byte("pn|a,b,c,d|md|1S2,S3,S4|")
	if err := s.WriteRecord("speedball-pairs", "9001", "17", "424242", content); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	path := RecordPath(s.BasePath(), "speedball-pairs", "9001", "17", "424242")
	got, err := s.ReadRecord(path)
	if err != nil {
		t.Fatalf("ReadRecord: %v", err)
	}
	if got != string(content) {
		t.Fatalf("round trip = %q, want %q", got, string(content))
	}

	// No temp file should be left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file still present: %v", err)
	}
}

func TestWriteRecordRequiresID(t *testing.T) {
	s := NewFSStore(t.TempDir())
	if err := s.WriteRecord("t", "1", "2", "", nil); err == nil {
		t.Fatal("expected error for empty record id")
	}
}

func TestListRecordsFindsOnlyRecordFiles(t *testing.T) {
	s := NewFSStore(t.TempDir())

	for _, id := range []string{"1", "2", "3"} {
		if err := s.WriteRecord("pairs", "10", "7", id, []byte("pn|")); err != nil {
			t.Fatalf("WriteRecord: %v", err)
		}
	}
	stray := filepath.Join(s.BasePath(), "pairs", "notes.txt")
	if err := os.WriteFile(stray, []byte("not a record"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	paths, err := s.ListRecords()
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("found %d records, want 3: %v", len(paths), paths)
	}
}

func TestListRecordsMissingRootIsEmpty(t *testing.T) {
	s := NewFSStore(filepath.Join(t.TempDir(), "does-not-exist"))
	paths, err := s.ListRecords()
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected no records, got %v", paths)
	}
}

func TestRecordPathLayout(t *testing.T) {
	got := RecordPath("/data", "indy", "123", "45", "678")
	want := filepath.Join("/data", "indy", "123", "45", "678.lin")
	if got != want {
		t.Fatalf("RecordPath = %q, want %q", got, want)
	}
}
