package fileid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCandidateID(t *testing.T) {
	id1 := CandidateID("/resumes/jane.pdf")
	id2 := CandidateID("/resumes/jane.pdf")
	if id1 != id2 {
		t.Errorf("same path should give same ID: %q vs %q", id1, id2)
	}
	if !strings.HasPrefix(id1, filePrefix) {
		t.Errorf("ID should have prefix %q: got %q", filePrefix, id1)
	}
	if len(id1) != len(filePrefix)+32 {
		t.Errorf("ID length = %d, want %d", len(id1), len(filePrefix)+32)
	}
	if CandidateID("/resumes/john.pdf") == id1 {
		t.Error("different paths should give different IDs")
	}
}

func TestCandidateID_normalized(t *testing.T) {
	id1 := CandidateID("/resumes/jane.pdf")
	if id := CandidateID("/resumes/./jane.pdf"); id != id1 {
		t.Errorf("paths with . should normalize: %q vs %q", id, id1)
	}
	if id := CandidateID("/resumes/x/../jane.pdf"); id != id1 {
		t.Errorf("paths with .. should normalize: %q vs %q", id, id1)
	}
}

func TestCandidateID_relativeResolved(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if CandidateID("cv/jane.txt") != CandidateID(filepath.Join(wd, "cv", "jane.txt")) {
		t.Error("relative path should match its absolute form")
	}
}

func TestUploadID(t *testing.T) {
	a, b := UploadID(), UploadID()
	if a == b {
		t.Errorf("upload IDs should be unique: %q", a)
	}
	if !IsUpload(a) || IsUpload(CandidateID("/x.pdf")) {
		t.Errorf("IsUpload mismatch for %q", a)
	}
}
