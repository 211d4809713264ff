package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"mom-portal/backend/config"
	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/model"
	"mom-portal/backend/pkg/storage"
)

func setupTestMeetingDocumentService() (MeetingDocumentService, *testRepos, *mockFileStore) {
	repo, mocks := newTestRepos()
	mocks.meetings.add("m1", day(1), model.StatusScheduled)
	mocks.meetings.add("m2", day(2), model.StatusScheduled)
	mocks.staff.add("s1", "Ann", "ann@example.com")
	store := newMockFileStore()
	return NewMeetingDocumentService(repo, store, zap.NewNop()), mocks, store
}

func TestMeetingDocumentService_BlankName(t *testing.T) {
	svc, _, _ := setupTestMeetingDocumentService()
	ctx := context.Background()

	if _, err := svc.Add(ctx, "m1", &dto.AddMeetingDocumentRequest{DocumentName: " "}); !errors.Is(err, ErrDocumentNameBlank) {
		t.Errorf("expected ErrDocumentNameBlank, got %v", err)
	}
}

func floatPtr(f float64) *float64 { return &f }

// ── Add ──

func TestMeetingDocumentService_Add_AssignsNextSequence(t *testing.T) {
	svc, _, _ := setupTestMeetingDocumentService()
	ctx := context.Background()

	first, err := svc.Add(ctx, "m1", &dto.AddMeetingDocumentRequest{DocumentName: "Agenda"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if first.Sequence != 1 {
		t.Errorf("first document of a meeting gets sequence 1, got %v", first.Sequence)
	}

	if _, err := svc.Add(ctx, "m1", &dto.AddMeetingDocumentRequest{DocumentName: "Budget", Sequence: floatPtr(7.5)}); err != nil {
		t.Fatalf("Add with sequence failed: %v", err)
	}

	next, err := svc.Add(ctx, "m1", &dto.AddMeetingDocumentRequest{DocumentName: "Minutes"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if next.Sequence != 8.5 {
		t.Errorf("expected max+1 = 8.5, got %v", next.Sequence)
	}

	other, _ := svc.Add(ctx, "m2", &dto.AddMeetingDocumentRequest{DocumentName: "Agenda"})
	if other.Sequence != 1 {
		t.Errorf("sequence is per meeting, got %v", other.Sequence)
	}
}

func TestMeetingDocumentService_Add_ConcurrentSequencesUnique(t *testing.T) {
	svc, _, _ := setupTestMeetingDocumentService()

	const n = 10
	var wg sync.WaitGroup
	seqs := make([]float64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.Add(context.Background(), "m1", &dto.AddMeetingDocumentRequest{DocumentName: "Doc"})
			if err != nil {
				t.Errorf("Add failed: %v", err)
				return
			}
			seqs[i] = resp.Sequence
		}(i)
	}
	wg.Wait()

	seen := make(map[float64]bool)
	for _, s := range seqs {
		if seen[s] {
			t.Errorf("duplicate sequence %v", s)
		}
		seen[s] = true
	}
}

func TestMeetingDocumentService_Add_Errors(t *testing.T) {
	svc, _, _ := setupTestMeetingDocumentService()
	ctx := context.Background()

	if _, err := svc.Add(ctx, "missing", &dto.AddMeetingDocumentRequest{DocumentName: "x"}); !errors.Is(err, ErrMeetingNotFound) {
		t.Errorf("expected ErrMeetingNotFound, got %v", err)
	}
	if _, err := svc.Add(ctx, "m1", &dto.AddMeetingDocumentRequest{DocumentName: "x", UploadedBy: strPtr("ghost")}); !errors.Is(err, ErrUploaderNotFound) {
		t.Errorf("expected ErrUploaderNotFound, got %v", err)
	}
}

// ── Reorder ──

func TestMeetingDocumentService_Reorder_ScopedToMeeting(t *testing.T) {
	svc, mocks, _ := setupTestMeetingDocumentService()
	ctx := context.Background()

	a, _ := svc.Add(ctx, "m1", &dto.AddMeetingDocumentRequest{DocumentName: "A"})
	b, _ := svc.Add(ctx, "m1", &dto.AddMeetingDocumentRequest{DocumentName: "B"})
	foreign, _ := svc.Add(ctx, "m2", &dto.AddMeetingDocumentRequest{DocumentName: "Foreign"})

	resp, err := svc.Reorder(ctx, "m1", []dto.DocumentOrder{
		{DocumentID: a.ID, Sequence: floatPtr(2)},
		{DocumentID: b.ID, Sequence: floatPtr(1)},
		{DocumentID: foreign.ID, Sequence: floatPtr(0.5)},
	})
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	if len(resp.Skipped) != 1 || resp.Skipped[0] != foreign.ID {
		t.Errorf("expected foreign document to be skipped, got %v", resp.Skipped)
	}
	if mocks.docs.docs[foreign.ID].Sequence != 1 {
		t.Error("document of another meeting must keep its sequence")
	}
	if len(resp.Documents) != 2 || resp.Documents[0].ID != b.ID || resp.Documents[1].ID != a.ID {
		t.Errorf("unexpected order %+v", resp.Documents)
	}
}

func TestMeetingDocumentService_Reorder_Empty(t *testing.T) {
	svc, _, _ := setupTestMeetingDocumentService()

	_, err := svc.Reorder(context.Background(), "m1", nil)
	if !errors.Is(err, ErrEmptyDocumentOrder) {
		t.Errorf("expected ErrEmptyDocumentOrder, got %v", err)
	}
}

// ── Stats ──

func TestMeetingDocumentService_Stats(t *testing.T) {
	svc, mocks, _ := setupTestMeetingDocumentService()
	mocks.docs.docs["d1"] = &model.MeetingDocument{MeetingDocumentID: "d1", MeetingID: "m1", FileSize: 1 << 20, FileType: "application/pdf"}
	mocks.docs.docs["d2"] = &model.MeetingDocument{MeetingDocumentID: "d2", MeetingID: "m1", FileSize: 512 * 1024, FileType: "application/pdf"}
	mocks.docs.docs["d3"] = &model.MeetingDocument{MeetingDocumentID: "d3", MeetingID: "m1", FileSize: 10}
	mocks.docs.docs["d4"] = &model.MeetingDocument{MeetingDocumentID: "d4", MeetingID: "m2", FileSize: 99}

	stats, err := svc.Stats(context.Background(), "m1")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalDocuments != 3 {
		t.Errorf("expected 3 documents, got %d", stats.TotalDocuments)
	}
	if stats.TotalSize != 1<<20+512*1024+10 {
		t.Errorf("unexpected total size %d", stats.TotalSize)
	}
	if stats.TotalSizeMB != 1.5 {
		t.Errorf("expected 1.5 MB, got %v", stats.TotalSizeMB)
	}
	if stats.FileTypes["application/pdf"] != 2 || stats.FileTypes["unknown"] != 1 {
		t.Errorf("unexpected file types %v", stats.FileTypes)
	}
}

func TestMeetingDocumentService_Stats_Empty(t *testing.T) {
	svc, _, _ := setupTestMeetingDocumentService()

	stats, err := svc.Stats(context.Background(), "m2")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalDocuments != 0 || stats.TotalSizeMB != 0 || stats.FileTypes == nil {
		t.Errorf("unexpected empty stats %+v", stats)
	}
}

// ── Update / Delete ──

func TestMeetingDocumentService_UpdateAndDelete(t *testing.T) {
	svc, mocks, _ := setupTestMeetingDocumentService()
	ctx := context.Background()

	doc, _ := svc.Add(ctx, "m1", &dto.AddMeetingDocumentRequest{DocumentName: "Draft"})
	updated, err := svc.Update(ctx, doc.ID, &dto.UpdateMeetingDocumentRequest{DocumentName: strPtr("Final"), Sequence: floatPtr(3)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.DocumentName != "Final" || updated.Sequence != 3 {
		t.Errorf("unexpected document %+v", updated)
	}

	if err := svc.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := mocks.docs.docs[doc.ID]; ok {
		t.Error("document not deleted")
	}
	if _, err := svc.GetByID(ctx, doc.ID); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
}

// ── Upload ──

func TestMeetingDocumentService_Upload(t *testing.T) {
	svc, mocks, store := setupTestMeetingDocumentService()

	resp, err := svc.Upload(context.Background(),
		&dto.UploadDocumentForm{MeetingID: "m1", UploadedBy: "s1"},
		"Agenda.PDF", strings.NewReader("%PDF-1.4 body"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if resp.FileName != "Agenda.PDF" {
		t.Errorf("document name defaults to the file name, got %q", resp.FileName)
	}
	if !store.Exists(resp.FilePath) {
		t.Error("file not stored")
	}
	doc := mocks.docs.docs[resp.DocumentID]
	if doc == nil || doc.Sequence != 1 || doc.UploadedBy == nil || *doc.UploadedBy != "s1" {
		t.Errorf("unexpected stored document %+v", doc)
	}
}

func TestMeetingDocumentService_Upload_RejectedBeforeRecord(t *testing.T) {
	tests := []struct {
		name    string
		saveErr error
		want    error
	}{
		{"too large", storage.ErrFileTooLarge, ErrFileTooLarge},
		{"wrong type", storage.ErrFileTypeNotAllowed, ErrFileTypeNotAllowed},
		{"empty", storage.ErrEmptyFile, ErrNoFileUploaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks, store := setupTestMeetingDocumentService()
			store.saveErr = tt.saveErr

			_, err := svc.Upload(context.Background(), &dto.UploadDocumentForm{MeetingID: "m1"}, "a.exe", strings.NewReader("x"))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(mocks.docs.docs) != 0 {
				t.Error("no record may be created for a rejected file")
			}
		})
	}
}

func TestMeetingDocumentService_Upload_CleansUpOnDBFailure(t *testing.T) {
	svc, mocks, store := setupTestMeetingDocumentService()
	mocks.docs.createErr = errors.New("connection lost")

	_, err := svc.Upload(context.Background(), &dto.UploadDocumentForm{MeetingID: "m1"}, "a.pdf", strings.NewReader("%PDF"))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(store.files) != 0 || len(store.removed) != 1 {
		t.Errorf("stored file must be removed after failed insert, files=%v removed=%v", store.files, store.removed)
	}
}

func TestMeetingDocumentService_Upload_MeetingMissing(t *testing.T) {
	svc, _, store := setupTestMeetingDocumentService()

	_, err := svc.Upload(context.Background(), &dto.UploadDocumentForm{MeetingID: "missing"}, "a.pdf", strings.NewReader("%PDF"))
	if !errors.Is(err, ErrMeetingNotFound) {
		t.Errorf("expected ErrMeetingNotFound, got %v", err)
	}
	if len(store.files) != 0 {
		t.Error("nothing may be stored for a missing meeting")
	}
}

// ── AttachFile / Download / DeleteWithFile ──

func TestMeetingDocumentService_AttachFile_ReplacesOld(t *testing.T) {
	svc, _, store := setupTestMeetingDocumentService()
	ctx := context.Background()

	first, err := svc.Upload(ctx, &dto.UploadDocumentForm{MeetingID: "m1", DocumentName: "Minutes"}, "v1.pdf", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	second, err := svc.AttachFile(ctx, first.DocumentID, "v2.pdf", strings.NewReader("two!"))
	if err != nil {
		t.Fatalf("AttachFile failed: %v", err)
	}
	if second.FilePath == first.FilePath || second.FileSize != 4 {
		t.Errorf("unexpected attach result %+v", second)
	}
	if store.Exists(first.FilePath) {
		t.Error("replaced file must be removed")
	}
}

func TestMeetingDocumentService_AttachFile_KeepsOldOnFailure(t *testing.T) {
	svc, mocks, store := setupTestMeetingDocumentService()
	ctx := context.Background()

	first, _ := svc.Upload(ctx, &dto.UploadDocumentForm{MeetingID: "m1"}, "v1.pdf", strings.NewReader("one"))
	mocks.docs.updateErr = errors.New("deadlock")

	if _, err := svc.AttachFile(ctx, first.DocumentID, "v2.pdf", strings.NewReader("two")); err == nil {
		t.Fatal("expected error")
	}
	if !store.Exists(first.FilePath) {
		t.Error("existing file must survive a failed attach")
	}
	if len(store.files) != 1 {
		t.Errorf("new file must be cleaned up, have %d files", len(store.files))
	}
}

func TestMeetingDocumentService_Download(t *testing.T) {
	svc, mocks, store := setupTestMeetingDocumentService()
	ctx := context.Background()

	up, _ := svc.Upload(ctx, &dto.UploadDocumentForm{MeetingID: "m1", DocumentName: "Agenda"}, "agenda.pdf", strings.NewReader("%PDF"))

	dl, err := svc.Download(ctx, up.DocumentID)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if dl.FileName != "Agenda.pdf" || dl.Path != up.FilePath {
		t.Errorf("unexpected download %+v", dl)
	}

	delete(store.files, up.FilePath)
	if _, err := svc.Download(ctx, up.DocumentID); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}

	mocks.docs.docs["nofile"] = &model.MeetingDocument{MeetingDocumentID: "nofile", MeetingID: "m1"}
	if _, err := svc.Download(ctx, "nofile"); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound for metadata-only document, got %v", err)
	}
}

func TestMeetingDocumentService_DeleteWithFile(t *testing.T) {
	svc, mocks, store := setupTestMeetingDocumentService()
	ctx := context.Background()

	up, _ := svc.Upload(ctx, &dto.UploadDocumentForm{MeetingID: "m1"}, "a.pdf", strings.NewReader("%PDF"))
	if err := svc.DeleteWithFile(ctx, up.DocumentID); err != nil {
		t.Fatalf("DeleteWithFile failed: %v", err)
	}
	if _, ok := mocks.docs.docs[up.DocumentID]; ok {
		t.Error("record not deleted")
	}
	if store.Exists(up.FilePath) {
		t.Error("file not deleted")
	}
	if err := svc.DeleteWithFile(ctx, up.DocumentID); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestMeetingDocumentService_FilePathOutsideStore(t *testing.T) {
	repo, mocks := newTestRepos()
	mocks.meetings.add("m1", day(1), model.StatusScheduled)
	store, err := storage.NewLocalStore(&config.UploadConfig{Dir: t.TempDir(), MaxSize: 1 << 20})
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	svc := NewMeetingDocumentService(repo, store, zap.NewNop())
	ctx := context.Background()

	secret := filepath.Join(t.TempDir(), "secret.txt")
	if err := os.WriteFile(secret, []byte("secret"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	doc, err := svc.Add(ctx, "m1", &dto.AddMeetingDocumentRequest{DocumentName: "x.txt", DocumentPath: secret})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if _, err := svc.Download(ctx, doc.ID); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
	if err := svc.DeleteWithFile(ctx, doc.ID); err != nil {
		t.Fatalf("DeleteWithFile failed: %v", err)
	}
	if _, err := os.Stat(secret); err != nil {
		t.Errorf("file outside the upload dir must not be removed, got %v", err)
	}
}
