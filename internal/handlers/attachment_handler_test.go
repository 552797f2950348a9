package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domain "github.com/1conorsteward/Appointment-Now/internal/domain/appointment"
	"github.com/1conorsteward/Appointment-Now/internal/middleware"
	"github.com/1conorsteward/Appointment-Now/internal/models"
)

type stubAppointmentRepo struct {
	getByIDFn          func(ctx context.Context, id uint) (*models.Appointment, error)
	setAttachmentKeyFn func(ctx context.Context, id uint, key *string) (bool, error)
}

func (s *stubAppointmentRepo) Create(ctx context.Context, ap *models.Appointment) error {
	return nil
}

func (s *stubAppointmentRepo) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubAppointmentRepo) ListByOwner(ctx context.Context, ownerID uint) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepo) Search(ctx context.Context, ownerID uint, status, term string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepo) Update(ctx context.Context, id uint, fields domain.UpdateFields) (bool, error) {
	return false, nil
}

func (s *stubAppointmentRepo) SetAttachmentKey(ctx context.Context, id uint, key *string) (bool, error) {
	return s.setAttachmentKeyFn(ctx, id, key)
}

func (s *stubAppointmentRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return false, nil
}

var _ domain.Repository = (*stubAppointmentRepo)(nil)

type stubStore struct {
	putFn    func(ctx context.Context, key string, body io.Reader) error
	getFn    func(ctx context.Context, key string) (io.ReadCloser, error)
	deleteFn func(ctx context.Context, key string) error
}

func (s *stubStore) Put(ctx context.Context, key string, body io.Reader) error {
	if s.putFn == nil {
		return nil
	}
	return s.putFn(ctx, key, body)
}

func (s *stubStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.getFn(ctx, key)
}

func (s *stubStore) Delete(ctx context.Context, key string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, key)
}

func attachmentRouter(h *AttachmentHandler, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.ContextUserID, userID) })
	r.PUT("/me/appointments/:id/attachment", h.Upload)
	return r
}

func ownedAppointment(ownerID uint) *stubAppointmentRepo {
	return &stubAppointmentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return &models.Appointment{ID: id, OwnerID: ownerID}, nil
		},
		setAttachmentKeyFn: func(ctx context.Context, id uint, key *string) (bool, error) {
			return true, nil
		},
	}
}

func TestUpload_StoresBodyAndReturnsKey(t *testing.T) {
	var stored []byte
	store := &stubStore{
		putFn: func(ctx context.Context, key string, body io.Reader) error {
			var err error
			stored, err = io.ReadAll(body)
			return err
		},
	}
	h := NewAttachmentHandler(ownedAppointment(7), store)

	body := bytes.Repeat([]byte{0x25}, 1024)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/me/appointments/3/attachment", bytes.NewReader(body))
	attachmentRouter(h, 7).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(stored) != len(body) {
		t.Fatalf("stored %d bytes, want %d", len(stored), len(body))
	}
}

func TestUpload_RejectsOversizeBody(t *testing.T) {
	store := &stubStore{
		putFn: func(ctx context.Context, key string, body io.Reader) error {
			t.Fatal("an oversize body must never reach the store")
			return nil
		},
	}
	h := NewAttachmentHandler(ownedAppointment(7), store)

	body := bytes.Repeat([]byte{0x25}, maxAttachmentBytes+1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/me/appointments/3/attachment", bytes.NewReader(body))
	attachmentRouter(h, 7).ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
}

func TestUpload_ExactCapIsAccepted(t *testing.T) {
	h := NewAttachmentHandler(ownedAppointment(7), &stubStore{})

	body := bytes.Repeat([]byte{0x25}, maxAttachmentBytes)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/me/appointments/3/attachment", bytes.NewReader(body))
	attachmentRouter(h, 7).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestUpload_RemovesObjectWhenRowUpdateFails(t *testing.T) {
	repo := ownedAppointment(7)
	repo.setAttachmentKeyFn = func(ctx context.Context, id uint, key *string) (bool, error) {
		return false, context.DeadlineExceeded
	}

	var putKey, deletedKey string
	store := &stubStore{
		putFn: func(ctx context.Context, key string, body io.Reader) error {
			putKey = key
			return nil
		},
		deleteFn: func(ctx context.Context, key string) error {
			deletedKey = key
			return nil
		},
	}
	h := NewAttachmentHandler(repo, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/me/appointments/3/attachment", bytes.NewReader([]byte("%PDF-")))
	attachmentRouter(h, 7).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if putKey == "" || deletedKey != putKey {
		t.Fatalf("stored object %q was not cleaned up (deleted %q)", putKey, deletedKey)
	}
}

func TestUpload_DeletesReplacedAttachment(t *testing.T) {
	old := "attachments/3/old.pdf"
	repo := ownedAppointment(7)
	repo.getByIDFn = func(ctx context.Context, id uint) (*models.Appointment, error) {
		return &models.Appointment{ID: id, OwnerID: 7, AttachmentKey: &old}, nil
	}

	var deletedKey string
	store := &stubStore{
		deleteFn: func(ctx context.Context, key string) error {
			deletedKey = key
			return nil
		},
	}
	h := NewAttachmentHandler(repo, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/me/appointments/3/attachment", bytes.NewReader([]byte("%PDF-")))
	attachmentRouter(h, 7).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if deletedKey != old {
		t.Fatalf("replaced attachment %q was not deleted (got %q)", old, deletedKey)
	}
}
