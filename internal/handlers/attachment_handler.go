package handlers

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/1conorsteward/Appointment-Now/internal/domain/appointment"
	"github.com/1conorsteward/Appointment-Now/internal/httperr"
	"github.com/1conorsteward/Appointment-Now/internal/middleware"
	"github.com/1conorsteward/Appointment-Now/internal/storage"
)

const maxAttachmentBytes = 10 << 20 // 10 MiB

// attachmentStore matches storage.AttachmentStore.
type attachmentStore interface {
	Put(ctx context.Context, key string, body io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type AttachmentHandler struct {
	repo        domain.Repository
	attachments attachmentStore
}

func NewAttachmentHandler(
	repo domain.Repository,
	attachments attachmentStore,
) *AttachmentHandler {
	return &AttachmentHandler{
		repo:        repo,
		attachments: attachments,
	}
}

// owned loads the appointment and rejects records of other owners.
func (h *AttachmentHandler) owned(c *gin.Context, id uint) (ok bool, attachmentKey *string) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	ap, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not load the appointment.")
		return false, nil
	}
	if ap == nil || ap.OwnerID != ownerID {
		httperr.NotFound(c, httperr.CodeNotFound, "Appointment not found.")
		return false, nil
	}
	return true, ap.AttachmentKey
}

// Upload replaces the appointment's PDF attachment with the request body.
// Bodies over the size cap are rejected whole; nothing is stored.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ok, oldKey := h.owned(c, id)
	if !ok {
		return
	}

	// Read one byte past the cap so an oversize body is detected instead
	// of stored truncated.
	content, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAttachmentBytes+1))
	if err != nil {
		httperr.BadRequest(c, "unreadable_body", "Could not read the attachment.")
		return
	}
	if len(content) > maxAttachmentBytes {
		httperr.Write(c, http.StatusRequestEntityTooLarge,
			"attachment_too_large", "The attachment exceeds the 10 MiB limit.")
		return
	}

	key := storage.NewKey(id)

	if err := h.attachments.Put(c.Request.Context(), key, bytes.NewReader(content)); err != nil {
		httperr.Internal(c, "failed_to_store_attachment", "Could not store the attachment.")
		return
	}

	if _, err := h.repo.SetAttachmentKey(c.Request.Context(), id, &key); err != nil {
		// The object is already in the bucket but no row points at it.
		if derr := h.attachments.Delete(c.Request.Context(), key); derr != nil {
			log.Printf("delete orphaned attachment %s: %v", key, derr)
		}
		httperr.Internal(c, "failed_to_store_attachment", "Could not store the attachment.")
		return
	}

	if oldKey != nil {
		if err := h.attachments.Delete(c.Request.Context(), *oldKey); err != nil {
			log.Printf("delete replaced attachment %s: %v", *oldKey, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"attachment_key": key})
}

// Download streams the stored PDF back to the client.
func (h *AttachmentHandler) Download(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ok, key := h.owned(c, id)
	if !ok {
		return
	}
	if key == nil {
		httperr.NotFound(c, httperr.CodeNotFound, "This appointment has no attachment.")
		return
	}

	obj, err := h.attachments.Get(c.Request.Context(), *key)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_attachment", "Could not fetch the attachment.")
		return
	}
	defer obj.Close()

	c.Header("Content-Disposition", `attachment; filename="appointment.pdf"`)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, obj); err != nil {
		log.Printf("stream attachment %s: %v", *key, err)
	}
}
