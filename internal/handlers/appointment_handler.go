package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/1conorsteward/Appointment-Now/internal/dto"
	"github.com/1conorsteward/Appointment-Now/internal/httperr"
	"github.com/1conorsteward/Appointment-Now/internal/httpresp"
	"github.com/1conorsteward/Appointment-Now/internal/middleware"
	ucAppointment "github.com/1conorsteward/Appointment-Now/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC  *ucAppointment.Create
	updateUC  *ucAppointment.Update
	deleteUC  *ucAppointment.Delete
	getUC     *ucAppointment.Get
	listUC    *ucAppointment.ListByOwner
	historyUC *ucAppointment.SearchHistory
	exportUC  *ucAppointment.ExportVisit
}

func NewAppointmentHandler(
	createUC *ucAppointment.Create,
	updateUC *ucAppointment.Update,
	deleteUC *ucAppointment.Delete,
	getUC *ucAppointment.Get,
	listUC *ucAppointment.ListByOwner,
	historyUC *ucAppointment.SearchHistory,
	exportUC *ucAppointment.ExportVisit,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		getUC:     getUC,
		listUC:    listUC,
		historyUC: historyUC,
		exportUC:  exportUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	PatientName     string `json:"patient_name" binding:"required"`
	DoctorName      string `json:"doctor_name" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	Location        string `json:"location"`
}

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "The appointment id is not a number.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateInput{
		OwnerID:         ownerID,
		PatientName:     req.PatientName,
		DoctorName:      req.DoctorName,
		AppointmentDate: req.AppointmentDate,
		Status:          req.Status,
		Notes:           req.Notes,
		Location:        req.Location,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeUnknownOwner) {
			httperr.BadRequest(c, httperr.CodeUnknownOwner, "The owning account no longer exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Could not save the appointment.")
		return
	}

	httpresp.Created(c, dto.FromModel(ap))
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listUC.Execute(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id, ownerID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Could not load the appointment.")
		return
	}

	httpresp.OK(c, dto.FromModel(ap))
}

// History lists completed visits, optionally narrowed by a patient-name
// search term.
func (h *AppointmentHandler) History(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.historyUC.Execute(c.Request.Context(), ucAppointment.SearchHistoryInput{
		OwnerID: ownerID,
		Status:  c.Query("status"),
		Term:    c.Query("query"),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_search_history", "Could not search the visit history.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateInput{
		ID:              id,
		OwnerID:         ownerID,
		PatientName:     req.PatientName,
		DoctorName:      req.DoctorName,
		AppointmentDate: req.AppointmentDate,
		Status:          req.Status,
		Notes:           req.Notes,
		Location:        req.Location,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Could not update the appointment.")
		return
	}
	if !updated {
		httperr.NotFound(c, httperr.CodeNotFound, "Appointment not found.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	deleted, err := h.deleteUC.Execute(c.Request.Context(), id, ownerID)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Could not delete the appointment.")
		return
	}
	if !deleted {
		httperr.NotFound(c, httperr.CodeNotFound, "Appointment not found.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// EXPORT
// ======================================================

func (h *AppointmentHandler) Export(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	doc, err := h.exportUC.Execute(c.Request.Context(), id, ownerID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_export_visit", "Could not export the visit.")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
