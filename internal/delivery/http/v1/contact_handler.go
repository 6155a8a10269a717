package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-publishing-backend/internal/delivery/http/response"
	"go-publishing-backend/internal/domain"
	"go-publishing-backend/internal/formsession"
	"go-publishing-backend/pkg/apperror"
	"go-publishing-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	slotCfg   formsession.Config
}

// NewContactHandler registers the contact routes. Intake is public;
// listing stored submissions is for the admin console.
func NewContactHandler(public *gin.RouterGroup, admin *gin.RouterGroup, contactUC domain.ContactUsecase, slotCfg formsession.Config) {
	handler := &ContactHandler{
		contactUC: contactUC,
		slotCfg:   slotCfg,
	}

	public.POST("/contact", handler.SubmitContact)
	public.GET("/contact", handler.ContactInfo)
	public.GET("/contact/availability", handler.Availability)

	admin.GET("/contact/submissions", handler.ListSubmissions)
	admin.GET("/contact/submissions/:id", handler.GetSubmission)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message with an appointment request. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	sub, err := h.contactUC.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			response.Error(c, http.StatusBadRequest, "Validation failed", validation.FormatValidationErrors(verrs))
			return
		}
		if strings.Contains(err.Error(), "appointment") {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusCreated, "Your message has been sent successfully! We will respond within 24-48 hours.", gin.H{
		"submissionId": sub.ID,
		"autoResponse": sub.AutoResponse,
	})
}

// ContactInfo godoc
// @Summary      Contact Service Info
// @Description  Returns contact details and the supported inquiry types.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /contact [get]
func (h *ContactHandler) ContactInfo(c *gin.Context) {
	response.Success(c, http.StatusOK, "Contact API is running", gin.H{
		"contactInfo": gin.H{
			"email":            "info@srpublishinghouse.com",
			"authorSupport":    "authors@srpublishinghouse.com",
			"editorial":        "editorial@srpublishinghouse.com",
			"phone":            "+1-234-567-8900",
			"businessHours":    "9:00 AM - 6:00 PM (UTC)",
			"expectedResponse": "24-48 hours",
		},
		"supportedTypes": []string{
			domain.ContactTypeGeneral,
			domain.ContactTypeAuthorInquiry,
			domain.ContactTypeSubmissionSupport,
			domain.ContactTypeEditorial,
			domain.ContactTypeTechnical,
			domain.ContactTypePartnership,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Bookings happen at most this many years out; the calendar also allows
// browsing one year back, where every day renders disabled.
const availabilityYearsAhead = 2

// Availability godoc
// @Summary      Appointment Availability
// @Description  Returns the month grid for the booking calendar and the legal time slots. Defaults to the current month; the browsable window is one year back to two years ahead.
// @Tags         contact
// @Produce      json
// @Param        year   query  int  false  "Year, e.g. 2026"
// @Param        month  query  int  false  "Month 1-12"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /contact/availability [get]
func (h *ContactHandler) Availability(c *gin.Context) {
	session := formsession.New(h.slotCfg, nil)
	curYear, curMonth := session.ViewedMonth()

	targetYear, targetMonth := curYear, int(curMonth)
	yearStr, monthStr := c.Query("year"), c.Query("month")
	if yearStr != "" || monthStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.Error(apperror.BadRequest("year and month must be supplied together as integers"))
			return
		}
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			c.Error(apperror.BadRequest("month must be 1-12"))
			return
		}
		if year < curYear-1 || year > curYear+availabilityYearsAhead {
			c.Error(apperror.BadRequest("year is outside the booking window"))
			return
		}
		targetYear, targetMonth = year, month
	}

	// The window check above bounds this walk to a few dozen steps.
	for curYear*12+int(curMonth) < targetYear*12+targetMonth {
		session.Navigate(formsession.Next)
		curYear, curMonth = session.ViewedMonth()
	}
	for curYear*12+int(curMonth) > targetYear*12+targetMonth {
		session.Navigate(formsession.Prev)
		curYear, curMonth = session.ViewedMonth()
	}

	year, month := session.ViewedMonth()
	response.Success(c, http.StatusOK, "Availability", gin.H{
		"year":  year,
		"month": int(month),
		"grid":  session.Grid(),
		"slots": h.slotCfg.Slots(),
	})
}

// ListSubmissions godoc
// @Summary      List Contact Submissions
// @Description  Returns stored contact submissions. Admin only.
// @Tags         contact
// @Produce      json
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /contact/submissions [get]
func (h *ContactHandler) ListSubmissions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	subs, total, err := h.contactUC.ListSubmissions(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Submissions retrieved", gin.H{
		"items": subs,
		"total": total,
	})
}

// GetSubmission godoc
// @Summary      Get Contact Submission
// @Description  Returns one stored submission. Admin only.
// @Tags         contact
// @Produce      json
// @Param        id   path  string  true  "Submission ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contact/submissions/{id} [get]
func (h *ContactHandler) GetSubmission(c *gin.Context) {
	sub, err := h.contactUC.GetSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Submission not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Submission retrieved", sub)
}
