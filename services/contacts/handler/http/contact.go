package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/internal/utils"
	"github.com/danisworo/jualin/services/contacts"
)

// ContactHandler handles HTTP requests for contact operations
type ContactHandler struct {
	contactUC contacts.ContactUC
}

// NewContactHandler creates a new contact HTTP handler
func NewContactHandler(contactUC contacts.ContactUC) *ContactHandler {
	return &ContactHandler{
		contactUC: contactUC,
	}
}

// CreateContactRequest is the request body for creating a contact
type CreateContactRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
}

// UpdateContactRequest is the request body for editing a contact
type UpdateContactRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
}

// UpdateStatusRequest is the request body for a contact status change
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// sellerID extracts the authenticated seller identity set by the JWT
// middleware
func sellerID(c echo.Context) (uuid.UUID, bool) {
	idStr, ok := c.Get("user_id").(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CreateContact creates a contact owned by the authenticated seller
func (h *ContactHandler) CreateContact(c echo.Context) error {
	seller, ok := sellerID(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid user ID in token")
	}

	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.FullName == "" {
		return utils.BadRequestResponse(c, "Full name is required")
	}

	contact := &models.Contact{
		SellerID: seller,
		FullName: req.FullName,
	}
	if req.PhoneNumber != "" {
		contact.PhoneNumber = &req.PhoneNumber
	}
	if req.Email != "" {
		contact.Email = &req.Email
	}

	if err := h.contactUC.CreateContact(c.Request().Context(), contact); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Contact created", contact)
}

// GetContact returns one contact owned by the authenticated seller
func (h *ContactHandler) GetContact(c echo.Context) error {
	seller, ok := sellerID(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid user ID in token")
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	contact, err := h.contactUC.GetContact(c.Request().Context(), seller, contactID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Contact retrieved", contact)
}

// ListContacts returns all contacts owned by the authenticated seller
func (h *ContactHandler) ListContacts(c echo.Context) error {
	seller, ok := sellerID(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid user ID in token")
	}

	list, err := h.contactUC.ListContacts(c.Request().Context(), seller)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Contacts retrieved", list)
}

// UpdateContact edits the reachable fields of a contact
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	seller, ok := sellerID(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid user ID in token")
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	var req UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	contact := &models.Contact{
		ID:       contactID,
		SellerID: seller,
		FullName: req.FullName,
	}
	if req.PhoneNumber != "" {
		contact.PhoneNumber = &req.PhoneNumber
	}
	if req.Email != "" {
		contact.Email = &req.Email
	}

	if err := h.contactUC.UpdateContact(c.Request().Context(), contact); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Contact updated", contact)
}

// DeleteContact removes a contact and its invitation history
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	seller, ok := sellerID(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid user ID in token")
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	if err := h.contactUC.DeleteContact(c.Request().Context(), seller, contactID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Contact deleted", nil)
}

// UpdateContactStatus transitions a contact's status. Moving a new
// contact to invited creates and delivers an invitation.
func (h *ContactHandler) UpdateContactStatus(c echo.Context) error {
	seller, ok := sellerID(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid user ID in token")
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "Status is required")
	}

	contact, err := h.contactUC.UpdateContactStatus(c.Request().Context(), seller, contactID, req.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Contact status updated", contact)
}

// CancelInvitation withdraws the pending invitation for a contact
func (h *ContactHandler) CancelInvitation(c echo.Context) error {
	seller, ok := sellerID(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid user ID in token")
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	if err := h.contactUC.CancelInvitation(c.Request().Context(), seller, contactID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Invitation cancelled", nil)
}
