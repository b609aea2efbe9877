package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

const (
	InquiryTypeWebsite = "website"
	InquiryTypeML      = "ml"
	InquiryTypeOther   = "other"

	InquiryStatusNew       = "new"
	InquiryStatusRead      = "read"
	InquiryStatusContacted = "contacted"
)

var (
	inquiryTypes    = []string{InquiryTypeWebsite, InquiryTypeML, InquiryTypeOther}
	inquiryStatuses = []string{InquiryStatusNew, InquiryStatusRead, InquiryStatusContacted}
)

// Inquiry is a message left through the public contact form.
type Inquiry struct {
	ID          uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Email       string    `json:"email" gorm:"type:text;not null"`
	ProjectType string    `json:"projectType" gorm:"type:text;not null;default:website"`
	Message     string    `json:"message" gorm:"type:text;not null"`
	Status      string    `json:"status" gorm:"type:text;not null;default:new;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InquiryPatch carries the client-writable inquiry fields. Nil fields are left untouched.
// Status can move between any two values of the enum.
type InquiryPatch struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	ProjectType *string `json:"projectType"`
	Message     *string `json:"message"`
	Status      *string `json:"status"`
}

// NewInquiry builds a validated inquiry from the contact form. Status always starts as new.
func NewInquiry(patch InquiryPatch) (*Inquiry, error) {
	patch.Status = nil
	inquiry := &Inquiry{}
	patch.Apply(inquiry)
	inquiry.ApplyDefaults()
	if err := inquiry.Validate(); err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (p InquiryPatch) Apply(inquiry *Inquiry) {
	if p.Name != nil {
		inquiry.Name = *p.Name
	}
	if p.Email != nil {
		inquiry.Email = *p.Email
	}
	if p.ProjectType != nil {
		inquiry.ProjectType = *p.ProjectType
	}
	if p.Message != nil {
		inquiry.Message = *p.Message
	}
	if p.Status != nil {
		inquiry.Status = *p.Status
	}
}

func (i *Inquiry) ApplyDefaults() {
	if i.ProjectType == "" {
		i.ProjectType = InquiryTypeWebsite
	}
	if i.Status == "" {
		i.Status = InquiryStatusNew
	}
}

func (i *Inquiry) Validate() error {
	switch {
	case strings.TrimSpace(i.Name) == "":
		return errs.NewMissingRequiredFieldError("name")
	case strings.TrimSpace(i.Email) == "":
		return errs.NewMissingRequiredFieldError("email")
	case strings.TrimSpace(i.Message) == "":
		return errs.NewMissingRequiredFieldError("message")
	case !oneOf(i.ProjectType, inquiryTypes):
		return errs.NewInvalidFieldError("projectType", "must be one of "+strings.Join(inquiryTypes, ", "))
	case !oneOf(i.Status, inquiryStatuses):
		return errs.NewInvalidFieldError("status", "must be one of "+strings.Join(inquiryStatuses, ", "))
	}
	return nil
}
