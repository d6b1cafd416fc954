package validator

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-platform/internal/domain"
)

const (
	maxTitleLength   = 200
	maxNameLength    = 100
	maxSubjectLength = 200
	maxMessageLength = 5000
	maxPasswordBytes = 72 // bcrypt ignores anything past this
)

var (
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validRoles = []interface{}{domain.RoleAdmin, domain.RoleUser}
)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUser validates a User entity.
func (v *Validator) ValidateUser(u *domain.User) error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&u.Name,
			validation.Required.Error("name_required"),
			validation.RuneLength(0, maxNameLength).Error("name_too_long"),
		),
		validation.Field(&u.Role,
			validation.Required.Error("role_required"),
			validation.In(validRoles...).Error("invalid_role"),
		),
	)
}

// ValidateContent validates a stored Content entity, as read from a seed file.
func (v *Validator) ValidateContent(c *domain.Content) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&c.Title,
			validation.By(notBlank("title_required")),
			validation.RuneLength(0, maxTitleLength).Error("title_too_long"),
		),
		validation.Field(&c.Body,
			validation.By(notBlank("body_required")),
		),
		validation.Field(&c.AuthorID,
			validation.Required.Error("author_id_required"),
			is.UUID.Error("invalid_author_id"),
		),
	)
}

// ValidateContentInput validates the editable fields of a post.
func (v *Validator) ValidateContentInput(in *domain.ContentInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.By(notBlank("title_required")),
			validation.RuneLength(0, maxTitleLength).Error("title_too_long"),
		),
		validation.Field(&in.Body,
			validation.By(notBlank("body_required")),
		),
		validation.Field(&in.CoverImage,
			validation.NilOrNotEmpty.Error("cover_image_empty"),
			is.URL.Error("invalid_cover_image_url"),
		),
	)
}

// ValidateComment validates a stored Comment entity, as read from a seed file.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Text,
			validation.By(notBlank("text_required")),
			validation.RuneLength(0, domain.MaxCommentLength).Error("text_too_long"),
		),
		validation.Field(&c.ContentID,
			validation.Required.Error("content_id_required"),
		),
		validation.Field(&c.UserID,
			validation.Required.Error("user_id_required"),
		),
	)
}

// ValidateNewComment validates a comment or reply posted by a user.
// Text is expected to be trimmed by the caller.
func (v *Validator) ValidateNewComment(in *domain.NewCommentInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Text,
			validation.By(notBlank("text_required")),
			validation.RuneLength(0, domain.MaxCommentLength).Error("text_too_long"),
		),
		validation.Field(&in.ParentID,
			validation.NilOrNotEmpty.Error("parent_id_empty"),
		),
	)
}

// ValidateSignUp validates a new account.
func (v *Validator) ValidateSignUp(in *domain.SignUpInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Name,
			validation.By(notBlank("name_required")),
			validation.RuneLength(0, maxNameLength).Error("name_too_long"),
		),
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&in.Password, passwordRules()...),
	)
}

// ValidatePassword validates a replacement password.
func (v *Validator) ValidatePassword(password string) error {
	if err := validation.Validate(password, passwordRules()...); err != nil {
		return validation.Errors{"password": err}
	}
	return nil
}

// ValidateContact validates a contact form message.
func (v *Validator) ValidateContact(m *domain.ContactMessage) error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Name,
			validation.By(notBlank("name_required")),
			validation.RuneLength(0, maxNameLength).Error("name_too_long"),
		),
		validation.Field(&m.Email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&m.Subject,
			validation.RuneLength(0, maxSubjectLength).Error("subject_too_long"),
		),
		validation.Field(&m.Message,
			validation.By(notBlank("message_required")),
			validation.RuneLength(0, maxMessageLength).Error("message_too_long"),
		),
	)
}

// ValidateRating validates a rating value.
func (v *Validator) ValidateRating(value int) error {
	err := validation.Validate(value,
		validation.Required.Error("rating_out_of_range"),
		validation.Min(domain.MinRating).Error("rating_out_of_range"),
		validation.Max(domain.MaxRating).Error("rating_out_of_range"),
	)
	if err != nil {
		return validation.Errors{"value": err}
	}
	return nil
}

func passwordRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("password_required"),
		validation.RuneLength(domain.MinPasswordLength, 0).Error("password_too_short"),
		validation.Length(0, maxPasswordBytes).Error("password_too_long"),
	}
}

// notBlank rejects strings that are empty after trimming whitespace.
func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, strings.ReplaceAll(code, "_", " "))
		}
		return nil
	}
}

// IsValidationError reports whether err came from one of the Validate methods.
func IsValidationError(err error) bool {
	var ve validation.Errors
	return errors.As(err, &ve)
}

// FieldErrors flattens ozzo validation errors into a field to reason map.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve validation.Errors
	if errors.As(err, &ve) {
		for field, fieldErr := range ve {
			if fieldErr != nil {
				fields[field] = fieldErr.Error()
			}
		}
	} else if err != nil {
		fields["unknown"] = err.Error()
	}

	return fields
}

// ConvertValidationErrors converts ozzo validation errors to domain RecordErrors.
func ConvertValidationErrors(rowNum int, err error) []domain.RecordError {
	var errors []domain.RecordError

	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			errors = append(errors, domain.RecordError{
				Row:    rowNum,
				Field:  field,
				Reason: fieldErr.Error(),
			})
		}
	} else if err != nil {
		errors = append(errors, domain.RecordError{
			Row:    rowNum,
			Field:  "unknown",
			Reason: err.Error(),
		})
	}

	return errors
}
