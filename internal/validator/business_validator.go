package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// languageCodePattern accepts BCP 47 style tags ("en", "hy", "pt-BR") as well
// as plain language names ("English"), which the quiz importer still sends.
var languageCodePattern = regexp.MustCompile(`^[A-Za-z]{2,24}(-[A-Za-z0-9]{2,8})?$`)

// BusinessValidator handles business rule validation
type BusinessValidator struct {
	validate *validator.Validate
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New()

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

// Validate validates business rules for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateUserCreate validates user creation business rules
func (bv *BusinessValidator) ValidateUserCreate(req *UserCreateRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: "must not be blank",
			Value:   req.Name,
			Rule:    "business_logic",
		})
	}

	return errors
}

// ValidateSessionCreate validates chat session creation business rules
func (bv *BusinessValidator) ValidateSessionCreate(req *ChatSessionCreateRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)

	// A participant may appear once per session
	seen := make(map[uint]bool, len(req.Participants))
	for _, p := range req.Participants {
		if seen[p.UserID] {
			errors = append(errors, ValidationError{
				Field:   "participants",
				Message: fmt.Sprintf("user %d listed more than once", p.UserID),
				Value:   p.UserID,
				Rule:    "business_logic",
			})
		}
		seen[p.UserID] = true
	}

	return errors
}

// ValidateMessageCreate validates message posting business rules
func (bv *BusinessValidator) ValidateMessageCreate(req *ChatMessageCreateRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)

	if strings.TrimSpace(req.Text) == "" {
		errors = append(errors, ValidationError{
			Field:   "text",
			Message: "must not be blank",
			Value:   req.Text,
			Rule:    "business_logic",
		})
	}

	// A translation without its language is unusable downstream
	if req.TranslatedText != "" && req.TranslatedLanguage == "" {
		errors = append(errors, ValidationError{
			Field:   "translated_language",
			Message: "is required when translated_text is set",
			Rule:    "business_logic",
		})
	}

	return errors
}

// ValidateTranslate validates translation request business rules
func (bv *BusinessValidator) ValidateTranslate(req *TranslateRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)

	if req.SourceLanguage != "" && strings.EqualFold(req.SourceLanguage, req.TargetLanguage) {
		errors = append(errors, ValidationError{
			Field:   "target_language",
			Message: "must differ from source_language",
			Value:   req.TargetLanguage,
			Rule:    "business_logic",
		})
	}

	return errors
}

// registerBusinessRules registers custom business rule validators
func (bv *BusinessValidator) registerBusinessRules() {
	bv.validate.RegisterValidation("language_code", func(fl validator.FieldLevel) bool {
		return languageCodePattern.MatchString(fl.Field().String())
	})
}
