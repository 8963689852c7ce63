package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecobrands/internal/email"
	"ecobrands/internal/logging"
	"ecobrands/internal/model"
	"ecobrands/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

// newValidator reports fields by their json names and adds the contact_email rule,
// which is looser than the built-in email tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	if err := v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// SuggestionInput is a brand suggestion as submitted by a visitor.
type SuggestionInput struct {
	BrandName      string `json:"brand_name" form:"brand_name" validate:"required"`
	Website        string `json:"website" form:"website" validate:"required"`
	SubmitterName  string `json:"submitter_name" form:"submitter_name" validate:"required"`
	SubmitterEmail string `json:"submitter_email" form:"submitter_email" validate:"contact_email"`
}

// Validate trims every field and reports the ones that are missing or malformed.
func (in *SuggestionInput) Validate() error {
	in.BrandName = strings.TrimSpace(in.BrandName)
	in.Website = strings.TrimSpace(in.Website)
	in.SubmitterName = strings.TrimSpace(in.SubmitterName)
	in.SubmitterEmail = strings.TrimSpace(in.SubmitterEmail)

	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

// SuggestionListResult is the service-level DTO for paginated suggestions.
type SuggestionListResult struct {
	Items []model.Suggestion `json:"data"`
	Total int                `json:"total"`
}

// SuggestionService defines the use cases for brand suggestions.
type SuggestionService interface {
	// Submit validates the suggestion, emails it to the curators and records the outcome.
	// The submission fails only if validation or the email fails.
	Submit(ctx context.Context, in SuggestionInput) (*model.Suggestion, error)

	// List returns recorded suggestions, newest first.
	List(ctx context.Context, limit, offset int) (*SuggestionListResult, error)
}

// suggestionService is a concrete implementation of SuggestionService.
type suggestionService struct {
	sender email.Sender
	repo   repository.SuggestionRepository
	log    *zap.Logger
	now    func() time.Time
}

// NewSuggestionService constructs a new SuggestionService. repo may be nil, in which
// case suggestions are emailed but not recorded.
func NewSuggestionService(sender email.Sender, repo repository.SuggestionRepository, log *zap.Logger) SuggestionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &suggestionService{sender: sender, repo: repo, log: log, now: time.Now}
}

func (s *suggestionService) Submit(ctx context.Context, in SuggestionInput) (*model.Suggestion, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	sug := &model.Suggestion{
		ID:             uuid.NewString(),
		BrandName:      in.BrandName,
		Website:        in.Website,
		SubmitterName:  in.SubmitterName,
		SubmitterEmail: in.SubmitterEmail,
		Status:         model.SuggestionSent,
		CreatedAt:      s.now().UTC(),
	}

	sendErr := s.sender.SendSuggestion(ctx, email.SuggestionMessage{
		BrandName:      sug.BrandName,
		Website:        sug.Website,
		SubmitterName:  sug.SubmitterName,
		SubmitterEmail: sug.SubmitterEmail,
	})
	if sendErr != nil {
		sug.Status = model.SuggestionFailed
		s.log.Error("suggestion email failed",
			zap.String("request_id", logging.RequestID(ctx)),
			zap.String("suggestion_id", sug.ID),
			zap.Error(sendErr),
		)
	}

	stored := s.record(ctx, sug)

	if sendErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmailFailed, sendErr)
	}
	s.log.Info("suggestion submitted",
		zap.String("request_id", logging.RequestID(ctx)),
		zap.String("suggestion_id", sug.ID),
		zap.String("brand_name", sug.BrandName),
	)
	return stored, nil
}

// record stores sug if a repository is configured. Failures are logged, never returned.
func (s *suggestionService) record(ctx context.Context, sug *model.Suggestion) *model.Suggestion {
	if s.repo == nil {
		return sug
	}
	stored, err := s.repo.Create(ctx, sug)
	if err != nil {
		s.log.Warn("suggestion not recorded",
			zap.String("request_id", logging.RequestID(ctx)),
			zap.String("suggestion_id", sug.ID),
			zap.Error(err),
		)
		return sug
	}
	return stored
}

// ErrSuggestionsDisabled is returned by List when no database is configured.
var ErrSuggestionsDisabled = errors.New("suggestion log is not configured")

func (s *suggestionService) List(ctx context.Context, limit, offset int) (*SuggestionListResult, error) {
	if s.repo == nil {
		return nil, ErrSuggestionsDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &SuggestionListResult{Items: res.Items, Total: res.Total}, nil
}
