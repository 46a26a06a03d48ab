package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const quotationPathSegment = "/quotation/"

var (
	ErrInvalidQuotationID    = errors.New("invalid quotation id")
	ErrQuotationNotFound     = errors.New("quotation not found")
	ErrQuotationExpired      = errors.New("quotation has expired")
	ErrSubmissionPersistence = errors.New("failed to persist submission")
	ErrQuotationPersistence  = errors.New("failed to persist quotation")
	ErrQuotationLinkUnset    = errors.New("public base url is not configured")
	errMailerNotConfigured   = errors.New("no email sender configured")
)

// SubmissionResult is what a successful submission reports back.
//
// EmailSent and SheetLogged describe best-effort side effects; a false value
// never means the submission itself failed.
type SubmissionResult struct {
	Form          entities.Form
	Quotation     entities.Quotation
	QuotationLink string
	EmailSent     bool
	SheetLogged   bool
}

// IQuotationUseCase exposes submission and quotation retrieval.
//
//   - POST /submit          => Submit()
//   - GET /quotation/{id}   => GetQuotation()
type IQuotationUseCase interface {
	Submit(ctx context.Context, form entities.Form) (SubmissionResult, error)
	GetQuotation(ctx context.Context, id string) (entities.Quotation, error)
}

// QuotationDeps groups the collaborators of QuotationUseCase. Mailer, Sheet
// and Staff are optional.
type QuotationDeps struct {
	Engine        *PricingEngine
	Forms         interfaces.IFormRepository
	Quotations    interfaces.IQuotationRepository
	Mailer        interfaces.IEmailSender
	Sheet         interfaces.ISheetLogger
	Staff         interfaces.IStaffNotifier
	PublicBaseURL string
	Logger        *zap.Logger
	Now           func() time.Time
}

type QuotationUseCase struct {
	engine     *PricingEngine
	forms      interfaces.IFormRepository
	quotations interfaces.IQuotationRepository
	mailer     interfaces.IEmailSender
	sheet      interfaces.ISheetLogger
	staff      interfaces.IStaffNotifier
	baseURL    string
	logger     *zap.Logger
	now        func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(deps QuotationDeps) *QuotationUseCase {
	uc := &QuotationUseCase{
		engine:     deps.Engine,
		forms:      deps.Forms,
		quotations: deps.Quotations,
		mailer:     deps.Mailer,
		sheet:      deps.Sheet,
		staff:      deps.Staff,
		baseURL:    strings.TrimRight(strings.TrimSpace(deps.PublicBaseURL), "/"),
		logger:     deps.Logger,
		now:        deps.Now,
	}
	if uc.logger == nil {
		uc.logger = zap.NewNop()
	}
	if uc.now == nil {
		uc.now = func() time.Time { return time.Now().UTC() }
	}
	return uc
}

// Submit validates and stores the raw form, prices it, stores the quotation
// and then runs the notification side effects.
//
// Validation failures happen before any write. A failed form or quotation
// write aborts the call. Sheet, email and staff notification failures are
// logged and reported through the result flags only.
func (u *QuotationUseCase) Submit(ctx context.Context, form entities.Form) (SubmissionResult, error) {
	req := entities.QuotationRequest{
		DwellingSize: strings.TrimSpace(form.DwellingSize),
		CarpetArea:   strings.TrimSpace(form.CarpetArea),
		Selections:   form.Selections,
		Contact:      form.Contact,
	}
	if err := u.engine.Validate(req); err != nil {
		return SubmissionResult{}, err
	}

	now := u.now().UTC()
	form.ID = uuid.NewString()
	form.DwellingSize = req.DwellingSize
	form.CarpetArea = req.CarpetArea
	form.CreatedAt = now

	savedForm, err := u.forms.Create(ctx, form)
	if err != nil {
		u.logger.Error("[quotation][usecase] form persistence failed", zap.Error(err))
		return SubmissionResult{}, fmt.Errorf("%w: %v", ErrSubmissionPersistence, err)
	}
	u.logger.Info("[quotation][usecase] form stored",
		zap.String("form_id", savedForm.ID), zap.String("dwelling_size", savedForm.DwellingSize))

	res := SubmissionResult{Form: savedForm}
	res.SheetLogged = u.logToSheet(ctx, savedForm)

	q, err := u.engine.ComputeQuotation(req, now)
	if err != nil {
		return SubmissionResult{}, err
	}
	q.ID = uuid.NewString()
	q.FormID = savedForm.ID

	savedQuotation, err := u.quotations.Create(ctx, q)
	if err != nil {
		u.logger.Error("[quotation][usecase] quotation persistence failed",
			zap.String("form_id", savedForm.ID), zap.Error(err))
		return SubmissionResult{}, fmt.Errorf("%w: %v", ErrQuotationPersistence, err)
	}
	u.logger.Info("[quotation][usecase] quotation stored",
		zap.String("quotation_id", savedQuotation.ID),
		zap.String("total_cost", savedQuotation.TotalCost.String()),
		zap.Int("line_items", len(savedQuotation.LineItems)))

	res.Quotation = savedQuotation
	res.QuotationLink = u.QuotationLink(savedQuotation.ID)
	res.EmailSent = u.sendEmail(ctx, savedForm, savedQuotation, res.QuotationLink)

	if savedQuotation.HasCustomItems() && u.staff != nil {
		if err := u.staff.NotifyCustomRequirements(ctx, savedQuotation, savedForm); err != nil {
			u.logger.Warn("[quotation][usecase] staff notification failed",
				zap.String("quotation_id", savedQuotation.ID), zap.Error(err))
		}
	}
	return res, nil
}

// GetQuotation returns the stored quotation while it is still valid.
// Expiry is evaluated at read time; the record is left untouched.
func (u *QuotationUseCase) GetQuotation(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.quotations.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if q.ExpiredAt(u.now()) {
		return entities.Quotation{}, ErrQuotationExpired
	}
	return q, nil
}

// QuotationLink builds the public URL of a quotation page. Without a base
// URL the relative path is returned.
func (u *QuotationUseCase) QuotationLink(id string) string {
	return u.baseURL + quotationPathSegment + id
}

func (u *QuotationUseCase) logToSheet(ctx context.Context, f entities.Form) bool {
	if u.sheet == nil {
		return false
	}
	if err := u.sheet.AppendSubmission(ctx, f); err != nil {
		u.logger.Warn("[quotation][usecase] sheet logging failed",
			zap.String("form_id", f.ID), zap.Error(err))
		return false
	}
	return true
}

func (u *QuotationUseCase) sendEmail(ctx context.Context, f entities.Form, q entities.Quotation, link string) bool {
	err := errMailerNotConfigured
	if u.mailer != nil {
		if u.baseURL == "" {
			err = ErrQuotationLinkUnset
		} else {
			err = u.mailer.SendQuotationLink(ctx, f.Contact.Email, f.Contact.Name, link, q.ValidUntil)
		}
	}
	if err != nil {
		u.logger.Warn("[quotation][usecase] quotation email not sent",
			zap.String("quotation_id", q.ID), zap.Error(err))
		return false
	}
	u.logger.Info("[quotation][usecase] quotation email sent", zap.String("quotation_id", q.ID))
	return true
}
