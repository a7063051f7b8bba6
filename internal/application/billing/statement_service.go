package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/billing"
	"github.com/plantrent/backend/internal/domain/contract"
	"github.com/plantrent/backend/internal/domain/directory"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/infrastructure/telemetry"
)

// StatementService drives the statement lifecycle: generation and
// regeneration from the rental ledger, confirmation, soft deletion and
// restoration. All writes for one (customer, year, month) slot run under a
// keyed lock; the store's partial unique index backs the lock up.
type StatementService struct {
	statementRepo  billing.StatementRepository
	customerRepo   directory.CustomerRepository
	ledger         contract.AssignmentLedger
	locker         shared.KeyedLocker
	eventBus       shared.EventPublisher
	billingMetrics *telemetry.BillingMetrics
	cfg            billing.Config
}

// NewStatementService creates a new StatementService
func NewStatementService(
	statementRepo billing.StatementRepository,
	customerRepo directory.CustomerRepository,
	ledger contract.AssignmentLedger,
	locker shared.KeyedLocker,
	eventBus shared.EventPublisher,
	cfg billing.Config,
) *StatementService {
	return &StatementService{
		statementRepo: statementRepo,
		customerRepo:  customerRepo,
		ledger:        ledger,
		locker:        locker,
		eventBus:      eventBus,
		cfg:           cfg,
	}
}

// SetBillingMetrics sets the billing metrics collector
func (s *StatementService) SetBillingMetrics(bm *telemetry.BillingMetrics) {
	s.billingMetrics = bm
}

// ComputePeriod returns the billing window for a labeled month without side
// effects, using the configured boundary day.
func (s *StatementService) ComputePeriod(year, month int) (*PeriodResponse, error) {
	period, err := billing.ComputePeriod(year, month, s.cfg.BoundaryDay)
	if err != nil {
		return nil, err
	}
	response := ToPeriodResponse(period, s.cfg.BoundaryDay)
	return &response, nil
}

// GenerateOrRegenerate produces the statement for one customer and period.
// A fresh slot gets a new statement; an unconfirmed one is recalculated in
// place from the current ledger. A confirmed statement comes back untouched,
// unless the caller forces an overwrite, which is a conflict.
func (s *StatementService) GenerateOrRegenerate(ctx context.Context, req GenerateStatementRequest) (*StatementResponse, GenerateOutcome, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "monthly_statement", "generate")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCustomerID, req.CustomerID.String(),
		telemetry.SpanAttrStatementPeriod, periodLabel(req.Year, req.Month),
	)

	period, err := billing.ComputePeriod(req.Year, req.Month, s.cfg.BoundaryDay)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, "", err
	}

	release, err := s.locker.Acquire(ctx, statementKey(req.CustomerID, req.Year, req.Month))
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, "", err
	}
	defer release()

	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, "", err
	}

	existing, err := s.statementRepo.FindActiveByPeriod(ctx, req.CustomerID, req.Year, req.Month)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		telemetry.RecordError(span, err)
		return nil, "", err
	}

	if existing != nil && existing.IsConfirmed() {
		if req.Force {
			err := shared.NewDomainError("STATEMENT_CONFIRMED", "Statement is confirmed and cannot be overwritten")
			telemetry.RecordError(span, err)
			return nil, "", err
		}
		telemetry.SetAttribute(span, telemetry.SpanAttrOutcome, string(OutcomeConfirmedKept))
		if s.billingMetrics != nil {
			s.billingMetrics.RecordStatementGenerated(ctx, telemetry.StatementOutcomeConfirmedKept)
		}
		response := ToStatementResponse(existing)
		return &response, OutcomeConfirmedKept, nil
	}

	lines, err := s.buildLines(ctx, req.CustomerID, period)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, "", err
	}

	if existing == nil {
		statement, err := billing.NewMonthlyStatement(customer.ID, customer.Name, period, lines, s.cfg)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, "", err
		}
		if req.ActorID != nil {
			statement.SetCreatedBy(*req.ActorID)
		}

		if err := s.statementRepo.Create(ctx, statement); err != nil {
			telemetry.RecordError(span, err)
			return nil, "", err
		}
		s.publishEvents(ctx, statement)

		telemetry.SetAttributes(span,
			telemetry.SpanAttrOutcome, string(OutcomeGenerated),
			telemetry.SpanAttrAmount, statement.GrandTotal.String(),
		)
		if s.billingMetrics != nil {
			s.billingMetrics.RecordStatementWithAmount(ctx, telemetry.StatementOutcomeGenerated, statement.GrandTotal)
		}

		response := ToStatementResponse(statement)
		return &response, OutcomeGenerated, nil
	}

	if err := existing.Regenerate(lines, s.cfg); err != nil {
		telemetry.RecordError(span, err)
		return nil, "", err
	}
	if err := s.statementRepo.Update(ctx, existing); err != nil {
		telemetry.RecordError(span, err)
		return nil, "", err
	}
	s.publishEvents(ctx, existing)

	telemetry.SetAttributes(span,
		telemetry.SpanAttrOutcome, string(OutcomeRegenerated),
		telemetry.SpanAttrAmount, existing.GrandTotal.String(),
	)
	if s.billingMetrics != nil {
		s.billingMetrics.RecordStatementWithAmount(ctx, telemetry.StatementOutcomeRegenerated, existing.GrandTotal)
	}

	response := ToStatementResponse(existing)
	return &response, OutcomeRegenerated, nil
}

// GenerateAll runs GenerateOrRegenerate for every billable customer. One
// customer's failure never aborts the run; it lands in that customer's
// result entry instead.
func (s *StatementService) GenerateAll(ctx context.Context, req GenerateAllRequest) (*GenerateAllResponse, error) {
	if _, err := billing.ComputePeriod(req.Year, req.Month, s.cfg.BoundaryDay); err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.FindBillable(ctx)
	if err != nil {
		return nil, err
	}

	response := &GenerateAllResponse{
		Year:      req.Year,
		Month:     req.Month,
		Customers: len(customers),
		Results:   make([]GenerateResultItem, 0, len(customers)),
	}

	// Wrap in profiling labels so the batch run can be sliced by period
	// in the Pyroscope UI.
	var runErr error
	labels := telemetry.StatementOperationLabels("GenerateAll", periodLabel(req.Year, req.Month))
	telemetry.WithProfilingLabels(ctx, labels, func(c context.Context) {
		for i := range customers {
			customer := &customers[i]
			item := GenerateResultItem{
				CustomerID:   customer.ID,
				CustomerName: customer.Name,
			}

			statement, outcome, err := s.GenerateOrRegenerate(c, GenerateStatementRequest{
				CustomerID: customer.ID,
				Year:       req.Year,
				Month:      req.Month,
				ActorID:    req.ActorID,
			})
			if err != nil {
				if c.Err() != nil {
					runErr = err
					return
				}
				item.Outcome = OutcomeFailed
				item.Error = err.Error()
				response.Failed++
			} else {
				item.StatementID = &statement.ID
				item.Outcome = outcome
				item.GrandTotal = &statement.GrandTotal
				switch outcome {
				case OutcomeGenerated:
					response.Generated++
				case OutcomeRegenerated:
					response.Regenerated++
				case OutcomeConfirmedKept:
					response.ConfirmedKept++
				}
			}

			response.Results = append(response.Results, item)
		}
	})
	if runErr != nil {
		return nil, runErr
	}

	return response, nil
}

// Confirm finalizes a statement on behalf of the acting user
func (s *StatementService) Confirm(ctx context.Context, statementID, userID uuid.UUID) (*StatementResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "monthly_statement", "confirm")
	defer span.End()
	telemetry.SetAttribute(span, telemetry.SpanAttrStatementID, statementID.String())

	statement, err := s.statementRepo.FindByID(ctx, statementID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := statement.Confirm(userID); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := s.statementRepo.Update(ctx, statement); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	s.publishEvents(ctx, statement)

	if s.billingMetrics != nil {
		s.billingMetrics.RecordStatementConfirmed(ctx)
	}

	response := ToStatementResponse(statement)
	return &response, nil
}

// SoftDelete marks a statement deleted, freeing its period slot
func (s *StatementService) SoftDelete(ctx context.Context, statementID uuid.UUID) error {
	statement, err := s.statementRepo.FindByID(ctx, statementID)
	if err != nil {
		return err
	}

	if err := statement.SoftDelete(); err != nil {
		return err
	}
	if err := s.statementRepo.Update(ctx, statement); err != nil {
		return err
	}
	s.publishEvents(ctx, statement)

	return nil
}

// Restore brings a soft-deleted statement back, provided its period slot is
// still free.
func (s *StatementService) Restore(ctx context.Context, statementID uuid.UUID) (*StatementResponse, error) {
	statement, err := s.statementRepo.FindByID(ctx, statementID)
	if err != nil {
		return nil, err
	}
	if !statement.IsDeleted() {
		return nil, shared.NewDomainError("INVALID_STATE", "Statement is not deleted")
	}

	release, err := s.locker.Acquire(ctx, statementKey(statement.CustomerID, statement.Year, statement.Month))
	if err != nil {
		return nil, err
	}
	defer release()

	occupied, err := s.statementRepo.ExistsActive(ctx, statement.CustomerID, statement.Year, statement.Month)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, shared.NewDomainError("PERIOD_OCCUPIED", "Another statement already occupies this period")
	}

	if err := statement.Restore(); err != nil {
		return nil, err
	}
	if err := s.statementRepo.Update(ctx, statement); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, statement)

	response := ToStatementResponse(statement)
	return &response, nil
}

// UpdateNotes updates the notes of an unconfirmed statement
func (s *StatementService) UpdateNotes(ctx context.Context, statementID uuid.UUID, req UpdateStatementNotesRequest) (*StatementResponse, error) {
	statement, err := s.statementRepo.FindByID(ctx, statementID)
	if err != nil {
		return nil, err
	}

	notes := statement.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}
	internalNotes := statement.InternalNotes
	if req.InternalNotes != nil {
		internalNotes = *req.InternalNotes
	}

	if err := statement.UpdateNotes(notes, internalNotes); err != nil {
		return nil, err
	}
	if err := s.statementRepo.Update(ctx, statement); err != nil {
		return nil, err
	}

	response := ToStatementResponse(statement)
	return &response, nil
}

// GetByID retrieves a statement by ID. Soft-deleted statements stay
// addressable here.
func (s *StatementService) GetByID(ctx context.Context, statementID uuid.UUID) (*StatementResponse, error) {
	statement, err := s.statementRepo.FindByID(ctx, statementID)
	if err != nil {
		return nil, err
	}

	response := ToStatementResponse(statement)
	return &response, nil
}

// List retrieves statements with filtering and pagination
func (s *StatementService) List(ctx context.Context, filter StatementListFilter) ([]StatementListResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := billing.StatementFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
		},
		CustomerID:        filter.CustomerID,
		Year:              filter.Year,
		Month:             filter.Month,
		NeedsConfirmation: filter.NeedsConfirmation,
		IncludeDeleted:    filter.IncludeDeleted,
	}
	if filter.Status != "" {
		status := billing.StatementStatus(filter.Status)
		domainFilter.Status = &status
	}

	statements, err := s.statementRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.statementRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToStatementListResponses(statements), total, nil
}

// buildLines resolves the customer's assignments for the window and prices
// them into statement lines. The unit prices are the contract snapshots the
// ledger already carries; this is the only place they enter a statement.
func (s *StatementService) buildLines(ctx context.Context, customerID uuid.UUID, period billing.Period) ([]billing.LineItem, error) {
	assignments, err := s.ledger.EffectiveAssignments(ctx, customerID, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	lines := make([]billing.LineItem, 0, len(assignments))
	for _, a := range assignments {
		line, err := billing.NewLineItem(a.PlantTypeID, a.PlantName, a.SizeSpec, a.Quantity, a.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *StatementService) publishEvents(ctx context.Context, statement *billing.MonthlyStatement) {
	if s.eventBus == nil {
		return
	}
	for _, event := range statement.GetDomainEvents() {
		// Subscribers are observational; a publish failure never fails the write
		_ = s.eventBus.Publish(ctx, event)
	}
	statement.ClearDomainEvents()
}

// statementKey is the mutation lock key for one statement slot
func statementKey(customerID uuid.UUID, year, month int) string {
	return fmt.Sprintf("billing:statement:%s:%04d-%02d", customerID, year, month)
}

// periodLabel renders the statement label for telemetry, e.g. "2025-07"
func periodLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
