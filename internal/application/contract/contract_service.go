package contract

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/catalog"
	"github.com/plantrent/backend/internal/domain/contract"
	"github.com/plantrent/backend/internal/domain/directory"
	"github.com/plantrent/backend/internal/domain/shared"
	"github.com/plantrent/backend/internal/domain/shared/valueobject"
)

// ContractService handles rental contract operations
type ContractService struct {
	contractRepo  contract.ContractRepository
	customerRepo  directory.CustomerRepository
	plantTypeRepo catalog.PlantTypeRepository
	eventBus      shared.EventPublisher
}

// NewContractService creates a new ContractService
func NewContractService(
	contractRepo contract.ContractRepository,
	customerRepo directory.CustomerRepository,
	plantTypeRepo catalog.PlantTypeRepository,
	eventBus shared.EventPublisher,
) *ContractService {
	return &ContractService{
		contractRepo:  contractRepo,
		customerRepo:  customerRepo,
		plantTypeRepo: plantTypeRepo,
		eventBus:      eventBus,
	}
}

// Create creates a new rental contract in draft
func (s *ContractService) Create(ctx context.Context, req CreateContractRequest) (*ContractResponse, error) {
	exists, err := s.contractRepo.ExistsByNumber(ctx, req.ContractNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Contract with this number already exists")
	}

	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.IsTerminated() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot open a contract for a terminated customer")
	}

	rentalContract, err := contract.NewRentalContract(req.ContractNumber, customer.ID, customer.Name, req.StartsOn)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		rentalContract.UpdateNotes(req.Notes)
	}

	if err := s.contractRepo.Save(ctx, rentalContract); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, rentalContract)

	response := ToContractResponse(rentalContract)
	return &response, nil
}

// GetByID retrieves a contract by ID with its items and exchanges
func (s *ContractService) GetByID(ctx context.Context, contractID uuid.UUID) (*ContractResponse, error) {
	rentalContract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	response := ToContractResponse(rentalContract)
	return &response, nil
}

// List retrieves a list of contracts with filtering and pagination
func (s *ContractService) List(ctx context.Context, filter ContractListFilter) ([]ContractListResponse, int64, error) {
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

	domainFilter := contract.ContractFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
			Search:   filter.Search,
		},
		CustomerID: filter.CustomerID,
	}
	if filter.Status != "" {
		status := contract.ContractStatus(filter.Status)
		domainFilter.Status = &status
	}

	contracts, err := s.contractRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.contractRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToContractListResponses(contracts), total, nil
}

// AddItem adds a rental line to a contract, snapshotting the plant type's
// name, size and price at the time of writing.
func (s *ContractService) AddItem(ctx context.Context, contractID uuid.UUID, req AddContractItemRequest) (*ContractResponse, error) {
	rentalContract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	plantType, err := s.plantTypeRepo.FindByID(ctx, req.PlantTypeID)
	if err != nil {
		return nil, err
	}
	if !plantType.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Plant type is retired and cannot be added to contracts")
	}

	unitPrice := plantType.GetDefaultPriceMoney()
	if req.UnitPrice != nil {
		unitPrice = valueobject.NewMoneyVND(*req.UnitPrice)
	}

	var effectiveFrom time.Time
	if req.EffectiveFrom != nil {
		effectiveFrom = *req.EffectiveFrom
	}

	if _, err := rentalContract.AddItem(plantType.ID, plantType.Name, plantType.SizeSpec, req.Quantity, unitPrice, effectiveFrom); err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, rentalContract); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, rentalContract)

	response := ToContractResponse(rentalContract)
	return &response, nil
}

// EndItem closes a single rental line as of the given date
func (s *ContractService) EndItem(ctx context.Context, contractID, itemID uuid.UUID, req EndContractItemRequest) (*ContractResponse, error) {
	rentalContract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if err := rentalContract.EndItem(itemID, req.EndsOn); err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, rentalContract); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, rentalContract)

	response := ToContractResponse(rentalContract)
	return &response, nil
}

// RecordExchange records a plant exchange visit against a contract line
func (s *ContractService) RecordExchange(ctx context.Context, contractID, itemID uuid.UUID, req RecordExchangeRequest) (*ContractResponse, error) {
	rentalContract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if _, err := rentalContract.RecordExchange(itemID, req.ExchangedOn, *req.NewQuantity, req.Reason); err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, rentalContract); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, rentalContract)

	response := ToContractResponse(rentalContract)
	return &response, nil
}

// Activate puts a draft contract into force
func (s *ContractService) Activate(ctx context.Context, contractID uuid.UUID) (*ContractResponse, error) {
	rentalContract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if err := rentalContract.Activate(); err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, rentalContract); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, rentalContract)

	response := ToContractResponse(rentalContract)
	return &response, nil
}

// Terminate ends a contract and closes all its open lines
func (s *ContractService) Terminate(ctx context.Context, contractID uuid.UUID, req TerminateContractRequest) (*ContractResponse, error) {
	rentalContract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if err := rentalContract.Terminate(req.EndsOn, req.Reason); err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, rentalContract); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, rentalContract)

	response := ToContractResponse(rentalContract)
	return &response, nil
}

func (s *ContractService) publishEvents(ctx context.Context, rentalContract *contract.RentalContract) {
	if s.eventBus == nil {
		return
	}
	for _, event := range rentalContract.GetDomainEvents() {
		// Subscribers are observational; a publish failure never fails the write.
		_ = s.eventBus.Publish(ctx, event)
	}
	rentalContract.ClearDomainEvents()
}
