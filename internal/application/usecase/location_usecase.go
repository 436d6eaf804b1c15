package usecase

import (
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD del registro de ubicaciones.
type LocationUseCase struct {
	repo   repository.LocationRepository
	ledger repository.MovementRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, ledger repository.MovementRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, ledger: ledger}
}

// Create registra una ubicación nueva. El ID lo asigna el cliente y debe ser único.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.LocationID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	location := &entity.Location{
		ID:          in.LocationID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID. Devuelve nil sin error si no existe.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza nombre y descripción. El ID es inmutable.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	location.Name = in.Name
	location.Description = in.Description
	location.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista todas las ubicaciones del registro.
func (uc *LocationUseCase) List() (*dto.LocationListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina una ubicación. Se rechaza si el ledger la referencia como origen o destino.
func (uc *LocationUseCase) Delete(id string) error {
	n, err := uc.ledger.CountByLocation(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrReferenced
	}
	return uc.repo.Delete(id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		LocationID:  l.ID,
		Name:        l.Name,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
