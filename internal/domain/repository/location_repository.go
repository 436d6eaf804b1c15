package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	List() ([]*entity.Location, error)
	Count() (int, error)
	Delete(id string) error
}
