package service

import (
	"io"

	models "cart-manager/model"
)

type ServiceInterface interface {
	AddItem(item models.Item)
	RemoveItem(name string) int
	Save() error
	Load() error
	Display(w io.Writer) error
}
