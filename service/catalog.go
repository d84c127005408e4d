package service

import (
	"Trophy/pkg/catalog"
)

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	// Maps 狩猎地图与可猎动物
	Maps() (*catalog.Catalog, error)
}

type CatalogService struct{}

func (s *CatalogService) Maps() (*catalog.Catalog, error) {
	return catalog.Load()
}
