// Package catalog 狩猎地图与可猎动物目录
package catalog

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed maps.yaml
var mapsYAML []byte

type Area struct {
	Name    string   `json:"name" yaml:"name"`
	Animals []string `json:"animals" yaml:"animals"`
}

type Catalog struct {
	Landscape string `json:"landscape" yaml:"landscape"`
	Areas     []Area `json:"areas" yaml:"areas"`
}

var (
	once   sync.Once
	loaded *Catalog
	err    error
)

// Load 解析内置目录，只解析一次
func Load() (*Catalog, error) {
	once.Do(func() {
		var c Catalog
		if err = yaml.Unmarshal(mapsYAML, &c); err == nil {
			loaded = &c
		}
	})
	return loaded, err
}

// HasAnimal 区域内是否存在该动物
func (c *Catalog) HasAnimal(area, animal string) bool {
	for _, a := range c.Areas {
		if a.Name != area {
			continue
		}
		for _, name := range a.Animals {
			if name == animal {
				return true
			}
		}
	}
	return false
}
