package config

// Gallery 图库分页默认值
type Gallery struct {
	LandscapeLimit int `json:"landscape_limit" yaml:"landscape_limit"`
	TrophyLimit    int `json:"trophy_limit" yaml:"trophy_limit"`
	ListLimit      int `json:"list_limit" yaml:"list_limit"`
}

func (g *Gallery) defaults() {
	if g.LandscapeLimit <= 0 {
		g.LandscapeLimit = 12
	}
	if g.TrophyLimit <= 0 {
		g.TrophyLimit = 20
	}
	if g.ListLimit <= 0 {
		g.ListLimit = 10
	}
}

func ProvideGalleryConfig(cfg *Config) *Gallery {
	return cfg.Gallery
}
