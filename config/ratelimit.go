package config

// RateLimit 限流配置，格式 "20-M" 表示每分钟 20 次
type RateLimit struct {
	Auth   string `json:"auth" yaml:"auth"`
	Upload string `json:"upload" yaml:"upload"`
}

func (r *RateLimit) defaults() {
	if r.Auth == "" {
		r.Auth = "20-M"
	}
	if r.Upload == "" {
		r.Upload = "10-M"
	}
}
