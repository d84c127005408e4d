package config

import "time"

type Jwt struct {
	Secret       string `json:"secret" yaml:"secret"`
	Issuer       string `json:"issuer" yaml:"issuer"`
	ExpireHours  int    `json:"expire_hours" yaml:"expire_hours"`
	RememberDays int    `json:"remember_days" yaml:"remember_days"`
}

func (j *Jwt) defaults() {
	if j.Issuer == "" {
		j.Issuer = "trophy"
	}
	if j.ExpireHours <= 0 {
		j.ExpireHours = 24
	}
	if j.RememberDays <= 0 {
		j.RememberDays = 30
	}
}

// TTL 令牌有效期，记住我时使用长有效期
func (j *Jwt) TTL(rememberMe bool) time.Duration {
	if rememberMe {
		return time.Duration(j.RememberDays) * 24 * time.Hour
	}
	return time.Duration(j.ExpireHours) * time.Hour
}

func ProvideJwtConfig(cfg *Config) *Jwt {
	return cfg.Jwt
}
