package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App       `json:"app" yaml:"app"`
	Server    *Server    `json:"server" yaml:"server"`
	Database  *Database  `json:"database" yaml:"database"`
	Redis     *Redis     `json:"redis" yaml:"redis"`
	Jwt       *Jwt       `json:"jwt" yaml:"jwt"`
	Log       *Log       `json:"log" yaml:"log"`
	Oss       *OssConfig `json:"oss" yaml:"oss"`
	RateLimit *RateLimit `json:"rate_limit" yaml:"rate_limit"`
	Gallery   *Gallery   `json:"gallery" yaml:"gallery"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	conf.applyDefaults()
	conf.applyEnv()
	return &conf
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	c.Jwt.defaults()
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if c.RateLimit == nil {
		c.RateLimit = &RateLimit{}
	}
	c.RateLimit.defaults()
	if c.Gallery == nil {
		c.Gallery = &Gallery{}
	}
	c.Gallery.defaults()
}

// applyEnv 敏感配置允许通过环境变量覆盖
func (c *Config) applyEnv() {
	if v := os.Getenv("TROPHY_JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("TROPHY_DATABASE_DSN"); v != "" {
		c.Database.Dsn = v
	}
	if v := os.Getenv("TROPHY_REDIS_ENABLED"); v != "" {
		c.Redis.Enabled = cast.ToBool(v)
	}
	if v := os.Getenv("TROPHY_HTTP_PORT"); v != "" {
		if port := cast.ToInt(v); port > 0 {
			c.Server.Http = port
		}
	}
	if v := os.Getenv("TROPHY_OSS_AK"); v != "" {
		c.Oss.AccessKeyID = v
	}
	if v := os.Getenv("TROPHY_OSS_SK"); v != "" {
		c.Oss.AccessKeySecret = v
	}
}
