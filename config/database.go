package config

import "fmt"

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Database struct {
	Driver string `json:"driver" yaml:"driver"`
	// Dsn 非空时直接使用，sqlite 为文件路径
	Dsn      string `json:"dsn" yaml:"dsn"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	Charset  string `json:"charset" yaml:"charset"`
	Debug    bool   `json:"debug" yaml:"debug"`
}

// MySQLDsn 拼接 mysql 连接串
func (d *Database) MySQLDsn() string {
	if d.Dsn != "" {
		return d.Dsn
	}
	charset := d.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database, charset)
}
