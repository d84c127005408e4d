package database

import (
	"Trophy/config"
	"Trophy/models"
	"Trophy/pkg/log"
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	db, err := Open(conf.Database)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db
}

// Open 按驱动打开连接，TranslateError 让唯一键冲突映射为 gorm.ErrDuplicatedKey
func Open(conf *config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.MySQLDsn())
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.Dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", conf.Driver)
	}

	gormConf := &gorm.Config{TranslateError: true}
	if !conf.Debug {
		gormConf.Logger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		return nil, err
	}
	if conf.Driver == config.DriverSQLite {
		// sqlite 单写者
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate 同步表结构
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
