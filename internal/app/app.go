package app

import (
	"fmt"

	"github.com/anoixa/photo-album/config"
	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/repo/photos"
	"github.com/anoixa/photo-album/utils"
)

// Container 依赖注入容器 - 管理所有服务的生命周期
type Container struct {
	config          *config.Config
	databaseFactory *database.Factory

	PhotosRepo *photos.Repository
}

// NewContainer 创建新的依赖注入容器
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config: cfg,
	}
}

func (c *Container) Init() error {
	if err := c.InitDatabase(); err != nil {
		return err
	}
	return nil
}

func (c *Container) InitDatabase() error {
	utils.LogIfDev("Initializing DI container...")

	if err := c.initDatabaseFactory(); err != nil {
		return fmt.Errorf("failed to initialize database factory: %w", err)
	}

	// 自动DDL
	if err := c.databaseFactory.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}

	c.initRepositories()

	utils.LogIfDev("DI container initialized successfully")
	return nil
}

// initRepositories 初始化所有仓库
func (c *Container) initRepositories() {
	provider := c.databaseFactory.GetProvider()
	c.PhotosRepo = photos.NewRepository(provider)
	utils.LogIfDev("Repositories initialized")
}

// initDatabaseFactory 初始化数据库工厂
func (c *Container) initDatabaseFactory() error {
	factory, err := database.NewFactory(c.config)
	if err != nil {
		return err
	}
	c.databaseFactory = factory
	utils.LogIfDev("Database factory initialized")
	return nil
}

// GetDatabaseProvider 获取数据库提供者
func (c *Container) GetDatabaseProvider() database.Provider {
	if c.databaseFactory == nil {
		return nil
	}
	return c.databaseFactory.GetProvider()
}

// GetDatabaseFactory 获取数据库工厂
func (c *Container) GetDatabaseFactory() *database.Factory {
	return c.databaseFactory
}

// GetConfig 获取配置
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// Close 关闭所有服务
func (c *Container) Close() error {
	utils.LogIfDev("Closing DI container...")

	if c.databaseFactory != nil {
		if err := c.databaseFactory.Close(); err != nil {
			utils.LogIfDevf("Error closing database factory: %v", err)
		}
	}

	utils.LogIfDev("DI container closed")
	return nil
}
