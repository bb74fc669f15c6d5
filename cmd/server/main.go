// @title           Magadi Ward Civic Desk API
// @version         1.0
// @description     Constituency civic-engagement service with issue reporting, tracking, and official updates

// @contact.name   Platform Support
// @contact.email  official@abrahamsenteu.org

// @host      localhost:3000
// @BasePath  /
package main

import (
	"fmt"
	"os"

	"civicdesk-http-service/internal/app/routes"
	"civicdesk-http-service/internal/domain/models"
	"civicdesk-http-service/internal/domain/services"
	"civicdesk-http-service/internal/infrastructure/config"
	"civicdesk-http-service/internal/infrastructure/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 初始化日志配置
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件，失败时继续使用进程环境变量
	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	}

	// 配置只在这里构造一次，之后按引用传递
	cfg := config.LoadConfig()

	// 连接数据库
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		config.Error("failed to connect to database: %v", err)
		os.Exit(1)
	}
	db := pool.DB

	// 迁移与初始内容写入都可以在每次启动时安全执行
	if err := autoMigrate(db); err != nil {
		config.Error("database migration failed: %v", err)
		os.Exit(1)
	}
	if err := services.NewContentService(db, cfg).SeedStarterContent(); err != nil {
		config.Error("starter content seed failed: %v", err)
		os.Exit(1)
	}

	// 初始化路由
	r := routes.SetupRouter(db, cfg)

	// 启动服务器
	config.Info("server listening on http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Issue{},
		&models.Subscriber{},
		&models.Update{},
		&models.Event{},
		&models.ContactMessage{},
	)
}
