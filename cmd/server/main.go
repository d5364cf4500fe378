package main

import (
	"context"
	"log"

	"github.com/urbansim/signals-backend-go/internal/api"
	"github.com/urbansim/signals-backend-go/internal/config"
	"github.com/urbansim/signals-backend-go/internal/coordination"
	"github.com/urbansim/signals-backend-go/internal/database"
	"github.com/urbansim/signals-backend-go/internal/registry"
	"github.com/urbansim/signals-backend-go/internal/repository"
	"github.com/urbansim/signals-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	// 加载信号灯名册
	reg := registry.New()
	importSvc := service.NewImportService(repository.NewPointRepository(database.GetDB()), reg)

	var loaded int
	var err error
	switch {
	case cfg.OSMFilePath != "":
		loaded, err = importSvc.ImportFromOSM(context.Background(), cfg.OSMFilePath)
	case cfg.PointsFilePath != "":
		loaded, err = importSvc.ImportFromJSON(cfg.PointsFilePath)
	default:
		loaded, err = importSvc.LoadFromDatabase()
	}
	if err != nil {
		log.Fatal("Failed to load signal roster:", err)
	}
	log.Printf("Signal roster ready: %d signals", loaded)

	// 创建协调器
	coordinator := coordination.NewCoordinatorWithParams(reg, cfg.AutoAnalyze, coordination.Params{
		TargetSpeedKmh:        cfg.TargetSpeedKmh,
		MaxSpacingM:           cfg.MaxSpacingM,
		MaxBearingVarianceDeg: cfg.MaxBearingVarianceDeg,
	})

	// 初始化路由
	signalSvc := service.NewSignalService(reg, coordinator)
	coordSvc := service.NewCoordinationService(reg, coordinator)
	router := api.SetupRouter(cfg, signalSvc, coordSvc)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
