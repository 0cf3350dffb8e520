package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lumibond/corkboard/app_config"
	"github.com/lumibond/corkboard/server"
	"github.com/lumibond/corkboard/server/api"
	"github.com/lumibond/corkboard/server/middlewares"
	. "github.com/lumibond/corkboard/utils"
	"github.com/lumibond/corkboard/utils/dotenv"
	. "github.com/lumibond/corkboard/utils/flag"
	. "github.com/lumibond/corkboard/utils/log"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

func cleanup() {
	CloseProfiler()
	CloseTracer()
	Log.Info("api server shutdown")
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	config := cors.DefaultConfig()
	config.AllowOrigins = origins
	config.AllowCredentials = true
	config.AddAllowHeaders("Authorization")
	return cors.New(config)
}

func main() {
	Parse()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	InitLogger()
	InitTracer()
	InitProfiler()
	defer cleanup()

	config := app_config.ParseServerAppConfig(ConfigPath)

	db, err := GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to DB: ", err)
	}
	if err := DatabaseSetupAndMigration(db); err != nil {
		Log.Fatal("fail to migrate DB: ", err)
	}

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(corsMiddleware(config.ALLOWED_ORIGINS))
	router.Use(gintrace.Middleware(ServiceName))
	router.Use(middlewares.Session())

	server.RegisterRoutes(router, api.New(db, time.Duration(config.TOKEN_TTL_HOUR)*time.Hour))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	Log.Info("api server starts up")
	router.Run(config.SERVER_ADDR)
}
