package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/meeplebook/api/docs"
	v1 "github.com/meeplebook/api/internal/api/handler/v1"
	"github.com/meeplebook/api/internal/api/middleware"
	"github.com/meeplebook/api/internal/config"
	"github.com/meeplebook/api/internal/repository"
	"github.com/meeplebook/api/internal/repository/dao"
	"github.com/meeplebook/api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	playerHandler := s.initPlayerHandler(db)
	gameHandler := s.initGameHandler(db)
	meetingHandler := s.initMeetingHandler(db)
	recordHandler := s.initRecordHandler(db)
	statsHandler := s.initStatsHandler(db)
	s.MountHandlers(playerHandler, gameHandler, meetingHandler, recordHandler, statsHandler)

	return s
}

func (s *Server) initPlayerHandler(db *gorm.DB) *v1.PlayerHandler {
	repo := repository.NewPlayerRepository(dao.NewPlayerDAO(db))
	recordRepo := repository.NewRecordRepository(dao.NewRecordDAO(db))
	svc := service.NewPlayerService(repo, recordRepo)
	handler := v1.NewPlayerHandler(svc)

	return handler
}

func (s *Server) initGameHandler(db *gorm.DB) *v1.GameHandler {
	repo := repository.NewGameRepository(dao.NewGameDAO(db))
	svc := service.NewGameService(repo)
	statsSvc := s.initStatsService(db)
	handler := v1.NewGameHandler(svc, statsSvc)

	return handler
}

func (s *Server) initMeetingHandler(db *gorm.DB) *v1.MeetingHandler {
	repo := repository.NewMeetingRepository(dao.NewMeetingDAO(db))
	recordRepo := repository.NewRecordRepository(dao.NewRecordDAO(db))
	svc := service.NewMeetingService(repo, recordRepo)
	handler := v1.NewMeetingHandler(svc)

	return handler
}

func (s *Server) initRecordHandler(db *gorm.DB) *v1.RecordHandler {
	repo := repository.NewRecordRepository(dao.NewRecordDAO(db))
	svc := service.NewRecordService(repo)
	handler := v1.NewRecordHandler(svc)

	return handler
}

func (s *Server) initStatsHandler(db *gorm.DB) *v1.StatsHandler {
	return v1.NewStatsHandler(s.initStatsService(db))
}

func (s *Server) initStatsService(db *gorm.DB) *service.StatsService {
	playerRepo := repository.NewPlayerRepository(dao.NewPlayerDAO(db))
	gameRepo := repository.NewGameRepository(dao.NewGameDAO(db))
	recordRepo := repository.NewRecordRepository(dao.NewRecordDAO(db))

	return service.NewStatsService(playerRepo, gameRepo, recordRepo)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	playerHandler *v1.PlayerHandler,
	gameHandler *v1.GameHandler,
	meetingHandler *v1.MeetingHandler,
	recordHandler *v1.RecordHandler,
	statsHandler *v1.StatsHandler,
) {
	const basePath = "/api/v1"

	players := s.Router.Group(basePath)
	{
		players.GET("/players", playerHandler.HandleListPlayers)
		players.POST("/players", playerHandler.HandleCreatePlayer)
		players.GET("/players/:playerID", playerHandler.HandleGetPlayer)
		players.PUT("/players/:playerID", playerHandler.HandleUpdatePlayer)
		players.DELETE("/players/:playerID", playerHandler.HandleDeletePlayer)
	}

	games := s.Router.Group(basePath)
	{
		games.GET("/games", gameHandler.HandleListGames)
		games.POST("/games", gameHandler.HandleCreateGame)
		games.GET("/games/:gameID", gameHandler.HandleGetGame)
		games.PUT("/games/:gameID", gameHandler.HandleUpdateGame)
		games.DELETE("/games/:gameID", gameHandler.HandleDeleteGame)
	}

	meetings := s.Router.Group(basePath)
	{
		meetings.GET("/meetings", meetingHandler.HandleListMeetings)
		meetings.POST("/meetings", meetingHandler.HandleCreateMeeting)
		meetings.GET("/meetings/:meetingID", meetingHandler.HandleGetMeeting)
		meetings.DELETE("/meetings/:meetingID", meetingHandler.HandleDeleteMeeting)
		meetings.POST("/meetings/:meetingID/participants", meetingHandler.HandleAddParticipant)
	}

	records := s.Router.Group(basePath)
	{
		records.GET("/records", recordHandler.HandleListRecords)
		records.POST("/records", recordHandler.HandleCreateRecord)
		records.GET("/records/:recordID", recordHandler.HandleGetRecord)
		records.DELETE("/records/:recordID", recordHandler.HandleDeleteRecord)
	}

	stats := s.Router.Group(basePath)
	{
		stats.GET("/stats", statsHandler.HandleGlobalStats)
		stats.GET("/stats/players/:playerID", statsHandler.HandleGetPlayerStats)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Board Game Meetup API"
	docs.SwaggerInfo.Description = "Record keeping for board game meetups: players, games, meetings and play results."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
