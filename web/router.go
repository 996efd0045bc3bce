package web

import (
	"net/http"
	"time"

	"axiapac.com/timesheets/service"
	"axiapac.com/timesheets/web/handlers/auth"
	"axiapac.com/timesheets/web/handlers/catalog"
	"axiapac.com/timesheets/web/handlers/task"
	"axiapac.com/timesheets/web/handlers/timesheet"
	"axiapac.com/timesheets/web/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Timesheets   *service.TimesheetService
	Tasks        *service.TaskService
	Auth         auth.Options
	AllowOrigins []string
}

func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	if len(deps.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	public := r.Group("/api")
	protected := r.Group("/api")
	protected.Use(middlewares.Authentication(deps.Auth.Secret))
	{
		auth.Register(public, protected, deps.Auth)
		catalog.Register(protected)
		timesheet.Register(protected, deps.Timesheets)
		task.Register(protected, deps.Tasks)
	}

	return r
}
