package catalog

import (
	"net/http"

	"axiapac.com/timesheets/model"
	"github.com/gin-gonic/gin"
)

type CatalogDTO struct {
	Projects  []string `json:"projects"`
	WorkTypes []string `json:"workTypes"`
}

func Register(r *gin.RouterGroup) {
	r.GET("/catalog", Get)
}

// Get lists the projects and work types offered when logging a task.
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, CatalogDTO{Projects: model.SampleProjects, WorkTypes: model.SampleWorkTypes})
}
