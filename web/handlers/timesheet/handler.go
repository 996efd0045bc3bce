package timesheet

import (
	"net/http"

	"axiapac.com/timesheets/service"
	web "axiapac.com/timesheets/web/common"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	timesheets *service.TimesheetService
}

func Register(r *gin.RouterGroup, timesheets *service.TimesheetService) {
	endpoint := &Endpoint{timesheets: timesheets}
	r.GET("/timesheets", endpoint.Search)
	r.POST("/timesheets", endpoint.Create)
	r.GET("/timesheets/:id", endpoint.Get)

	// the web client addresses records with ?id=
	r.PUT("/timesheets", endpoint.Update)
	r.PUT("/timesheets/:id", endpoint.Update)
	r.DELETE("/timesheets", endpoint.Delete)
	r.DELETE("/timesheets/:id", endpoint.Delete)

	r.POST("/timesheets/:id/reconcile", endpoint.Reconcile)
	r.GET("/timesheets/:id/export", endpoint.Export)
	if timesheets.ArchiveEnabled() {
		r.POST("/timesheets/:id/archive", endpoint.Archive)
		r.GET("/timesheets/:id/archives", endpoint.Archives)
		r.GET("/timesheets/:id/archives/:name", endpoint.ArchivedExport)
	}
}

// requireID reads the id from the path or the id query parameter.
func requireID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Timesheet id required"))
		return "", false
	}
	return id, true
}

type TimesheetCreateDTO struct {
	Week      int           `json:"week" binding:"required,min=1"`
	StartDate *web.DateOnly `json:"startDate" binding:"required"`
	EndDate   *web.DateOnly `json:"endDate" binding:"required"`
	Hours     *float64      `json:"hours" binding:"omitempty,min=0"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto TimesheetCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	ts, err := ep.timesheets.Create(c.Request.Context(), service.CreateTimesheetInput{
		Week:      dto.Week,
		StartDate: dto.StartDate.String(),
		EndDate:   dto.EndDate.String(),
		Hours:     dto.Hours,
	})
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ts)
}

// TimesheetUpdateDTO is a partial update. Status is derived from hours and never accepted.
type TimesheetUpdateDTO struct {
	Week      *int          `json:"week" binding:"omitempty,min=1"`
	StartDate *web.DateOnly `json:"startDate"`
	EndDate   *web.DateOnly `json:"endDate"`
	Hours     *float64      `json:"hours" binding:"omitempty,min=0"`
}

func (ep *Endpoint) Update(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	var dto TimesheetUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	ts, err := ep.timesheets.Update(c.Request.Context(), id, service.TimesheetPatch{
		Week:      dto.Week,
		StartDate: dto.StartDate.StringPtr(),
		EndDate:   dto.EndDate.StringPtr(),
		Hours:     dto.Hours,
	})
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}
	ts, err := ep.timesheets.Delete(c.Request.Context(), id)
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

func (ep *Endpoint) Reconcile(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}
	ts, err := ep.timesheets.Reconcile(c.Request.Context(), id)
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}
