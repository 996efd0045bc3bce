package task

import (
	"net/http"

	"axiapac.com/timesheets/service"
	web "axiapac.com/timesheets/web/common"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	tasks *service.TaskService
}

func Register(r *gin.RouterGroup, tasks *service.TaskService) {
	endpoint := &Endpoint{tasks: tasks}
	r.GET("/tasks", endpoint.List)
	r.POST("/tasks", endpoint.Create)
	r.GET("/tasks/:id", endpoint.Get)
	r.PUT("/tasks", endpoint.Update)
	r.PUT("/tasks/:id", endpoint.Update)
	r.DELETE("/tasks", endpoint.Delete)
	r.DELETE("/tasks/:id", endpoint.Delete)
}

func requireID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Task id required"))
		return "", false
	}
	return id, true
}

func (ep *Endpoint) List(c *gin.Context) {
	timesheetID := c.Query("timesheetId")
	if timesheetID == "" {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("timesheetId required"))
		return
	}

	list, err := ep.tasks.List(c.Request.Context(), timesheetID)
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ep *Endpoint) Get(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}
	task, err := ep.tasks.Get(c.Request.Context(), id)
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type TaskCreateDTO struct {
	TimesheetID string   `json:"timesheetId" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description" binding:"required"`
	TypeOfWork  string   `json:"typeOfWork"`
	Hours       *float64 `json:"hours" binding:"omitempty,min=0"`
	Project     string   `json:"project"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto TaskCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		message := web.FormatBindingError(err)
		if web.IsMissingField(err) {
			message = "Missing required fields"
		}
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(message))
		return
	}

	task, err := ep.tasks.Create(c.Request.Context(), service.CreateTaskInput{
		TimesheetID: dto.TimesheetID,
		Date:        dto.Date,
		Description: dto.Description,
		TypeOfWork:  dto.TypeOfWork,
		Hours:       dto.Hours,
		Project:     dto.Project,
	})
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

type TaskUpdateDTO struct {
	TimesheetID *string  `json:"timesheetId"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
	TypeOfWork  *string  `json:"typeOfWork"`
	Hours       *float64 `json:"hours" binding:"omitempty,min=0"`
	Project     *string  `json:"project"`
}

func (ep *Endpoint) Update(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	var dto TaskUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	task, err := ep.tasks.Update(c.Request.Context(), id, service.TaskPatch{
		TimesheetID: dto.TimesheetID,
		Date:        dto.Date,
		Description: dto.Description,
		TypeOfWork:  dto.TypeOfWork,
		Hours:       dto.Hours,
		Project:     dto.Project,
	})
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete returns the removed task.
func (ep *Endpoint) Delete(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}
	task, err := ep.tasks.Delete(c.Request.Context(), id)
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
