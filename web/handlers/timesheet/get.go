package timesheet

import (
	"net/http"

	web "axiapac.com/timesheets/web/common"
	"github.com/gin-gonic/gin"
)

// Get returns the timesheet with its tasks grouped by day.
func (ep *Endpoint) Get(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	detail, err := ep.timesheets.Detail(c.Request.Context(), id)
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
